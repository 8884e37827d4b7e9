package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute. bluemonday policies are safe for
// concurrent use once built; never mutate this one after init.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// Name turns free-form client text (device names, first and last names) into a single
// clean line: HTML is stripped, entities are unescaped and all whitespace runs,
// including newlines and non-breaking spaces, collapse to one space.
//
//   - "<b>Woodford</b>_Sensor" -> "Woodford _Sensor"
//   - "  Ada \n Lovelace " -> "Ada Lovelace"
func Name(s string) string {
	cleaned := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}
