// Package validate wires go-playground/validator for request DTOs and turns its
// errors into itemized violations for HTTP responses.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted by date-range endpoints.
const DateLayout = "2006-01-02"

var reDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Violation describes one failed rule.
type Violation struct {
	Field string `json:"field" example:"temperature"`
	Rule  string `json:"rule" example:"max"`
	Param string `json:"param,omitempty" example:"100"`
	Value any    `json:"value,omitempty"`
}

// New returns a validator with the project rules registered. Error field names
// follow the json, query or params tag so clients see their own keys.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "params"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	if err := v.RegisterValidation("date", dateRule); err != nil {
		return nil, fmt.Errorf("register date rule: %w", err)
	}

	return v, nil
}

// ParseDate parses a YYYY-MM-DD value as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if !reDate.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q must use the YYYY-MM-DD format", s)
	}
	return time.Parse(DateLayout, s)
}

func dateRule(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// Violations flattens a validator error into one entry per failed rule.
// Errors that did not come from the validator yield a single entry with no field.
func Violations(err error) []Violation {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Rule: err.Error()}}
	}

	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field: fieldPath(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace: "CreateRequest.temperature" -> "temperature".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
