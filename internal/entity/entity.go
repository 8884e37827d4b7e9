// Package entity holds the canonical projection shared by users and weather readings.
package entity

// IDKey is the identifier key of a projected entity.
const IDKey = "id"

// Project copies fields into a fresh map and sets IDKey from id exactly once.
// Identifier aliases in fields ("_id", "id") are discarded so a stale or forged id in a
// payload can never reach the store. Keys absent from fields stay absent, while explicit
// nil values are kept (a nil authenticationKey means "clear it"). An empty id leaves
// IDKey unset. Values are not coerced.
func Project(id string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		if k == "_id" || k == IDKey {
			continue
		}
		out[k] = v
	}
	if id != "" {
		out[IDKey] = id
	}
	return out
}

// Split separates a projection back into its identifier and the remaining fields.
func Split(projected map[string]any) (string, map[string]any) {
	id, _ := projected[IDKey].(string)
	rest := make(map[string]any, len(projected))
	for k, v := range projected {
		if k == IDKey {
			continue
		}
		rest[k] = v
	}
	return id, rest
}
