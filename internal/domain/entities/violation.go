package entities

import "sort"

// FieldViolation attributes a user-input problem to a request field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// SortViolations orders violations by field name so error payloads are deterministic.
func SortViolations(v []FieldViolation) {
	sort.SliceStable(v, func(i, j int) bool { return v[i].Field < v[j].Field })
}
