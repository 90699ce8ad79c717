package entities

import "fmt"

// Dimensions are integer centimetres.
type Dimensions struct {
	Width  int `json:"width"`
	Depth  int `json:"depth"`
	Height int `json:"height"`
}

// Range is an inclusive [Min, Max] bound in centimetres.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// DimensionLimits bounds each axis. A zero Range on an axis falls back to the
// business default for that axis (see Or).
type DimensionLimits struct {
	Width  Range `json:"width"`
	Depth  Range `json:"depth"`
	Height Range `json:"height"`
}

func (l DimensionLimits) IsZero() bool {
	return l.Width.IsZero() && l.Depth.IsZero() && l.Height.IsZero()
}

// Or fills every unset axis of l from defaults.
func (l DimensionLimits) Or(defaults DimensionLimits) DimensionLimits {
	if l.Width.IsZero() {
		l.Width = defaults.Width
	}
	if l.Depth.IsZero() {
		l.Depth = defaults.Depth
	}
	if l.Height.IsZero() {
		l.Height = defaults.Height
	}
	return l
}

// Check returns one violation per axis that is non-positive or out of range.
func (l DimensionLimits) Check(d Dimensions) []FieldViolation {
	var out []FieldViolation
	axes := []struct {
		field string
		value int
		rng   Range
	}{
		{"dimensions.width", d.Width, l.Width},
		{"dimensions.depth", d.Depth, l.Depth},
		{"dimensions.height", d.Height, l.Height},
	}
	for _, a := range axes {
		switch {
		case a.value <= 0:
			out = append(out, FieldViolation{Field: a.field, Reason: "must be positive"})
		case !a.rng.Contains(a.value):
			out = append(out, FieldViolation{
				Field:  a.field,
				Reason: fmt.Sprintf("out of range [%d, %d]", a.rng.Min, a.rng.Max),
			})
		}
	}
	return out
}

// Validate checks the limits themselves (back-office input).
func (l DimensionLimits) Validate() []FieldViolation {
	var out []FieldViolation
	for field, r := range map[string]Range{"limits.width": l.Width, "limits.depth": l.Depth, "limits.height": l.Height} {
		if r.IsZero() {
			continue
		}
		if r.Min <= 0 || r.Max < r.Min {
			out = append(out, FieldViolation{Field: field, Reason: "min must be positive and not greater than max"})
		}
	}
	SortViolations(out)
	return out
}
