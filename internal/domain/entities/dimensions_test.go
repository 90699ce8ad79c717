package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDefaults = DimensionLimits{
	Width:  Range{Min: 100, Max: 1500},
	Depth:  Range{Min: 100, Max: 1000},
	Height: Range{Min: 180, Max: 400},
}

func TestDimensionLimits_Check(t *testing.T) {
	t.Run("within defaults", func(t *testing.T) {
		assert.Empty(t, testDefaults.Check(Dimensions{Width: 500, Depth: 300, Height: 250}))
	})

	t.Run("non positive and out of range", func(t *testing.T) {
		got := testDefaults.Check(Dimensions{Width: 0, Depth: 2000, Height: 250})
		assert.Equal(t, []FieldViolation{
			{Field: "dimensions.width", Reason: "must be positive"},
			{Field: "dimensions.depth", Reason: "out of range [100, 1000]"},
		}, got)
	})

	t.Run("structure limits override only set axes", func(t *testing.T) {
		limits := DimensionLimits{Width: Range{Min: 200, Max: 400}}.Or(testDefaults)
		assert.Equal(t, testDefaults.Depth, limits.Depth)
		assert.Len(t, limits.Check(Dimensions{Width: 500, Depth: 300, Height: 250}), 1)
	})
}

func TestDimensionLimits_Validate(t *testing.T) {
	bad := DimensionLimits{Width: Range{Min: 500, Max: 100}, Height: Range{Min: -1, Max: 10}}
	got := bad.Validate()
	assert.Equal(t, []string{"limits.height", "limits.width"}, []string{got[0].Field, got[1].Field})
	assert.Empty(t, testDefaults.Validate())
}
