package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNamespace(t *testing.T) {
	t.Run("wood", func(t *testing.T) {
		ns, err := ResolveNamespace(ProductLineWood)
		require.NoError(t, err)
		assert.Equal(t, "wood_", ns.Prefix())
		assert.Equal(t, "wood_models", ns.Table("models"))
		assert.Equal(t, ProductLineWood, ns.Line())
	})

	t.Run("iron", func(t *testing.T) {
		ns, err := ResolveNamespace(ProductLineIron)
		require.NoError(t, err)
		assert.Equal(t, "iron_", ns.Prefix())
		assert.Equal(t, "iron_configurations", ns.Table("configurations"))
	})

	t.Run("unknown line", func(t *testing.T) {
		ns, err := ResolveNamespace(ProductLine("steel"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownProductLine))
		assert.True(t, ns.IsZero())
	})
}

func TestParseProductLine(t *testing.T) {
	line, err := ParseProductLine("  IRON ")
	require.NoError(t, err)
	assert.Equal(t, ProductLineIron, line)

	_, err = ParseProductLine("")
	assert.ErrorIs(t, err, ErrUnknownProductLine)
}

func TestParseEntityKind(t *testing.T) {
	for _, raw := range []string{"coverage", "coverage_types", "Coverage_Types"} {
		kind, err := ParseEntityKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, KindCoverage, kind)
	}
	_, err := ParseEntityKind("roof")
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
	assert.Equal(t, "accessories", KindAccessory.TableName())
}

func TestWithMeta(t *testing.T) {
	pkg := Package{Contents: []string{"gutter"}, Price: MoneyFromUnits(300)}
	stamped := WithMeta(pkg, CatalogMeta{ID: "pkg-1", Name: "Comfort", Active: true})

	got, ok := stamped.(Package)
	require.True(t, ok)
	assert.Equal(t, "pkg-1", got.EntityID())
	assert.True(t, got.IsActive())
	assert.Equal(t, KindPackage, got.Kind())

	got.Contents[0] = "changed"
	assert.Equal(t, "gutter", pkg.Contents[0])
}
