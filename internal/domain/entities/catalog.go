package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnknownEntityKind is returned when a catalog kind selector is not one of the closed set.
var ErrUnknownEntityKind = errors.New("unknown catalog entity kind")

// EntityKind tags the closed set of catalog record shapes.
type EntityKind string

const (
	KindModel         EntityKind = "model"
	KindStructureType EntityKind = "structure_type"
	KindCoverage      EntityKind = "coverage"
	KindColor         EntityKind = "color"
	KindSurface       EntityKind = "surface"
	KindAccessory     EntityKind = "accessory"
	KindPackage       EntityKind = "package"
)

var kindTables = map[EntityKind]string{
	KindModel:         "models",
	KindStructureType: "structure_types",
	KindCoverage:      "coverage_types",
	KindColor:         "colors",
	KindSurface:       "surfaces",
	KindAccessory:     "accessories",
	KindPackage:       "packages",
}

// EntityKinds lists every kind in wizard order.
func EntityKinds() []EntityKind {
	return []EntityKind{KindStructureType, KindModel, KindSurface, KindCoverage, KindColor, KindAccessory, KindPackage}
}

// ParseEntityKind accepts both the singular kind and its plural collection name.
func ParseEntityKind(raw string) (EntityKind, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for kind, table := range kindTables {
		if v == string(kind) || v == table {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntityKind, raw)
}

// TableName is the per-kind collection name, prefixed by a Namespace in SQL storage.
func (k EntityKind) TableName() string { return kindTables[k] }

// ColorCategory is the closed set of color families.
type ColorCategory string

const (
	ColorCategoryStandard ColorCategory = "standard"
	ColorCategoryPremium  ColorCategory = "premium"
	ColorCategoryRAL      ColorCategory = "ral"
)

func (c ColorCategory) Valid() bool {
	switch c {
	case ColorCategoryStandard, ColorCategoryPremium, ColorCategoryRAL:
		return true
	}
	return false
}

// CatalogEntity is implemented only by the fixed-shape catalog records below.
type CatalogEntity interface {
	Kind() EntityKind
	EntityID() string
	IsActive() bool
	Meta() CatalogMeta
	catalogEntity()
}

// CatalogMeta holds the fields every catalog record carries.
type CatalogMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m CatalogMeta) EntityID() string  { return m.ID }
func (m CatalogMeta) IsActive() bool    { return m.Active }
func (m CatalogMeta) Meta() CatalogMeta { return m }
func (CatalogMeta) catalogEntity()      {}

type Model struct {
	CatalogMeta
	Description string `json:"description"`
	BasePrice   Money  `json:"base_price"`
	ImageURL    string `json:"image_url"`
}

func (Model) Kind() EntityKind { return KindModel }

type StructureType struct {
	CatalogMeta
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Limits      DimensionLimits `json:"limits"`
}

func (StructureType) Kind() EntityKind { return KindStructureType }

type CoverageType struct {
	CatalogMeta
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	PriceModifier Money  `json:"price_modifier"`
}

func (CoverageType) Kind() EntityKind { return KindCoverage }

type Color struct {
	CatalogMeta
	HexValue      string        `json:"hex_value"`
	Category      ColorCategory `json:"category"`
	PriceModifier Money         `json:"price_modifier"`
}

func (Color) Kind() EntityKind { return KindColor }

type Surface struct {
	CatalogMeta
	PriceModifier Money  `json:"price_modifier"`
	ImageURL      string `json:"image_url"`
}

func (Surface) Kind() EntityKind { return KindSurface }

type Accessory struct {
	CatalogMeta
	Icon          string `json:"icon"`
	ImageURL      string `json:"image_url"`
	PriceModifier Money  `json:"price_modifier"`
}

func (Accessory) Kind() EntityKind { return KindAccessory }

// Package is a priced bundle. When selected, its price replaces the component modifiers.
type Package struct {
	CatalogMeta
	Contents []string `json:"contents"`
	Price    Money    `json:"price"`
}

func (Package) Kind() EntityKind { return KindPackage }

// WithMeta returns a copy of e carrying meta. Used by repositories and the
// catalog use case to stamp ids and timestamps without a type switch per call site.
func WithMeta(e CatalogEntity, meta CatalogMeta) CatalogEntity {
	switch v := e.(type) {
	case Model:
		v.CatalogMeta = meta
		return v
	case StructureType:
		v.CatalogMeta = meta
		return v
	case CoverageType:
		v.CatalogMeta = meta
		return v
	case Color:
		v.CatalogMeta = meta
		return v
	case Surface:
		v.CatalogMeta = meta
		return v
	case Accessory:
		v.CatalogMeta = meta
		return v
	case Package:
		v.Contents = append([]string(nil), v.Contents...)
		v.CatalogMeta = meta
		return v
	}
	return e
}

// SortCatalog orders entries for display: sort_order, then name, then id.
func SortCatalog(items []CatalogEntity) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Meta(), items[j].Meta()
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}
