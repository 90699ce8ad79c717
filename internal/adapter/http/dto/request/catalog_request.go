package request

import (
	"fmt"

	"carport_configurator/internal/domain/entities"
)

type RangeRequest struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type LimitsRequest struct {
	Width  RangeRequest `json:"width"`
	Depth  RangeRequest `json:"depth"`
	Height RangeRequest `json:"height"`
}

// CatalogEntryRequest carries the union of the fields of every catalog kind;
// the kind in the path decides which ones are read.
type CatalogEntryRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Active    *bool  `json:"active"`
	SortOrder int    `json:"sort_order"`

	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	Icon        string         `json:"icon"`
	HexValue    string         `json:"hex_value"`
	Category    string         `json:"category"`
	Contents    []string       `json:"contents"`
	Limits      *LimitsRequest `json:"limits"`

	BasePrice     entities.Money `json:"base_price"`
	PriceModifier entities.Money `json:"price_modifier"`
	Price         entities.Money `json:"price"`
}

// ToEntity builds the entity of kind. A path id, when given, wins over the body id.
func (r CatalogEntryRequest) ToEntity(kind entities.EntityKind, pathID string) (entities.CatalogEntity, error) {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	id := r.ID
	if pathID != "" {
		id = pathID
	}
	meta := entities.CatalogMeta{ID: id, Name: r.Name, Active: active, SortOrder: r.SortOrder}

	switch kind {
	case entities.KindModel:
		return entities.Model{CatalogMeta: meta, Description: r.Description, BasePrice: r.BasePrice, ImageURL: r.ImageURL}, nil
	case entities.KindStructureType:
		st := entities.StructureType{CatalogMeta: meta, Description: r.Description, ImageURL: r.ImageURL}
		if l := r.Limits; l != nil {
			st.Limits = entities.DimensionLimits{
				Width:  entities.Range{Min: l.Width.Min, Max: l.Width.Max},
				Depth:  entities.Range{Min: l.Depth.Min, Max: l.Depth.Max},
				Height: entities.Range{Min: l.Height.Min, Max: l.Height.Max},
			}
		}
		return st, nil
	case entities.KindCoverage:
		return entities.CoverageType{CatalogMeta: meta, Description: r.Description, ImageURL: r.ImageURL, PriceModifier: r.PriceModifier}, nil
	case entities.KindColor:
		return entities.Color{CatalogMeta: meta, HexValue: r.HexValue, Category: entities.ColorCategory(r.Category), PriceModifier: r.PriceModifier}, nil
	case entities.KindSurface:
		return entities.Surface{CatalogMeta: meta, ImageURL: r.ImageURL, PriceModifier: r.PriceModifier}, nil
	case entities.KindAccessory:
		return entities.Accessory{CatalogMeta: meta, Icon: r.Icon, ImageURL: r.ImageURL, PriceModifier: r.PriceModifier}, nil
	case entities.KindPackage:
		return entities.Package{CatalogMeta: meta, Contents: r.Contents, Price: r.Price}, nil
	}
	return nil, fmt.Errorf("%w: %q", entities.ErrUnknownEntityKind, kind)
}
