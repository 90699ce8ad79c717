package response

import (
	"time"

	"carport_configurator/internal/domain/entities"
)

type RangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type LimitsResponse struct {
	Width  RangeResponse `json:"width"`
	Depth  RangeResponse `json:"depth"`
	Height RangeResponse `json:"height"`
}

// CatalogEntryResponse is the flat view of any catalog kind. Fields foreign to
// the kind are omitted.
type CatalogEntryResponse struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Icon          string          `json:"icon,omitempty"`
	HexValue      string          `json:"hex_value,omitempty"`
	Category      string          `json:"category,omitempty"`
	Contents      []string        `json:"contents,omitempty"`
	Limits        *LimitsResponse `json:"limits,omitempty"`
	BasePrice     *entities.Money `json:"base_price,omitempty"`
	PriceModifier *entities.Money `json:"price_modifier,omitempty"`
	Price         *entities.Money `json:"price,omitempty"`
}

func FromCatalogEntity(e entities.CatalogEntity) CatalogEntryResponse {
	m := e.Meta()
	out := CatalogEntryResponse{
		Kind:      string(e.Kind()),
		ID:        m.ID,
		Name:      m.Name,
		Active:    m.Active,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	money := func(v entities.Money) *entities.Money { return &v }

	switch v := e.(type) {
	case entities.Model:
		out.Description, out.ImageURL, out.BasePrice = v.Description, v.ImageURL, money(v.BasePrice)
	case entities.StructureType:
		out.Description, out.ImageURL = v.Description, v.ImageURL
		out.Limits = &LimitsResponse{
			Width:  RangeResponse{Min: v.Limits.Width.Min, Max: v.Limits.Width.Max},
			Depth:  RangeResponse{Min: v.Limits.Depth.Min, Max: v.Limits.Depth.Max},
			Height: RangeResponse{Min: v.Limits.Height.Min, Max: v.Limits.Height.Max},
		}
	case entities.CoverageType:
		out.Description, out.ImageURL, out.PriceModifier = v.Description, v.ImageURL, money(v.PriceModifier)
	case entities.Color:
		out.HexValue, out.Category, out.PriceModifier = v.HexValue, string(v.Category), money(v.PriceModifier)
	case entities.Surface:
		out.ImageURL, out.PriceModifier = v.ImageURL, money(v.PriceModifier)
	case entities.Accessory:
		out.Icon, out.ImageURL, out.PriceModifier = v.Icon, v.ImageURL, money(v.PriceModifier)
	case entities.Package:
		out.Contents, out.Price = v.Contents, money(v.Price)
	}
	return out
}

func FromCatalogEntities(items []entities.CatalogEntity) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCatalogEntity(e))
	}
	return out
}
