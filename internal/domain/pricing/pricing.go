// Package pricing derives the total of a configuration draft.
//
// The rule is additive over the resolved catalog rows:
//
//	total = model.base_price + coverage + color + surface + sum(accessories)
//
// When a package is selected it supersedes every component modifier:
//
//	total = model.base_price + package.price
//
// Dimensions never contribute. All arithmetic is exact integer cents.
package pricing

import "carport_configurator/internal/domain/entities"

// Price returns the total of draft. Unset steps contribute zero.
func Price(draft entities.ConfigurationDraft) entities.Money {
	return Breakdown(draft).Total
}

// Breakdown itemizes the total in wizard order.
func Breakdown(draft entities.ConfigurationDraft) entities.PriceBreakdown {
	var out entities.PriceBreakdown

	add := func(kind entities.EntityKind, meta entities.CatalogMeta, amount entities.Money) {
		out.Lines = append(out.Lines, entities.PriceLine{Kind: kind, ID: meta.ID, Name: meta.Name, Amount: amount})
		out.Total += amount
	}

	if m := draft.Model; m != nil {
		add(entities.KindModel, m.CatalogMeta, m.BasePrice)
	}

	if p := draft.Package; p != nil {
		add(entities.KindPackage, p.CatalogMeta, p.Price)
		out.PackageApplied = true
		return out
	}

	if s := draft.Surface; s != nil {
		add(entities.KindSurface, s.CatalogMeta, s.PriceModifier)
	}
	if c := draft.Coverage; c != nil {
		add(entities.KindCoverage, c.CatalogMeta, c.PriceModifier)
	}
	if c := draft.Color; c != nil {
		add(entities.KindColor, c.CatalogMeta, c.PriceModifier)
	}
	for _, a := range draft.Accessories {
		add(entities.KindAccessory, a.CatalogMeta, a.PriceModifier)
	}
	return out
}
