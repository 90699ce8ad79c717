package usecase

import (
	"context"
	"testing"

	"carport_configurator/internal/adapter/persistence/memory"
	"carport_configurator/internal/domain/entities"
)

var (
	woodNS = entities.MustResolveNamespace(entities.ProductLineWood)
	ironNS = entities.MustResolveNamespace(entities.ProductLineIron)

	testDefaults = entities.DimensionLimits{
		Width:  entities.Range{Min: 100, Max: 1500},
		Depth:  entities.Range{Min: 100, Max: 1000},
		Height: entities.Range{Min: 180, Max: 400},
	}
)

func meta(id string, active bool) entities.CatalogMeta {
	return entities.CatalogMeta{ID: id, Name: id, Active: active}
}

// newTestCatalog returns a store whose wood namespace holds the reference
// scenario rows; the iron namespace reuses some ids with other prices.
func newTestCatalog(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	repo := store.Catalog()
	rows := map[entities.Namespace][]entities.CatalogEntity{
		woodNS: {
			entities.StructureType{CatalogMeta: meta("addossato", true), Limits: entities.DimensionLimits{
				Width: entities.Range{Min: 200, Max: 800},
			}},
			entities.StructureType{CatalogMeta: meta("freestanding", true)},
			entities.StructureType{CatalogMeta: meta("retired", false)},
			entities.Model{CatalogMeta: meta("classic", true), BasePrice: entities.MoneyFromUnits(1200)},
			entities.Surface{CatalogMeta: meta("gravel", true), PriceModifier: entities.MoneyFromUnits(80)},
			entities.CoverageType{CatalogMeta: meta("polycarbonate", true), PriceModifier: entities.MoneyFromUnits(150)},
			entities.Color{CatalogMeta: meta("natural", true), HexValue: "#C19A6B", Category: entities.ColorCategoryStandard},
			entities.Color{CatalogMeta: meta("teak", false), HexValue: "#B8860B", Category: entities.ColorCategoryPremium},
			entities.Accessory{CatalogMeta: meta("gutter", true), PriceModifier: entities.MoneyFromUnits(45)},
			entities.Accessory{CatalogMeta: meta("light", true), PriceModifier: entities.MoneyFromUnits(60)},
			entities.Package{CatalogMeta: meta("comfort", true), Contents: []string{"gutter", "light"}, Price: entities.MoneyFromUnits(300)},
		},
		ironNS: {
			entities.Model{CatalogMeta: meta("classic", true), BasePrice: entities.MoneyFromUnits(2000)},
		},
	}
	for ns, list := range rows {
		for _, e := range list {
			if _, err := repo.Create(context.Background(), ns, e); err != nil {
				t.Fatalf("seed %s: %v", e.EntityID(), err)
			}
		}
	}
	return store
}

func validCustomer() entities.CustomerDetails {
	return entities.CustomerDetails{
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Phone:             "+39 011 555 0100",
		Address:           "Via Roma 1",
		City:              "Torino",
		PostalCode:        "10121",
		ContactPreference: entities.ContactEmail,
	}
}

func scenarioRequest() SubmissionRequest {
	return SubmissionRequest{
		Selection: entities.Selection{
			StructureTypeID: "addossato",
			ModelID:         "classic",
			SurfaceID:       "gravel",
			CoverageID:      "polycarbonate",
			ColorID:         "natural",
		},
		Dimensions: &entities.Dimensions{Width: 300, Depth: 500, Height: 220},
		Customer:   validCustomer(),
	}
}
