package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
)

func TestFromConfiguration(t *testing.T) {
	c := entities.Configuration{
		ID:          "cfg-1",
		ProductLine: entities.ProductLineIron,
		Selection:   entities.Selection{ModelID: "classic"},
		TotalPrice:  143000,
		Status:      entities.StatusPending,
		CreatedAt:   time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		Customer:    entities.CustomerDetails{ContactPreference: entities.ContactPhone},
	}

	raw, err := json.Marshal(FromSubmission(c))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"reference":"cfg-1"`, `"total_price":1430.00`, `"accessory_ids":[]`, `"product_line":"iron"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
	if strings.Contains(body, "status_updated_at") {
		t.Fatalf("expected status_updated_at omitted, got %s", body)
	}
}

func TestFromQuote(t *testing.T) {
	q := usecase.QuoteResult{
		Breakdown: entities.PriceBreakdown{
			Lines: []entities.PriceLine{{Kind: entities.KindModel, ID: "classic", Name: "Classic", Amount: 120000}},
			Total: 120000,
		},
	}
	got := FromQuote(q)
	if got.Violations == nil || len(got.Lines) != 1 || got.TotalPrice != 120000 {
		t.Fatalf("unexpected quote response: %+v", got)
	}
}

func TestFromCatalogEntity(t *testing.T) {
	color := entities.Color{
		CatalogMeta:   entities.CatalogMeta{ID: "natural", Name: "Natural", Active: true},
		HexValue:      "#C19A6B",
		Category:      entities.ColorCategoryStandard,
		PriceModifier: 0,
	}
	raw, err := json.Marshal(FromCatalogEntity(color))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"kind":"color"`) || !strings.Contains(body, `"price_modifier":0.00`) {
		t.Fatalf("unexpected body %s", body)
	}
	if strings.Contains(body, "base_price") || strings.Contains(body, "limits") {
		t.Fatalf("expected foreign fields omitted, got %s", body)
	}
}
