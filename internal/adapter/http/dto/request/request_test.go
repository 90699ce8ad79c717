package request

import (
	"encoding/json"
	"testing"

	"carport_configurator/internal/domain/entities"
)

func TestConfigurationRequest_ToSubmission(t *testing.T) {
	var r ConfigurationRequest
	body := `{
		"structure_type_id": " addossato ",
		"model_id": "classic",
		"accessory_ids": ["gutter", " ", "light"],
		"dimensions": {"width": 500, "depth": 300, "height": 250},
		"customer_email": "ada@example.com",
		"contact_preference": "email",
		"total_price": "1430.00"
	}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	sub := r.ToSubmission(" key-1 ")
	if sub.Selection.StructureTypeID != "addossato" {
		t.Fatalf("expected trimmed structure type, got %q", sub.Selection.StructureTypeID)
	}
	if len(sub.Selection.AccessoryIDs) != 2 {
		t.Fatalf("expected blank accessory ids dropped, got %v", sub.Selection.AccessoryIDs)
	}
	if sub.Dimensions == nil || sub.Dimensions.Width != 500 {
		t.Fatalf("unexpected dimensions: %+v", sub.Dimensions)
	}
	if sub.ClientTotal == nil || *sub.ClientTotal != entities.Money(143000) {
		t.Fatalf("unexpected client total: %v", sub.ClientTotal)
	}
	if sub.IdempotencyKey != "key-1" {
		t.Fatalf("expected trimmed idempotency key, got %q", sub.IdempotencyKey)
	}
	if sub.Customer.ContactPreference != entities.ContactEmail {
		t.Fatalf("unexpected contact preference %q", sub.Customer.ContactPreference)
	}
}

func TestConfigurationRequest_ClientTotalIsLenient(t *testing.T) {
	cases := []struct {
		raw  string
		want *entities.Money
	}{
		{`1535.0000000000002`, moneyPtr(153500)},
		{`1534.999`, moneyPtr(153500)},
		{`"1430.5"`, moneyPtr(143050)},
		{`"abc"`, nil},
		{`true`, nil},
		{`null`, nil},
		{`1e30`, nil},
	}
	for _, tc := range cases {
		var r ConfigurationRequest
		if err := json.Unmarshal([]byte(`{"total_price": `+tc.raw+`}`), &r); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.raw, err)
		}
		got := r.ToSubmission("").ClientTotal
		switch {
		case tc.want == nil && got != nil:
			t.Fatalf("%s: expected nil, got %s", tc.raw, got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Fatalf("%s: expected %s, got %v", tc.raw, tc.want, got)
		}
	}
}

func moneyPtr(m entities.Money) *entities.Money { return &m }

func TestConfigurationRequest_NoDimensions(t *testing.T) {
	sub := ConfigurationRequest{ModelID: "classic"}.ToSubmission("")
	if sub.Dimensions != nil {
		t.Fatalf("expected nil dimensions, got %+v", sub.Dimensions)
	}
}

func TestCatalogEntryRequest_ToEntity(t *testing.T) {
	inactive := false
	r := CatalogEntryRequest{
		ID:        "body-id",
		Name:      "Comfort",
		Active:    &inactive,
		Contents:  []string{"gutter"},
		Price:     30000,
		BasePrice: 99,
	}

	e, err := r.ToEntity(entities.KindPackage, "path-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pkg, ok := e.(entities.Package)
	if !ok {
		t.Fatalf("expected Package, got %T", e)
	}
	if pkg.ID != "path-id" || pkg.Active || pkg.Price != 30000 {
		t.Fatalf("unexpected package: %+v", pkg)
	}

	st, err := CatalogEntryRequest{Name: "Wall", Limits: &LimitsRequest{Width: RangeRequest{Min: 200, Max: 800}}}.
		ToEntity(entities.KindStructureType, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.(entities.StructureType).Limits.Width.Max; got != 800 || !st.IsActive() {
		t.Fatalf("unexpected structure type: %+v", st)
	}

	if _, err := r.ToEntity(entities.EntityKind("roof"), ""); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
