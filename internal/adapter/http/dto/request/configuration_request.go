package request

import (
	"encoding/json"
	"strings"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"

	"github.com/shopspring/decimal"
)

type DimensionsRequest struct {
	Width  int `json:"width"`
	Depth  int `json:"depth"`
	Height int `json:"height"`
}

// ConfigurationRequest is the wizard state posted to the quote and submit
// endpoints. Catalog rows travel by id only.
type ConfigurationRequest struct {
	StructureTypeID string             `json:"structure_type_id"`
	ModelID         string             `json:"model_id"`
	SurfaceID       string             `json:"surface_id"`
	CoverageID      string             `json:"coverage_id"`
	ColorID         string             `json:"color_id"`
	AccessoryIDs    []string           `json:"accessory_ids"`
	PackageID       string             `json:"package_id"`
	Dimensions      *DimensionsRequest `json:"dimensions"`

	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	CustomerPhone      string `json:"customer_phone"`
	CustomerAddress    string `json:"customer_address"`
	CustomerCity       string `json:"customer_city"`
	CustomerPostalCode string `json:"customer_postal_code"`
	ContactPreference  string `json:"contact_preference"`
	Notes              string `json:"notes"`

	// TotalPrice is what the client displayed. It is only compared with the
	// server price, so a value that does not parse is dropped instead of
	// failing the request.
	TotalPrice json.RawMessage `json:"total_price" swaggertype:"number"`
}

func (r ConfigurationRequest) ToSubmission(idempotencyKey string) usecase.SubmissionRequest {
	var accessories []string
	for _, id := range r.AccessoryIDs {
		if id = strings.TrimSpace(id); id != "" {
			accessories = append(accessories, id)
		}
	}
	out := usecase.SubmissionRequest{
		Selection: entities.Selection{
			StructureTypeID: strings.TrimSpace(r.StructureTypeID),
			ModelID:         strings.TrimSpace(r.ModelID),
			SurfaceID:       strings.TrimSpace(r.SurfaceID),
			CoverageID:      strings.TrimSpace(r.CoverageID),
			ColorID:         strings.TrimSpace(r.ColorID),
			AccessoryIDs:    accessories,
			PackageID:       strings.TrimSpace(r.PackageID),
		},
		Customer: entities.CustomerDetails{
			Name:              r.CustomerName,
			Email:             r.CustomerEmail,
			Phone:             r.CustomerPhone,
			Address:           r.CustomerAddress,
			City:              r.CustomerCity,
			PostalCode:        r.CustomerPostalCode,
			ContactPreference: entities.ContactPreference(r.ContactPreference),
			Notes:             r.Notes,
		},
		ClientTotal:    clientTotal(r.TotalPrice),
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
	if r.Dimensions != nil {
		out.Dimensions = &entities.Dimensions{
			Width:  r.Dimensions.Width,
			Depth:  r.Dimensions.Depth,
			Height: r.Dimensions.Height,
		}
	}
	return out
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListConfigurationsQuery binds the back-office list filters.
type ListConfigurationsQuery struct {
	Status string `form:"status"`
	Since  string `form:"since"`
	Until  string `form:"until"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// clientTotal reads the advisory total as a JSON number or decimal string,
// rounded to cents. Anything else yields nil.
func clientTotal(raw json.RawMessage) *entities.Money {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil
	}
	m, err := entities.MoneyFromDecimal(d.Round(2))
	if err != nil {
		return nil
	}
	return &m
}
