package response

import (
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
)

type DimensionsResponse struct {
	Width  int `json:"width"`
	Depth  int `json:"depth"`
	Height int `json:"height"`
}

type ConfigurationResponse struct {
	ID              string             `json:"id"`
	ProductLine     string             `json:"product_line"`
	StructureTypeID string             `json:"structure_type_id"`
	ModelID         string             `json:"model_id"`
	SurfaceID       string             `json:"surface_id"`
	CoverageID      string             `json:"coverage_id"`
	ColorID         string             `json:"color_id"`
	AccessoryIDs    []string           `json:"accessory_ids"`
	PackageID       string             `json:"package_id,omitempty"`
	Dimensions      DimensionsResponse `json:"dimensions"`

	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	CustomerPhone      string `json:"customer_phone"`
	CustomerAddress    string `json:"customer_address"`
	CustomerCity       string `json:"customer_city"`
	CustomerPostalCode string `json:"customer_postal_code"`
	ContactPreference  string `json:"contact_preference"`
	Notes              string `json:"notes,omitempty"`

	TotalPrice      entities.Money `json:"total_price"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	StatusUpdatedAt *time.Time     `json:"status_updated_at,omitempty"`
}

func FromConfiguration(c entities.Configuration) ConfigurationResponse {
	accessories := c.Selection.AccessoryIDs
	if accessories == nil {
		accessories = []string{}
	}
	return ConfigurationResponse{
		ID:                 c.ID,
		ProductLine:        string(c.ProductLine),
		StructureTypeID:    c.Selection.StructureTypeID,
		ModelID:            c.Selection.ModelID,
		SurfaceID:          c.Selection.SurfaceID,
		CoverageID:         c.Selection.CoverageID,
		ColorID:            c.Selection.ColorID,
		AccessoryIDs:       accessories,
		PackageID:          c.Selection.PackageID,
		Dimensions:         DimensionsResponse{Width: c.Dimensions.Width, Depth: c.Dimensions.Depth, Height: c.Dimensions.Height},
		CustomerName:       c.Customer.Name,
		CustomerEmail:      c.Customer.Email,
		CustomerPhone:      c.Customer.Phone,
		CustomerAddress:    c.Customer.Address,
		CustomerCity:       c.Customer.City,
		CustomerPostalCode: c.Customer.PostalCode,
		ContactPreference:  string(c.Customer.ContactPreference),
		Notes:              c.Customer.Notes,
		TotalPrice:         c.TotalPrice,
		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt,
		StatusUpdatedAt:    c.StatusUpdatedAt,
	}
}

func FromConfigurations(items []entities.Configuration) []ConfigurationResponse {
	out := make([]ConfigurationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromConfiguration(c))
	}
	return out
}

// SubmissionResponse acknowledges a stored configuration; Reference is the
// id quoted back to the customer.
type SubmissionResponse struct {
	Reference     string                `json:"reference"`
	Configuration ConfigurationResponse `json:"configuration"`
}

func FromSubmission(c entities.Configuration) SubmissionResponse {
	return SubmissionResponse{Reference: c.ID, Configuration: FromConfiguration(c)}
}

type PriceLineResponse struct {
	Kind   string         `json:"kind"`
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Amount entities.Money `json:"amount"`
}

type QuoteResponse struct {
	Complete          bool                      `json:"complete"`
	DimensionsCleared bool                      `json:"dimensions_cleared"`
	Violations        []entities.FieldViolation `json:"violations"`
	Lines             []PriceLineResponse       `json:"lines"`
	PackageApplied    bool                      `json:"package_applied"`
	TotalPrice        entities.Money            `json:"total_price"`
}

func FromQuote(q usecase.QuoteResult) QuoteResponse {
	lines := make([]PriceLineResponse, 0, len(q.Breakdown.Lines))
	for _, l := range q.Breakdown.Lines {
		lines = append(lines, PriceLineResponse{Kind: string(l.Kind), ID: l.ID, Name: l.Name, Amount: l.Amount})
	}
	violations := q.Violations
	if violations == nil {
		violations = []entities.FieldViolation{}
	}
	return QuoteResponse{
		Complete:          q.Complete,
		DimensionsCleared: q.DimensionsCleared,
		Violations:        violations,
		Lines:             lines,
		PackageApplied:    q.Breakdown.PackageApplied,
		TotalPrice:        q.Breakdown.Total,
	}
}
