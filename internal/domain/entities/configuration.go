package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownStatus            = errors.New("unknown configuration status")
	ErrUnknownContactPreference = errors.New("unknown contact preference")
)

// ConfigurationStatus represents the lifecycle of a submitted configuration.
//
// Customers only ever create pending configurations; every other value is
// reached through the back-office status transition.
type ConfigurationStatus string

const (
	StatusPending    ConfigurationStatus = "pending"
	StatusConfirmed  ConfigurationStatus = "confirmed"
	StatusProcessing ConfigurationStatus = "processing"
	StatusCompleted  ConfigurationStatus = "completed"
	StatusCancelled  ConfigurationStatus = "cancelled"
)

var statusTransitions = map[ConfigurationStatus][]ConfigurationStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  nil,
	StatusCancelled:  nil,
}

func ParseConfigurationStatus(raw string) (ConfigurationStatus, error) {
	s := ConfigurationStatus(raw)
	if _, ok := statusTransitions[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

func (s ConfigurationStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the back-office may move s to next.
func (s ConfigurationStatus) CanTransitionTo(next ConfigurationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContactPreference is the closed set of channels a customer may ask to be contacted on.
type ContactPreference string

const (
	ContactEmail    ContactPreference = "email"
	ContactPhone    ContactPreference = "phone"
	ContactWhatsApp ContactPreference = "whatsapp"
)

// ContactPreferences lists the accepted values in display order.
func ContactPreferences() []ContactPreference {
	return []ContactPreference{ContactEmail, ContactPhone, ContactWhatsApp}
}

func (c ContactPreference) Valid() bool {
	switch c {
	case ContactEmail, ContactPhone, ContactWhatsApp:
		return true
	}
	return false
}

func ParseContactPreference(raw string) (ContactPreference, error) {
	c := ContactPreference(raw)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownContactPreference, raw)
	}
	return c, nil
}

// CustomerDetails are the contact fields collected on the last wizard step.
type CustomerDetails struct {
	Name              string            `json:"customer_name"`
	Email             string            `json:"customer_email"`
	Phone             string            `json:"customer_phone"`
	Address           string            `json:"customer_address"`
	City              string            `json:"customer_city"`
	PostalCode        string            `json:"customer_postal_code"`
	ContactPreference ContactPreference `json:"contact_preference"`
	Notes             string            `json:"notes,omitempty"`
}

// Normalized trims surrounding whitespace from every text field.
func (c CustomerDetails) Normalized() CustomerDetails {
	return CustomerDetails{
		Name:              strings.TrimSpace(c.Name),
		Email:             strings.TrimSpace(c.Email),
		Phone:             strings.TrimSpace(c.Phone),
		Address:           strings.TrimSpace(c.Address),
		City:              strings.TrimSpace(c.City),
		PostalCode:        strings.TrimSpace(c.PostalCode),
		ContactPreference: ContactPreference(strings.TrimSpace(string(c.ContactPreference))),
		Notes:             strings.TrimSpace(c.Notes),
	}
}

// Selection is the set of catalog references of a configuration, by id.
type Selection struct {
	StructureTypeID string   `json:"structure_type_id"`
	ModelID         string   `json:"model_id"`
	SurfaceID       string   `json:"surface_id"`
	CoverageID      string   `json:"coverage_id"`
	ColorID         string   `json:"color_id"`
	AccessoryIDs    []string `json:"accessory_ids"`
	PackageID       string   `json:"package_id,omitempty"`
}

// References lists every (kind, id) pair the selection points at, accessories included.
func (s Selection) References() []CatalogRef {
	refs := []CatalogRef{
		{Kind: KindStructureType, ID: s.StructureTypeID},
		{Kind: KindModel, ID: s.ModelID},
		{Kind: KindSurface, ID: s.SurfaceID},
		{Kind: KindCoverage, ID: s.CoverageID},
		{Kind: KindColor, ID: s.ColorID},
	}
	for _, id := range s.AccessoryIDs {
		refs = append(refs, CatalogRef{Kind: KindAccessory, ID: id})
	}
	if s.PackageID != "" {
		refs = append(refs, CatalogRef{Kind: KindPackage, ID: s.PackageID})
	}
	return refs
}

// CatalogRef points at one catalog row of a namespace.
type CatalogRef struct {
	Kind EntityKind
	ID   string
}

// ConfigurationDraft is a read-only copy of a builder's state: the catalog rows
// resolved so far plus dimensions and customer details. Unset steps are nil.
type ConfigurationDraft struct {
	Namespace     Namespace
	StructureType *StructureType
	Model         *Model
	Dimensions    *Dimensions
	Surface       *Surface
	Coverage      *CoverageType
	Color         *Color
	Accessories   []Accessory
	Package       *Package
	Customer      CustomerDetails
	SubmissionKey string
}

// Selection extracts the referenced ids of the draft.
func (d ConfigurationDraft) Selection() Selection {
	var s Selection
	if d.StructureType != nil {
		s.StructureTypeID = d.StructureType.ID
	}
	if d.Model != nil {
		s.ModelID = d.Model.ID
	}
	if d.Surface != nil {
		s.SurfaceID = d.Surface.ID
	}
	if d.Coverage != nil {
		s.CoverageID = d.Coverage.ID
	}
	if d.Color != nil {
		s.ColorID = d.Color.ID
	}
	for _, a := range d.Accessories {
		s.AccessoryIDs = append(s.AccessoryIDs, a.ID)
	}
	if d.Package != nil {
		s.PackageID = d.Package.ID
	}
	return s
}

// ValidatedConfiguration is the output of the submission validator: every
// reference checked, price computed server side, status forced to pending.
type ValidatedConfiguration struct {
	Namespace     Namespace
	Selection     Selection
	Dimensions    Dimensions
	Customer      CustomerDetails
	TotalPrice    Money
	Status        ConfigurationStatus
	SubmissionKey string
	Breakdown     PriceBreakdown
}

// Configuration is a persisted quote request.
type Configuration struct {
	ID              string              `json:"id"`
	ProductLine     ProductLine         `json:"product_line"`
	Selection       Selection           `json:"selection"`
	Dimensions      Dimensions          `json:"dimensions"`
	Customer        CustomerDetails     `json:"customer"`
	TotalPrice      Money               `json:"total_price"`
	Status          ConfigurationStatus `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	StatusUpdatedAt *time.Time          `json:"status_updated_at,omitempty"`
}

// ConfigurationFilters narrow the back-office listing. Zero values mean "no filter".
type ConfigurationFilters struct {
	Status ConfigurationStatus
	Since  time.Time
	Until  time.Time
	Limit  int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// EffectiveLimit clamps Limit into [1, MaxListLimit], defaulting to DefaultListLimit.
func (f ConfigurationFilters) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	}
	return f.Limit
}

// Matches applies the status and time-window filters to c.
func (f ConfigurationFilters) Matches(c Configuration) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if !f.Since.IsZero() && c.CreatedAt.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && c.CreatedAt.After(f.Until) {
		return false
	}
	return true
}

var submissionKeySpace = uuid.MustParse("6f1c2a4e-6a53-4c1e-9d2b-8e2f5a1b7c30")

// NewConfigurationID returns a random id, or a stable one derived from the
// submission key so a resubmitted wizard hits the store's uniqueness rule.
func NewConfigurationID(line ProductLine, submissionKey string) string {
	key := strings.TrimSpace(submissionKey)
	if key == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(submissionKeySpace, []byte(string(line)+"/"+key)).String()
}

// References returns the catalog rows a persisted configuration points at.
func (c Configuration) References() []CatalogRef {
	return c.Selection.References()
}

// PriceLine is one contribution to a total.
type PriceLine struct {
	Kind   EntityKind `json:"kind"`
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Amount Money      `json:"amount"`
}

// PriceBreakdown itemizes a computed total.
type PriceBreakdown struct {
	Lines          []PriceLine `json:"lines"`
	Total          Money       `json:"total"`
	PackageApplied bool        `json:"package_applied"`
}

// ConfigurationSummary is the read-only record handed to the notification dispatcher.
type ConfigurationSummary struct {
	Reference   string          `json:"reference"`
	ProductLine ProductLine     `json:"product_line"`
	CreatedAt   time.Time       `json:"created_at"`
	Customer    CustomerDetails `json:"customer"`
	Dimensions  Dimensions      `json:"dimensions"`
	Breakdown   PriceBreakdown  `json:"breakdown"`
}

// NewConfiguration stamps a validated configuration with its id and creation time.
func NewConfiguration(v ValidatedConfiguration, id string, createdAt time.Time) Configuration {
	sel := v.Selection
	sel.AccessoryIDs = append([]string(nil), sel.AccessoryIDs...)
	return Configuration{
		ID:          id,
		ProductLine: v.Namespace.Line(),
		Selection:   sel,
		Dimensions:  v.Dimensions,
		Customer:    v.Customer,
		TotalPrice:  v.TotalPrice,
		Status:      v.Status,
		CreatedAt:   createdAt.UTC(),
	}
}

// Summary builds the record handed to the notification dispatcher.
func (c Configuration) Summary(b PriceBreakdown) ConfigurationSummary {
	return ConfigurationSummary{
		Reference:   c.ID,
		ProductLine: c.ProductLine,
		CreatedAt:   c.CreatedAt,
		Customer:    c.Customer,
		Dimensions:  c.Dimensions,
		Breakdown:   b,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Configuration) Clone() Configuration {
	c.Selection.AccessoryIDs = append([]string(nil), c.Selection.AccessoryIDs...)
	if c.StatusUpdatedAt != nil {
		t := *c.StatusUpdatedAt
		c.StatusUpdatedAt = &t
	}
	return c
}
