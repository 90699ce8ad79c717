package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"
)

// Field names reported in selection and validation errors.
const (
	FieldStructureType     = "structure_type_id"
	FieldModel             = "model_id"
	FieldSurface           = "surface_id"
	FieldCoverage          = "coverage_id"
	FieldColor             = "color_id"
	FieldAccessories       = "accessory_ids"
	FieldPackage           = "package_id"
	FieldDimensions        = "dimensions"
	FieldCustomerName      = "customer_name"
	FieldCustomerEmail     = "customer_email"
	FieldCustomerPhone     = "customer_phone"
	FieldCustomerAddress   = "customer_address"
	FieldCustomerCity      = "customer_city"
	FieldCustomerPostal    = "customer_postal_code"
	FieldContactPreference = "contact_preference"
	FieldNotes             = "notes"
	FieldTotalPrice        = "total_price"
)

// ConfigurationBuilder holds one customer's in-progress wizard state.
//
// A builder is request scoped and not safe for concurrent use. Every catalog
// setter checks existence and activity in the builder's namespace before it
// mutates anything; a rejected step returns *SelectionError and leaves the
// previous state intact.
type ConfigurationBuilder struct {
	catalog  interfaces.ICatalogRepository
	ns       entities.Namespace
	defaults entities.DimensionLimits
	draft    entities.ConfigurationDraft
}

func NewConfigurationBuilder(catalog interfaces.ICatalogRepository, ns entities.Namespace, defaults entities.DimensionLimits) *ConfigurationBuilder {
	return &ConfigurationBuilder{
		catalog:  catalog,
		ns:       ns,
		defaults: defaults,
		draft:    entities.ConfigurationDraft{Namespace: ns},
	}
}

// SelectStructureType sets the structure type. Previously set dimensions are
// re-checked against the new bounds and cleared when they no longer fit, in
// which case dimensionsCleared is true.
func (b *ConfigurationBuilder) SelectStructureType(ctx context.Context, id string) (dimensionsCleared bool, err error) {
	st, err := lookupActive[entities.StructureType](ctx, b.catalog, b.ns, entities.KindStructureType, id, FieldStructureType)
	if err != nil {
		return false, err
	}
	if b.draft.Dimensions != nil && len(st.Limits.Or(b.defaults).Check(*b.draft.Dimensions)) > 0 {
		b.draft.Dimensions = nil
		dimensionsCleared = true
	}
	b.draft.StructureType = &st
	return dimensionsCleared, nil
}

func (b *ConfigurationBuilder) SelectModel(ctx context.Context, id string) error {
	m, err := lookupActive[entities.Model](ctx, b.catalog, b.ns, entities.KindModel, id, FieldModel)
	if err != nil {
		return err
	}
	b.draft.Model = &m
	return nil
}

// SetDimensions accepts integer centimetres within the bounds of the selected
// structure type, or the business defaults when none is selected yet.
func (b *ConfigurationBuilder) SetDimensions(width, depth, height int) error {
	d := entities.Dimensions{Width: width, Depth: depth, Height: height}
	if v := b.limits().Check(d); len(v) > 0 {
		return &SelectionError{Field: v[0].Field, Reason: v[0].Reason}
	}
	b.draft.Dimensions = &d
	return nil
}

func (b *ConfigurationBuilder) SelectSurface(ctx context.Context, id string) error {
	s, err := lookupActive[entities.Surface](ctx, b.catalog, b.ns, entities.KindSurface, id, FieldSurface)
	if err != nil {
		return err
	}
	b.draft.Surface = &s
	return nil
}

func (b *ConfigurationBuilder) SelectCoverage(ctx context.Context, id string) error {
	c, err := lookupActive[entities.CoverageType](ctx, b.catalog, b.ns, entities.KindCoverage, id, FieldCoverage)
	if err != nil {
		return err
	}
	b.draft.Coverage = &c
	return nil
}

func (b *ConfigurationBuilder) SelectColor(ctx context.Context, id string) error {
	c, err := lookupActive[entities.Color](ctx, b.catalog, b.ns, entities.KindColor, id, FieldColor)
	if err != nil {
		return err
	}
	b.draft.Color = &c
	return nil
}

// ToggleAccessory adds the accessory, or removes it when already selected.
// Removal never touches the catalog.
func (b *ConfigurationBuilder) ToggleAccessory(ctx context.Context, id string) (selected bool, err error) {
	id = strings.TrimSpace(id)
	for i, a := range b.draft.Accessories {
		if a.ID == id {
			b.draft.Accessories = append(b.draft.Accessories[:i:i], b.draft.Accessories[i+1:]...)
			return false, nil
		}
	}
	a, err := lookupActive[entities.Accessory](ctx, b.catalog, b.ns, entities.KindAccessory, id, FieldAccessories)
	if err != nil {
		return false, err
	}
	b.draft.Accessories = append(b.draft.Accessories, a)
	return true, nil
}

func (b *ConfigurationBuilder) SelectPackage(ctx context.Context, id string) error {
	p, err := lookupActive[entities.Package](ctx, b.catalog, b.ns, entities.KindPackage, id, FieldPackage)
	if err != nil {
		return err
	}
	b.draft.Package = &p
	return nil
}

func (b *ConfigurationBuilder) ClearPackage() {
	b.draft.Package = nil
}

// SetCustomerDetails stores the contact step. Empty fields are accepted here
// (the submission validator reports them); a malformed email or an unknown
// contact preference is rejected immediately.
func (b *ConfigurationBuilder) SetCustomerDetails(c entities.CustomerDetails) error {
	c = c.Normalized()
	if c.Email != "" && !isEmail(c.Email) {
		return &SelectionError{Field: FieldCustomerEmail, Reason: "is not a valid email address"}
	}
	if c.ContactPreference != "" && !c.ContactPreference.Valid() {
		return &SelectionError{Field: FieldContactPreference, Reason: contactPreferenceReason}
	}
	b.draft.Customer = c
	return nil
}

// IsComplete reports whether every mandatory step holds a valid value.
func (b *ConfigurationBuilder) IsComplete() bool {
	d := b.draft
	if d.StructureType == nil || d.Model == nil || d.Dimensions == nil ||
		d.Surface == nil || d.Coverage == nil || d.Color == nil {
		return false
	}
	return len(checkCustomer(d.Customer)) == 0
}

// Snapshot returns a deep copy of the current state.
func (b *ConfigurationBuilder) Snapshot() entities.ConfigurationDraft {
	d := b.draft
	d.StructureType = clonePtr(d.StructureType)
	d.Model = clonePtr(d.Model)
	d.Dimensions = clonePtr(d.Dimensions)
	d.Surface = clonePtr(d.Surface)
	d.Coverage = clonePtr(d.Coverage)
	d.Color = clonePtr(d.Color)
	if d.Package != nil {
		p := *d.Package
		p.Contents = append([]string(nil), p.Contents...)
		d.Package = &p
	}
	d.Accessories = append([]entities.Accessory(nil), d.Accessories...)
	return d
}

func (b *ConfigurationBuilder) limits() entities.DimensionLimits {
	if b.draft.StructureType == nil {
		return b.defaults
	}
	return b.draft.StructureType.Limits.Or(b.defaults)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// lookupActive fetches one catalog row of the expected concrete type and
// turns a miss or an inactive row into a SelectionError on field.
func lookupActive[T entities.CatalogEntity](
	ctx context.Context,
	catalog interfaces.ICatalogRepository,
	ns entities.Namespace,
	kind entities.EntityKind,
	id, field string,
) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, &SelectionError{Field: field, Reason: "is required"}
	}

	e, err := catalog.GetByID(ctx, ns, kind, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return zero, &SelectionError{Field: field, Reason: fmt.Sprintf("%s %q does not exist", kind, id)}
	}
	if err != nil {
		return zero, storageError(err)
	}

	v, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("catalog returned %T for kind %s", e, kind)
	}
	if !v.IsActive() {
		return zero, &SelectionError{Field: field, Reason: fmt.Sprintf("%s %q is inactive", kind, id)}
	}
	return v, nil
}
