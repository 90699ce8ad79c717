package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/domain/pricing"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

const maxNotesLength = 2000

var contactPreferenceReason = fmt.Sprintf("must be one of %v", entities.ContactPreferences())

var validate = validator.New()

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// ISubmissionValidator is the final gate before a draft is persisted.
type ISubmissionValidator interface {
	Validate(ctx context.Context, draft entities.ConfigurationDraft) (entities.ValidatedConfiguration, error)
}

// SubmissionValidator re-checks a draft against fresh catalog rows.
//
// Every check runs; the result is either a *ValidationError listing all
// violations sorted by field, or a ValidatedConfiguration priced from the rows
// fetched during this call with status pending. Storage failures abort the
// validation and are returned as ErrStorageUnavailable.
type SubmissionValidator struct {
	catalog  interfaces.ICatalogRepository
	defaults entities.DimensionLimits
}

var _ ISubmissionValidator = (*SubmissionValidator)(nil)

func NewSubmissionValidator(catalog interfaces.ICatalogRepository, defaults entities.DimensionLimits) *SubmissionValidator {
	return &SubmissionValidator{catalog: catalog, defaults: defaults}
}

func (v *SubmissionValidator) Validate(ctx context.Context, draft entities.ConfigurationDraft) (entities.ValidatedConfiguration, error) {
	ns := draft.Namespace
	if ns.IsZero() {
		return entities.ValidatedConfiguration{}, entities.ErrUnknownProductLine
	}

	sel := draft.Selection()
	fresh := entities.ConfigurationDraft{Namespace: ns, Customer: draft.Customer.Normalized(), SubmissionKey: draft.SubmissionKey}
	var violations []entities.FieldViolation

	collect := func(err error) error {
		var se *SelectionError
		if errors.As(err, &se) {
			violations = append(violations, se.Violation())
			return nil
		}
		return err
	}

	st, err := lookupActive[entities.StructureType](ctx, v.catalog, ns, entities.KindStructureType, sel.StructureTypeID, FieldStructureType)
	if err == nil {
		fresh.StructureType = &st
	} else if err = collect(err); err != nil {
		return entities.ValidatedConfiguration{}, err
	}

	m, err := lookupActive[entities.Model](ctx, v.catalog, ns, entities.KindModel, sel.ModelID, FieldModel)
	if err == nil {
		fresh.Model = &m
	} else if err = collect(err); err != nil {
		return entities.ValidatedConfiguration{}, err
	}

	s, err := lookupActive[entities.Surface](ctx, v.catalog, ns, entities.KindSurface, sel.SurfaceID, FieldSurface)
	if err == nil {
		fresh.Surface = &s
	} else if err = collect(err); err != nil {
		return entities.ValidatedConfiguration{}, err
	}

	cov, err := lookupActive[entities.CoverageType](ctx, v.catalog, ns, entities.KindCoverage, sel.CoverageID, FieldCoverage)
	if err == nil {
		fresh.Coverage = &cov
	} else if err = collect(err); err != nil {
		return entities.ValidatedConfiguration{}, err
	}

	col, err := lookupActive[entities.Color](ctx, v.catalog, ns, entities.KindColor, sel.ColorID, FieldColor)
	if err == nil {
		fresh.Color = &col
	} else if err = collect(err); err != nil {
		return entities.ValidatedConfiguration{}, err
	}

	seen := make(map[string]bool, len(sel.AccessoryIDs))
	for _, id := range sel.AccessoryIDs {
		if seen[id] {
			violations = append(violations, entities.FieldViolation{Field: FieldAccessories, Reason: fmt.Sprintf("accessory %q selected twice", id)})
			continue
		}
		seen[id] = true
		a, err := lookupActive[entities.Accessory](ctx, v.catalog, ns, entities.KindAccessory, id, FieldAccessories)
		if err == nil {
			fresh.Accessories = append(fresh.Accessories, a)
		} else if err = collect(err); err != nil {
			return entities.ValidatedConfiguration{}, err
		}
	}

	if sel.PackageID != "" {
		p, err := lookupActive[entities.Package](ctx, v.catalog, ns, entities.KindPackage, sel.PackageID, FieldPackage)
		if err == nil {
			fresh.Package = &p
		} else if err = collect(err); err != nil {
			return entities.ValidatedConfiguration{}, err
		}
	}

	if draft.Dimensions == nil {
		violations = append(violations, entities.FieldViolation{Field: FieldDimensions, Reason: "is required"})
	} else {
		limits := v.defaults
		if fresh.StructureType != nil {
			limits = fresh.StructureType.Limits.Or(v.defaults)
		}
		d := *draft.Dimensions
		violations = append(violations, limits.Check(d)...)
		fresh.Dimensions = &d
	}

	violations = append(violations, checkCustomer(fresh.Customer)...)

	if len(violations) > 0 {
		return entities.ValidatedConfiguration{}, newValidationError(violations)
	}

	breakdown := pricing.Breakdown(fresh)
	if breakdown.Total < 0 {
		return entities.ValidatedConfiguration{}, newValidationError([]entities.FieldViolation{
			{Field: FieldTotalPrice, Reason: "must not be negative"},
		})
	}
	return entities.ValidatedConfiguration{
		Namespace:     ns,
		Selection:     fresh.Selection(),
		Dimensions:    *fresh.Dimensions,
		Customer:      fresh.Customer,
		TotalPrice:    breakdown.Total,
		Status:        entities.StatusPending,
		SubmissionKey: fresh.SubmissionKey,
		Breakdown:     breakdown,
	}, nil
}

func checkCustomer(c entities.CustomerDetails) []entities.FieldViolation {
	var out []entities.FieldViolation
	required := []struct {
		field, value string
	}{
		{FieldCustomerName, c.Name},
		{FieldCustomerEmail, c.Email},
		{FieldCustomerPhone, c.Phone},
		{FieldCustomerAddress, c.Address},
		{FieldCustomerCity, c.City},
		{FieldCustomerPostal, c.PostalCode},
		{FieldContactPreference, string(c.ContactPreference)},
	}
	for _, r := range required {
		if r.value == "" {
			out = append(out, entities.FieldViolation{Field: r.field, Reason: "is required"})
		}
	}
	if c.Email != "" && !isEmail(c.Email) {
		out = append(out, entities.FieldViolation{Field: FieldCustomerEmail, Reason: "is not a valid email address"})
	}
	if c.ContactPreference != "" && !c.ContactPreference.Valid() {
		out = append(out, entities.FieldViolation{Field: FieldContactPreference, Reason: contactPreferenceReason})
	}
	if utf8.RuneCountInString(c.Notes) > maxNotesLength {
		out = append(out, entities.FieldViolation{Field: FieldNotes, Reason: fmt.Sprintf("must be at most %d characters", maxNotesLength)})
	}
	return out
}
