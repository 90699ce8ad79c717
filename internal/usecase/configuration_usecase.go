package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/domain/pricing"
	"carport_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SubmissionRequest is the full wizard state as posted by the client. Only
// ids travel; every referenced row is resolved again on the server.
type SubmissionRequest struct {
	Selection  entities.Selection
	Dimensions *entities.Dimensions
	Customer   entities.CustomerDetails
	// ClientTotal is advisory. It is compared with the server price and logged, never stored.
	ClientTotal    *entities.Money
	IdempotencyKey string
}

// QuoteResult is the preview of a wizard state.
type QuoteResult struct {
	Complete          bool
	DimensionsCleared bool
	Violations        []entities.FieldViolation
	Breakdown         entities.PriceBreakdown
}

// IConfigurationUseCase exposes the wizard and back-office operations on configurations.
type IConfigurationUseCase interface {
	Quote(ctx context.Context, ns entities.Namespace, req SubmissionRequest) (QuoteResult, error)
	Submit(ctx context.Context, ns entities.Namespace, req SubmissionRequest) (entities.Configuration, error)
	GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error)
	List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error)
	Delete(ctx context.Context, ns entities.Namespace, id string) error
	UpdateStatus(ctx context.Context, ns entities.Namespace, id string, status entities.ConfigurationStatus) (entities.Configuration, error)
}

type ConfigurationUseCaseOptions struct {
	Defaults       entities.DimensionLimits
	StorageTimeout time.Duration
	Now            func() time.Time
}

type ConfigurationUseCase struct {
	catalog   interfaces.ICatalogRepository
	configs   interfaces.IConfigurationRepository
	notifier  interfaces.INotificationDispatcher
	validator ISubmissionValidator
	defaults  entities.DimensionLimits
	timeout   time.Duration
	now       func() time.Time
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(
	catalog interfaces.ICatalogRepository,
	configs interfaces.IConfigurationRepository,
	notifier interfaces.INotificationDispatcher,
	opts ConfigurationUseCaseOptions,
) *ConfigurationUseCase {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ConfigurationUseCase{
		catalog:   catalog,
		configs:   configs,
		notifier:  notifier,
		validator: NewSubmissionValidator(catalog, opts.Defaults),
		defaults:  opts.Defaults,
		timeout:   opts.StorageTimeout,
		now:       now,
	}
}

func (u *ConfigurationUseCase) Quote(ctx context.Context, ns entities.Namespace, req SubmissionRequest) (QuoteResult, error) {
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	b, violations, cleared, err := u.replay(ctx, ns, req)
	if err != nil {
		return QuoteResult{}, err
	}
	entities.SortViolations(violations)
	return QuoteResult{
		Complete:          b.IsComplete(),
		DimensionsCleared: cleared,
		Violations:        violations,
		Breakdown:         pricing.Breakdown(b.Snapshot()),
	}, nil
}

func (u *ConfigurationUseCase) Submit(ctx context.Context, ns entities.Namespace, req SubmissionRequest) (entities.Configuration, error) {
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	b, stepViolations, _, err := u.replay(ctx, ns, req)
	if err != nil {
		return entities.Configuration{}, err
	}

	draft := b.Snapshot()
	draft.Customer = req.Customer.Normalized()
	draft.SubmissionKey = strings.TrimSpace(req.IdempotencyKey)

	validated, err := u.validator.Validate(ctx, draft)
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return entities.Configuration{}, mergeViolations(stepViolations, ve.Violations)
	case err != nil:
		return entities.Configuration{}, err
	case len(stepViolations) > 0:
		return entities.Configuration{}, newValidationError(stepViolations)
	}

	created, saved, replayed, err := u.create(ctx, ns, draft, validated)
	if err != nil {
		return entities.Configuration{}, err
	}
	if replayed {
		zap.L().Info("[configuration][usecase] duplicate submission returned existing configuration",
			zap.String("product_line", ns.String()),
			zap.String("configuration_id", created.ID),
		)
		return created, nil
	}

	if req.ClientTotal != nil && *req.ClientTotal != saved.TotalPrice {
		zap.L().Warn("[configuration][usecase] client total differs from server price",
			zap.String("product_line", ns.String()),
			zap.String("configuration_id", created.ID),
			zap.String("client_total", req.ClientTotal.String()),
			zap.String("server_total", saved.TotalPrice.String()),
		)
	}

	zap.L().Info("[configuration][usecase] configuration submitted",
		zap.String("product_line", ns.String()),
		zap.String("configuration_id", created.ID),
		zap.String("total_price", created.TotalPrice.String()),
	)

	if u.notifier != nil {
		summary := created.Summary(saved.Breakdown)
		if err := u.notifier.Dispatch(context.WithoutCancel(ctx), summary); err != nil {
			zap.L().Error("[configuration][usecase] notification dispatch failed",
				zap.String("configuration_id", created.ID),
				zap.Error(err),
			)
		}
	}
	return created, nil
}

// create persists validated once. A storage-level constraint rejection means
// the catalog changed between validation and write: the draft is validated
// again and, if it still passes, written one more time. saved is the
// validation result that was actually written.
func (u *ConfigurationUseCase) create(
	ctx context.Context,
	ns entities.Namespace,
	draft entities.ConfigurationDraft,
	validated entities.ValidatedConfiguration,
) (created entities.Configuration, saved entities.ValidatedConfiguration, replayed bool, err error) {
	id := entities.NewConfigurationID(ns.Line(), validated.SubmissionKey)

	for attempt := 0; attempt < 2; attempt++ {
		c := entities.NewConfiguration(validated, id, u.now())
		created, err = u.configs.Create(ctx, ns, c)
		switch {
		case err == nil:
			return created, validated, false, nil
		case errors.Is(err, interfaces.ErrConflict) && validated.SubmissionKey != "":
			existing, gerr := u.configs.GetByID(ctx, ns, id)
			if gerr != nil {
				return entities.Configuration{}, entities.ValidatedConfiguration{}, false, storageError(gerr)
			}
			return existing, validated, true, nil
		case errors.Is(err, interfaces.ErrConflict):
			return entities.Configuration{}, entities.ValidatedConfiguration{}, false, fmt.Errorf("configuration id %s already taken: %w", id, err)
		case !errors.Is(err, interfaces.ErrConstraintViolation):
			return entities.Configuration{}, entities.ValidatedConfiguration{}, false, storageError(err)
		}

		if attempt > 0 {
			break
		}
		zap.L().Warn("[configuration][usecase] storage rejected configuration, validating again",
			zap.String("product_line", ns.String()),
			zap.Error(err),
		)
		validated, err = u.validator.Validate(ctx, draft)
		if err != nil {
			return entities.Configuration{}, entities.ValidatedConfiguration{}, false, err
		}
	}
	return entities.Configuration{}, entities.ValidatedConfiguration{}, false, ErrSelectionUnavailable
}

// replay runs the wizard steps of req in order through a fresh builder and
// collects every rejected step.
func (u *ConfigurationUseCase) replay(ctx context.Context, ns entities.Namespace, req SubmissionRequest) (*ConfigurationBuilder, []entities.FieldViolation, bool, error) {
	b := NewConfigurationBuilder(u.catalog, ns, u.defaults)
	var violations []entities.FieldViolation
	step := func(err error) error {
		var se *SelectionError
		if errors.As(err, &se) {
			violations = append(violations, se.Violation())
			return nil
		}
		return err
	}

	sel := req.Selection
	var cleared bool
	if sel.StructureTypeID != "" {
		c, err := b.SelectStructureType(ctx, sel.StructureTypeID)
		if err = step(err); err != nil {
			return nil, nil, false, err
		}
		cleared = c
	}
	if sel.ModelID != "" {
		if err := step(b.SelectModel(ctx, sel.ModelID)); err != nil {
			return nil, nil, false, err
		}
	}
	if d := req.Dimensions; d != nil {
		if err := step(b.SetDimensions(d.Width, d.Depth, d.Height)); err != nil {
			return nil, nil, false, err
		}
	}
	for _, s := range []struct {
		id  string
		set func(context.Context, string) error
	}{
		{sel.SurfaceID, b.SelectSurface},
		{sel.CoverageID, b.SelectCoverage},
		{sel.ColorID, b.SelectColor},
	} {
		if s.id == "" {
			continue
		}
		if err := step(s.set(ctx, s.id)); err != nil {
			return nil, nil, false, err
		}
	}
	seen := make(map[string]bool, len(sel.AccessoryIDs))
	for _, id := range sel.AccessoryIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		_, err := b.ToggleAccessory(ctx, id)
		if err = step(err); err != nil {
			return nil, nil, false, err
		}
	}
	if sel.PackageID != "" {
		if err := step(b.SelectPackage(ctx, sel.PackageID)); err != nil {
			return nil, nil, false, err
		}
	}
	if err := step(b.SetCustomerDetails(req.Customer)); err != nil {
		return nil, nil, false, err
	}
	return b, violations, cleared, nil
}

func (u *ConfigurationUseCase) GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Configuration{}, ErrInvalidConfigurationID
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	c, err := u.configs.GetByID(ctx, ns, id)
	if err != nil {
		return entities.Configuration{}, configurationError(err)
	}
	return c, nil
}

func (u *ConfigurationUseCase) List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, filters.Status)
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.configs.List(ctx, ns, filters)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}

func (u *ConfigurationUseCase) Delete(ctx context.Context, ns entities.Namespace, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidConfigurationID
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.configs.Delete(ctx, ns, id); err != nil {
		return configurationError(err)
	}
	zap.L().Info("[configuration][usecase] configuration deleted",
		zap.String("product_line", ns.String()),
		zap.String("configuration_id", id),
	)
	return nil
}

// UpdateStatus moves a configuration along its lifecycle. The write only
// succeeds if nobody changed the status since it was read.
func (u *ConfigurationUseCase) UpdateStatus(ctx context.Context, ns entities.Namespace, id string, status entities.ConfigurationStatus) (entities.Configuration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Configuration{}, ErrInvalidConfigurationID
	}
	if !status.Valid() {
		return entities.Configuration{}, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, status)
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.configs.GetByID(ctx, ns, id)
	if err != nil {
		return entities.Configuration{}, configurationError(err)
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Configuration{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	updated, err := u.configs.UpdateStatus(ctx, ns, id, current.Status, status, u.now().UTC())
	switch {
	case errors.Is(err, interfaces.ErrConflict):
		return entities.Configuration{}, ErrStatusChanged
	case err != nil:
		return entities.Configuration{}, configurationError(err)
	}
	zap.L().Info("[configuration][usecase] status updated",
		zap.String("product_line", ns.String()),
		zap.String("configuration_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)
	return updated, nil
}

func configurationError(err error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrConfigurationNotFound
	}
	return storageError(err)
}

// mergeViolations keeps every step violation and adds the validator's
// findings for fields whose step did not already fail.
func mergeViolations(steps, validated []entities.FieldViolation) *ValidationError {
	failed := make(map[string]bool, len(steps))
	for _, v := range steps {
		failed[rootField(v.Field)] = true
	}
	out := append([]entities.FieldViolation(nil), steps...)
	for _, v := range validated {
		if !failed[rootField(v.Field)] {
			out = append(out, v)
		}
	}
	return newValidationError(out)
}

func rootField(f string) string {
	if i := strings.IndexByte(f, '.'); i >= 0 {
		return f[:i]
	}
	return f
}

func withStorageTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
