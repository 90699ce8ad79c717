package usecase

import (
	"errors"
	"fmt"
	"strings"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"
)

var (
	ErrInvalidSelection        = errors.New("invalid selection")
	ErrValidationFailed        = errors.New("validation failed")
	ErrSelectionUnavailable    = errors.New("selection no longer available")
	ErrConfigurationNotFound   = errors.New("configuration not found")
	ErrInvalidConfigurationID  = errors.New("invalid configuration id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrStatusChanged           = errors.New("configuration status changed concurrently")
	ErrCatalogEntryNotFound    = errors.New("catalog entry not found")
	ErrCatalogEntryExists      = errors.New("catalog entry already exists")
	ErrCatalogEntryInUse       = errors.New("catalog entry referenced by configurations")
)

// SelectionError rejects a single wizard step. The builder state is unchanged.
type SelectionError struct {
	Field  string
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s %s", e.Field, e.Reason)
}

func (e *SelectionError) Is(target error) bool { return target == ErrInvalidSelection }

// Violation returns the error as a field violation.
func (e *SelectionError) Violation() entities.FieldViolation {
	return entities.FieldViolation{Field: e.Field, Reason: e.Reason}
}

// ValidationError lists every field-level problem found at submission.
type ValidationError struct {
	Violations []entities.FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// Fields returns the offending field names in order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

func newValidationError(v []entities.FieldViolation) *ValidationError {
	entities.SortViolations(v)
	return &ValidationError{Violations: v}
}

// storageError folds any non-domain repository failure into ErrStorageUnavailable
// so callers can show "try again" without inspecting driver errors.
func storageError(err error) error {
	if err == nil || errors.Is(err, interfaces.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", interfaces.ErrStorageUnavailable, err)
}
