package interfaces

import "errors"

// Storage-level failures shared by every repository implementation.
var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a create collides with an existing id, or a
	// compare-and-set update finds the row in an unexpected state.
	ErrConflict = errors.New("record conflict")
	// ErrConstraintViolation is returned when storage rejects a write on a
	// foreign key, enum or active-row rule.
	ErrConstraintViolation = errors.New("storage constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
