package postgres

import (
	"errors"
	"fmt"

	"carport_configurator/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// translate maps gorm errors (with TranslateError enabled) onto the storage
// sentinels shared by every repository.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return interfaces.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return interfaces.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", interfaces.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", interfaces.ErrStorageUnavailable, err)
	}
}
