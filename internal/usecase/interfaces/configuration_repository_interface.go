package interfaces

import (
	"context"
	"time"

	"carport_configurator/internal/domain/entities"
)

// IConfigurationRepository abstracts persistence of submitted configurations.
//
// Create is atomic per row and re-checks at write time that every referenced
// catalog row exists and is active in the same namespace (ErrConstraintViolation
// otherwise). A duplicate id yields ErrConflict.
//
// UpdateStatus is a compare-and-set: it only writes when the stored status is
// still from, and returns ErrConflict when it is not.

type IConfigurationRepository interface {
	Create(ctx context.Context, ns entities.Namespace, c entities.Configuration) (entities.Configuration, error)
	GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error)
	List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error)
	Delete(ctx context.Context, ns entities.Namespace, id string) error
	UpdateStatus(ctx context.Context, ns entities.Namespace, id string, from, to entities.ConfigurationStatus, at time.Time) (entities.Configuration, error)
	CountReferences(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (int, error)
}
