package interfaces

import (
	"context"

	"carport_configurator/internal/domain/entities"
)

// ICatalogRepository abstracts persistence of catalog rows of one namespace.
//
// GetByID returns inactive rows too; callers decide whether inactivity matters.
// A miss is reported as ErrNotFound.

type ICatalogRepository interface {
	ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error)
	ListAll(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error)
	GetByID(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error)
	Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
	Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
	Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error
}
