package memory

import (
	"context"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"
)

type CatalogRepository struct {
	store *Store
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.list(ctx, ns, kind, true)
}

func (r *CatalogRepository) ListAll(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.list(ctx, ns, kind, false)
}

func (r *CatalogRepository) list(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, activeOnly bool) ([]entities.CatalogEntity, error) {
	if err := checkContext(ctx, ns); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := r.store.view(ns).catalog[kind]
	out := make([]entities.CatalogEntity, 0, len(rows))
	for _, e := range rows {
		if activeOnly && !e.IsActive() {
			continue
		}
		out = append(out, clone(e))
	}
	entities.SortCatalog(out)
	return out, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error) {
	if err := checkContext(ctx, ns); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.view(ns).catalog[kind][id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return clone(e), nil
}

func (r *CatalogRepository) Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if err := checkContext(ctx, ns); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp := r.store.space(ns)
	rows, ok := sp.catalog[e.Kind()]
	if !ok {
		rows = make(map[string]entities.CatalogEntity)
		sp.catalog[e.Kind()] = rows
	}
	if _, exists := rows[e.EntityID()]; exists {
		return nil, interfaces.ErrConflict
	}
	rows[e.EntityID()] = clone(e)
	return clone(e), nil
}

func (r *CatalogRepository) Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if err := checkContext(ctx, ns); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.space(ns).catalog[e.Kind()]
	if _, exists := rows[e.EntityID()]; !exists {
		return nil, interfaces.ErrNotFound
	}
	rows[e.EntityID()] = clone(e)
	return clone(e), nil
}

// Delete refuses rows that a stored configuration still points at, like a
// RESTRICT foreign key would.
func (r *CatalogRepository) Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error {
	if err := checkContext(ctx, ns); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp := r.store.space(ns)
	if _, exists := sp.catalog[kind][id]; !exists {
		return interfaces.ErrNotFound
	}
	if countReferences(sp, kind, id) > 0 {
		return interfaces.ErrConstraintViolation
	}
	delete(sp.catalog[kind], id)
	return nil
}

func clone(e entities.CatalogEntity) entities.CatalogEntity {
	return entities.WithMeta(e, e.Meta())
}
