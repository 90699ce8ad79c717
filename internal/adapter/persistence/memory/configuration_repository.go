package memory

import (
	"context"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"
)

type ConfigurationRepository struct {
	store *Store
}

var _ interfaces.IConfigurationRepository = (*ConfigurationRepository)(nil)

// Create inserts c after checking, under the store lock, that every referenced
// catalog row exists and is active in ns.
func (r *ConfigurationRepository) Create(ctx context.Context, ns entities.Namespace, c entities.Configuration) (entities.Configuration, error) {
	if err := checkContext(ctx, ns); err != nil {
		return entities.Configuration{}, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp := r.store.space(ns)
	if _, exists := sp.configs[c.ID]; exists {
		return entities.Configuration{}, interfaces.ErrConflict
	}
	if !c.Status.Valid() || !c.Customer.ContactPreference.Valid() || c.ProductLine != ns.Line() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}
	for _, ref := range c.References() {
		e, ok := sp.catalog[ref.Kind][ref.ID]
		if !ok || !e.IsActive() {
			return entities.Configuration{}, interfaces.ErrConstraintViolation
		}
	}

	stored := c.Clone()
	sp.configs[c.ID] = stored
	sp.byCreated.ReplaceOrInsert(createdKey{createdAt: stored.CreatedAt, id: stored.ID})
	return stored.Clone(), nil
}

func (r *ConfigurationRepository) GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error) {
	if err := checkContext(ctx, ns); err != nil {
		return entities.Configuration{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.view(ns).configs[id]
	if !ok {
		return entities.Configuration{}, interfaces.ErrNotFound
	}
	return c.Clone(), nil
}

func (r *ConfigurationRepository) List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error) {
	if err := checkContext(ctx, ns); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sp := r.store.view(ns)
	limit := filters.EffectiveLimit()
	out := make([]entities.Configuration, 0)
	sp.byCreated.Ascend(func(k createdKey) bool {
		c := sp.configs[k.id]
		if filters.Matches(c) {
			out = append(out, c.Clone())
		}
		return len(out) < limit
	})
	return out, nil
}

func (r *ConfigurationRepository) Delete(ctx context.Context, ns entities.Namespace, id string) error {
	if err := checkContext(ctx, ns); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp := r.store.space(ns)
	c, ok := sp.configs[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	delete(sp.configs, id)
	sp.byCreated.Delete(createdKey{createdAt: c.CreatedAt, id: id})
	return nil
}

func (r *ConfigurationRepository) UpdateStatus(
	ctx context.Context,
	ns entities.Namespace,
	id string,
	from, to entities.ConfigurationStatus,
	at time.Time,
) (entities.Configuration, error) {
	if err := checkContext(ctx, ns); err != nil {
		return entities.Configuration{}, err
	}
	if !to.Valid() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp := r.store.space(ns)
	c, ok := sp.configs[id]
	if !ok {
		return entities.Configuration{}, interfaces.ErrNotFound
	}
	if c.Status != from {
		return entities.Configuration{}, interfaces.ErrConflict
	}
	at = at.UTC()
	c.Status = to
	c.StatusUpdatedAt = &at
	sp.configs[id] = c
	return c.Clone(), nil
}

func (r *ConfigurationRepository) CountReferences(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (int, error) {
	if err := checkContext(ctx, ns); err != nil {
		return 0, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return countReferences(r.store.view(ns), kind, id), nil
}

func countReferences(sp *space, kind entities.EntityKind, id string) int {
	n := 0
	for _, c := range sp.configs {
		for _, ref := range c.References() {
			if ref.Kind == kind && ref.ID == id {
				n++
				break
			}
		}
	}
	return n
}
