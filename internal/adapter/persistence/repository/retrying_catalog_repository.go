package repository

import (
	"context"
	"errors"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// RetryingCatalogRepository retries catalog reads once after a backoff when
// the underlying store reports ErrStorageUnavailable. Writes are passed
// through untouched.
type RetryingCatalogRepository struct {
	next    interfaces.ICatalogRepository
	backoff time.Duration
}

var _ interfaces.ICatalogRepository = (*RetryingCatalogRepository)(nil)

func NewRetryingCatalogRepository(next interfaces.ICatalogRepository, backoff time.Duration) *RetryingCatalogRepository {
	return &RetryingCatalogRepository{next: next, backoff: backoff}
}

func (r *RetryingCatalogRepository) ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return retryRead(ctx, r.backoff, "list_active", func() ([]entities.CatalogEntity, error) {
		return r.next.ListActive(ctx, ns, kind)
	})
}

func (r *RetryingCatalogRepository) ListAll(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return retryRead(ctx, r.backoff, "list_all", func() ([]entities.CatalogEntity, error) {
		return r.next.ListAll(ctx, ns, kind)
	})
}

func (r *RetryingCatalogRepository) GetByID(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error) {
	return retryRead(ctx, r.backoff, "get", func() (entities.CatalogEntity, error) {
		return r.next.GetByID(ctx, ns, kind, id)
	})
}

func (r *RetryingCatalogRepository) Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	return r.next.Create(ctx, ns, e)
}

func (r *RetryingCatalogRepository) Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	return r.next.Update(ctx, ns, e)
}

func (r *RetryingCatalogRepository) Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error {
	return r.next.Delete(ctx, ns, kind, id)
}

func retryRead[T any](ctx context.Context, backoff time.Duration, op string, read func() (T, error)) (T, error) {
	v, err := read()
	if !errors.Is(err, interfaces.ErrStorageUnavailable) {
		return v, err
	}
	zap.L().Warn("[catalog][repository] read failed, retrying once",
		zap.String("op", op),
		zap.Duration("backoff", backoff),
		zap.Error(err),
	)

	timer := time.NewTimer(backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return v, err
	case <-timer.C:
	}
	return read()
}
