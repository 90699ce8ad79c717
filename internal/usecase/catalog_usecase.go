package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ICatalogUseCase exposes catalog reads for the wizard and CRUD for the back-office.
type ICatalogUseCase interface {
	ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error)
	List(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error)
	Get(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error)
	Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
	Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
	Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error
	Upsert(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
}

type CatalogUseCase struct {
	repo    interfaces.ICatalogRepository
	configs interfaces.IConfigurationRepository
	timeout time.Duration
	now     func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, configs interfaces.IConfigurationRepository, timeout time.Duration) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, configs: configs, timeout: timeout, now: time.Now}
}

func (u *CatalogUseCase) ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.repo.ListActive(ctx, ns, kind)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}

func (u *CatalogUseCase) List(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.repo.ListAll(ctx, ns, kind)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}

func (u *CatalogUseCase) Get(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error) {
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	e, err := u.repo.GetByID(ctx, ns, kind, strings.TrimSpace(id))
	if err != nil {
		return nil, catalogError(err)
	}
	return e, nil
}

func (u *CatalogUseCase) Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if err := checkCatalogEntry(e); err != nil {
		return nil, err
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	meta := e.Meta()
	meta.ID = strings.TrimSpace(meta.ID)
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	meta.Name = strings.TrimSpace(meta.Name)
	now := u.now().UTC()
	meta.CreatedAt, meta.UpdatedAt = now, now

	created, err := u.repo.Create(ctx, ns, entities.WithMeta(e, meta))
	if err != nil {
		return nil, catalogError(err)
	}
	zap.L().Info("[catalog][usecase] entry created",
		zap.String("product_line", ns.String()),
		zap.String("kind", string(created.Kind())),
		zap.String("id", created.EntityID()),
	)
	return created, nil
}

func (u *CatalogUseCase) Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	meta := e.Meta()
	meta.ID = strings.TrimSpace(meta.ID)
	if meta.ID == "" {
		return nil, ErrCatalogEntryNotFound
	}
	if err := checkCatalogEntry(e); err != nil {
		return nil, err
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.GetByID(ctx, ns, e.Kind(), meta.ID)
	if err != nil {
		return nil, catalogError(err)
	}
	meta.Name = strings.TrimSpace(meta.Name)
	meta.CreatedAt = current.Meta().CreatedAt
	meta.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, ns, entities.WithMeta(e, meta))
	if err != nil {
		return nil, catalogError(err)
	}
	zap.L().Info("[catalog][usecase] entry updated",
		zap.String("product_line", ns.String()),
		zap.String("kind", string(updated.Kind())),
		zap.String("id", updated.EntityID()),
		zap.Bool("active", updated.IsActive()),
	)
	return updated, nil
}

// Delete removes a catalog row that no configuration references. Referenced
// rows are reported as ErrCatalogEntryInUse; operators deactivate them instead.
func (u *CatalogUseCase) Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCatalogEntryNotFound
	}
	ctx, cancel := withStorageTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetByID(ctx, ns, kind, id); err != nil {
		return catalogError(err)
	}
	refs, err := u.configs.CountReferences(ctx, ns, kind, id)
	if err != nil {
		return storageError(err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d configurations", ErrCatalogEntryInUse, refs)
	}
	if err := u.repo.Delete(ctx, ns, kind, id); err != nil {
		return catalogError(err)
	}
	zap.L().Info("[catalog][usecase] entry deleted",
		zap.String("product_line", ns.String()),
		zap.String("kind", string(kind)),
		zap.String("id", id),
	)
	return nil
}

// Upsert creates the entry or overwrites the existing one with the same id.
func (u *CatalogUseCase) Upsert(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	if strings.TrimSpace(e.EntityID()) == "" {
		return u.Create(ctx, ns, e)
	}
	_, err := u.Get(ctx, ns, e.Kind(), e.EntityID())
	switch {
	case errors.Is(err, ErrCatalogEntryNotFound):
		return u.Create(ctx, ns, e)
	case err != nil:
		return nil, err
	}
	return u.Update(ctx, ns, e)
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return ErrCatalogEntryNotFound
	case errors.Is(err, interfaces.ErrConflict):
		return ErrCatalogEntryExists
	case errors.Is(err, interfaces.ErrConstraintViolation):
		return ErrCatalogEntryInUse
	}
	return storageError(err)
}

// checkCatalogEntry applies the required-field rules of each kind.
func checkCatalogEntry(e entities.CatalogEntity) error {
	var out []entities.FieldViolation
	add := func(field, reason string) {
		out = append(out, entities.FieldViolation{Field: field, Reason: reason})
	}

	if strings.TrimSpace(e.Meta().Name) == "" {
		add("name", "is required")
	}

	switch v := e.(type) {
	case entities.Model:
		if v.BasePrice < 0 {
			add("base_price", "must not be negative")
		}
	case entities.StructureType:
		out = append(out, v.Limits.Validate()...)
	case entities.Color:
		if validate.Var(v.HexValue, "required,len=7,hexcolor") != nil {
			add("hex_value", "must be #RRGGBB")
		}
		if !v.Category.Valid() {
			add("category", "must be one of [standard premium ral]")
		}
	case entities.Package:
		if v.Price < 0 {
			add("price", "must not be negative")
		}
		contents := 0
		for _, line := range v.Contents {
			if strings.TrimSpace(line) != "" {
				contents++
			}
		}
		if contents == 0 {
			add("contents", "must list at least one item")
		}
	}

	if len(out) > 0 {
		return newValidationError(out)
	}
	return nil
}
