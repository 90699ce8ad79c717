package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// catalogRow scans any catalog table; columns a kind does not have stay zero.
type catalogRow struct {
	ID            string          `gorm:"column:id;primaryKey"`
	Name          string          `gorm:"column:name"`
	Description   string          `gorm:"column:description"`
	ImageURL      string          `gorm:"column:image_url"`
	Icon          string          `gorm:"column:icon"`
	HexValue      string          `gorm:"column:hex_value"`
	Category      string          `gorm:"column:category"`
	Contents      string          `gorm:"column:contents"`
	BasePrice     decimal.Decimal `gorm:"column:base_price;type:numeric(12,2)"`
	PriceModifier decimal.Decimal `gorm:"column:price_modifier;type:numeric(12,2)"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	WidthMin      int             `gorm:"column:width_min"`
	WidthMax      int             `gorm:"column:width_max"`
	DepthMin      int             `gorm:"column:depth_min"`
	DepthMax      int             `gorm:"column:depth_max"`
	HeightMin     int             `gorm:"column:height_min"`
	HeightMax     int             `gorm:"column:height_max"`
	Active        bool            `gorm:"column:active"`
	SortOrder     int             `gorm:"column:sort_order"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

// CatalogGormRepository stores each catalog kind in its own
// "<prefix><kind table>" table.
type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func catalogTable(ns entities.Namespace, kind entities.EntityKind) string {
	return ns.Table(kind.TableName())
}

func (r *CatalogGormRepository) ListActive(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.list(ctx, ns, kind, true)
}

func (r *CatalogGormRepository) ListAll(ctx context.Context, ns entities.Namespace, kind entities.EntityKind) ([]entities.CatalogEntity, error) {
	return r.list(ctx, ns, kind, false)
}

func (r *CatalogGormRepository) list(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, activeOnly bool) ([]entities.CatalogEntity, error) {
	q := r.db.WithContext(ctx).Table(catalogTable(ns, kind))
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rows []catalogRow
	if err := q.Order("sort_order ASC, name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]entities.CatalogEntity, 0, len(rows))
	for _, row := range rows {
		e, err := fromCatalogRow(kind, row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *CatalogGormRepository) GetByID(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (entities.CatalogEntity, error) {
	var row catalogRow
	err := r.db.WithContext(ctx).
		Table(catalogTable(ns, kind)).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return fromCatalogRow(kind, row)
}

func (r *CatalogGormRepository) Create(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	values, err := catalogValues(e)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Table(catalogTable(ns, e.Kind())).Create(values).Error; err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (r *CatalogGormRepository) Update(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error) {
	values, err := catalogValues(e)
	if err != nil {
		return nil, err
	}
	delete(values, "id")
	delete(values, "created_at")

	res := r.db.WithContext(ctx).
		Table(catalogTable(ns, e.Kind())).
		Where("id = ?", e.EntityID()).
		Updates(values)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, interfaces.ErrNotFound
	}
	return e, nil
}

// Delete relies on ON DELETE RESTRICT: a row still referenced by a
// configuration yields ErrConstraintViolation.
func (r *CatalogGormRepository) Delete(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) error {
	res := r.db.WithContext(ctx).
		Table(catalogTable(ns, kind)).
		Where("id = ?", id).
		Delete(&catalogRow{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// catalogValues lists exactly the columns of e's table.
func catalogValues(e entities.CatalogEntity) (map[string]any, error) {
	m := e.Meta()
	values := map[string]any{
		"id":         m.ID,
		"name":       m.Name,
		"active":     m.Active,
		"sort_order": m.SortOrder,
		"created_at": m.CreatedAt.UTC(),
		"updated_at": m.UpdatedAt.UTC(),
	}
	switch v := e.(type) {
	case entities.Model:
		values["description"] = v.Description
		values["image_url"] = v.ImageURL
		values["base_price"] = v.BasePrice.Decimal()
	case entities.StructureType:
		values["description"] = v.Description
		values["image_url"] = v.ImageURL
		values["width_min"], values["width_max"] = v.Limits.Width.Min, v.Limits.Width.Max
		values["depth_min"], values["depth_max"] = v.Limits.Depth.Min, v.Limits.Depth.Max
		values["height_min"], values["height_max"] = v.Limits.Height.Min, v.Limits.Height.Max
	case entities.CoverageType:
		values["description"] = v.Description
		values["image_url"] = v.ImageURL
		values["price_modifier"] = v.PriceModifier.Decimal()
	case entities.Color:
		values["hex_value"] = v.HexValue
		values["category"] = string(v.Category)
		values["price_modifier"] = v.PriceModifier.Decimal()
	case entities.Surface:
		values["image_url"] = v.ImageURL
		values["price_modifier"] = v.PriceModifier.Decimal()
	case entities.Accessory:
		values["icon"] = v.Icon
		values["image_url"] = v.ImageURL
		values["price_modifier"] = v.PriceModifier.Decimal()
	case entities.Package:
		contents := v.Contents
		if contents == nil {
			contents = []string{}
		}
		raw, err := json.Marshal(contents)
		if err != nil {
			return nil, err
		}
		values["contents"] = string(raw)
		values["price"] = v.Price.Decimal()
	default:
		return nil, fmt.Errorf("%w: %T", entities.ErrUnknownEntityKind, e)
	}
	return values, nil
}

func fromCatalogRow(kind entities.EntityKind, row catalogRow) (entities.CatalogEntity, error) {
	meta := entities.CatalogMeta{
		ID:        row.ID,
		Name:      row.Name,
		Active:    row.Active,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	money := func(d decimal.Decimal) (entities.Money, error) {
		v, err := entities.MoneyFromDecimal(d)
		if err != nil {
			return 0, fmt.Errorf("catalog %s/%s: %w", kind, row.ID, err)
		}
		return v, nil
	}

	switch kind {
	case entities.KindModel:
		price, err := money(row.BasePrice)
		if err != nil {
			return nil, err
		}
		return entities.Model{CatalogMeta: meta, Description: row.Description, BasePrice: price, ImageURL: row.ImageURL}, nil
	case entities.KindStructureType:
		return entities.StructureType{
			CatalogMeta: meta,
			Description: row.Description,
			ImageURL:    row.ImageURL,
			Limits: entities.DimensionLimits{
				Width:  entities.Range{Min: row.WidthMin, Max: row.WidthMax},
				Depth:  entities.Range{Min: row.DepthMin, Max: row.DepthMax},
				Height: entities.Range{Min: row.HeightMin, Max: row.HeightMax},
			},
		}, nil
	case entities.KindPackage:
		price, err := money(row.Price)
		if err != nil {
			return nil, err
		}
		var contents []string
		if row.Contents != "" {
			if err := json.Unmarshal([]byte(row.Contents), &contents); err != nil {
				return nil, fmt.Errorf("catalog %s/%s contents: %w", kind, row.ID, err)
			}
		}
		return entities.Package{CatalogMeta: meta, Contents: contents, Price: price}, nil
	}

	modifier, err := money(row.PriceModifier)
	if err != nil {
		return nil, err
	}
	switch kind {
	case entities.KindCoverage:
		return entities.CoverageType{CatalogMeta: meta, Description: row.Description, ImageURL: row.ImageURL, PriceModifier: modifier}, nil
	case entities.KindColor:
		return entities.Color{CatalogMeta: meta, HexValue: row.HexValue, Category: entities.ColorCategory(row.Category), PriceModifier: modifier}, nil
	case entities.KindSurface:
		return entities.Surface{CatalogMeta: meta, ImageURL: row.ImageURL, PriceModifier: modifier}, nil
	case entities.KindAccessory:
		return entities.Accessory{CatalogMeta: meta, Icon: row.Icon, ImageURL: row.ImageURL, PriceModifier: modifier}, nil
	}
	return nil, fmt.Errorf("%w: %q", entities.ErrUnknownEntityKind, kind)
}
