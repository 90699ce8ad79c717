package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type configurationRow struct {
	ID                 string          `gorm:"column:id;primaryKey"`
	ProductLine        string          `gorm:"column:product_line"`
	StructureTypeID    string          `gorm:"column:structure_type_id"`
	ModelID            string          `gorm:"column:model_id"`
	SurfaceID          string          `gorm:"column:surface_id"`
	CoverageID         string          `gorm:"column:coverage_id"`
	ColorID            string          `gorm:"column:color_id"`
	PackageID          *string         `gorm:"column:package_id"`
	Width              int             `gorm:"column:width"`
	Depth              int             `gorm:"column:depth"`
	Height             int             `gorm:"column:height"`
	CustomerName       string          `gorm:"column:customer_name"`
	CustomerEmail      string          `gorm:"column:customer_email"`
	CustomerPhone      string          `gorm:"column:customer_phone"`
	CustomerAddress    string          `gorm:"column:customer_address"`
	CustomerCity       string          `gorm:"column:customer_city"`
	CustomerPostalCode string          `gorm:"column:customer_postal_code"`
	ContactPreference  string          `gorm:"column:contact_preference"`
	Notes              string          `gorm:"column:notes"`
	Status             string          `gorm:"column:status"`
	TotalPrice         decimal.Decimal `gorm:"column:total_price;type:numeric(12,2)"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	StatusUpdatedAt    *time.Time      `gorm:"column:status_updated_at"`
}

type configurationAccessoryRow struct {
	ConfigurationID string `gorm:"column:configuration_id;primaryKey"`
	AccessoryID     string `gorm:"column:accessory_id;primaryKey"`
	Position        int    `gorm:"column:position"`
}

// ConfigurationGormRepository persists configurations in
// "<prefix>configurations", accessories in "<prefix>configuration_accessories".
//
// Create runs in one transaction: every referenced catalog row is read with
// FOR SHARE and must be active, so a concurrent deactivation either waits for
// the insert or makes it fail. Foreign keys back the same rule for deletes.
type ConfigurationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IConfigurationRepository = (*ConfigurationGormRepository)(nil)

func NewConfigurationGormRepository(db *gorm.DB) *ConfigurationGormRepository {
	return &ConfigurationGormRepository{db: db}
}

func configurationsTable(ns entities.Namespace) string {
	return ns.Table("configurations")
}

func accessoriesLinkTable(ns entities.Namespace) string {
	return ns.Table("configuration_accessories")
}

type idRow struct {
	ID string `gorm:"column:id"`
}

var errInactiveReference = errors.New("referenced catalog row is missing or inactive")

func (r *ConfigurationGormRepository) Create(ctx context.Context, ns entities.Namespace, c entities.Configuration) (entities.Configuration, error) {
	if c.ProductLine != ns.Line() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range c.References() {
			var row idRow
			err := tx.Table(catalogTable(ns, ref.Kind)).
				Clauses(clause.Locking{Strength: "SHARE"}).
				Select("id").
				Where("id = ? AND active = ?", ref.ID, true).
				Take(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %w: %s/%s", interfaces.ErrConstraintViolation, errInactiveReference, ref.Kind, ref.ID)
			}
			if err != nil {
				return translate(err)
			}
		}

		if err := tx.Table(configurationsTable(ns)).Create(toConfigurationRow(c)).Error; err != nil {
			return translate(err)
		}
		if len(c.Selection.AccessoryIDs) == 0 {
			return nil
		}
		links := make([]configurationAccessoryRow, 0, len(c.Selection.AccessoryIDs))
		for i, id := range c.Selection.AccessoryIDs {
			links = append(links, configurationAccessoryRow{ConfigurationID: c.ID, AccessoryID: id, Position: i})
		}
		return translate(tx.Table(accessoriesLinkTable(ns)).Create(&links).Error)
	})
	if err != nil {
		return entities.Configuration{}, err
	}
	return c, nil
}

func (r *ConfigurationGormRepository) GetByID(ctx context.Context, ns entities.Namespace, id string) (entities.Configuration, error) {
	db := r.db.WithContext(ctx)
	var row configurationRow
	if err := db.Table(configurationsTable(ns)).Where("id = ?", id).Take(&row).Error; err != nil {
		return entities.Configuration{}, translate(err)
	}
	out, err := r.hydrate(db, ns, []configurationRow{row})
	if err != nil {
		return entities.Configuration{}, err
	}
	return out[0], nil
}

func (r *ConfigurationGormRepository) List(ctx context.Context, ns entities.Namespace, filters entities.ConfigurationFilters) ([]entities.Configuration, error) {
	db := r.db.WithContext(ctx)
	q := db.Table(configurationsTable(ns))
	if filters.Status != "" {
		q = q.Where("status = ?", string(filters.Status))
	}
	if !filters.Since.IsZero() {
		q = q.Where("created_at >= ?", filters.Since.UTC())
	}
	if !filters.Until.IsZero() {
		q = q.Where("created_at <= ?", filters.Until.UTC())
	}

	var rows []configurationRow
	if err := q.Order("created_at DESC, id DESC").Limit(filters.EffectiveLimit()).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return r.hydrate(db, ns, rows)
}

// hydrate attaches accessory ids, kept in selection order, to rows.
func (r *ConfigurationGormRepository) hydrate(db *gorm.DB, ns entities.Namespace, rows []configurationRow) ([]entities.Configuration, error) {
	out := make([]entities.Configuration, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var links []configurationAccessoryRow
	err := db.Table(accessoriesLinkTable(ns)).
		Where("configuration_id IN ?", ids).
		Order("configuration_id, position").
		Find(&links).Error
	if err != nil {
		return nil, translate(err)
	}
	accessories := make(map[string][]string, len(rows))
	for _, l := range links {
		accessories[l.ConfigurationID] = append(accessories[l.ConfigurationID], l.AccessoryID)
	}

	for _, row := range rows {
		c, err := fromConfigurationRow(row, accessories[row.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ConfigurationGormRepository) Delete(ctx context.Context, ns entities.Namespace, id string) error {
	res := r.db.WithContext(ctx).Table(configurationsTable(ns)).Where("id = ?", id).Delete(&configurationRow{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *ConfigurationGormRepository) UpdateStatus(
	ctx context.Context,
	ns entities.Namespace,
	id string,
	from, to entities.ConfigurationStatus,
	at time.Time,
) (entities.Configuration, error) {
	if !to.Valid() {
		return entities.Configuration{}, interfaces.ErrConstraintViolation
	}
	db := r.db.WithContext(ctx)
	res := db.Table(configurationsTable(ns)).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":            string(to),
			"status_updated_at": at.UTC(),
		})
	if res.Error != nil {
		return entities.Configuration{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := db.Table(configurationsTable(ns)).Where("id = ?", id).Count(&n).Error; err != nil {
			return entities.Configuration{}, translate(err)
		}
		if n == 0 {
			return entities.Configuration{}, interfaces.ErrNotFound
		}
		return entities.Configuration{}, interfaces.ErrConflict
	}
	return r.GetByID(ctx, ns, id)
}

func (r *ConfigurationGormRepository) CountReferences(ctx context.Context, ns entities.Namespace, kind entities.EntityKind, id string) (int, error) {
	db := r.db.WithContext(ctx)
	var n int64
	var err error
	switch kind {
	case entities.KindAccessory:
		err = db.Table(accessoriesLinkTable(ns)).Where("accessory_id = ?", id).Count(&n).Error
	case entities.KindStructureType, entities.KindModel, entities.KindSurface,
		entities.KindCoverage, entities.KindColor, entities.KindPackage:
		err = db.Table(configurationsTable(ns)).Where(string(kind)+"_id = ?", id).Count(&n).Error
	default:
		return 0, fmt.Errorf("%w: %q", entities.ErrUnknownEntityKind, kind)
	}
	if err != nil {
		return 0, translate(err)
	}
	return int(n), nil
}

func toConfigurationRow(c entities.Configuration) *configurationRow {
	row := &configurationRow{
		ID:                 c.ID,
		ProductLine:        string(c.ProductLine),
		StructureTypeID:    c.Selection.StructureTypeID,
		ModelID:            c.Selection.ModelID,
		SurfaceID:          c.Selection.SurfaceID,
		CoverageID:         c.Selection.CoverageID,
		ColorID:            c.Selection.ColorID,
		Width:              c.Dimensions.Width,
		Depth:              c.Dimensions.Depth,
		Height:             c.Dimensions.Height,
		CustomerName:       c.Customer.Name,
		CustomerEmail:      c.Customer.Email,
		CustomerPhone:      c.Customer.Phone,
		CustomerAddress:    c.Customer.Address,
		CustomerCity:       c.Customer.City,
		CustomerPostalCode: c.Customer.PostalCode,
		ContactPreference:  string(c.Customer.ContactPreference),
		Notes:              c.Customer.Notes,
		Status:             string(c.Status),
		TotalPrice:         c.TotalPrice.Decimal(),
		CreatedAt:          c.CreatedAt.UTC(),
	}
	if c.Selection.PackageID != "" {
		pkg := c.Selection.PackageID
		row.PackageID = &pkg
	}
	if c.StatusUpdatedAt != nil {
		t := c.StatusUpdatedAt.UTC()
		row.StatusUpdatedAt = &t
	}
	return row
}

func fromConfigurationRow(row configurationRow, accessoryIDs []string) (entities.Configuration, error) {
	total, err := entities.MoneyFromDecimal(row.TotalPrice)
	if err != nil {
		return entities.Configuration{}, fmt.Errorf("configuration %s: %w", row.ID, err)
	}
	c := entities.Configuration{
		ID:          row.ID,
		ProductLine: entities.ProductLine(row.ProductLine),
		Selection: entities.Selection{
			StructureTypeID: row.StructureTypeID,
			ModelID:         row.ModelID,
			SurfaceID:       row.SurfaceID,
			CoverageID:      row.CoverageID,
			ColorID:         row.ColorID,
			AccessoryIDs:    accessoryIDs,
		},
		Dimensions: entities.Dimensions{Width: row.Width, Depth: row.Depth, Height: row.Height},
		Customer: entities.CustomerDetails{
			Name:              row.CustomerName,
			Email:             row.CustomerEmail,
			Phone:             row.CustomerPhone,
			Address:           row.CustomerAddress,
			City:              row.CustomerCity,
			PostalCode:        row.CustomerPostalCode,
			ContactPreference: entities.ContactPreference(row.ContactPreference),
			Notes:             row.Notes,
		},
		TotalPrice: total,
		Status:     entities.ConfigurationStatus(row.Status),
		CreatedAt:  row.CreatedAt.UTC(),
	}
	if row.PackageID != nil {
		c.Selection.PackageID = *row.PackageID
	}
	if row.StatusUpdatedAt != nil {
		t := row.StatusUpdatedAt.UTC()
		c.StatusUpdatedAt = &t
	}
	return c, nil
}
