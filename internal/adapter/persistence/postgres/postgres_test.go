package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var wood = entities.MustResolveNamespace(entities.ProductLineWood)

func TestSchemaIsNamespaced(t *testing.T) {
	stmts := Schema(wood)
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, "{{")
		assert.False(t, strings.HasSuffix(s, ";"))
	}
	joined := strings.Join(stmts, "\n")
	assert.Contains(t, joined, "wood_configurations")
	assert.Contains(t, joined, "REFERENCES wood_models (id) ON DELETE RESTRICT")
	assert.Contains(t, joined, "CHECK (product_line = 'wood')")
	assert.NotContains(t, joined, "iron_")
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), interfaces.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), interfaces.ErrConflict)
	assert.ErrorIs(t, translate(gorm.ErrForeignKeyViolated), interfaces.ErrConstraintViolation)
	assert.ErrorIs(t, translate(gorm.ErrCheckConstraintViolated), interfaces.ErrConstraintViolation)
	assert.ErrorIs(t, translate(errors.New("conn refused")), interfaces.ErrStorageUnavailable)
}

func TestCatalogRowMapping(t *testing.T) {
	meta := entities.CatalogMeta{ID: "comfort", Name: "Comfort", Active: true, SortOrder: 1}
	pkg := entities.Package{CatalogMeta: meta, Contents: []string{"gutter", "led strip"}, Price: 30000}

	values, err := catalogValues(pkg)
	require.NoError(t, err)
	assert.Equal(t, `["gutter","led strip"]`, values["contents"])
	assert.NotContains(t, values, "price_modifier")

	row := catalogRow{
		ID:        meta.ID,
		Name:      meta.Name,
		Active:    true,
		Contents:  values["contents"].(string),
		Price:     pkg.Price.Decimal(),
		SortOrder: 1,
	}
	got, err := fromCatalogRow(entities.KindPackage, row)
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	_, err = fromCatalogRow(entities.EntityKind("roof"), row)
	assert.ErrorIs(t, err, entities.ErrUnknownEntityKind)
}

func TestConfigurationRowMapping(t *testing.T) {
	c := newConfiguration("k1")
	c.Selection.PackageID = "comfort"
	row := toConfigurationRow(c)
	require.NotNil(t, row.PackageID)

	got, err := fromConfigurationRow(*row, c.Selection.AccessoryIDs)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func newConfiguration(key string) entities.Configuration {
	return entities.Configuration{
		ID:          entities.NewConfigurationID(entities.ProductLineWood, key),
		ProductLine: entities.ProductLineWood,
		Selection: entities.Selection{
			StructureTypeID: "addossato",
			ModelID:         "classic",
			SurfaceID:       "gravel",
			CoverageID:      "polycarbonate",
			ColorID:         "natural",
			AccessoryIDs:    []string{"light", "gutter"},
		},
		Dimensions: entities.Dimensions{Width: 500, Depth: 300, Height: 250},
		Customer: entities.CustomerDetails{
			Name:              "Ada Rossi",
			Email:             "ada@example.com",
			Phone:             "+39 333 1234567",
			Address:           "Via Roma 1",
			City:              "Torino",
			PostalCode:        "10100",
			ContactPreference: entities.ContactWhatsApp,
		},
		TotalPrice: 153500,
		Status:     entities.StatusPending,
		CreatedAt:  time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

// openTestDB connects to POSTGRES_TEST_DSN and prepares a throwaway wood
// namespace; the test is skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, s := range []string{"configuration_accessories", "configurations", "packages", "accessories", "surfaces", "colors", "coverage_types", "models", "structure_types"} {
		require.NoError(t, db.Exec("DROP TABLE IF EXISTS "+wood.Table(s)+" CASCADE").Error)
	}
	require.NoError(t, Migrate(ctx, db, wood))

	catalog := NewCatalogGormRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	m := func(id string) entities.CatalogMeta {
		return entities.CatalogMeta{ID: id, Name: id, Active: true, CreatedAt: now, UpdatedAt: now}
	}
	rows := []entities.CatalogEntity{
		entities.StructureType{CatalogMeta: m("addossato")},
		entities.Model{CatalogMeta: m("classic"), BasePrice: 120000},
		entities.Surface{CatalogMeta: m("gravel"), PriceModifier: 8000},
		entities.CoverageType{CatalogMeta: m("polycarbonate"), PriceModifier: 15000},
		entities.Color{CatalogMeta: m("natural"), HexValue: "#C19A6B", Category: entities.ColorCategoryStandard},
		entities.Accessory{CatalogMeta: m("gutter"), PriceModifier: 4500},
		entities.Accessory{CatalogMeta: m("light"), PriceModifier: 6000},
		entities.Package{CatalogMeta: m("comfort"), Contents: []string{"gutter"}, Price: 30000},
	}
	for _, e := range rows {
		_, err := catalog.Create(ctx, wood, e)
		require.NoError(t, err)
	}
	return db
}

func TestConfigurationGormRepository_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	catalog := NewCatalogGormRepository(db)
	configs := NewConfigurationGormRepository(db)

	c := newConfiguration(uuid.NewString())
	_, err := configs.Create(ctx, wood, c)
	require.NoError(t, err)

	_, err = configs.Create(ctx, wood, c)
	assert.ErrorIs(t, err, interfaces.ErrConflict)

	got, err := configs.GetByID(ctx, wood, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"light", "gutter"}, got.Selection.AccessoryIDs)
	assert.Equal(t, c.TotalPrice, got.TotalPrice)

	n, err := configs.CountReferences(ctx, wood, entities.KindAccessory, "gutter")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = catalog.Delete(ctx, wood, entities.KindModel, "classic")
	assert.ErrorIs(t, err, interfaces.ErrConstraintViolation)

	updated, err := configs.UpdateStatus(ctx, wood, c.ID, entities.StatusPending, entities.StatusConfirmed, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, updated.Status)

	_, err = configs.UpdateStatus(ctx, wood, c.ID, entities.StatusPending, entities.StatusCancelled, time.Now())
	assert.ErrorIs(t, err, interfaces.ErrConflict)

	list, err := configs.List(ctx, wood, entities.ConfigurationFilters{Status: entities.StatusConfirmed})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, configs.Delete(ctx, wood, c.ID))
	assert.ErrorIs(t, configs.Delete(ctx, wood, c.ID), interfaces.ErrNotFound)
}

func TestConfigurationGormRepository_RejectsInactiveReference(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	catalog := NewCatalogGormRepository(db)

	e, err := catalog.GetByID(ctx, wood, entities.KindColor, "natural")
	require.NoError(t, err)
	meta := e.Meta()
	meta.Active = false
	_, err = catalog.Update(ctx, wood, entities.WithMeta(e, meta))
	require.NoError(t, err)

	_, err = NewConfigurationGormRepository(db).Create(ctx, wood, newConfiguration(uuid.NewString()))
	assert.ErrorIs(t, err, interfaces.ErrConstraintViolation)
}
