package app

import (
	"context"
	"testing"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/infrastructure/config"
	"carport_configurator/internal/infrastructure/seed"
	"carport_configurator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.AppConfig {
	return &config.AppConfig{
		Storage: config.StorageConfig{Backend: config.BackendMemory, Timeout: time.Second, RetryBackoff: time.Millisecond},
		Logger:  config.LoggerConfig{Mode: "development"},
		Notify:  config.NotifyConfig{Workers: 1, Timeout: time.Second},
		DefaultLimits: entities.DimensionLimits{
			Width:  entities.Range{Min: 100, Max: 1500},
			Depth:  entities.Range{Min: 100, Max: 1000},
			Height: entities.Range{Min: 180, Max: 400},
		},
	}
}

func TestApplication_MemoryBackend(t *testing.T) {
	ctx := context.Background()
	a := NewApplication(memoryConfig())
	require.NoError(t, a.Init(ctx))
	defer func() { assert.NoError(t, a.Release()) }()

	require.NoError(t, a.Migrate(ctx))

	catalog, err := seed.Default()
	require.NoError(t, err)
	counts, err := seed.Apply(ctx, a.CatalogUseCase(), catalog)
	require.NoError(t, err)
	assert.Positive(t, counts[entities.ProductLineWood])
	assert.Positive(t, counts[entities.ProductLineIron])

	wood := entities.MustResolveNamespace(entities.ProductLineWood)
	models, err := a.CatalogUseCase().ListActive(ctx, wood, entities.KindModel)
	require.NoError(t, err)
	require.NotEmpty(t, models)

	_, err = a.ConfigurationUseCase().GetByID(ctx, wood, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, usecase.ErrConfigurationNotFound)
}

func TestApplication_UnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Backend = "sqlite"
	a := NewApplication(cfg)
	defer a.Release()

	assert.Error(t, a.Init(context.Background()))
}
