// Package app assembles storage, use cases and notification from an AppConfig.
package app

import (
	"context"
	"errors"
	"fmt"

	"carport_configurator/internal/adapter/persistence/memory"
	"carport_configurator/internal/adapter/persistence/postgres"
	"carport_configurator/internal/adapter/persistence/repository"
	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/infrastructure/config"
	"carport_configurator/internal/infrastructure/database"
	"carport_configurator/internal/infrastructure/logger"
	"carport_configurator/internal/infrastructure/notification"
	"carport_configurator/internal/usecase"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	appConfig *config.AppConfig

	ddb    *dynamodb.Client
	gormDB *gorm.DB

	catalogRepo interfaces.ICatalogRepository
	configRepo  interfaces.IConfigurationRepository
	notifier    *notification.AsyncDispatcher

	catalogUseCase       *usecase.CatalogUseCase
	configurationUseCase *usecase.ConfigurationUseCase

	syncLogger func()
}

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) CatalogUseCase() usecase.ICatalogUseCase {
	return a.catalogUseCase
}

func (a *Application) ConfigurationUseCase() usecase.IConfigurationUseCase {
	return a.configurationUseCase
}

// Init sets up logging, opens the configured storage backend and builds the
// use cases. Release undoes it.
func (a *Application) Init(ctx context.Context) error {
	syncLogger, err := logger.Init(a.appConfig.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.syncLogger = syncLogger

	if err := a.openStorage(ctx); err != nil {
		return err
	}

	notifier, err := notification.NewAsyncDispatcher(
		notification.NewLogDispatcher(),
		a.appConfig.Notify.Workers,
		a.appConfig.Notify.Timeout,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.notifier = notifier

	catalog := repository.NewRetryingCatalogRepository(a.catalogRepo, a.appConfig.Storage.RetryBackoff)
	a.catalogUseCase = usecase.NewCatalogUseCase(catalog, a.configRepo, a.appConfig.Storage.Timeout)
	a.configurationUseCase = usecase.NewConfigurationUseCase(catalog, a.configRepo, a.notifier, usecase.ConfigurationUseCaseOptions{
		Defaults:       a.appConfig.DefaultLimits,
		StorageTimeout: a.appConfig.Storage.Timeout,
	})

	zap.L().Info("[app] initialized",
		zap.String("storage_backend", a.appConfig.Storage.Backend),
		zap.Int("notify_workers", a.appConfig.Notify.Workers),
	)
	return nil
}

func (a *Application) openStorage(ctx context.Context) error {
	switch a.appConfig.Storage.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, a.appConfig.AWS)
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		a.ddb = ddb
		a.catalogRepo = repository.NewCatalogDynamoRepository(ddb)
		a.configRepo = repository.NewConfigurationDynamoRepository(ddb)
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(a.appConfig.Postgres, a.appConfig.Logger.Mode)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		a.gormDB = db
		a.catalogRepo = postgres.NewCatalogGormRepository(db)
		a.configRepo = postgres.NewConfigurationGormRepository(db)
	case config.BackendMemory:
		store := memory.NewStore()
		a.catalogRepo = store.Catalog()
		a.configRepo = store.Configurations()
	default:
		return fmt.Errorf("unknown storage backend %q", a.appConfig.Storage.Backend)
	}
	return nil
}

// Migrate creates the tables of both product lines. It is idempotent.
func (a *Application) Migrate(ctx context.Context) error {
	for _, line := range entities.ProductLines() {
		ns := entities.MustResolveNamespace(line)
		var err error
		switch {
		case a.ddb != nil:
			err = database.EnsureTables(ctx, a.ddb, ns)
		case a.gormDB != nil:
			err = postgres.Migrate(ctx, a.gormDB, ns)
		default:
			zap.L().Info("[app] nothing to migrate", zap.String("product_line", string(line)))
			continue
		}
		if err != nil {
			return fmt.Errorf("migrate %s: %w", line, err)
		}
	}
	return nil
}

// Release drains pending notifications, closes the SQL pool and flushes the logger.
func (a *Application) Release() error {
	var errs []error
	if a.notifier != nil {
		if err := a.notifier.Close(a.appConfig.Notify.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("close notifier: %w", err))
		}
	}
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close postgres: %w", err))
			}
		}
	}
	if a.syncLogger != nil {
		a.syncLogger()
	}
	return errors.Join(errs...)
}
