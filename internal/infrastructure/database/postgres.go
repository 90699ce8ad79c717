package database

import (
	"time"

	"carport_configurator/internal/infrastructure/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens a pooled GORM connection. TranslateError is required
// by the repositories to tell duplicate keys and foreign key failures apart.
func ConnectPostgres(cfg config.PostgresConfig, logMode string) (*gorm.DB, error) {
	level := logger.Warn
	if logMode != "production" {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	zap.L().Info("[storage][postgres] connected")
	return db, nil
}
