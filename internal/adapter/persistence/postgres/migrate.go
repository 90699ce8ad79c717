package postgres

import (
	"context"
	_ "embed"
	"strings"

	"carport_configurator/internal/domain/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Schema renders the DDL of one namespace, one statement per element.
func Schema(ns entities.Namespace) []string {
	rendered := strings.NewReplacer(
		"{{prefix}}", ns.Prefix(),
		"{{line}}", string(ns.Line()),
	).Replace(schemaSQL)

	var stmts []string
	for _, s := range strings.Split(rendered, ";\n") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Migrate creates every table of ns. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB, ns entities.Namespace) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range Schema(ns) {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		zap.L().Info("[storage][postgres] schema ready", zap.String("product_line", ns.String()))
		return nil
	})
}
