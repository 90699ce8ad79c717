package logger

import (
	"os"
	"path/filepath"
	"testing"

	"carport_configurator/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "configurator.log")

	flush, err := Init(config.LoggerConfig{Mode: "production", File: file})
	require.NoError(t, err)
	zap.L().Info("[logger][test] hello", zap.String("product_line", "wood"))
	flush()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"product_line":"wood"`)
	assert.Contains(t, string(raw), "[logger][test] hello")
}

func TestInit_RestoresPreviousGlobal(t *testing.T) {
	before := zap.L()
	flush, err := Init(config.LoggerConfig{Mode: "development"})
	require.NoError(t, err)
	assert.NotSame(t, before, zap.L())
	flush()
	assert.Same(t, before, zap.L())
}
