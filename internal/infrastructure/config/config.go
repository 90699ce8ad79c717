package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"carport_configurator/internal/domain/entities"

	"github.com/spf13/cast"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type HTTPConfig struct {
	Port    int
	GinMode string
}

type StorageConfig struct {
	Backend      string
	Timeout      time.Duration
	RetryBackoff time.Duration
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type PostgresConfig struct {
	DSN string
}

type LoggerConfig struct {
	// Mode is "production" for JSON output, anything else for console output.
	Mode string
	// File enables a rotating JSON sink next to stdout when non-empty.
	File string
}

type NotifyConfig struct {
	Workers int
	Timeout time.Duration
}

// AppConfig is read once at startup from the environment (and .env).
type AppConfig struct {
	HTTP     HTTPConfig
	Storage  StorageConfig
	AWS      AWSConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	Notify   NotifyConfig
	// DefaultLimits bounds dimensions for structure types that carry no
	// limits of their own.
	DefaultLimits entities.DimensionLimits
}

// Load reads the configuration. Malformed numbers and durations fall back to
// their defaults; an unknown backend is an error.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		HTTP: HTTPConfig{
			Port:    cast.ToInt(getenv("HTTP_PORT", "8080")),
			GinMode: getenv("GIN_MODE", "debug"),
		},
		Storage: StorageConfig{
			Backend:      strings.ToLower(getenv("STORAGE_BACKEND", BackendDynamoDB)),
			Timeout:      duration("STORAGE_TIMEOUT", 5*time.Second),
			RetryBackoff: duration("STORAGE_RETRY_BACKOFF", 100*time.Millisecond),
		},
		AWS: AWSConfig{
			Region:           getenv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenv("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Logger: LoggerConfig{
			Mode: getenv("LOG_MODE", "development"),
			File: os.Getenv("LOG_FILE"),
		},
		Notify: NotifyConfig{
			Workers: positive("NOTIFY_WORKERS", 4),
			Timeout: duration("NOTIFY_TIMEOUT", 10*time.Second),
		},
		DefaultLimits: entities.DimensionLimits{
			Width:  dimensionRange("WIDTH", 100, 1500),
			Depth:  dimensionRange("DEPTH", 100, 1000),
			Height: dimensionRange("HEIGHT", 180, 400),
		},
	}

	switch cfg.Storage.Backend {
	case BackendDynamoDB, BackendMemory:
	case BackendPostgres:
		if cfg.Postgres.DSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required when STORAGE_BACKEND=%s", BackendPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
	if v := cfg.DefaultLimits.Validate(); len(v) > 0 {
		return nil, fmt.Errorf("default dimension limits: %s %s", v[0].Field, v[0].Reason)
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := cast.ToDurationE(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func positive(key string, def int) int {
	n, err := cast.ToIntE(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func dimensionRange(axis string, min, max int) entities.Range {
	return entities.Range{
		Min: positive("DIMENSION_"+axis+"_MIN", min),
		Max: positive("DIMENSION_"+axis+"_MAX", max),
	}
}
