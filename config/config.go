package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the configuration required for the dp-catalog-sync service
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	CatalogAPIURL              string        `envconfig:"CATALOG_API_URL"`
	CatalogRequestTimeout      time.Duration `envconfig:"CATALOG_REQUEST_TIMEOUT"`
	CatalogUserAgent           string        `envconfig:"CATALOG_USER_AGENT"`
	DatabaseFile               string        `envconfig:"DATABASE_FILE"`
	DefaultPageSize            int           `envconfig:"DEFAULT_PAGE_SIZE"`
	MaxPageSize                int           `envconfig:"MAX_PAGE_SIZE"`
	DefaultMaxRows             int           `envconfig:"DEFAULT_MAX_ROWS"`
	MaxRowsLimit               int           `envconfig:"MAX_ROWS_LIMIT"`
	SyncDatasetLimit           int           `envconfig:"SYNC_DATASET_LIMIT"`
	MaxConcurrentHandlers      int           `envconfig:"MAX_CONCURRENT_HANDLERS"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
}

var cfg *Config

// Get retrieves the config from the environment for the dp-catalog-sync service
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   "localhost:24100",
		CatalogAPIURL:              "https://www.data.gouv.fr/api/1",
		CatalogRequestTimeout:      30 * time.Second,
		CatalogUserAgent:           "dp-catalog-sync/1.0",
		DatabaseFile:               "catalog-sync.db",
		DefaultPageSize:            20,
		MaxPageSize:                100,
		DefaultMaxRows:             1000,
		MaxRowsLimit:               5000,
		SyncDatasetLimit:           50,
		MaxConcurrentHandlers:      5,
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
	}

	return cfg, envconfig.Process("", cfg)
}
