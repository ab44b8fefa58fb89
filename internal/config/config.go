package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"wristcomp/internal/storage"
)

// Config holds process configuration, loaded from the environment.
type Config struct {
	// DataPath overrides where the device state lives. Empty means the
	// backend default under the user home dir.
	DataPath string `env:"WRISTCOMP_DATA_PATH"`
	// Backend selects the storage backend (json or sqlite).
	Backend string `env:"WRISTCOMP_STORE" envDefault:"json"`
}

// Load reads configuration from environment variables and resolves the
// data path against the backend default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = storage.BackendJSON
	}
	if cfg.Backend != storage.BackendJSON && cfg.Backend != storage.BackendSQLite {
		return Config{}, fmt.Errorf("WRISTCOMP_STORE must be %q or %q, got %q",
			storage.BackendJSON, storage.BackendSQLite, cfg.Backend)
	}
	if cfg.DataPath == "" {
		path, err := storage.DefaultPath(cfg.Backend)
		if err != nil {
			return Config{}, err
		}
		cfg.DataPath = path
	}
	return cfg, nil
}
