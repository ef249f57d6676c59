package env

import (
	"errors"
	"fmt"
	"virtual_casino/internal/config"

	"github.com/caarlos0/env/v11"
)

type storageConfig struct {
	DriverName  string `env:"STATE_DRIVER" envDefault:"file"`
	StatePath   string `env:"STATE_PATH" envDefault:"casino_data.json"`
	PGDSN       string `env:"PG_DSN"`
	ProfileName string `env:"STATE_PROFILE" envDefault:"default"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	var cfg storageConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DriverName {
	case config.StorageFile, config.StorageSQLite:
		if cfg.StatePath == "" {
			return nil, errors.New("state path not found")
		}
	case config.StoragePostgres:
		if cfg.PGDSN == "" {
			return nil, errors.New("pg dsn not found")
		}
	default:
		return nil, fmt.Errorf("unknown state driver %q", cfg.DriverName)
	}

	return &cfg, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.DriverName
}

func (cfg *storageConfig) Path() string {
	return cfg.StatePath
}

func (cfg *storageConfig) DSN() string {
	return cfg.PGDSN
}

func (cfg *storageConfig) Profile() string {
	return cfg.ProfileName
}
