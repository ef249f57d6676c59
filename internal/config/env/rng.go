package env

import (
	"fmt"
	"virtual_casino/internal/config"

	"github.com/caarlos0/env/v11"
)

type rngConfig struct {
	RawSeed *uint64 `env:"RNG_SEED"`
}

func NewRNGConfig() (config.RNGConfig, error) {
	var cfg rngConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (cfg *rngConfig) Seed() (uint64, bool) {
	if cfg.RawSeed == nil {
		return 0, false
	}
	return *cfg.RawSeed, true
}
