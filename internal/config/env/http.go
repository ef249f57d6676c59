package env

import (
	"fmt"
	"virtual_casino/internal/config"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Addr
}
