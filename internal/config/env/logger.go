package env

import (
	"fmt"
	"virtual_casino/internal/config"

	"github.com/caarlos0/env/v11"
)

type loggerConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
	MaxSize  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	var cfg loggerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *loggerConfig) File() string {
	return cfg.LogFile
}

func (cfg *loggerConfig) MaxSizeMB() int {
	return cfg.MaxSize
}
