package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds BWORDIBLE_* overrides. Empty values leave lower layers intact.
type EnvConfig struct {
	TimeZone  string `env:"BWORDIBLE_TIME_ZONE"`
	StartDate string `env:"BWORDIBLE_START_DATE"`
	Seed      string `env:"BWORDIBLE_SEED"`
	Answers   string `env:"BWORDIBLE_ANSWERS"`
	Guesses   string `env:"BWORDIBLE_GUESSES"`
	DB        string `env:"BWORDIBLE_DB"`
	LogLevel  string `env:"BWORDIBLE_LOG_LEVEL"`
	Today     string `env:"BWORDIBLE_TODAY"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
