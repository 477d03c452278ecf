package config

import (
	"github.com/caarlos0/env/v11"

	"promohub/internal/config/configs"
)

// Config aggregates all configuration sections for the application.
// Fields are populated from environment variables via caarlos0/env; the
// nested structs carry envPrefix tags so their fields are parsed with the
// given prefix. See the types in the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config.
// Missing variables fall back to the tagged defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
