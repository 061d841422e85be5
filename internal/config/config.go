package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable, so the output format lives in
// LINKML_OPENAPI_FORMAT and so on.
const EnvPrefix = "LINKML_OPENAPI_"

// Config holds the environment-driven defaults for the CLI. Flags
// override these per invocation.
type Config struct {
	Format    string `env:"FORMAT" envDefault:"yaml"`
	Version   string `env:"VERSION" envDefault:"1.0.0"`
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8000"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment configuration: %w", err)
	}
	return &cfg, nil
}
