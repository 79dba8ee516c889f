package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with DASHTERM_* environment variables. Variables
// that are not set leave the current value untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
