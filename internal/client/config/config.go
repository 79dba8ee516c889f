// Package config assembles runtime settings for the dashterm client from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence (later sources win).
package config

import "time"

// Config holds runtime settings for the dashterm client.
//
// Fields:
//   - DatabaseDSN: path or DSN of the local SQLite database.
//   - AuthLatency: simulated network delay applied to register/login.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDSN string        `env:"DASHTERM_DB"`
	AuthLatency time.Duration `env:"DASHTERM_AUTH_LATENCY"`
	LogLevel    string        `env:"DASHTERM_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "dashterm.db"
	c.AuthLatency = time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config: defaults first, then JSON file (if one is
// named via -c/-config), then environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
