package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkoval85/dashterm/internal/flagx"
	"github.com/dkoval85/dashterm/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the latency either as a string like
// "750ms" or as integer nanoseconds.
type jsonConfig struct {
	DatabaseDSN string         `json:"database_dsn"`
	AuthLatency timex.Duration `json:"auth_latency"`
	LogLevel    string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named via -c/-config.
// No flag, no file, nothing happens. A named but unreadable or malformed file
// panics: a config the user asked for explicitly must not be half-applied.
// Only fields present in the file override cfg.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AuthLatency.Duration != 0 {
		cfg.AuthLatency = time.Duration(jc.AuthLatency.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
