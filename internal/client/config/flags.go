package config

import (
	"flag"
	"os"

	"github.com/dkoval85/dashterm/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-db string        path of the local SQLite database
//	-latency duration simulated auth round-trip, e.g. 750ms (0 disables)
//	-loglevel string  debug | info | warn | error
//
// os.Args is filtered down to the flags handled here (via flagx.FilterArgs)
// so the config-file flags parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-db", "-latency", "-loglevel"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "db", cfg.DatabaseDSN, "path of the local database")
	fs.DurationVar(&cfg.AuthLatency, "latency", cfg.AuthLatency, "simulated auth latency")
	fs.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
