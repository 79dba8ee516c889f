package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dkoval85/dashterm/internal/client/cli"
	"github.com/dkoval85/dashterm/internal/client/config"
	"github.com/dkoval85/dashterm/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})
	log := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
