package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"inkboard/internal/config"
	"inkboard/internal/ink"
	"inkboard/internal/state"
	"inkboard/internal/ui"
)

func main() {
	configPath := flag.String("config", "inkboard.toml", "path to the TOML configuration file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "inkboard: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("session", state.SessionID)
	ink.SetLogger(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading configuration", "err", err)
		os.Exit(1)
	}
	logger.Info("starting", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key)

	if err := ui.RunApp(cfg, logger); err != nil {
		logger.Error("running app", "err", err)
		os.Exit(1)
	}
}
