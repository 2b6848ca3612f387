package main

import (
	"log/slog"
	"os"

	"Sketcher/internal/applog"
	"Sketcher/internal/config"
	"Sketcher/internal/ui"
)

func main() {
	cfg := config.Default()
	logger := applog.New(os.Stderr, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("bad configuration", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("starting sketcher")
	ui.RunApp(cfg, logger)
}
