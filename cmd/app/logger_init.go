package main

import (
	"github.com/dagwood-games/hotdog-tycoon/internal/config"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
