package bootstrap

import (
	"log/slog"

	"github.com/osse101/HeroVerse_Go/internal/config"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// SetupLogger initializes the process-wide slog logger from configuration.
// Source locations are only attached in development environments.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"user_id", cfg.UserID)

	l.Debug(LogMsgConfigLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"pending_tick", cfg.PendingTickInterval,
		"resync", cfg.ResyncInterval)

	return l
}
