package config

import "time"

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvEnvironment = "ENVIRONMENT"
	EnvAPIKey      = "API_KEY"

	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvRunMigrations     = "RUN_MIGRATIONS"

	EnvUserID               = "USER_ID"
	EnvPendingTickInterval  = "PENDING_TICK_INTERVAL"
	EnvResyncInterval       = "RESYNC_INTERVAL"
	EnvCatalogTTL           = "CATALOG_TTL"
	EnvLeaderboardTTL       = "LEADERBOARD_TTL"
	EnvWorkerCount          = "WORKER_COUNT"
	EnvMysteryBoxServerDraw = "MYSTERY_BOX_SERVER_DRAW"
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "heroverse"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultPendingTickInterval = time.Second
	DefaultResyncInterval      = 60 * time.Second
	DefaultCatalogTTL          = 6 * time.Hour
	DefaultLeaderboardTTL      = 30 * time.Second
	DefaultWorkerCount         = 2
)
