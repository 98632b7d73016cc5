package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // Optional; when set every /api route requires it

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RunMigrations     bool

	// UserID is the account this session daemon plays as
	UserID string

	PendingTickInterval  time.Duration
	ResyncInterval       time.Duration
	CatalogTTL           time.Duration
	LeaderboardTTL       time.Duration
	WorkerCount          int
	MysteryBoxServerDraw bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		APIKey:      getEnv(EnvAPIKey, ""),

		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		DBUser:            getEnv(EnvDBUser, "postgres"),
		DBPassword:        getEnv(EnvDBPassword, "postgres"),
		DBHost:            getEnv(EnvDBHost, "localhost"),
		DBPort:            getEnv(EnvDBPort, "5432"),
		DBName:            getEnv(EnvDBName, "heroverse"),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool(EnvRunMigrations, false),

		UserID: getEnv(EnvUserID, ""),

		PendingTickInterval:  getEnvAsDuration(EnvPendingTickInterval, DefaultPendingTickInterval),
		ResyncInterval:       getEnvAsDuration(EnvResyncInterval, DefaultResyncInterval),
		CatalogTTL:           getEnvAsDuration(EnvCatalogTTL, DefaultCatalogTTL),
		LeaderboardTTL:       getEnvAsDuration(EnvLeaderboardTTL, DefaultLeaderboardTTL),
		WorkerCount:          getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		MysteryBoxServerDraw: getEnvAsBool(EnvMysteryBoxServerDraw, false),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.UserID == "" {
		return nil, fmt.Errorf("USER_ID environment variable must be set to the session account id")
	}
	if _, err := uuid.Parse(cfg.UserID); err != nil {
		return nil, fmt.Errorf("invalid USER_ID value: %w", err)
	}

	if cfg.PendingTickInterval <= 0 {
		return nil, fmt.Errorf("PENDING_TICK_INTERVAL must be positive")
	}
	if cfg.ResyncInterval <= 0 {
		return nil, fmt.Errorf("RESYNC_INTERVAL must be positive")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = DefaultWorkerCount
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
