package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer   string   // Required: expected issuer of identity provider tokens
	Audience []string // Optional: expected audience values (empty skips the check)

	IdPPublicKeyFile string // Required: path to the IdP's Ed25519 public key (PKIX PEM)
	IdPKeyID         string // Optional: kid the IdP signs with (default: "idp")

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./profile.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired invite purge interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:           os.Getenv("PROFILE_ISSUER"),
		IdPPublicKeyFile: os.Getenv("PROFILE_IDP_PUBLIC_KEY_FILE"),
		IdPKeyID:         getEnvOrDefault("PROFILE_IDP_KEY_ID", "idp"),
		DatabaseFile: getEnvOrDefault(
			"PROFILE_DATABASE_FILE",
			"profile.db",
		),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if aud := os.Getenv("PROFILE_AUDIENCE"); aud != "" {
		cfg.Audience = []string{aud}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
