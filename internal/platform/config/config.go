// Package config loads the process-wide configuration from environment
// variables. The returned Config is read-only after startup and passed
// explicitly to the components that need it.
package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds the process-wide settings shared across features.
// Component-specific settings (database, Redis, weather provider) are
// loaded by the respective platform packages.
type Config struct {
	Port        string        // HTTP listen port
	JWTSecret   string        // HMAC secret for signing bearer tokens
	TokenExpiry time.Duration // lifetime of issued bearer tokens
}

// Load reads the configuration from environment variables, applying
// defaults where a value is not set.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenExpiry: 24 * time.Hour,
	}

	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid TOKEN_EXPIRY, using default", "value", v, "default", cfg.TokenExpiry)
		} else {
			cfg.TokenExpiry = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
