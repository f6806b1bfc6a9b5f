package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration, populated from
// environment variables with defaults suitable for local use.
type Config struct {
	Port         string
	DBPath       string
	DataDir      string
	JWTSecret    string
	AuthRequired bool
	RateLimit    int
	RateWindow   time.Duration
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		Port:         envOrDefault("PORT", ":8080"),
		DBPath:       envOrDefault("DB_PATH", "./data/hotspots.db"),
		DataDir:      envOrDefault("DATA_DIR", "./data"),
		JWTSecret:    envOrDefault("JWT_SECRET", "change-me-in-production"),
		AuthRequired: os.Getenv("AUTH_REQUIRED") == "true",
		RateLimit:    envIntOrDefault("RATE_LIMIT", 120),
		RateWindow:   envDurationOrDefault("RATE_WINDOW", time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
