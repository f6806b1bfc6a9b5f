package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "./data/hotspots.db", cfg.DBPath)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoadCustomEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("DATA_DIR", "/srv/dataset")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW", "30s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/srv/dataset", cfg.DataDir)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "-5s")

	cfg := Load()

	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}
