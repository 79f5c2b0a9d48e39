package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.False(t, cfg.Database.Configured())
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 3*time.Second, cfg.Database.PingTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "department")
	t.Setenv("DB_PING_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://gyd.example.edu, https://admin.gyd.example.edu")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Database.Configured())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, 5*time.Second, cfg.Database.PingTimeout)
	assert.Equal(t, []string{"https://gyd.example.edu", "https://admin.gyd.example.edu"}, cfg.CORS.AllowedOrigins)
}

func TestConfiguredNeedsBothValues(t *testing.T) {
	assert.False(t, DatabaseConfig{URL: "mongodb://localhost:27017"}.Configured())
	assert.False(t, DatabaseConfig{Name: "department"}.Configured())
	assert.True(t, DatabaseConfig{URL: "mongodb://localhost:27017", Name: "department"}.Configured())
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, time.Second, parseDuration("garbage", time.Second))
	assert.Equal(t, 250*time.Millisecond, parseDuration("250ms", time.Second))
}
