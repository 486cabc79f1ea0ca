package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, DefaultAnimationURL, cfg.AnimationURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/erbil")
	t.Setenv("ANIMATION_URL", "http://example.test/loader.json")
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://dash.example")
	t.Setenv("READ_TIMEOUT", "3s")
	t.Setenv("WRITE_TIMEOUT", "4s")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/erbil", cfg.DatabaseURL)
	assert.Equal(t, "http://example.test/loader.json", cfg.AnimationURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://dash.example", cfg.CORSAllowOrigins)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 4*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "not-a-duration")
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}
