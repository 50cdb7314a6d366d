package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL", "API_KEY", "PUBLIC_KEY", "API_AUTH_SCHEME", "API_TIMEOUT_SECONDS",
		"API_CHANGED_SINCE_MONTHS", "TICKET_DETAIL_URL", "BOARD_TITLE", "APP_PORT",
		"REDIS_ADDR", "REDIS_DB", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "HTTP_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.adorbit.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "ADORBIT", cfg.Upstream.AuthScheme)
	assert.Equal(t, 3, cfg.Upstream.ChangedSinceMonths)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout())
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "ticket-board", cfg.Logger.Service)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Upstream.Configured())
	assert.Equal(t, []string{"API_KEY", "PUBLIC_KEY"}, cfg.Upstream.MissingCredentials())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://localhost:9000/")
	t.Setenv("API_KEY", "secret")
	t.Setenv("PUBLIC_KEY", "pub")
	t.Setenv("API_TIMEOUT_SECONDS", "0")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Upstream.BaseURL)
	assert.True(t, cfg.Upstream.Configured())
	assert.Empty(t, cfg.Upstream.MissingCredentials())
	assert.Zero(t, cfg.Upstream.Timeout())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "one")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestMissingPublicKeyOnly(t *testing.T) {
	u := UpstreamConfig{APIKey: "secret"}
	assert.Equal(t, []string{"PUBLIC_KEY"}, u.MissingCredentials())
}
