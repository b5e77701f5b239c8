package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "TRIGGER_TIMEOUT", "REFRESH_DELAY", "CORS_ALLOW_ORIGINS", "SESSION_STORE", "WEBHOOK_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, DriverREST, cfg.StoreDriver)
	assert.Equal(t, 120*time.Second, cfg.TriggerTimeout)
	assert.Equal(t, 3*time.Second, cfg.RefreshDelay)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.NotEmpty(t, cfg.WebhookURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("TRIGGER_TIMEOUT", "30s")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.TriggerTimeout)
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		StoreDriver:    DriverREST,
		SessionStore:   "memcached",
		WebhookURL:     "",
		TriggerTimeout: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "SUPABASE_URL is required")
	assert.Contains(t, msg, "SUPABASE_KEY is required")
	assert.Contains(t, msg, `unknown SESSION_STORE "memcached"`)
	assert.Contains(t, msg, "WEBHOOK_URL is required")
	assert.Contains(t, msg, "TRIGGER_TIMEOUT must be positive")
	assert.Contains(t, msg, "CORS_ALLOW_ORIGINS must name at least one origin")

	cfg = &Config{StoreDriver: "mongo", SessionStore: SessionStoreCookie, WebhookURL: "http://x", TriggerTimeout: time.Second, CORSAllowOrigins: []string{"*"}}
	assert.EqualError(t, cfg.Validate(), `unknown STORE_DRIVER "mongo"`)
}

func TestValidate_RejectsBlankOriginList(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("CORS_ALLOW_ORIGINS", " , ,")

	cfg := Load()
	assert.Empty(t, cfg.CORSAllowOrigins)
	assert.EqualError(t, cfg.Validate(), "CORS_ALLOW_ORIGINS must name at least one origin")
}
