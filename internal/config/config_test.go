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

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 8, cfg.Probe.Concurrency)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "en", cfg.I18n.DefaultLang)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("PROBE_TIMEOUT", "250ms")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Catalog.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Probe.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "ftp")

	_, err := Load()
	assert.Error(t, err)
}
