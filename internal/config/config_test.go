package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocket/internal/config"
	"github.com/MrJamesThe3rd/pocket/internal/session"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, session.ModePlain, cfg.Session.Mode)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, session.DefaultMaxAge, cfg.SessionOptions().MaxAge)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "postgres://postgres:@localhost:5432/pocket?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("SESSION_MODE", "signed")
	t.Setenv("SESSION_SECRET", "shh")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres:@db:5432/ledger?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	opts := cfg.SessionOptions()
	assert.Equal(t, session.ModeSigned, opts.Mode)
	assert.Equal(t, "shh", opts.Secret)
}
