package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjan0044/invoice-builder/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Drafts.SessionTTL)
	assert.Equal(t, "INV", cfg.Drafts.NumberPrefix)
	assert.Equal(t, 15, cfg.Drafts.DueDays)
	assert.Equal(t, "18", cfg.Drafts.GSTRate.String())
	assert.Equal(t, 400, cfg.Logo.MaxWidth)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DRAFT_SESSION_TTL_MINUTES", "30")
	t.Setenv("DRAFT_DUE_DAYS", "30")
	t.Setenv("DRAFT_GST_RATE", "12.5")
	t.Setenv("DRAFT_NUMBER_PREFIX", "QUO")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Drafts.SessionTTL)
	assert.Equal(t, 30, cfg.Drafts.DueDays)
	assert.Equal(t, "12.5", cfg.Drafts.GSTRate.String())
	assert.Equal(t, "QUO", cfg.Drafts.NumberPrefix)
}

func TestLoad_Invalida(t *testing.T) {
	t.Setenv("DRAFT_GST_RATE", "dieciocho")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DRAFT_GST_RATE", "18")
	t.Setenv("DRAFT_SESSION_TTL_MINUTES", "0")
	_, err = config.Load()
	assert.Error(t, err)
}
