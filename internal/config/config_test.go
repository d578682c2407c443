package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/concierge_test")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("CONCIERGE_PORT", "")
	t.Setenv("CONCIERGE_MODEL", "")
	t.Setenv("CONCIERGE_MAX_CONNS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMaxConns, cfg.MaxConns)
	assert.Equal(t, "test-key", cfg.OpenRouterAPIKey)
	assert.Empty(t, cfg.Model)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/concierge_test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CONCIERGE_PORT", "9090")
	t.Setenv("CONCIERGE_MODEL", "openai/gpt-4o-mini")
	t.Setenv("CONCIERGE_MAX_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.Model)
	assert.Equal(t, 25, cfg.MaxConns)
}

func TestLoadRejectsBadPort(t *testing.T) {
	setRequired(t)
	t.Setenv("CONCIERGE_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONCIERGE_PORT")
}
