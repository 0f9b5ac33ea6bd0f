package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetapp")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetapp")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("MAIL_FROM", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "BudgetApp <admin@budgetapp.com>", cfg.MailFrom)
	assert.False(t, cfg.Production())
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetapp")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ENV", "Production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}
