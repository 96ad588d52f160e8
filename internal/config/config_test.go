package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_SECRET_KEY", "JWT_ALGORITHM", "JWT_EXPIRE_MINUTES"} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/provalab")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 1440, cfg.JWTExpireMinutes)
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime())
	assert.False(t, cfg.SecretTooShort())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/provalab")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET_KEY", "short")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("JWT_EXPIRE_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 30, cfg.JWTExpireMinutes)
	assert.Equal(t, 30*time.Minute, cfg.TokenLifetime())
	assert.True(t, cfg.SecretTooShort())
}

func TestLoad_InvalidExpireMinutes(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/provalab")
	t.Setenv("JWT_EXPIRE_MINUTES", "soon")

	_, err := Load()
	assert.Error(t, err)
}
