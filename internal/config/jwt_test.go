package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-secret-key-for-jwt-signing-minimum-32-bytes", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "default expiration is 24 hours")
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ExpirationHours)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestNewJWTConfig_ExpirationBelowMinimum(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1 hour")
}
