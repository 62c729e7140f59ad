package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("ECAPI_PRIMARY.ENV", "local")
	t.Setenv("ECAPI_SERVER.PORT", "8080")
	t.Setenv("ECAPI_SERVER.READ_TIMEOUT", "10")
	t.Setenv("ECAPI_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("ECAPI_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("ECAPI_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("ECAPI_DATABASE.HOST", "localhost")
	t.Setenv("ECAPI_DATABASE.PORT", "5432")
	t.Setenv("ECAPI_DATABASE.USER", "postgres")
	t.Setenv("ECAPI_DATABASE.PASSWORD", "postgres")
	t.Setenv("ECAPI_DATABASE.NAME", "ecapi")
	t.Setenv("ECAPI_DATABASE.SSL_MODE", "disable")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)

	// Optional sections stay zero-valued when unset.
	assert.Empty(t, cfg.Redis.Address)

	// Observability defaults are applied with a forced service name.
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "ec-api", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ECAPI_DATABASE.HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestLoadOptionalRedis(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ECAPI_REDIS.ADDRESS", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}
