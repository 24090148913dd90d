package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HASH_COST", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("HASH_CONCURRENCY", "")
	t.Setenv("DIRECTORY_BACKEND", "")

	cfg := Load()
	assert.Equal(t, 10, cfg.HashCost)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, runtime.NumCPU(), cfg.HashConcurrency)
	assert.Equal(t, BackendPostgres, cfg.DirectoryBackend)
	assert.False(t, cfg.AuthRequired)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HASH_COST", "12")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DIRECTORY_BACKEND", "Memory")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("LOGIN_RATE_LIMIT", "0")

	cfg := Load()
	assert.Equal(t, 12, cfg.HashCost)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, BackendMemory, cfg.DirectoryBackend)
	assert.True(t, cfg.AuthRequired)
	assert.Zero(t, cfg.LoginRateLimit)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "an hour")
	t.Setenv("AUTH_REQUIRED", "maybe")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AuthRequired)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("HASH_COST", "99")
	t.Setenv("DIRECTORY_BACKEND", "mongo")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "HASH_COST")
	assert.Contains(t, err.Error(), "DIRECTORY_BACKEND")
}

func TestCORSOriginsAndDSN(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: " https://a.school.test, ,https://b.school.test",
		TrustedProxies:     "10.0.0.0/8, 172.16.0.1",
		DBUser:             "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n", DBSSLMode: "disable",
	}
	assert.Equal(t, []string{"https://a.school.test", "https://b.school.test"}, cfg.CORSOrigins())
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.TrustedProxyList())
	assert.Empty(t, (&Config{}).TrustedProxyList())
}
