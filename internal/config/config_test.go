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
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Cache.VerdictTTL)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, 100, cfg.Upload.MaxBatchSize)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CACHE_DASHBOARD_TTL", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.oguardiao.com.br, https://admin.oguardiao.com.br,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.DashboardTTL)
	assert.Equal(t, []string{"https://app.oguardiao.com.br", "https://admin.oguardiao.com.br"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroBatch(t *testing.T) {
	t.Setenv("MAX_BATCH_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)
}
