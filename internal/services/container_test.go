package services

import (
	"context"
	"net"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguardiao/guardiao-api/internal/config"
	"github.com/oguardiao/guardiao-api/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func cutHostPort(addr string) (string, string, bool) {
	host, port, err := net.SplitHostPort(addr)
	return host, port, err == nil
}

func TestContainer_MemoryOnly(t *testing.T) {
	container, err := NewContainerWithClient(testConfig(t), nil, logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	health := container.Health(context.Background())
	assert.Equal(t, StatusDisabled, health["redis"].Status)
	assert.NotNil(t, container.ValidationService)
	assert.NotNil(t, container.DashboardService)
}

func TestContainer_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	container, err := NewContainerWithClient(testConfig(t), client, logger.Discard())
	require.NoError(t, err)

	health := container.Health(context.Background())
	assert.Equal(t, StatusHealthy, health["redis"].Status)
	assert.Empty(t, health["redis"].Error)

	mr.Close()
	health = container.Health(context.Background())
	assert.Equal(t, StatusDegraded, health["redis"].Status)
	assert.NotEmpty(t, health["redis"].Error)

	require.NoError(t, container.Close())
}

func TestContainer_RedisDisabled(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "false")

	container, err := NewContainer(testConfig(t), logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	assert.Equal(t, StatusDisabled, container.Health(context.Background())["redis"].Status)
}

func TestContainer_UnreachableRedisFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	host, port, found := cutHostPort(addr)
	require.True(t, found)
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)
	t.Setenv("REDIS_DIAL_TIMEOUT", "1")

	container, err := NewContainer(testConfig(t), logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	assert.Equal(t, StatusDisabled, container.Health(context.Background())["redis"].Status)
}

func TestContainer_RejectsZeroTTL(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.VerdictTTL = 0

	_, err := NewContainerWithClient(cfg, nil, logger.Discard())
	assert.Error(t, err)
}
