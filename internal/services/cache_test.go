package services

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguardiao/guardiao-api/internal/logger"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCacheService(client, "test:", time.Minute, logger.Discard())
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestCacheService_RedisRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "cnpj:11222333000181", "payload"))
	assert.True(t, mr.Exists("test:cnpj:11222333000181"))

	got, err := cache.Get(ctx, "cnpj:11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	ok, err := cache.Exists(ctx, "cnpj:11222333000181")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, cache.Delete(ctx, "cnpj:11222333000181"))
	_, err = cache.Get(ctx, "cnpj:11222333000181")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheService_RedisTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithTTL(ctx, "short", "v", 10*time.Second))
	assert.Equal(t, 10*time.Second, mr.TTL("test:short"))

	mr.FastForward(11 * time.Second)
	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheService_ClearKeepsForeignKeys(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("other:key", "keep"))
	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))

	require.NoError(t, cache.Clear(ctx))

	assert.False(t, mr.Exists("test:a"))
	assert.False(t, mr.Exists("test:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestCacheService_MemoryFallback(t *testing.T) {
	cache := NewCacheService(nil, "test:", time.Minute, logger.Discard())
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, cache.SetWithTTL(ctx, "expired", "v", -time.Second))
	_, err = cache.Get(ctx, "expired")
	assert.ErrorIs(t, err, ErrCacheMiss)

	ok, err := cache.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.Equal(t, StatusDisabled, cache.Health(ctx).Status)
}

func TestCacheService_CleanupExpired(t *testing.T) {
	cache := NewCacheService(nil, "", time.Minute, logger.Discard())
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.SetWithTTL(ctx, "old", "v", -time.Second))
	require.NoError(t, cache.Set(ctx, "fresh", "v"))

	assert.Equal(t, 1, cache.cleanupExpired())

	stats := cache.GetStats(ctx)
	assert.Equal(t, 1, stats["memory"].(map[string]interface{})["size"])
}

func TestCacheService_StatsCountHits(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	_, _ = cache.Get(ctx, "k")
	_, _ = cache.Get(ctx, "k")
	_, _ = cache.Get(ctx, "nope")

	stats := cache.GetStats(ctx)
	assert.Equal(t, int64(2), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.InDelta(t, 66.66, stats["hit_rate"], 0.01)
	assert.Equal(t, true, stats["redis"].(map[string]interface{})["available"])
}

func TestCacheService_SurfacesRedisErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCacheService(client, "test:", time.Minute, logger.Discard())
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	mr.Close()

	assert.Error(t, cache.Clear(ctx))
	assert.Error(t, cache.Delete(ctx, "k"))

	_, err := cache.Exists(ctx, "k")
	assert.Error(t, err)

	// writes fall back to memory, which Exists then trusts
	require.NoError(t, cache.Set(ctx, "local", "v"))
	ok, err := cache.Exists(ctx, "local")
	require.NoError(t, err)
	assert.True(t, ok)

	stats := cache.GetStats(ctx)
	assert.Equal(t, false, stats["redis"].(map[string]interface{})["available"])
}

func TestCacheService_CloseIsIdempotent(t *testing.T) {
	cache := NewCacheService(nil, "", time.Minute, logger.Discard())
	cache.StartCleanupRoutine(time.Millisecond)

	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}
