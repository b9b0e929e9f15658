package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oguardiao/guardiao-api/internal/models"
)

// Backend health states
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDisabled = "disabled"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("key not found")

// CacheService implements caching functionality
type CacheService struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *logrus.Logger

	// In-memory fallback cache when Redis is not available
	memCache map[string]cacheItem
	memMutex sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64

	stop     chan struct{}
	stopOnce sync.Once
}

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// NewCacheService creates a new cache service. Every key is stored under
// prefix so Clear never touches foreign keys in a shared Redis.
func NewCacheService(client *redis.Client, prefix string, ttl time.Duration, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client:   client,
		prefix:   prefix,
		ttl:      ttl,
		logger:   logger,
		memCache: make(map[string]cacheItem),
		stop:     make(chan struct{}),
	}
}

func (c *CacheService) key(key string) string {
	return c.prefix + key
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	full := c.key(key)

	// Try Redis first if available
	if c.client != nil {
		val, err := c.client.Get(ctx, full).Result()
		if err == nil {
			c.hits.Add(1)
			c.logger.WithField("key", full).Debug("Cache hit (Redis)")
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.WithFields(logrus.Fields{
				"key":   full,
				"error": err.Error(),
			}).Warn("Redis get error, falling back to memory cache")
		}
	}

	// Fallback to memory cache
	c.memMutex.RLock()
	item, exists := c.memCache[full]
	c.memMutex.RUnlock()

	if !exists {
		c.misses.Add(1)
		return "", ErrCacheMiss
	}

	if time.Now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, full)
		c.memMutex.Unlock()
		c.misses.Add(1)
		return "", ErrCacheMiss
	}

	c.hits.Add(1)
	c.logger.WithField("key", full).Debug("Cache hit (memory)")
	return item.value, nil
}

// Set stores a value in cache with the default TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value in cache with an explicit TTL
func (c *CacheService) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	full := c.key(key)

	if c.client != nil {
		err := c.client.Set(ctx, full, value, ttl).Err()
		if err == nil {
			c.logger.WithField("key", full).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   full,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	c.memMutex.Lock()
	c.memCache[full] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	c.memMutex.Unlock()

	c.logger.WithField("key", full).Debug("Cache set (memory)")
	return nil
}

// Delete removes a value from cache. The memory copy is always dropped;
// a Redis failure is returned.
func (c *CacheService) Delete(ctx context.Context, key string) error {
	full := c.key(key)

	c.memMutex.Lock()
	delete(c.memCache, full)
	c.memMutex.Unlock()

	if c.client != nil {
		if err := c.client.Del(ctx, full).Err(); err != nil {
			return fmt.Errorf("redis delete %s: %w", full, err)
		}
	}

	c.logger.WithField("key", full).Debug("Cache delete")
	return nil
}

// Clear removes every key under the cache prefix. The memory cache is
// always emptied; a Redis failure is returned.
func (c *CacheService) Clear(ctx context.Context) error {
	c.memMutex.Lock()
	c.memCache = make(map[string]cacheItem)
	c.memMutex.Unlock()

	if c.client != nil {
		var keys []string
		iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan %s*: %w", c.prefix, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis clear: %w", err)
			}
		}
	}

	c.logger.Info("Cache cleared")
	return nil
}

// Exists checks if a key exists in cache. A key found in memory wins over a
// Redis failure.
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	full := c.key(key)

	c.memMutex.RLock()
	item, inMemory := c.memCache[full]
	c.memMutex.RUnlock()
	if inMemory && time.Now().Before(item.expiresAt) {
		return true, nil
	}

	if c.client == nil {
		return false, nil
	}

	count, err := c.client.Exists(ctx, full).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", full, err)
	}
	return count > 0, nil
}

// GetStats returns cache statistics
func (c *CacheService) GetStats(ctx context.Context) map[string]interface{} {
	stats := make(map[string]interface{})

	if c.client != nil {
		size, err := c.client.DBSize(ctx).Result()
		if err == nil {
			stats["redis"] = map[string]interface{}{
				"available": true,
				"keys":      size,
			}
		} else {
			stats["redis"] = map[string]interface{}{
				"available": false,
				"error":     err.Error(),
			}
		}
	} else {
		stats["redis"] = map[string]interface{}{
			"available": false,
		}
	}

	c.memMutex.RLock()
	memSize := len(c.memCache)
	c.memMutex.RUnlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	stats["memory"] = map[string]interface{}{
		"size": memSize,
		"ttl":  c.ttl.String(),
	}
	stats["hits"] = hits
	stats["misses"] = misses
	stats["hit_rate"] = hitRate
	stats["prefix"] = c.prefix

	return stats
}

// Health reports the Redis backend. Without Redis, or with Redis down,
// the memory cache keeps serving.
func (c *CacheService) Health(ctx context.Context) models.ServiceInfo {
	info := models.ServiceInfo{Status: StatusDisabled}

	if c.client != nil {
		info.Status = StatusHealthy
		if err := c.client.Ping(ctx).Err(); err != nil {
			info.Status = StatusDegraded
			info.Error = err.Error()
		}
	}

	info.LastCheck = time.Now()
	return info
}

// cleanupExpired removes expired items from memory cache
func (c *CacheService) cleanupExpired() int {
	c.memMutex.Lock()
	defer c.memMutex.Unlock()

	removed := 0
	now := time.Now()
	for key, item := range c.memCache {
		if now.After(item.expiresAt) {
			delete(c.memCache, key)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine periodically drops expired memory entries until Close
func (c *CacheService) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := c.cleanupExpired(); removed > 0 {
					c.logger.WithField("removed", removed).Debug("Expired cache entries removed")
				}
			case <-c.stop:
				return
			}
		}
	}()
}

// Close stops the cleanup routine
func (c *CacheService) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}
