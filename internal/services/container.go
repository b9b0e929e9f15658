package services

import (
	"context"
	"fmt"

	"github.com/oguardiao/guardiao-api/internal/config"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config            *config.Config
	logger            *logrus.Logger
	redisClient       *redis.Client
	cache             *CacheService
	CacheService      CacheServiceInterface
	ValidationService ValidationServiceInterface
	DashboardService  DashboardServiceInterface
	Metrics           *MetricsService
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if cfg.Redis.Enabled {
		container.initRedis()
	} else {
		logger.Info("Redis disabled, using memory cache")
	}

	if err := container.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// NewContainerWithClient builds the services around an existing Redis client,
// which may be nil for a memory-only cache.
func NewContainerWithClient(cfg *config.Config, client *redis.Client, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config:      cfg,
		logger:      logger,
		redisClient: client,
	}

	if err := container.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initRedis connects to Redis; on failure the container runs on the memory cache
func (c *Container) initRedis() {
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeouts().HealthCheckTimeout)
	defer cancel()

	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.WithError(err).Warn("Redis connection failed, running with memory cache")
		_ = c.redisClient.Close()
		c.redisClient = nil
	} else {
		c.logger.WithField("addr", c.config.Redis.Addr()).Info("Redis connection established")
	}
}

// initServices initializes all services
func (c *Container) initServices() error {
	if c.config.Cache.VerdictTTL <= 0 || c.config.Cache.DashboardTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}

	c.Metrics = NewMetricsService(c.logger)

	c.cache = NewCacheService(c.redisClient, c.config.Cache.Prefix, c.config.Cache.VerdictTTL, c.logger)
	if c.config.Cache.CleanupInterval > 0 {
		c.cache.StartCleanupRoutine(c.config.Cache.CleanupInterval)
	}
	c.CacheService = c.cache

	c.ValidationService = NewValidationService(c.CacheService, c.Metrics, c.logger)
	c.DashboardService = NewDashboardService(c.CacheService, c.config.Cache.DashboardTTL, c.Metrics, c.logger)

	return nil
}

// Close closes all service connections
func (c *Container) Close() error {
	var errors []error

	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to stop cache: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errors)
	}

	return nil
}

// Health checks the external dependencies within the health check timeout
func (c *Container) Health(ctx context.Context) map[string]models.ServiceInfo {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeouts().HealthCheckTimeout)
	defer cancel()

	return map[string]models.ServiceInfo{
		"redis": c.cache.Health(ctx),
	}
}
