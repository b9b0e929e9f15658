package services

import (
	"context"
	"time"

	"github.com/oguardiao/guardiao-api/internal/charts"
	"github.com/oguardiao/guardiao-api/internal/models"
)

// ValidationServiceInterface defines the interface for CNPJ verdicts
type ValidationServiceInterface interface {
	// Validate returns the verdict for one identifier and whether it came from cache
	Validate(ctx context.Context, cnpj string) (*models.CNPJVerdict, bool, error)

	// ValidateBatch returns one verdict per identifier, in input order
	ValidateBatch(ctx context.Context, cnpjs []string) (*models.BatchResponse, error)

	// Extract finds the valid identifiers embedded in free text
	Extract(ctx context.Context, text string) []string

	// Forget drops the cached verdict of one identifier, reporting whether
	// it was cached
	Forget(ctx context.Context, cnpj string) (bool, error)
}

// DashboardServiceInterface defines the interface for dashboard charts
type DashboardServiceInterface interface {
	// Build computes every chart for the certificates, cached per payload
	Build(ctx context.Context, req *models.DashboardRequest, now time.Time) (*charts.Dashboard, bool, error)
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with the default TTL
	Set(ctx context.Context, key string, value string) error

	// SetWithTTL stores a value in cache with an explicit TTL
	SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) map[string]interface{}

	// Health reports the state of the cache backend
	Health(ctx context.Context) models.ServiceInfo
}
