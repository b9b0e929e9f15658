package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oguardiao/guardiao-api/internal/charts"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/sirupsen/logrus"
)

const dashboardKeyPrefix = "dashboard:"

// DashboardService computes the dashboard charts and caches them per payload
type DashboardService struct {
	cache   CacheServiceInterface
	ttl     time.Duration
	logger  *logrus.Logger
	metrics *MetricsService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(cache CacheServiceInterface, ttl time.Duration, metrics *MetricsService, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// Build returns the charts for req as of now. The second value reports a
// cache hit. A zero Year means the year of now.
func (s *DashboardService) Build(ctx context.Context, req *models.DashboardRequest, now time.Time) (*charts.Dashboard, bool, error) {
	year := req.Year
	if year == 0 {
		year = now.Year()
	}

	key, err := dashboardKey(req, year, now)
	if err != nil {
		return nil, false, err
	}

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var dashboard charts.Dashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			s.metrics.RecordCacheHit(CacheOpDashboard, true)
			return &dashboard, true, nil
		}
		s.logger.WithField("key", key).Warn("Failed to unmarshal cached dashboard")
	}
	s.metrics.RecordCacheHit(CacheOpDashboard, false)

	dashboard := charts.Build(models.Certificates(req.Certificates), year, now)

	if data, err := json.Marshal(dashboard); err == nil {
		if err := s.cache.SetWithTTL(ctx, key, string(data), s.ttl); err != nil {
			s.logger.WithError(err).Warn("Failed to cache dashboard")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"certificates": len(req.Certificates),
		"year":         year,
	}).Debug("Dashboard computed")

	return &dashboard, false, nil
}

// dashboardKey hashes the payload together with the current day, since the
// remaining days of every certificate change at midnight.
func dashboardKey(req *models.DashboardRequest, year int, now time.Time) (string, error) {
	payload, err := json.Marshal(req.Certificates)
	if err != nil {
		return "", fmt.Errorf("failed to encode certificates: %w", err)
	}

	h := sha256.New()
	h.Write(payload)
	fmt.Fprintf(h, "|%d|%s", year, now.Format("2006-01-02"))
	return dashboardKeyPrefix + hex.EncodeToString(h.Sum(nil)), nil
}
