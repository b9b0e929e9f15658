package handlers

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/sirupsen/logrus"
)

// Version is the API version reported by the health endpoints
const Version = "1.0.0"

// HealthChecker reports the state of each external dependency
type HealthChecker interface {
	Health(ctx context.Context) map[string]models.ServiceInfo
}

// HealthHandler serves the health endpoints
type HealthHandler struct {
	checker  HealthChecker
	logger   *logrus.Logger
	started  time.Time
	draining atomic.Bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
		started: time.Now(),
	}
}

// Drain makes readiness fail so load balancers stop routing here
// while in-flight requests finish.
func (h *HealthHandler) Drain() {
	if h.draining.CompareAndSwap(false, true) {
		h.logger.Info("Readiness now failing, draining connections")
	}
}

// overallStatus is degraded as soon as one dependency is
func overallStatus(checks map[string]models.ServiceInfo) string {
	for _, info := range checks {
		if info.Status == services.StatusDegraded {
			return services.StatusDegraded
		}
	}
	return services.StatusHealthy
}

// GetHealth handles general health check
// @Summary Health check
// @Description Health of the API and its dependencies. A degraded Redis still answers 200: the memory cache takes over.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	checks := h.checker.Health(c.Request.Context())

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    overallStatus(checks),
		Timestamp: time.Now(),
		Version:   Version,
		Services:  checks,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
	})
}

// GetReadiness handles readiness check
// @Summary Readiness check
// @Description Ready while the server accepts traffic; fails once shutdown has started
// @Tags Health
// @Produce json
// @Success 200 {object} models.ReadinessResponse
// @Failure 503 {object} models.ReadinessResponse
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	response := models.ReadinessResponse{
		Ready:     true,
		Services:  h.checker.Health(c.Request.Context()),
		Timestamp: time.Now(),
	}

	if h.draining.Load() {
		response.Ready = false
		response.Reason = "shutting down"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLiveness handles liveness check
// @Summary Liveness check
// @Description Check if the API is alive and responding
// @Tags Health
// @Produce json
// @Success 200 {object} models.LivenessResponse
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, models.LivenessResponse{
		Alive:     true,
		Version:   Version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now(),
	})
}
