package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/sirupsen/logrus"
)

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	metrics *services.MetricsService
	limiter func() map[string]interface{}
	logger  *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler. limiter may be nil.
func NewMetricsHandler(metrics *services.MetricsService, limiter func() map[string]interface{}, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
		limiter: limiter,
		logger:  logger,
	}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Get request, latency, cache, rate limiter and runtime counters collected since start
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.MetricsResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.logger.WithField("request_id", c.GetString("request_id")).Debug("Getting application metrics")

	snapshot := h.metrics.Snapshot()
	if h.limiter != nil {
		snapshot.RateLimit = h.limiter()
	}

	c.JSON(http.StatusOK, snapshot)
}
