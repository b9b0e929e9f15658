package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/charts"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/sirupsen/logrus"
)

// DashboardHandler serves the dashboard chart datasets
type DashboardHandler struct {
	dashboard  services.DashboardServiceInterface
	maxEntries int
	logger     *logrus.Logger
	now        func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface, maxEntries int, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard:  dashboard,
		maxEntries: maxEntries,
		logger:     logger,
		now:        time.Now,
	}
}

// Charts handles the dashboard datasets
// @Summary Dashboard charts
// @Description Compute the status counters, type distribution, 30/60/90 day expiry and monthly timeline charts
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body models.DashboardRequest true "Certificates and timeline year"
// @Success 200 {object} models.DashboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/dashboard/charts [post]
func (h *DashboardHandler) Charts(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	now := h.now()
	dashboard, cached, err := h.dashboard.Build(c.Request.Context(), req, now)
	if err != nil {
		h.fail(c, err)
		return
	}

	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		Year:      yearOf(req, now),
		Charts:    *dashboard,
		Cached:    cached,
		Timestamp: now,
	})
}

// ExportCSV handles the CSV download of one chart
// @Summary Export chart as CSV
// @Description Download one chart (types, expiring or timeline) as CSV, one row per label and one column per series
// @Tags Dashboard
// @Accept json
// @Produce text/csv
// @Param chart path string true "Chart name" Enums(types, expiring, timeline)
// @Param request body models.DashboardRequest true "Certificates and timeline year"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/dashboard/charts/{chart}/csv [post]
func (h *DashboardHandler) ExportCSV(c *gin.Context) {
	name := c.Param("chart")

	req, ok := h.bind(c)
	if !ok {
		return
	}

	now := h.now()
	dashboard, _, err := h.dashboard.Build(c.Request.Context(), req, now)
	if err != nil {
		h.fail(c, err)
		return
	}

	chart, found := dashboard.Get(name)
	if !found {
		respondError(c, http.StatusNotFound, "Not found", fmt.Sprintf("Unknown chart %q", name), "UNKNOWN_CHART")
		return
	}

	var buf bytes.Buffer
	if err := charts.ExportCSV(&buf, chart); err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%d.csv", name, yearOf(req, now))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *DashboardHandler) bind(c *gin.Context) (*models.DashboardRequest, bool) {
	var req models.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return nil, false
	}
	if tooMany(c, "certificates", len(req.Certificates), h.maxEntries) {
		return nil, false
	}
	return &req, true
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Error("Failed to build dashboard")

	respondError(c, http.StatusInternalServerError, "Internal server error", "Failed to build dashboard", "DASHBOARD_ERROR")
}

func yearOf(req *models.DashboardRequest, now time.Time) int {
	if req.Year != 0 {
		return req.Year
	}
	return now.Year()
}
