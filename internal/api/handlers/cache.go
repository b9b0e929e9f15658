package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/oguardiao/guardiao-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// CacheHandler exposes cache administration
type CacheHandler struct {
	cache      services.CacheServiceInterface
	validation services.ValidationServiceInterface
	logger     *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cache services.CacheServiceInterface, validation services.ValidationServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cache:      cache,
		validation: validation,
		logger:     logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Hit and miss counters, memory fallback size and Redis backend state
// @Tags Cache
// @Produce json
// @Success 200 {object} models.CacheStatsResponse
// @Router /api/v1/cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, models.CacheStatsResponse{
		Stats:     h.cache.GetStats(ctx),
		Backend:   h.cache.Health(ctx),
		Timestamp: time.Now(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Clear every cached verdict and dashboard
// @Tags Cache
// @Produce json
// @Success 200 {object} models.CacheActionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	logger := h.logger.WithField("request_id", c.GetString("request_id"))

	if err := h.cache.Clear(c.Request.Context()); err != nil {
		logger.WithError(err).Error("Failed to clear cache")
		respondError(c, http.StatusInternalServerError, "Internal server error", "Failed to clear cache", "CACHE_CLEAR_ERROR")
		return
	}

	logger.Info("Cache cleared")
	c.JSON(http.StatusOK, models.CacheActionResponse{
		Success:   true,
		Message:   "Cache cleared successfully",
		Timestamp: time.Now(),
	})
}

// Delete handles specific cache entry deletion
// @Summary Delete a cached CNPJ verdict
// @Description Delete the cached verdict of one CNPJ
// @Tags Cache
// @Param cnpj path string true "CNPJ number, digits only or URL-encoded formatted value"
// @Produce json
// @Success 200 {object} models.CacheActionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/{cnpj} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	cnpj := utils.CleanCNPJ(c.Param("cnpj"))
	logger := h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"cnpj":       cnpj,
	})

	if len(cnpj) != utils.CNPJLength {
		respondError(c, http.StatusBadRequest, "Invalid CNPJ format", utils.ReasonMessage(utils.ErrWrongLength), "INVALID_CNPJ")
		return
	}

	removed, err := h.validation.Forget(c.Request.Context(), cnpj)
	switch {
	case err != nil:
		logger.WithError(err).Error("Failed to delete cached verdict")
		respondError(c, http.StatusInternalServerError, "Internal server error", "Failed to delete from cache", "CACHE_DELETE_ERROR")
	case !removed:
		respondError(c, http.StatusNotFound, "Not found", "CNPJ not found in cache", "CNPJ_NOT_IN_CACHE")
	default:
		logger.Info("Cached verdict deleted")
		c.JSON(http.StatusOK, models.CacheActionResponse{
			Success:   true,
			Message:   "CNPJ deleted from cache successfully",
			CNPJ:      utils.FormatCNPJ(cnpj),
			Timestamp: time.Now(),
		})
	}
}
