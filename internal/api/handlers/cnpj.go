package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/oguardiao/guardiao-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// CNPJHandler handles CNPJ validation requests
type CNPJHandler struct {
	validation services.ValidationServiceInterface
	maxBatch   int
	logger     *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(validation services.ValidationServiceInterface, maxBatch int, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		validation: validation,
		maxBatch:   maxBatch,
		logger:     logger,
	}
}

// Validate handles a single CNPJ validation
// @Summary Validate CNPJ
// @Description Validate a CNPJ (formatted or not) and return the verdict with its reason code
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.CNPJRequest true "CNPJ to validate"
// @Success 200 {object} models.CNPJVerdict
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/cnpj/validate [post]
func (h *CNPJHandler) Validate(c *gin.Context) {
	var req models.CNPJRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.respondVerdict(c, req.CNPJ)
}

// GetCNPJ handles validation of a CNPJ given in the path
// @Summary Validate CNPJ from path
// @Description Validate a CNPJ passed as path parameter (digits only, or URL-encoded formatted value)
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ number" example(11222333000181)
// @Success 200 {object} models.CNPJVerdict
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/cnpj/{cnpj} [get]
func (h *CNPJHandler) GetCNPJ(c *gin.Context) {
	h.respondVerdict(c, c.Param("cnpj"))
}

func (h *CNPJHandler) respondVerdict(c *gin.Context, cnpj string) {
	requestID := c.GetString("request_id")

	verdict, cached, err := h.validation.Validate(c.Request.Context(), cnpj)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CNPJ validation failed")

		respondError(c, http.StatusInternalServerError, "Internal server error", "Failed to validate CNPJ", "VALIDATION_ERROR")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       verdict.Cleaned,
		"valid":      verdict.Valid,
		"reason":     verdict.Reason,
		"cached":     cached,
	}).Info("CNPJ validated")

	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	c.JSON(http.StatusOK, verdict)
}

// Batch handles batch validation
// @Summary Validate CNPJs in batch
// @Description Validate a list of CNPJs, preserving input order
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "CNPJs to validate"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cnpj/batch [post]
func (h *CNPJHandler) Batch(c *gin.Context) {
	requestID := c.GetString("request_id")

	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if tooMany(c, "CNPJs", len(req.CNPJs), h.maxBatch) {
		return
	}

	response, err := h.validation.ValidateBatch(c.Request.Context(), req.CNPJs)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"count":      len(req.CNPJs),
			"error":      err.Error(),
		}).Error("Batch validation failed")

		respondError(c, http.StatusInternalServerError, "Internal server error", "Failed to process batch request", "BATCH_ERROR")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      response.Total,
		"valid":      response.Valid,
	}).Info("Batch request completed")

	c.JSON(http.StatusOK, response)
}

// Extract handles extraction of CNPJs from free text
// @Summary Extract CNPJs from text
// @Description Find every valid CNPJ, formatted or not, inside a text
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.ExtractRequest true "Text to scan"
// @Success 200 {object} models.ExtractResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/cnpj/extract [post]
func (h *CNPJHandler) Extract(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	found := h.validation.Extract(c.Request.Context(), req.Text)
	formatted := make([]string, len(found))
	for i, cnpj := range found {
		formatted[i] = utils.FormatCNPJ(cnpj)
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		CNPJs:     found,
		Formatted: formatted,
		Count:     len(found),
	})
}
