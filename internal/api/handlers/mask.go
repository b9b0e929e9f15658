package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/utils"
)

// MaskHandler applies input masks server side
type MaskHandler struct{}

// NewMaskHandler creates a new mask handler
func NewMaskHandler() *MaskHandler {
	return &MaskHandler{}
}

// CNPJ handles CNPJ masking
// @Summary Mask CNPJ input
// @Description Format a partial CNPJ input as 00.000.000/0000-00, writing each separator only once a digit follows it
// @Tags Mask
// @Accept json
// @Produce json
// @Param request body models.MaskRequest true "Raw input"
// @Success 200 {object} models.MaskResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/mask/cnpj [post]
func (h *MaskHandler) CNPJ(c *gin.Context) {
	var req models.MaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, maskResponse(utils.CNPJMask, req.Value))
}

// Date handles date masking
// @Summary Mask date input
// @Description Format a partial date input as DD/MM/YYYY; a complete valid date is also returned in ISO form
// @Tags Mask
// @Accept json
// @Produce json
// @Param request body models.MaskRequest true "Raw input"
// @Success 200 {object} models.MaskResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/mask/date [post]
func (h *MaskHandler) Date(c *gin.Context) {
	var req models.MaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response := maskResponse(utils.DateMask, req.Value)
	if response.Complete {
		if date, err := utils.ParseMaskedDate(response.Masked); err == nil {
			response.Date = date.Format("2006-01-02")
		}
	}

	c.JSON(http.StatusOK, response)
}

func maskResponse(mask utils.Mask, value string) models.MaskResponse {
	masked := mask.Apply(value)
	digits := len(utils.Digits(masked))
	return models.MaskResponse{
		Value:    value,
		Masked:   masked,
		Digits:   digits,
		Complete: digits == mask.MaxDigits,
	}
}
