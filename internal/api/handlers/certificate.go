package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/internal/certificate"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/sirupsen/logrus"
)

// CertificateHandler computes certificate states and checks uploads
type CertificateHandler struct {
	maxEntries int
	logger     *logrus.Logger
	now        func() time.Time
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(maxEntries int, logger *logrus.Logger) *CertificateHandler {
	return &CertificateHandler{
		maxEntries: maxEntries,
		logger:     logger,
		now:        time.Now,
	}
}

// Status handles the certificate table state
// @Summary Certificate status
// @Description Compute days left, card status, level and due alert of each certificate, applying the table filter and sort
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body models.StatusRequest true "Certificates, filter and sort"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/certificates/status [post]
func (h *CertificateHandler) Status(c *gin.Context) {
	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if tooMany(c, "certificates", len(req.Certificates), h.maxEntries) {
		return
	}
	if req.Filter.Status != "" {
		if _, ok := certificate.ParseLevel(string(req.Filter.Status)); !ok {
			respondError(c, http.StatusBadRequest, "Invalid request", "Unknown status filter "+string(req.Filter.Status), "INVALID_FILTER")
			return
		}
	}

	now := h.now()
	certs := certificate.Apply(models.Certificates(req.Certificates), req.Filter, now)

	order := req.Order
	if order == "" {
		order = certificate.OrderAsc
	}
	certificate.Sort(certs, req.SortBy, order)

	results := make([]models.CertificateStatus, len(certs))
	for i, cert := range certs {
		days := cert.DaysLeft(now)
		level := certificate.LevelFor(days)
		threshold, _ := certificate.DueAlert(days)
		results[i] = models.CertificateStatus{
			Certificate: cert,
			DaysLeft:    days,
			Status:      certificate.Classify(days),
			Level:       level,
			LevelLabel:  level.Label(),
			Alert:       threshold,
		}
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"received":   len(req.Certificates),
		"matched":    len(results),
	}).Debug("Certificate status computed")

	c.JSON(http.StatusOK, models.StatusResponse{
		Results:   results,
		Total:     len(results),
		NextOrder: certificate.ToggleOrder(order),
		Timestamp: now,
	})
}

// UploadCheck handles certificate upload pre-validation
// @Summary Check certificate upload
// @Description Check the file name, size and dates of a certificate before it is uploaded
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body models.UploadCheckRequest true "File description"
// @Success 200 {object} models.UploadCheckResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.UploadCheckResponse
// @Router /api/v1/certificates/upload/check [post]
func (h *CertificateHandler) UploadCheck(c *gin.Context) {
	var req models.UploadCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := certificate.ValidateUpload(req.Filename, req.Size)
	if err == nil && req.ExpiryDate != nil {
		var issue time.Time
		if req.IssueDate != nil {
			issue = *req.IssueDate
		}
		err = certificate.ValidateDates(issue, *req.ExpiryDate, h.now())
	}

	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"filename":   req.Filename,
			"size":       req.Size,
			"error":      err.Error(),
		}).Info("Certificate upload rejected")

		c.JSON(http.StatusUnprocessableEntity, models.UploadCheckResponse{
			Valid:   false,
			Reason:  certificate.UploadReason(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadCheckResponse{Valid: true})
}

// publicMessage is the user facing sentence behind a wrapped upload error
func publicMessage(err error) string {
	for _, target := range []error{
		certificate.ErrEmptyFile,
		certificate.ErrInvalidExtension,
		certificate.ErrFileTooLarge,
		certificate.ErrExpiryInPast,
		certificate.ErrExpiryBeforeIssue,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// Alerts handles the expiry alert groups
// @Summary Certificate alerts
// @Description Group certificates expiring in the next 30 days by urgency and list those reaching an alert threshold today
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body models.AlertsRequest true "Certificates"
// @Success 200 {object} models.AlertsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/certificates/alerts [post]
func (h *CertificateHandler) Alerts(c *gin.Context) {
	var req models.AlertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if tooMany(c, "certificates", len(req.Certificates), h.maxEntries) {
		return
	}

	now := h.now()
	certs := models.Certificates(req.Certificates)
	groups := certificate.GroupAlerts(certs, now)

	due := []models.DueAlert{}
	for _, cert := range certs {
		if threshold, ok := certificate.DueAlert(cert.DaysLeft(now)); ok {
			due = append(due, models.DueAlert{Certificate: cert, Threshold: threshold})
		}
	}

	c.JSON(http.StatusOK, models.AlertsResponse{
		AlertGroups: groups,
		Due:         due,
		Total:       groups.Total(),
		Timestamp:   now,
	})
}
