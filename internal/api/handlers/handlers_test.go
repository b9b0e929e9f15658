package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguardiao/guardiao-api/internal/charts"
	"github.com/oguardiao/guardiao-api/internal/logger"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/oguardiao/guardiao-api/internal/validation"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

type failingValidation struct{}

func (failingValidation) Validate(context.Context, string) (*models.CNPJVerdict, bool, error) {
	return nil, false, errors.New("cache exploded")
}

func (failingValidation) ValidateBatch(context.Context, []string) (*models.BatchResponse, error) {
	return nil, context.DeadlineExceeded
}

func (failingValidation) Extract(context.Context, string) []string { return []string{} }

func (failingValidation) Forget(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, error)     { return "", services.ErrCacheMiss }
func (brokenCache) Set(context.Context, string, string) error       { return nil }
func (brokenCache) Delete(context.Context, string) error            { return errors.New("down") }
func (brokenCache) Clear(context.Context) error                     { return errors.New("redis scan: down") }
func (brokenCache) Exists(context.Context, string) (bool, error)    { return false, errors.New("down") }
func (brokenCache) GetStats(context.Context) map[string]interface{} { return map[string]interface{}{} }

func (brokenCache) SetWithTTL(context.Context, string, string, time.Duration) error { return nil }

func (brokenCache) Health(context.Context) models.ServiceInfo {
	return models.ServiceInfo{Status: services.StatusDegraded, Error: "down"}
}

type staticChecker map[string]models.ServiceInfo

func (s staticChecker) Health(context.Context) map[string]models.ServiceInfo { return s }

type failingDashboard struct{}

func (failingDashboard) Build(context.Context, *models.DashboardRequest, time.Time) (*charts.Dashboard, bool, error) {
	return nil, false, errors.New("marshal failed")
}

func post(handler gin.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST(path, handler)

	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func cert(name string, days int) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"type":        "e-cnpj",
		"expiry_date": time.Date(2025, time.March, 10+days, 0, 0, 0, 0, time.UTC),
	}
}

func newCertificateHandler() *CertificateHandler {
	h := NewCertificateHandler(100, logger.Discard())
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestCertificateStatus_Levels(t *testing.T) {
	h := newCertificateHandler()

	rec := post(h.Status, "/status", map[string]interface{}{
		"certificates": []interface{}{
			cert("a", 40), cert("b", 30), cert("c", 15), cert("d", 5), cert("e", 0), cert("f", -1),
		},
		"sort_by": "expiry",
		"order":   "desc",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 6, resp.Total)
	assert.Equal(t, "asc", resp.NextOrder)

	want := []struct {
		days  int
		level string
		alert int
		class string
	}{
		{40, "valido", 0, "certificate-valid"},
		{30, "atencao", 30, "certificate-expiring"},
		{15, "alerta", 15, "certificate-expiring"},
		{5, "critico", 5, "certificate-expiring"},
		{0, "critico", 0, "certificate-expiring"},
		{-1, "vencido", 0, "certificate-expired"},
	}
	for i, w := range want {
		got := resp.Results[i]
		assert.Equal(t, w.days, got.DaysLeft, got.Name)
		assert.Equal(t, w.level, string(got.Level), got.Name)
		assert.Equal(t, w.alert, got.Alert, got.Name)
		assert.Equal(t, w.class, got.Status.Class, got.Name)
	}
	assert.Equal(t, "Expira em 0 dias", resp.Results[4].Status.Text)
}

func TestCertificateStatus_TooMany(t *testing.T) {
	h := NewCertificateHandler(1, logger.Discard())

	rec := post(h.Status, "/status", map[string]interface{}{
		"certificates": []interface{}{cert("a", 1), cert("b", 2)},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOO_MANY_ITEMS")
}

func TestUploadCheck_Dates(t *testing.T) {
	h := newCertificateHandler()

	tests := []struct {
		name   string
		issue  time.Time
		expiry time.Time
		code   int
		reason string
	}{
		{"expires today", time.Time{}, fixedNow, http.StatusOK, ""},
		{"expired yesterday", time.Time{}, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), http.StatusUnprocessableEntity, "EXPIRY_IN_PAST"},
		{"expiry before issue", fixedNow.AddDate(0, 0, 10), fixedNow.AddDate(0, 0, 5), http.StatusUnprocessableEntity, "EXPIRY_BEFORE_ISSUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]interface{}{
				"filename":    "cert.pfx",
				"size":        2048,
				"expiry_date": tt.expiry,
			}
			if !tt.issue.IsZero() {
				body["issue_date"] = tt.issue
			}

			rec := post(h.UploadCheck, "/check", body)
			require.Equal(t, tt.code, rec.Code)

			var resp models.UploadCheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.reason, resp.Reason)
			assert.Equal(t, tt.reason == "", resp.Valid)
		})
	}
}

func TestAlerts_DueThresholds(t *testing.T) {
	h := newCertificateHandler()

	rec := post(h.Alerts, "/alerts", map[string]interface{}{
		"certificates": []interface{}{cert("a", 30), cert("b", 16), cert("c", 15), cert("d", 5), cert("e", 31)},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AlertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Len(t, resp.Critical, 1)
	assert.Len(t, resp.Warning, 1)
	assert.Len(t, resp.Attention, 2)

	require.Len(t, resp.Due, 3)
	thresholds := []int{resp.Due[0].Threshold, resp.Due[1].Threshold, resp.Due[2].Threshold}
	assert.Equal(t, []int{30, 15, 5}, thresholds)
}

func TestValidate_ServiceError(t *testing.T) {
	h := NewCNPJHandler(failingValidation{}, 10, logger.Discard())

	rec := post(h.Validate, "/validate", map[string]string{"cnpj": "11222333000181"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")

	rec = post(h.Batch, "/batch", map[string]interface{}{"cnpjs": []string{"11222333000181"}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "BATCH_ERROR")
}

func TestDashboard_ServiceError(t *testing.T) {
	h := NewDashboardHandler(failingDashboard{}, 10, logger.Discard())

	rec := post(h.Charts, "/charts", map[string]interface{}{
		"certificates": []interface{}{cert("a", 10)},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DASHBOARD_ERROR")
}

func TestRespondBindError_MalformedJSON(t *testing.T) {
	h := newCertificateHandler()

	r := gin.New()
	r.POST("/status", h.Status)
	req := httptest.NewRequest(http.MethodPost, "/status", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Empty(t, resp.Details)
}

func TestFieldMessage_CNPJ(t *testing.T) {
	h := newCertificateHandler()

	c := cert("a", 10)
	c["cnpj"] = "11.111.111/1111-11"
	rec := post(h.Status, "/status", map[string]interface{}{"certificates": []interface{}{c}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "StatusRequest.certificates[0].cnpj", resp.Details[0].Field)
	assert.NotEmpty(t, resp.Details[0].Message)
}

func serve(method, path string, handler gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, path, handler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestCacheHandler_BackendErrors(t *testing.T) {
	h := NewCacheHandler(brokenCache{}, failingValidation{}, logger.Discard())

	rec := serve(http.MethodDelete, "/cache/clear", h.Clear, "/cache/clear")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "CACHE_CLEAR_ERROR")

	rec = serve(http.MethodDelete, "/cache/:cnpj", h.Delete, "/cache/11222333000181")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "CACHE_DELETE_ERROR")

	rec = serve(http.MethodGet, "/cache/stats", h.GetStats, "/cache/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.CacheStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, services.StatusDegraded, stats.Backend.Status)
}

func TestHealthHandler_Degraded(t *testing.T) {
	h := NewHealthHandler(staticChecker{
		"redis": {Status: services.StatusDegraded, Error: "connection refused"},
	}, logger.Discard())

	rec := serve(http.MethodGet, "/health", h.GetHealth, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, services.StatusDegraded, health.Status)
	assert.Equal(t, "connection refused", health.Services["redis"].Error)

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/ready", h.GetReadiness, "/ready").Code)
}

func TestHealthHandler_DrainFailsReadiness(t *testing.T) {
	h := NewHealthHandler(staticChecker{"redis": {Status: services.StatusHealthy}}, logger.Discard())

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/ready", h.GetReadiness, "/ready").Code)

	h.Drain()
	h.Drain()

	rec := serve(http.MethodGet, "/ready", h.GetReadiness, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var ready models.ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	assert.False(t, ready.Ready)
	assert.Equal(t, "shutting down", ready.Reason)

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/live", h.GetLiveness, "/live").Code)
}

func TestMaskHandler_DateDigits(t *testing.T) {
	h := NewMaskHandler()

	tests := []struct {
		in       string
		masked   string
		digits   int
		complete bool
		date     string
	}{
		{"1", "1", 1, false, ""},
		{"10a03", "10/03", 4, false, ""},
		{"10/03/2025", "10/03/2025", 8, true, "2025-03-10"},
		{"31022025", "31/02/2025", 8, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rec := post(h.Date, "/mask/date", map[string]string{"value": tt.in})
			require.Equal(t, http.StatusOK, rec.Code)

			var resp models.MaskResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.masked, resp.Masked)
			assert.Equal(t, tt.digits, resp.Digits)
			assert.Equal(t, tt.complete, resp.Complete)
			assert.Equal(t, tt.date, resp.Date)
		})
	}
}
