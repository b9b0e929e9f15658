package services

import (
	"math"
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"

	"github.com/oguardiao/guardiao-api/internal/models"
)

const (
	requestDurationName = "guardiao_http_request_duration_seconds"
	cacheLookupsName    = "guardiao_cache_lookups_total"
)

// Cache lookup operations
const (
	CacheOpVerdict   = "verdict"
	CacheOpDashboard = "dashboard"
)

// MetricsService records Prometheus request and cache metrics on its own
// registry. Snapshot reads the same collectors back for the JSON view.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	maxDuration     atomic.Int64
	logger          *logrus.Logger
}

// NewMetricsService creates the registry and its collectors
func NewMetricsService(logger *logrus.Logger) *MetricsService {
	m := &MetricsService{registry: prometheus.NewRegistry(), logger: logger}

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    requestDurationName,
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status"})

	m.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: cacheLookupsName,
		Help: "Cache lookups by operation and result",
	}, []string{"operation", "result"})

	maxDuration := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "guardiao_http_request_duration_max_seconds",
		Help: "Slowest HTTP request served since start",
	}, func() float64 {
		return time.Duration(m.maxDuration.Load()).Seconds()
	})

	m.registry.MustRegister(
		m.requestDuration,
		m.cacheLookups,
		maxDuration,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
}

// Handler serves the registry in the Prometheus text format
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// RecordRequest records one served request under its route pattern
func (m *MetricsService) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	if path == "" {
		path = "unmatched"
	}
	m.requestDuration.WithLabelValues(path, method, strconv.Itoa(statusCode)).Observe(duration.Seconds())

	for {
		current := m.maxDuration.Load()
		if int64(duration) <= current || m.maxDuration.CompareAndSwap(current, int64(duration)) {
			return
		}
	}
}

// RecordCacheHit records a cache lookup of operation
func (m *MetricsService) RecordCacheHit(operation string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(operation, result).Inc()
}

// Snapshot summarizes the collectors; 5xx responses count as errors
func (m *MetricsService) Snapshot() models.MetricsResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response := models.MetricsResponse{
		System: models.SystemMetrics{
			MemoryUsage: round2(float64(mem.Alloc) / 1024 / 1024), // MB
			Goroutines:  runtime.NumGoroutine(),
		},
		Timestamp: time.Now(),
	}

	families, err := m.registry.Gather()
	if err != nil {
		m.logger.WithError(err).Warn("Failed to gather some metrics")
	}

	var seconds float64
	for _, family := range families {
		switch family.GetName() {
		case requestDurationName:
			for _, metric := range family.GetMetric() {
				count := int64(metric.GetHistogram().GetSampleCount())
				seconds += metric.GetHistogram().GetSampleSum()
				response.Requests.Total += count
				if status, _ := strconv.Atoi(labelValue(metric, "status")); status >= 500 {
					response.Requests.Errors += count
				}
			}
		case cacheLookupsName:
			for _, metric := range family.GetMetric() {
				value := int64(metric.GetCounter().GetValue())
				if labelValue(metric, "result") == "hit" {
					response.Cache.Hits += value
				} else {
					response.Cache.Misses += value
				}
			}
		}
	}

	response.Requests.Success = response.Requests.Total - response.Requests.Errors
	if total := response.Requests.Total; total > 0 {
		response.Requests.SuccessRate = round2(float64(response.Requests.Success) / float64(total) * 100)
		response.Performance.AvgResponseTimeMs = round2(seconds / float64(total) * 1000)
	}
	response.Performance.MaxResponseTimeMs = round2(float64(time.Duration(m.maxDuration.Load()).Microseconds()) / 1000)

	if lookups := response.Cache.Hits + response.Cache.Misses; lookups > 0 {
		response.Cache.HitRate = round2(float64(response.Cache.Hits) / float64(lookups) * 100)
	}

	return response
}

func labelValue(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
