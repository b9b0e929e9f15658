package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"Invalid request"`
	Message   string            `json:"message" example:"Key: 'BatchRequest.CNPJs' Error:Field validation for 'CNPJs' failed on the 'max' tag"`
	Code      string            `json:"code,omitempty" example:"INVALID_REQUEST"`
	Details   []ValidationError `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string            `json:"path" example:"/api/v1/cnpj/batch"`
}

// ValidationError represents validation error details
type ValidationError struct {
	Field   string `json:"field" example:"cnpj"`
	Message string `json:"message" example:"CNPJ inválido."`
	Value   string `json:"value,omitempty" example:"11222333000191"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	Error     string    `json:"error,omitempty"`
}

// ReadinessResponse answers the readiness check
type ReadinessResponse struct {
	Ready     bool                   `json:"ready" example:"true"`
	Reason    string                 `json:"reason,omitempty" example:"shutting down"`
	Services  map[string]ServiceInfo `json:"services"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// LivenessResponse answers the liveness check
type LivenessResponse struct {
	Alive     bool      `json:"alive" example:"true"`
	Version   string    `json:"version" example:"1.0.0"`
	Uptime    string    `json:"uptime" example:"2h30m45s"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// CacheStatsResponse carries the cache counters and backend state
type CacheStatsResponse struct {
	Stats     map[string]interface{} `json:"stats"`
	Backend   ServiceInfo            `json:"backend"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// CacheActionResponse confirms a cache removal
type CacheActionResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Cache cleared"`
	CNPJ      string    `json:"cnpj,omitempty" example:"11.222.333/0001-81"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// MetricsResponse represents metrics response
type MetricsResponse struct {
	Requests    RequestsMetrics        `json:"requests"`
	Performance PerformanceMetrics     `json:"performance"`
	Cache       CacheMetrics           `json:"cache"`
	System      SystemMetrics          `json:"system"`
	RateLimit   map[string]interface{} `json:"rate_limit,omitempty"`
	Timestamp   time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RequestsMetrics represents request metrics
type RequestsMetrics struct {
	Total       int64   `json:"total" example:"1500"`
	Success     int64   `json:"success" example:"1450"`
	Errors      int64   `json:"errors" example:"50"`
	SuccessRate float64 `json:"success_rate" example:"96.67"`
}

// PerformanceMetrics represents performance metrics
type PerformanceMetrics struct {
	AvgResponseTimeMs float64 `json:"avg_response_time_ms" example:"1.8"`
	MaxResponseTimeMs float64 `json:"max_response_time_ms" example:"42.5"`
}

// CacheMetrics represents cache metrics
type CacheMetrics struct {
	HitRate float64 `json:"hit_rate" example:"85.5"`
	Hits    int64   `json:"hits" example:"1240"`
	Misses  int64   `json:"misses" example:"210"`
}

// SystemMetrics represents system metrics
type SystemMetrics struct {
	MemoryUsage float64 `json:"memory_usage" example:"12.5"`
	Goroutines  int     `json:"goroutines" example:"12"`
}
