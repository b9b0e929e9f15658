package models

import (
	"time"

	"github.com/oguardiao/guardiao-api/internal/charts"
)

// DashboardRequest carries the certificates behind the dashboard charts.
// Year defaults to the current year.
type DashboardRequest struct {
	Certificates []CertificateInput `json:"certificates" binding:"dive"`
	Year         int                `json:"year" binding:"omitempty,min=1900,max=9999" example:"2025"`
}

// DashboardResponse bundles every chart dataset
type DashboardResponse struct {
	Year      int              `json:"year" example:"2025"`
	Charts    charts.Dashboard `json:"charts"`
	Cached    bool             `json:"cached" example:"false"`
	Timestamp time.Time        `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
