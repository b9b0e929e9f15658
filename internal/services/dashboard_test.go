package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguardiao/guardiao-api/internal/certificate"
	"github.com/oguardiao/guardiao-api/internal/logger"
	"github.com/oguardiao/guardiao-api/internal/models"
)

var dashboardNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func dashboardRequest() *models.DashboardRequest {
	return &models.DashboardRequest{
		Certificates: []models.CertificateInput{
			{ID: 1, Type: certificate.TypeECNPJ, ExpiryDate: time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Type: certificate.TypeECPF, ExpiryDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Type: certificate.TypeECNPJ, ExpiryDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestDashboardService_Build(t *testing.T) {
	cache, _ := newTestCache(t)
	svc := NewDashboardService(cache, time.Minute, nil, logger.Discard())
	ctx := context.Background()

	dashboard, cached, err := svc.Build(ctx, dashboardRequest(), dashboardNow)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 3, dashboard.Counts.Total)
	assert.Equal(t, 1, dashboard.Counts.Expired)
	assert.Equal(t, []int{2, 1}, dashboard.Types.Datasets[0].Data)
	assert.Equal(t, 1, dashboard.Timeline.Datasets[2].Data[0])

	again, cached, err := svc.Build(ctx, dashboardRequest(), dashboardNow)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, dashboard.Counts, again.Counts)
	assert.Equal(t, dashboard.Timeline.Datasets, again.Timeline.Datasets)
}

func TestDashboardService_KeyDependsOnDayAndYear(t *testing.T) {
	req := dashboardRequest()

	base, err := dashboardKey(req, 2025, dashboardNow)
	require.NoError(t, err)

	sameDay, err := dashboardKey(req, 2025, dashboardNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, base, sameDay)

	nextDay, err := dashboardKey(req, 2025, dashboardNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotEqual(t, base, nextDay)

	otherYear, err := dashboardKey(req, 2024, dashboardNow)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherYear)
}

func TestDashboardService_DefaultYear(t *testing.T) {
	svc := NewDashboardService(NewCacheService(nil, "", time.Minute, logger.Discard()), time.Minute, nil, logger.Discard())

	dashboard, _, err := svc.Build(context.Background(), &models.DashboardRequest{}, dashboardNow)
	require.NoError(t, err)
	assert.False(t, dashboard.Timeline.HasData)
	assert.Equal(t, 0, dashboard.Counts.Total)
}
