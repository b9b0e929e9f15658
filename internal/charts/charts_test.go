package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/oguardiao/guardiao-api/internal/certificate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func cert(typ certificate.Type, days int) certificate.Certificate {
	return certificate.Certificate{
		Type:       typ,
		ExpiryDate: time.Date(2025, time.March, 10+days, 0, 0, 0, 0, time.UTC),
	}
}

func sample() []certificate.Certificate {
	return []certificate.Certificate{
		cert(certificate.TypeECNPJ, -20), // Feb, expired
		cert(certificate.TypeECNPJ, 3),   // Mar, critical
		cert(certificate.TypeECPF, 10),   // Mar, alert
		cert(certificate.TypeECNPJ, 25),  // Apr, attention
		cert(certificate.TypeECNPJ, 45),  // Apr, valid
		cert(certificate.TypeECPF, 80),   // May, valid
		cert(certificate.TypeECNPJ, 400), // next year
	}
}

func TestTypeDistribution(t *testing.T) {
	chart := TypeDistribution(sample())

	assert.Equal(t, "doughnut", chart.Type)
	assert.Equal(t, []string{"e-CNPJ", "e-CPF"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, []int{5, 2}, chart.Datasets[0].Data)
	assert.Equal(t, []int{71, 29}, chart.Datasets[0].Percentages)
	assert.True(t, chart.HasData)
}

func TestTypeDistribution_Empty(t *testing.T) {
	chart := TypeDistribution(nil)

	assert.Equal(t, []int{0, 0}, chart.Datasets[0].Percentages)
	assert.False(t, chart.HasData)
	assert.Equal(t, NoDataMessage, chart.Message)
}

func TestExpiringBuckets(t *testing.T) {
	chart := ExpiringBuckets(sample(), now)

	assert.Equal(t, []string{"30 dias", "60 dias", "90 dias"}, chart.Labels)
	assert.Equal(t, []int{3, 1, 1}, chart.Datasets[0].Data)
}

func TestTimeline(t *testing.T) {
	chart := Timeline(sample(), 2025, now)

	require.Len(t, chart.Labels, 12)
	require.Len(t, chart.Datasets, 3)

	valid, expiring, expired := chart.Datasets[0], chart.Datasets[1], chart.Datasets[2]
	assert.Equal(t, "Válidos", valid.Label)
	assert.Equal(t, 1, expired.Data[1])
	assert.Equal(t, 2, expiring.Data[2])
	assert.Equal(t, 1, expiring.Data[3])
	assert.Equal(t, 1, valid.Data[3])
	assert.Equal(t, 1, valid.Data[4])

	total := 0
	for _, ds := range chart.Datasets {
		for _, v := range ds.Data {
			total += v
		}
	}
	assert.Equal(t, 6, total)
	assert.True(t, chart.HasData)

	empty := Timeline(sample(), 2020, now)
	assert.False(t, empty.HasData)
}

func TestCountStatuses(t *testing.T) {
	counts := CountStatuses(sample(), now)

	assert.Equal(t, StatusCounts{Valid: 3, Warning: 1, Critical: 2, Expired: 1, Total: 7}, counts)
}

func TestDashboardGet(t *testing.T) {
	d := Build(sample(), 2025, now)

	for _, name := range []string{ChartTypes, ChartExpiring, ChartTimeline} {
		_, ok := d.Get(name)
		assert.True(t, ok, name)
	}
	_, ok := d.Get("pie")
	assert.False(t, ok)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, ExpiringBuckets(sample(), now)))

	assert.Equal(t, "Period,Certificados expirando\r\n30 dias,3\r\n60 dias,1\r\n90 dias,1\r\n", buf.String())
}

func TestExportCSV_MultipleSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, Timeline(sample(), 2025, now)))

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\r\n")), []byte("\r\n"))
	require.Len(t, lines, 13)
	assert.Equal(t, "Period,Válidos,Expirando,Expirados", string(lines[0]))
	assert.Equal(t, "Mar,0,2,0", string(lines[3]))
}

func TestExportCSV_UnnamedSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, TypeDistribution(sample())))

	assert.Equal(t, "Period,Quantidade\r\ne-CNPJ,5\r\ne-CPF,2\r\n", buf.String())
}
