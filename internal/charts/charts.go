// Package charts builds the datasets behind the dashboard charts.
package charts

import (
	"math"
	"time"

	"github.com/oguardiao/guardiao-api/internal/certificate"
)

// Chart identifiers used by the API
const (
	ChartTypes    = "types"
	ChartExpiring = "expiring"
	ChartTimeline = "timeline"
)

// NoDataMessage replaces a chart whose datasets are all empty
const NoDataMessage = "Sem dados suficientes para exibir o gráfico"

// Months are the timeline labels
var Months = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Dataset is one series of a chart
type Dataset struct {
	Label           string   `json:"label,omitempty" example:"Certificados expirando"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"background_color,omitempty"`
	BorderColor     string   `json:"border_color,omitempty"`
	Percentages     []int    `json:"percentages,omitempty"`
}

// Chart is a chart type plus its labels and series
type Chart struct {
	Type     string    `json:"type" example:"bar"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	HasData  bool      `json:"has_data"`
	Message  string    `json:"message,omitempty"`
}

func (c *Chart) markEmpty() {
	for _, ds := range c.Datasets {
		for _, v := range ds.Data {
			if v != 0 {
				c.HasData = true
				return
			}
		}
	}
	c.HasData = false
	c.Message = NoDataMessage
}

// TypeDistribution is the e-CNPJ / e-CPF donut
func TypeDistribution(certs []certificate.Certificate) Chart {
	var ecnpj, ecpf int
	for _, cert := range certs {
		switch cert.Type {
		case certificate.TypeECNPJ:
			ecnpj++
		case certificate.TypeECPF:
			ecpf++
		}
	}

	data := []int{ecnpj, ecpf}
	chart := Chart{
		Type:   "doughnut",
		Labels: []string{certificate.TypeECNPJ.Label(), certificate.TypeECPF.Label()},
		Datasets: []Dataset{{
			Data:            data,
			BackgroundColor: []string{"#3B82F6", "#1E3A8A"},
			Percentages:     percentages(data),
		}},
	}
	chart.markEmpty()
	return chart
}

// percentages rounds each share of the total; all zero when total is 0
func percentages(data []int) []int {
	total := 0
	for _, v := range data {
		total += v
	}

	out := make([]int, len(data))
	if total == 0 {
		return out
	}
	for i, v := range data {
		out[i] = int(math.Round(float64(v) / float64(total) * 100))
	}
	return out
}

// ExpiringBuckets counts certificates expiring within 30, 31-60 and 61-90 days
func ExpiringBuckets(certs []certificate.Certificate, now time.Time) Chart {
	data := make([]int, 3)
	for _, cert := range certs {
		days := cert.DaysLeft(now)
		switch {
		case days < 0:
		case days <= 30:
			data[0]++
		case days <= 60:
			data[1]++
		case days <= 90:
			data[2]++
		}
	}

	chart := Chart{
		Type:   "bar",
		Labels: []string{"30 dias", "60 dias", "90 dias"},
		Datasets: []Dataset{{
			Label:           "Certificados expirando",
			Data:            data,
			BackgroundColor: []string{"#EF4444", "#F59E0B", "#10B981"},
		}},
	}
	chart.markEmpty()
	return chart
}

// Timeline counts, per month of year, the certificates expiring that month
// split by their current state.
func Timeline(certs []certificate.Certificate, year int, now time.Time) Chart {
	valid := make([]int, 12)
	expiring := make([]int, 12)
	expired := make([]int, 12)

	for _, cert := range certs {
		if cert.ExpiryDate.Year() != year {
			continue
		}
		month := int(cert.ExpiryDate.Month()) - 1
		days := cert.DaysLeft(now)
		switch {
		case days < 0:
			expired[month]++
		case days <= certificate.ExpiringWindow:
			expiring[month]++
		default:
			valid[month]++
		}
	}

	chart := Chart{
		Type:   "line",
		Labels: append([]string(nil), Months...),
		Datasets: []Dataset{
			{Label: "Válidos", Data: valid, BorderColor: "#10B981"},
			{Label: "Expirando", Data: expiring, BorderColor: "#F59E0B"},
			{Label: "Expirados", Data: expired, BorderColor: "#EF4444"},
		},
	}
	chart.markEmpty()
	return chart
}

// StatusCounts are the dashboard counters
type StatusCounts struct {
	Valid    int `json:"valid"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
	Expired  int `json:"expired"`
	Total    int `json:"total"`
}

// CountStatuses groups alert and critical levels together as "critical"
func CountStatuses(certs []certificate.Certificate, now time.Time) StatusCounts {
	var counts StatusCounts
	for _, cert := range certs {
		switch certificate.LevelFor(cert.DaysLeft(now)) {
		case certificate.LevelValid:
			counts.Valid++
		case certificate.LevelAttention:
			counts.Warning++
		case certificate.LevelAlert, certificate.LevelCritical:
			counts.Critical++
		case certificate.LevelExpired:
			counts.Expired++
		}
	}
	counts.Total = len(certs)
	return counts
}

// Dashboard bundles every chart shown on the dashboard page
type Dashboard struct {
	Counts   StatusCounts `json:"counts"`
	Types    Chart        `json:"types"`
	Expiring Chart        `json:"expiring"`
	Timeline Chart        `json:"timeline"`
}

// Build computes the whole dashboard for year
func Build(certs []certificate.Certificate, year int, now time.Time) Dashboard {
	return Dashboard{
		Counts:   CountStatuses(certs, now),
		Types:    TypeDistribution(certs),
		Expiring: ExpiringBuckets(certs, now),
		Timeline: Timeline(certs, year, now),
	}
}

// Get returns the chart named by one of the Chart* identifiers
func (d Dashboard) Get(name string) (Chart, bool) {
	switch name {
	case ChartTypes:
		return d.Types, true
	case ChartExpiring:
		return d.Expiring, true
	case ChartTimeline:
		return d.Timeline, true
	default:
		return Chart{}, false
	}
}
