package certificate

import (
	"slices"
	"time"
)

// AlertThresholds are the days before expiry at which an alert is raised
var AlertThresholds = []int{30, 15, 5}

// DueAlert returns the threshold reached exactly today, if any
func DueAlert(days int) (int, bool) {
	for _, threshold := range AlertThresholds {
		if days == threshold {
			return threshold, true
		}
	}
	return 0, false
}

// AlertGroups splits certificates expiring in the next 30 days by urgency
type AlertGroups struct {
	Critical  []Certificate `json:"critical"`
	Warning   []Certificate `json:"warning"`
	Attention []Certificate `json:"attention"`
}

// Total counts every grouped certificate
func (g AlertGroups) Total() int {
	return len(g.Critical) + len(g.Warning) + len(g.Attention)
}

// GroupAlerts buckets certificates with 0..30 days left: critical up to 5,
// warning up to 15, attention up to 30. Each group is ordered by expiry.
func GroupAlerts(certs []Certificate, now time.Time) AlertGroups {
	groups := AlertGroups{
		Critical:  []Certificate{},
		Warning:   []Certificate{},
		Attention: []Certificate{},
	}

	sorted := slices.Clone(certs)
	slices.SortStableFunc(sorted, func(a, b Certificate) int {
		return a.ExpiryDate.Compare(b.ExpiryDate)
	})

	for _, cert := range sorted {
		days := cert.DaysLeft(now)
		switch {
		case days < 0 || days > ExpiringWindow:
			continue
		case days <= 5:
			groups.Critical = append(groups.Critical, cert)
		case days <= 15:
			groups.Warning = append(groups.Warning, cert)
		default:
			groups.Attention = append(groups.Attention, cert)
		}
	}

	return groups
}
