package certificate

import "fmt"

// ExpiringWindow is the number of days a certificate is flagged before expiry
const ExpiringWindow = 30

// Status is the card state shown for a certificate
type Status struct {
	Class string `json:"class" example:"certificate-expiring"`
	Badge string `json:"badge" example:"badge-warning"`
	Text  string `json:"text" example:"Expira em 12 dias"`
}

// Classify maps remaining days to the card state
func Classify(days int) Status {
	switch {
	case days < 0:
		return Status{Class: "certificate-expired", Badge: "badge-danger", Text: "Expirado"}
	case days <= ExpiringWindow:
		return Status{Class: "certificate-expiring", Badge: "badge-warning", Text: fmt.Sprintf("Expira em %d dias", days)}
	default:
		return Status{Class: "certificate-valid", Badge: "badge-success", Text: fmt.Sprintf("Válido por mais %d dias", days)}
	}
}

// Level is the finer grained status used by filters and the dashboard
type Level string

const (
	LevelValid     Level = "valido"
	LevelAttention Level = "atencao"
	LevelAlert     Level = "alerta"
	LevelCritical  Level = "critico"
	LevelExpired   Level = "vencido"
)

// Levels lists every level from healthiest to expired
var Levels = []Level{LevelValid, LevelAttention, LevelAlert, LevelCritical, LevelExpired}

// LevelFor maps remaining days to a level
func LevelFor(days int) Level {
	switch {
	case days < 0:
		return LevelExpired
	case days <= 5:
		return LevelCritical
	case days <= 15:
		return LevelAlert
	case days <= 30:
		return LevelAttention
	default:
		return LevelValid
	}
}

// Label is the Portuguese name of the level
func (l Level) Label() string {
	switch l {
	case LevelValid:
		return "Válido"
	case LevelAttention:
		return "Atenção"
	case LevelAlert:
		return "Alerta"
	case LevelCritical:
		return "Crítico"
	case LevelExpired:
		return "Vencido"
	default:
		return string(l)
	}
}

// ParseLevel accepts a filter key; empty or unknown keys return false
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}
