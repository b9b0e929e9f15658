package certificate

import (
	"cmp"
	"slices"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Filter mirrors the certificate list filter form. Zero fields match all.
type Filter struct {
	CompanyID int64  `json:"company_id" form:"empresa_id"`
	Status    Level  `json:"status" form:"status"`
	Type      Type   `json:"type" form:"tipo"`
	Search    string `json:"search" form:"q"`
}

// IsZero reports whether the filter matches everything
func (f Filter) IsZero() bool {
	return f.CompanyID == 0 && f.Status == "" && f.Type == "" && strings.TrimSpace(f.Search) == ""
}

// Match reports whether cert passes every set field of f
func (f Filter) Match(cert Certificate, now time.Time) bool {
	if f.CompanyID != 0 && cert.CompanyID != f.CompanyID {
		return false
	}
	if f.Type != "" && cert.Type != f.Type {
		return false
	}
	if f.Status != "" && LevelFor(cert.DaysLeft(now)) != f.Status {
		return false
	}
	if q := fold(strings.TrimSpace(f.Search)); q != "" && !matchesSearch(cert, q) {
		return false
	}
	return true
}

// matchesSearch looks q up in the name, the company and the CNPJ digits
func matchesSearch(cert Certificate, q string) bool {
	if strings.Contains(fold(cert.Name), q) || strings.Contains(fold(cert.CompanyName), q) {
		return true
	}
	d := digitsOnly(q)
	return d != "" && strings.Contains(digitsOnly(cert.CNPJ), d)
}

// Apply returns the certificates matching f, keeping their order
func Apply(certs []Certificate, f Filter, now time.Time) []Certificate {
	out := make([]Certificate, 0, len(certs))
	for _, cert := range certs {
		if f.Match(cert, now) {
			out = append(out, cert)
		}
	}
	return out
}

// fold lowercases s and strips diacritics so "critico" finds "Crítico"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortFields are the columns a certificate table can be sorted by
var SortFields = []string{"name", "type", "company", "issue", "expiry"}

// ToggleOrder flips a column's sort order; anything but asc becomes asc
func ToggleOrder(current string) string {
	if current == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// Sort orders certs in place by one of SortFields. Unknown fields sort by
// expiry. Ties keep their original order.
func Sort(certs []Certificate, by, order string) {
	compare := func(a, b Certificate) int {
		switch by {
		case "name":
			return cmp.Compare(fold(a.Name), fold(b.Name))
		case "type":
			return cmp.Compare(a.Type, b.Type)
		case "company":
			return cmp.Compare(fold(a.CompanyName), fold(b.CompanyName))
		case "issue":
			return a.IssueDate.Compare(b.IssueDate)
		default:
			return a.ExpiryDate.Compare(b.ExpiryDate)
		}
	}

	slices.SortStableFunc(certs, func(a, b Certificate) int {
		if order == OrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}
