// Package certificate holds the presentation rules for digital certificates:
// expiry status, alert thresholds, upload checks and list filtering.
package certificate

import (
	"math"
	"time"
)

// Type is the certificate kind
type Type string

const (
	TypeECNPJ Type = "e-cnpj"
	TypeECPF  Type = "e-cpf"
)

// Label returns the display name used in charts and selects
func (t Type) Label() string {
	switch t {
	case TypeECNPJ:
		return "e-CNPJ"
	case TypeECPF:
		return "e-CPF"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known type
func (t Type) Valid() bool {
	return t == TypeECNPJ || t == TypeECPF
}

// Certificate is the view of a stored certificate the UI works with
type Certificate struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Certificado Matriz"`
	Type        Type      `json:"type" example:"e-cnpj"`
	CompanyID   int64     `json:"company_id" example:"7"`
	CompanyName string    `json:"company_name,omitempty" example:"EMPRESA EXEMPLO LTDA"`
	CNPJ        string    `json:"cnpj,omitempty" example:"11.222.333/0001-81"`
	IssueDate   time.Time `json:"issue_date" example:"2024-01-15T00:00:00Z"`
	ExpiryDate  time.Time `json:"expiry_date" example:"2025-01-15T00:00:00Z"`
}

const day = 24 * time.Hour

// DaysUntil counts days from the start of now's day to expiry, rounding up.
// Negative values mean the certificate already expired.
func DaysUntil(expiry, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(float64(expiry.Sub(today)) / float64(day)))
}

// DaysLeft is DaysUntil for the certificate's expiry date
func (c Certificate) DaysLeft(now time.Time) int {
	return DaysUntil(c.ExpiryDate, now)
}
