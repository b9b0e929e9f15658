package models

import (
	"time"

	"github.com/oguardiao/guardiao-api/internal/certificate"
)

// CertificateInput is a certificate as sent by the client
type CertificateInput struct {
	ID          int64            `json:"id" example:"1"`
	Name        string           `json:"name" example:"Certificado Matriz"`
	Type        certificate.Type `json:"type" binding:"omitempty,oneof=e-cnpj e-cpf" example:"e-cnpj"`
	CompanyID   int64            `json:"company_id" example:"7"`
	CompanyName string           `json:"company_name" example:"EMPRESA EXEMPLO LTDA"`
	CNPJ        string           `json:"cnpj" binding:"omitempty,cnpj" example:"11.222.333/0001-81"`
	IssueDate   time.Time        `json:"issue_date" example:"2024-01-15T00:00:00Z"`
	ExpiryDate  time.Time        `json:"expiry_date" binding:"required" example:"2025-01-15T00:00:00Z"`
}

// Certificate converts the input into the domain type
func (in CertificateInput) Certificate() certificate.Certificate {
	return certificate.Certificate{
		ID:          in.ID,
		Name:        in.Name,
		Type:        in.Type,
		CompanyID:   in.CompanyID,
		CompanyName: in.CompanyName,
		CNPJ:        in.CNPJ,
		IssueDate:   in.IssueDate,
		ExpiryDate:  in.ExpiryDate,
	}
}

// Certificates converts a list of inputs
func Certificates(in []CertificateInput) []certificate.Certificate {
	out := make([]certificate.Certificate, len(in))
	for i, c := range in {
		out[i] = c.Certificate()
	}
	return out
}

// StatusRequest asks for the status of a certificate list, optionally
// filtered and sorted the way the certificate table is.
type StatusRequest struct {
	Certificates []CertificateInput `json:"certificates" binding:"required,dive"`
	Filter       certificate.Filter `json:"filter"`
	SortBy       string             `json:"sort_by" binding:"omitempty,oneof=name type company issue expiry" example:"expiry"`
	Order        string             `json:"order" binding:"omitempty,oneof=asc desc" example:"asc"`
}

// CertificateStatus is the computed state of one certificate
type CertificateStatus struct {
	certificate.Certificate
	DaysLeft   int                `json:"days_left" example:"12"`
	Status     certificate.Status `json:"status"`
	Level      certificate.Level  `json:"level" example:"alerta"`
	LevelLabel string             `json:"level_label" example:"Alerta"`
	Alert      int                `json:"alert,omitempty" example:"15"`
}

// StatusResponse lists certificate states in display order
type StatusResponse struct {
	Results   []CertificateStatus `json:"results"`
	Total     int                 `json:"total" example:"3"`
	NextOrder string              `json:"next_order" example:"desc"`
	Timestamp time.Time           `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// UploadCheckRequest describes a file about to be uploaded
type UploadCheckRequest struct {
	Filename   string     `json:"filename" example:"empresa.pfx"`
	Size       int64      `json:"size" binding:"min=0" example:"4096"`
	IssueDate  *time.Time `json:"issue_date,omitempty" example:"2024-01-15T00:00:00Z"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" example:"2026-01-15T00:00:00Z"`
	CNPJ       string     `json:"cnpj,omitempty" binding:"omitempty,cnpj" example:"11.222.333/0001-81"`
}

// UploadCheckResponse tells whether the upload would be accepted
type UploadCheckResponse struct {
	Valid   bool   `json:"valid" example:"false"`
	Reason  string `json:"reason,omitempty" example:"FILE_TOO_LARGE"`
	Message string `json:"message,omitempty" example:"O arquivo é muito grande. O tamanho máximo permitido é 5MB."`
}

// AlertsRequest carries the certificates to check for alerts
type AlertsRequest struct {
	Certificates []CertificateInput `json:"certificates" binding:"required,dive"`
}

// DueAlert is a certificate reaching an alert threshold today
type DueAlert struct {
	Certificate certificate.Certificate `json:"certificate"`
	Threshold   int                     `json:"threshold" example:"15"`
}

// AlertsResponse groups certificates by urgency
type AlertsResponse struct {
	certificate.AlertGroups
	Due       []DueAlert `json:"due"`
	Total     int        `json:"total" example:"4"`
	Timestamp time.Time  `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
