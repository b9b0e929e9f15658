package models

import (
	"time"

	"github.com/oguardiao/guardiao-api/internal/utils"
)

// CNPJRequest represents a single validation request
type CNPJRequest struct {
	CNPJ string `json:"cnpj" binding:"required" example:"11.222.333/0001-81"`
}

// CNPJVerdict is the validation outcome of one identifier
type CNPJVerdict struct {
	utils.CNPJInfo
	CheckedAt time.Time `json:"checked_at" example:"2024-01-15T10:30:00Z"`
	Cached    bool      `json:"cached" example:"false"`
}

// BatchRequest represents a batch validation request
type BatchRequest struct {
	CNPJs []string `json:"cnpjs" binding:"required,min=1" example:"11222333000181,11444777000161"`
}

// BatchResponse represents a batch validation response
type BatchResponse struct {
	Results    []CNPJVerdict `json:"results"`
	Total      int           `json:"total" example:"2"`
	Valid      int           `json:"valid" example:"1"`
	Invalid    int           `json:"invalid" example:"1"`
	DurationMs int64         `json:"duration_ms" example:"3"`
	Timestamp  time.Time     `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ExtractRequest carries free text to scan for identifiers
type ExtractRequest struct {
	Text string `json:"text" binding:"required" example:"Fornecedor 11.222.333/0001-81 e filial 11444777000161"`
}

// ExtractResponse lists the valid identifiers found in the text
type ExtractResponse struct {
	CNPJs     []string `json:"cnpjs" example:"11222333000181,11444777000161"`
	Formatted []string `json:"formatted" example:"11.222.333/0001-81,11.444.777/0001-61"`
	Count     int      `json:"count" example:"2"`
}
