package models

// MaskRequest carries a raw input value to be masked
type MaskRequest struct {
	Value string `json:"value" example:"11222333000181"`
}

// MaskResponse is the masked value plus how much of the mask it fills
type MaskResponse struct {
	Value    string `json:"value" example:"11222333000181"`
	Masked   string `json:"masked" example:"11.222.333/0001-81"`
	Digits   int    `json:"digits" example:"14"`
	Complete bool   `json:"complete" example:"true"`
	Date     string `json:"date,omitempty" example:"2025-03-10"`
}
