package utils

import (
	"errors"
	"fmt"
	"regexp"
)

// CNPJLength is the number of digits of a complete CNPJ
const CNPJLength = 14

// Validation failures returned by ValidateCNPJ
var (
	ErrWrongLength      = errors.New("wrong length")
	ErrDegenerateDigits = errors.New("degenerate identifier")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Reason codes exposed to API consumers
const (
	ReasonWrongLength      = "WRONG_LENGTH"
	ReasonDegenerateDigits = "DEGENERATE_DIGITS"
	ReasonChecksumMismatch = "CHECKSUM_MISMATCH"
)

var (
	nonDigit             = regexp.MustCompile(`\D`)
	formattedCNPJRegex   = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	unformattedCNPJRegex = regexp.MustCompile(`\b\d{14}\b`)
)

// ChecksumError reports which check digit failed
type ChecksumError struct {
	Position int // 1 or 2
	Expected int
	Actual   int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch on check digit %d: expected %d, got %d", e.Position, e.Expected, e.Actual)
}

// Unwrap lets errors.Is match ErrChecksumMismatch
func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// CleanCNPJ removes all non-numeric characters from CNPJ
func CleanCNPJ(cnpj string) string {
	return Digits(cnpj)
}

// FormatCNPJ formats CNPJ with dots, slash and dash (XX.XXX.XXX/XXXX-XX)
func FormatCNPJ(cnpj string) string {
	cleaned := CleanCNPJ(cnpj)
	if len(cleaned) != CNPJLength {
		return cnpj
	}

	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14]
}

// ValidateCNPJ checks the two check digits of a CNPJ.
//
// A nil error means the value is acceptable. Input with no digits at all is
// accepted as "not provided yet"; callers that require the field must check
// for emptiness themselves.
func ValidateCNPJ(raw string) error {
	cleaned := CleanCNPJ(raw)
	if len(cleaned) == 0 {
		return nil
	}

	if len(cleaned) != CNPJLength {
		return ErrWrongLength
	}

	if isAllSameDigit(cleaned) {
		return ErrDegenerateDigits
	}

	digits := toDigits(cleaned)

	if expected := CheckDigit(digits[:12]); expected != digits[12] {
		return &ChecksumError{Position: 1, Expected: expected, Actual: digits[12]}
	}

	if expected := CheckDigit(digits[:13]); expected != digits[13] {
		return &ChecksumError{Position: 2, Expected: expected, Actual: digits[13]}
	}

	return nil
}

// IsValidCNPJ reports whether cnpj is present and passes ValidateCNPJ
func IsValidCNPJ(cnpj string) bool {
	return CleanCNPJ(cnpj) != "" && ValidateCNPJ(cnpj) == nil
}

// CheckDigit computes the modulo 11 check digit of base.
//
// Weights start at len(base)-7 and count down, wrapping back to 9 whenever
// they would drop below 2. For 12 digits this yields 5,4,3,2,9,8,7,6,5,4,3,2.
func CheckDigit(base []int) int {
	size := len(base)
	pos := size - 7
	sum := 0

	for _, digit := range base {
		sum += digit * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}

	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// CompleteCNPJ appends both check digits to a 12 digit base
func CompleteCNPJ(base string) (string, error) {
	cleaned := CleanCNPJ(base)
	if len(cleaned) != 12 {
		return "", fmt.Errorf("base must have 12 digits, got %d: %w", len(cleaned), ErrWrongLength)
	}

	digits := toDigits(cleaned)
	first := CheckDigit(digits)
	digits = append(digits, first)
	second := CheckDigit(digits)

	return fmt.Sprintf("%s%d%d", cleaned, first, second), nil
}

// ReasonCode maps a ValidateCNPJ error to its API code
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongLength):
		return ReasonWrongLength
	case errors.Is(err, ErrDegenerateDigits):
		return ReasonDegenerateDigits
	case errors.Is(err, ErrChecksumMismatch):
		return ReasonChecksumMismatch
	default:
		return "UNKNOWN"
	}
}

// ReasonMessage returns the message shown next to the form field
func ReasonMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongLength):
		return "CNPJ deve conter 14 dígitos."
	default:
		return "CNPJ inválido."
	}
}

// isAllSameDigit checks if all digits in the string are the same
func isAllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// toDigits expects a string already reduced to ASCII digits
func toDigits(s string) []int {
	digits := make([]int, len(s), len(s)+1)
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

// ExtractCNPJFromText extracts valid CNPJ numbers from text, deduplicated
func ExtractCNPJFromText(text string) []string {
	var cnpjs []string
	seen := make(map[string]bool)

	add := func(candidate string) {
		if !IsValidCNPJ(candidate) {
			return
		}
		cleaned := CleanCNPJ(candidate)
		if seen[cleaned] {
			return
		}
		seen[cleaned] = true
		cnpjs = append(cnpjs, cleaned)
	}

	for _, cnpj := range formattedCNPJRegex.FindAllString(text, -1) {
		add(cnpj)
	}
	for _, cnpj := range unformattedCNPJRegex.FindAllString(text, -1) {
		add(cnpj)
	}

	return cnpjs
}

// NormalizeCNPJ normalizes CNPJ by cleaning and validating
func NormalizeCNPJ(cnpj string) (string, bool) {
	cleaned := CleanCNPJ(cnpj)
	return cleaned, IsValidCNPJ(cleaned)
}

// CNPJInfo holds information about a CNPJ
type CNPJInfo struct {
	Original  string `json:"original" example:"11.222.333/0001-81"`
	Cleaned   string `json:"cleaned" example:"11222333000181"`
	Formatted string `json:"formatted,omitempty" example:"11.222.333/0001-81"`
	Valid     bool   `json:"valid" example:"true"`
	Reason    string `json:"reason,omitempty" example:"CHECKSUM_MISMATCH"`
	Message   string `json:"message,omitempty" example:"CNPJ inválido."`
	Type      string `json:"type,omitempty" example:"MATRIZ"`
	Root      string `json:"root,omitempty" example:"11222333"`
	Branch    string `json:"branch,omitempty" example:"0001"`
}

// AnalyzeCNPJ analyzes a CNPJ string and returns detailed information.
// An empty input is reported as invalid with reason WRONG_LENGTH.
func AnalyzeCNPJ(cnpj string) CNPJInfo {
	cleaned := CleanCNPJ(cnpj)
	err := ValidateCNPJ(cleaned)
	if cleaned == "" {
		err = ErrWrongLength
	}

	info := CNPJInfo{
		Original: cnpj,
		Cleaned:  cleaned,
		Valid:    err == nil,
		Reason:   ReasonCode(err),
		Message:  ReasonMessage(err),
	}

	if info.Valid {
		info.Formatted = FormatCNPJ(cleaned)
		info.Type = GetCNPJType(cleaned)
		info.Root = GetCNPJRoot(cleaned)
		info.Branch = GetCNPJBranch(cleaned)
	}

	return info
}

// GetCNPJType returns the type of CNPJ (MATRIZ or FILIAL)
func GetCNPJType(cnpj string) string {
	cleaned := CleanCNPJ(cnpj)
	if len(cleaned) != CNPJLength {
		return "INVALID"
	}

	if cleaned[8:12] == "0001" {
		return "MATRIZ"
	}
	return "FILIAL"
}

// GetCNPJRoot returns the root CNPJ (first 8 digits)
func GetCNPJRoot(cnpj string) string {
	cleaned := CleanCNPJ(cnpj)
	if len(cleaned) != CNPJLength {
		return ""
	}

	return cleaned[:8]
}

// GetCNPJBranch returns the branch number (positions 8-11)
func GetCNPJBranch(cnpj string) string {
	cleaned := CleanCNPJ(cnpj)
	if len(cleaned) != CNPJLength {
		return ""
	}

	return cleaned[8:12]
}

// AreSameCNPJRoot checks if two CNPJs belong to the same company (same root)
func AreSameCNPJRoot(cnpj1, cnpj2 string) bool {
	root1 := GetCNPJRoot(cnpj1)
	root2 := GetCNPJRoot(cnpj2)

	return root1 != "" && root2 != "" && root1 == root2
}
