package certificate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// MaxUploadSize is the largest certificate file accepted, in bytes
const MaxUploadSize int64 = 5 * 1024 * 1024

// AllowedExtensions are the PKCS#12 container extensions
var AllowedExtensions = []string{"pfx", "p12"}

var (
	ErrInvalidExtension = errors.New("Formato de arquivo inválido. Apenas arquivos .pfx ou .p12 são permitidos.")
	ErrFileTooLarge     = errors.New("O arquivo é muito grande. O tamanho máximo permitido é 5MB.")
	ErrEmptyFile        = errors.New("Nenhum arquivo selecionado.")

	ErrExpiryInPast      = errors.New("A data de validade não pode ser no passado.")
	ErrExpiryBeforeIssue = errors.New("A data de validade deve ser posterior à data de emissão.")
)

// ValidateUpload checks a selected file before it is sent to the server.
// The extension is whatever follows the last dot, or the whole name when
// there is none, so a bare "pfx" is accepted.
func ValidateUpload(name string, size int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFile
	}

	ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	if !slices.Contains(AllowedExtensions, ext) {
		return fmt.Errorf("%q: %w", name, ErrInvalidExtension)
	}

	if size <= 0 {
		return ErrEmptyFile
	}

	if size > MaxUploadSize {
		return fmt.Errorf("%q has %d bytes: %w", name, size, ErrFileTooLarge)
	}

	return nil
}

// ValidateDates checks the issue and expiry dates of an upload form.
// Only the calendar day of each value is compared.
func ValidateDates(issue, expiry, now time.Time) error {
	if DaysUntil(expiry, now) < 0 {
		return ErrExpiryInPast
	}

	if !issue.IsZero() && !dateOf(expiry).After(dateOf(issue)) {
		return ErrExpiryBeforeIssue
	}

	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UploadReason is the machine readable code of an upload or date error
func UploadReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyFile):
		return "EMPTY_FILE"
	case errors.Is(err, ErrInvalidExtension):
		return "INVALID_EXTENSION"
	case errors.Is(err, ErrFileTooLarge):
		return "FILE_TOO_LARGE"
	case errors.Is(err, ErrExpiryInPast):
		return "EXPIRY_IN_PAST"
	case errors.Is(err, ErrExpiryBeforeIssue):
		return "EXPIRY_BEFORE_ISSUE"
	default:
		return "UNKNOWN"
	}
}
