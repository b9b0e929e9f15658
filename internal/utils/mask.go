package utils

import (
	"fmt"
	"strings"
	"time"
)

// Separator inserts Char after the first After digits
type Separator struct {
	After int
	Char  byte
}

// Mask is a progressive punctuation overlay for digit-only fields.
// Separators must be ordered by After.
type Mask struct {
	MaxDigits  int
	Separators []Separator
}

// Prebuilt masks for the form fields
var (
	CNPJMask = Mask{
		MaxDigits: CNPJLength,
		Separators: []Separator{
			{After: 2, Char: '.'},
			{After: 5, Char: '.'},
			{After: 8, Char: '/'},
			{After: 12, Char: '-'},
		},
	}

	DateMask = Mask{
		MaxDigits: 8,
		Separators: []Separator{
			{After: 2, Char: '/'},
			{After: 4, Char: '/'},
		},
	}
)

// Digits keeps only the ASCII digits of s
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// Apply reduces raw to its digits, truncates them to MaxDigits and
// re-punctuates. A separator is written only when a digit follows it.
func (m Mask) Apply(raw string) string {
	digits := Digits(raw)
	if len(digits) > m.MaxDigits {
		digits = digits[:m.MaxDigits]
	}

	var b strings.Builder
	b.Grow(len(digits) + len(m.Separators))

	next := 0
	for i := 0; i < len(digits); i++ {
		if next < len(m.Separators) && m.Separators[next].After == i {
			b.WriteByte(m.Separators[next].Char)
			next++
		}
		b.WriteByte(digits[i])
	}

	return b.String()
}

// FormatCNPJMask renders keystroke input as XX.XXX.XXX/XXXX-XX
func FormatCNPJMask(raw string) string {
	return CNPJMask.Apply(raw)
}

// FormatDateMask renders keystroke input as DD/MM/YYYY
func FormatDateMask(raw string) string {
	return DateMask.Apply(raw)
}

// ParseMaskedDate parses a complete DD/MM/YYYY value typed through DateMask
func ParseMaskedDate(value string) (time.Time, error) {
	masked := FormatDateMask(value)
	if len(masked) != len("02/01/2006") {
		return time.Time{}, fmt.Errorf("incomplete date %q", value)
	}

	date, err := time.Parse("02/01/2006", masked)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}
