package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCNPJMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"11", "11"},
		{"112", "11.2"},
		{"11222", "11.222"},
		{"112223", "11.222.3"},
		{"11222333", "11.222.333"},
		{"112223330", "11.222.333/0"},
		{"112223330001", "11.222.333/0001"},
		{"1122233300018", "11.222.333/0001-8"},
		{"11222333000181", "11.222.333/0001-81"},
		{"1122233300018199", "11.222.333/0001-81"},
		{"11.222.333/0001-81", "11.222.333/0001-81"},
		{"ab11c2", "11.2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCNPJMask(tt.in))
		})
	}
}

func TestFormatDateMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2", "2"},
		{"25", "25"},
		{"251", "25/1"},
		{"2512", "25/12"},
		{"25122", "25/12/2"},
		{"25122024", "25/12/2024"},
		{"2512202499", "25/12/2024"},
		{"25/12/2024", "25/12/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateMask(tt.in))
		})
	}
}

func TestMaskIdempotent(t *testing.T) {
	for _, in := range []string{"1", "11222", "112223330001", "11222333000181", "9999999999999999"} {
		once := FormatCNPJMask(in)
		assert.Equal(t, once, FormatCNPJMask(once), in)
		assert.Equal(t, once, FormatCNPJMask(CleanCNPJ(once)), in)
	}
	for _, in := range []string{"1", "251", "25122024"} {
		once := FormatDateMask(in)
		assert.Equal(t, once, FormatDateMask(once), in)
	}
}

func TestMaskNoTrailingSeparator(t *testing.T) {
	for n := 0; n <= CNPJLength; n++ {
		out := FormatCNPJMask("12345678901234"[:n])
		if out == "" {
			continue
		}
		last := out[len(out)-1]
		assert.True(t, last >= '0' && last <= '9', out)
	}
}

func TestParseMaskedDate(t *testing.T) {
	date, err := ParseMaskedDate("25122024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseMaskedDate("2512")
	assert.Error(t, err)

	_, err = ParseMaskedDate("31022024")
	assert.Error(t, err)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "", Digits(""))
	assert.Equal(t, "10032025", Digits("10/03/2025"))
	assert.Equal(t, "11222333000181", Digits("11.222.333/0001-81"))
	// non-ASCII digits are dropped
	assert.Equal(t, "12", Digits("1٣2"))
	assert.Equal(t, Digits("a1-b2"), CleanCNPJ("a1-b2"))
}
