package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type company struct {
	CNPJ     string `json:"cnpj" binding:"required,cnpj"`
	Supplier string `json:"supplier_cnpj,omitempty" binding:"omitempty,cnpj"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())

	tests := []struct {
		name  string
		input company
		field string
	}{
		{"valid formatted", company{CNPJ: "11.222.333/0001-81"}, ""},
		{"valid digits with supplier", company{CNPJ: "11222333000181", Supplier: "11444777000161"}, ""},
		{"bad checksum", company{CNPJ: "11222333000191"}, "company.cnpj"},
		{"degenerate", company{CNPJ: "00000000000000"}, "company.cnpj"},
		{"bad supplier", company{CNPJ: "11222333000181", Supplier: "123"}, "company.supplier_cnpj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.input)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Namespace())
			assert.Equal(t, "cnpj", verrs[0].Tag())
		})
	}
}

func TestRegister_RequiredStillApplies(t *testing.T) {
	require.NoError(t, Register())

	err := binding.Validator.ValidateStruct(&company{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "required", verrs[0].Tag())
}
