// Package validation registers the custom binding tags on gin's validator.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oguardiao/guardiao-api/internal/utils"
)

var (
	once        sync.Once
	registerErr error
)

// Register installs the custom tags on gin's default validator. It is safe
// to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(jsonName)
		registerErr = v.RegisterValidation("cnpj", validateCNPJ)
	})
	return registerErr
}

// validateCNPJ accepts a present, fully valid CNPJ, formatted or not
func validateCNPJ(fl validator.FieldLevel) bool {
	return utils.IsValidCNPJ(fl.Field().String())
}

// jsonName reports fields by their JSON name in validation errors
func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
