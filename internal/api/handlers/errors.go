package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/utils"
)

// respondError aborts the request with a models.ErrorResponse
func respondError(c *gin.Context, status int, title, message, code string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:     title,
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// respondBindError reports a body that failed to decode or validate
func respondBindError(c *gin.Context, err error) {
	response := models.ErrorResponse{
		Error:     "Invalid request",
		Message:   err.Error(),
		Code:      "INVALID_REQUEST",
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.Message = "Request validation failed"
		for _, fe := range verrs {
			response.Details = append(response.Details, models.ValidationError{
				Field:   fe.Namespace(),
				Message: fieldMessage(fe),
				Value:   fmt.Sprint(fe.Value()),
			})
		}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "cnpj":
		return utils.ReasonMessage(utils.ValidateCNPJ(fmt.Sprint(fe.Value())))
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	default:
		return fmt.Sprintf("falhou na regra %q", fe.Tag())
	}
}

// tooMany rejects a list longer than limit
func tooMany(c *gin.Context, what string, got, limit int) bool {
	if got <= limit {
		return false
	}
	respondError(c, http.StatusBadRequest, "Request too large",
		fmt.Sprintf("Maximum %d %s per request, got %d", limit, what, got), "TOO_MANY_ITEMS")
	return true
}
