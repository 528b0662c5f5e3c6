package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondSuccess writes the success envelope used by every endpoint
func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// respondError writes the stable error envelope. Internal detail never
// reaches the client.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":     http.StatusText(code),
		"message":    message,
		"statusCode": code,
	})
}

// fieldError is one entry of a 422 validation response
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondValidationError translates validator output into per-field
// messages. Returns false when err is not a validation failure.
func respondValidationError(c *gin.Context, err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}

	fields := make([]fieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = fieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		}
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
