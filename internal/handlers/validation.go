package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nocodesaarthi/leads-api/internal/models"
)

func init() {
	// Report JSON names ("email") rather than Go names ("Email") from ShouldBindJSON
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.RegisterJSONFieldNames(v)
	}
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseValidationErrors converts binding and validator errors to a field list.
// Errors that carry no field information are reported against "body".
func ParseValidationErrors(err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make([]ValidationError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			out = append(out, ValidationError{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return []ValidationError{{Field: "body", Message: "body must be a JSON object"}}
		}
		return []ValidationError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()),
		}}
	}

	return []ValidationError{{
		Field:   "body",
		Message: "Invalid JSON: " + err.Error(),
	}}
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	default:
		return fe.Field() + " is invalid"
	}
}
