// Package validation wraps go-playground/validator with the portal's custom
// rules and a flat error shape handlers can return directly.
package validation

import (
	"github.com/go-playground/validator/v10"

	"bells-pay/internal/pkg/reference"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// matric: BU/<2 digits>/<5 digits>
	_ = v.RegisterValidation("matric", func(fl validator.FieldLevel) bool {
		return reference.IsValidMatric(fl.Field().String())
	})
	return v
}

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// Struct validates a tagged struct and returns flat field errors, or nil
func Struct(obj any) []FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Tag:     fe.Tag(),
		})
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + fe.Param()
	case "matric":
		return "Matric number must look like BU/00/00000"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}
