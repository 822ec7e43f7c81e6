package model

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// FormatValidationError converts validator errors into the typed FieldError
// the handlers translate to BAD_REQUEST bodies. Struct-tag failures all map
// to the mandatory-fields key; anything else keeps its own message.
func FormatValidationError(err error) *FieldError {
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		e := validationErrors[0]
		return &FieldError{
			Key:     KeyMandatoryFieldsMissing,
			Message: "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag",
		}
	}

	return &FieldError{
		Key:     KeyMandatoryFieldsMissing,
		Message: err.Error(),
	}
}
