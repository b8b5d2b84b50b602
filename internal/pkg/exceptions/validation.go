package exceptions

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors flattens validator.ValidationErrors into a
// single readable message for spec load failures.
func FormatAllValidationErrors(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		message := strings.ToLower(fieldErr.Field()) + " failed '" + fieldErr.Tag() + "'"
		if fieldErr.Param() != "" {
			message += " (" + fieldErr.Param() + ")"
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, ", ")
}
