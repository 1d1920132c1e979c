package exceptions

import (
	"errors"
	"medilabx-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationFieldErrors turns validator errors into a field-keyed mapping,
// keyed by the JSON path of the offending field (e.g. "test_results[1].value").
func ValidationFieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		key := fieldPath(fieldErr.Namespace())
		if _, exists := fields[key]; exists {
			continue
		}
		fields[key] = fieldErr.Field() + " " + messageFor(fieldErr)
	}
	return fields
}

func messageFor(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
