package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":      "Full name",
	"Phone":     "Phone number",
	"Email":     "Email",
	"Type":      "Inquiry type",
	"Message":   "Message",
	"Location":  "Location",
	"Field":     "Field",
	"Value":     "Value",
	"Reason":    "Reason",
	"Latitude":  "Latitude",
	"Longitude": "Longitude",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s: is required", label)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "loose_phone":
		return fmt.Sprintf("%s: must contain at least %d digits", label, MinPhoneDigits)

	case "loose_email":
		return fmt.Sprintf("%s: is not a valid email address", label)

	case "inquiry_type":
		return fmt.Sprintf("%s: is not a known inquiry type", label)

	case "inquiry_field":
		return fmt.Sprintf("%s: is not a known form field", label)

	case "latitude", "longitude":
		return fmt.Sprintf("%s: is out of range", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
