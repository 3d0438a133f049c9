package validation

import (
	"regexp"
	"strings"
	"unicode"

	"go-landing-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Optional +, then digits, spaces and hyphens
	phoneShapeRegex = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

	// local@domain.tld with no whitespace and a single @
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// MinPhoneDigits is the minimum number of digits a phone number must carry
const MinPhoneDigits = 10

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("loose_phone", LoosePhone)
	_ = v.RegisterValidation("loose_email", LooseEmail)
	_ = v.RegisterValidation("inquiry_type", InquiryType)
	_ = v.RegisterValidation("inquiry_field", InquiryField)
}

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// NotBlank rejects empty and whitespace-only strings
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// LoosePhone accepts an optional leading +, digits/spaces/hyphens, and at least 10 digits
func LoosePhone(fl validator.FieldLevel) bool {
	return IsLoosePhone(fl.Field().String())
}

// IsLoosePhone is the plain-string form of LoosePhone
func IsLoosePhone(val string) bool {
	if !phoneShapeRegex.MatchString(val) {
		return false
	}
	digits := 0
	for _, r := range val {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}

// LooseEmail validates the basic local@domain.tld shape
func LooseEmail(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// InquiryType validates membership in the closed inquiry type set
func InquiryType(fl validator.FieldLevel) bool {
	return domain.IsInquiryType(fl.Field().String())
}

// InquiryField validates a form field identifier
func InquiryField(fl validator.FieldLevel) bool {
	_, err := domain.ParseField(fl.Field().String())
	return err == nil
}
