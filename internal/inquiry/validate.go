package inquiry

import (
	"sync"

	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameRequired  = "Full name is required."
	MsgPhoneRequired = "Phone number is required."
	MsgPhoneInvalid  = "Please enter a valid phone number (at least 10 digits)."
	MsgEmailInvalid  = "Please enter a valid email address."
	MsgTypeRequired  = "Please select an inquiry type."
)

// rule pairs a validator tag with the message shown when it fails.
// Rules of a field are checked in order and the first failure wins.
type rule struct {
	tag     string
	message string
}

var fieldRules = map[domain.Field][]rule{
	domain.FieldName: {
		{tag: "not_blank", message: MsgNameRequired},
	},
	domain.FieldPhone: {
		{tag: "required", message: MsgPhoneRequired},
		{tag: "loose_phone", message: MsgPhoneInvalid},
	},
	domain.FieldEmail: {
		{tag: "omitempty,loose_email", message: MsgEmailInvalid},
	},
	domain.FieldType: {
		{tag: "required", message: MsgTypeRequired},
		{tag: "inquiry_type", message: MsgTypeRequired},
	},
}

// Validator applies the per-field inquiry rules
type Validator struct {
	validate *validator.Validate
}

// NewValidator wraps v, which must have the custom tags from pkg/validation registered
func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

// ValidateField returns the message for the first failing rule, or "" when value is valid.
// message and location carry no rules and are always valid.
func (v *Validator) ValidateField(field domain.Field, value string) string {
	for _, r := range fieldRules[field] {
		if err := v.validate.Var(value, r.tag); err != nil {
			return r.message
		}
	}
	return ""
}

// ValidateAll validates every field of form and returns only the failing ones
func (v *Validator) ValidateAll(form domain.FormState) map[domain.Field]string {
	errs := make(map[domain.Field]string)
	for _, field := range domain.AllFields {
		if msg := v.ValidateField(field, form.Get(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return NewValidator(validation.New())
})

// DefaultValidator returns a shared validator with the custom tags registered
func DefaultValidator() *Validator {
	return defaultValidator()
}

// ValidateField validates with the shared validator
func ValidateField(field domain.Field, value string) string {
	return DefaultValidator().ValidateField(field, value)
}
