package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Field identifies one input of the inquiry form
type Field string

const (
	FieldName     Field = "name"
	FieldPhone    Field = "phone"
	FieldEmail    Field = "email"
	FieldType     Field = "type"
	FieldMessage  Field = "message"
	FieldLocation Field = "location"
)

// AllFields lists every form field in display order
var AllFields = []Field{FieldName, FieldPhone, FieldEmail, FieldType, FieldMessage, FieldLocation}

// ValidatedFields are the only fields that can carry a validation error
var ValidatedFields = []Field{FieldName, FieldPhone, FieldEmail, FieldType}

var ErrUnknownField = errors.New("unknown form field")

// ParseField resolves a field identifier coming from a request path or form key
func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// InquiryType is the closed set of categories a submitter can pick
type InquiryType string

const (
	InquiryBulk         InquiryType = "Bulk Manufacturing"
	InquiryCorporate    InquiryType = "Corporate Gifting"
	InquiryRetail       InquiryType = "Retail/Wholesale"
	InquiryPrivateLabel InquiryType = "Private Label"
	InquiryOther        InquiryType = "Other"
)

// InquiryTypes returns the selectable options, rendered verbatim
func InquiryTypes() []InquiryType {
	return []InquiryType{InquiryBulk, InquiryCorporate, InquiryRetail, InquiryPrivateLabel, InquiryOther}
}

// IsInquiryType reports whether value is one of the closed set
func IsInquiryType(value string) bool {
	for _, t := range InquiryTypes() {
		if string(t) == value {
			return true
		}
	}
	return false
}

// FormState holds the raw values typed by the visitor
type FormState struct {
	Name     string `json:"name" form:"name"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Type     string `json:"type" form:"type"`
	Message  string `json:"message" form:"message"`
	Location string `json:"location" form:"location"`
}

// Get returns the value held for field
func (f FormState) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	case FieldType:
		return f.Type
	case FieldMessage:
		return f.Message
	case FieldLocation:
		return f.Location
	}
	return ""
}

// Set stores value for field. Unknown fields are ignored.
func (f *FormState) Set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldType:
		f.Type = value
	case FieldMessage:
		f.Message = value
	case FieldLocation:
		f.Location = value
	}
}

// SubmissionStatus is the idle/submitting/success lifecycle of the form
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
)

// SubmitOutcome reports what Submit did with a request
type SubmitOutcome int

const (
	// SubmitAccepted means validation passed and the form is now submitting
	SubmitAccepted SubmitOutcome = iota
	// SubmitInvalid means at least one field failed; every field is now touched
	SubmitInvalid
	// SubmitIgnored means the form was not idle
	SubmitIgnored
)

func (o SubmitOutcome) String() string {
	switch o {
	case SubmitAccepted:
		return "accepted"
	case SubmitInvalid:
		return "invalid"
	case SubmitIgnored:
		return "ignored"
	}
	return "unknown"
}

// Receipt is captured when a submission reaches success
type Receipt struct {
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
	Summary     FormState `json:"summary"`
}

// InquirySnapshot is the read-only view handed to the presentation layer
type InquirySnapshot struct {
	Form             FormState        `json:"form"`
	Errors           map[Field]string `json:"errors"`
	VisibleErrors    map[Field]string `json:"visible_errors"`
	Touched          []Field          `json:"touched"`
	Status           SubmissionStatus `json:"status"`
	IsLocating       bool             `json:"is_locating"`
	LocationDetected bool             `json:"location_detected"`
	Notice           string           `json:"notice,omitempty"`
	Receipt          *Receipt         `json:"receipt,omitempty"`
}

// IsTouched reports whether field is in the touched set
func (s InquirySnapshot) IsTouched(field Field) bool {
	for _, f := range s.Touched {
		if f == field {
			return true
		}
	}
	return false
}

// Position is a one-shot device position. The engine never reads the coordinates.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// Geolocator is the device location service. Exactly one of onSuccess/onError
// must be invoked, synchronously or from another goroutine.
type Geolocator interface {
	CurrentPosition(ctx context.Context, onSuccess func(Position), onError func(error))
}

// Notifier surfaces transient user-facing notices
type Notifier interface {
	Notify(ctx context.Context, message string)
}

var (
	ErrSessionNotFound     = errors.New("inquiry session not found")
	ErrSessionLimit        = errors.New("too many live inquiry sessions")
	ErrResetNotAllowed     = errors.New("reset is only allowed after a successful submission")
	ErrAlreadyLocating     = errors.New("a location lookup is already in progress")
	ErrLocationUnavailable = errors.New("location unavailable")
)

// InquiryValidationError carries the per-field messages of a failed submit
type InquiryValidationError struct {
	Fields map[Field]string
}

func (e *InquiryValidationError) Error() string {
	return fmt.Sprintf("inquiry has %d invalid field(s)", len(e.Fields))
}

// LocateRequest is the outcome of the browser geolocation prompt, relayed by the client
type LocateRequest struct {
	Granted   bool    `json:"granted" form:"granted"`
	Latitude  float64 `json:"latitude" form:"latitude"`
	Longitude float64 `json:"longitude" form:"longitude"`
	Accuracy  float64 `json:"accuracy" form:"accuracy"`
	Reason    string  `json:"reason" form:"reason" binding:"max=200"`
}

// InquirySession pairs an engine with its identity
type InquirySession struct {
	ID        string
	CreatedAt time.Time
	Engine    InquiryEngine
}

// InquiryEngine is the per-visitor form engine
type InquiryEngine interface {
	OnFieldChange(field Field, value string)
	OnFieldBlur(field Field, value string)
	Submit() SubmitOutcome
	Reset() error
	LocateMe(ctx context.Context, geo Geolocator) error
	Snapshot() InquirySnapshot
	Close()
}

// InquirySessionRepository stores live sessions in memory
type InquirySessionRepository interface {
	Save(ctx context.Context, session *InquirySession) error
	Get(ctx context.Context, id string) (*InquirySession, error)
	Delete(ctx context.Context, id string) error
}

// InquiryUsecase drives inquiry sessions for the delivery layer
type InquiryUsecase interface {
	ValidateField(field Field, value string) string
	StartSession(ctx context.Context) (*InquirySession, error)
	Snapshot(ctx context.Context, sessionID string) (InquirySnapshot, error)
	ChangeField(ctx context.Context, sessionID string, field Field, value string) (InquirySnapshot, error)
	BlurField(ctx context.Context, sessionID string, field Field, value string) (InquirySnapshot, error)
	// ApplyForm replays change+blur for every field, used by the no-script HTML form
	ApplyForm(ctx context.Context, sessionID string, form FormState) (InquirySnapshot, error)
	Submit(ctx context.Context, sessionID string) (SubmitOutcome, InquirySnapshot, error)
	Reset(ctx context.Context, sessionID string) (InquirySnapshot, error)
	Locate(ctx context.Context, sessionID string, req LocateRequest) (InquirySnapshot, error)
}

// ValidateFieldRequest asks for the message of a single field without a session
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required,inquiry_field" example:"phone"`
	Value string `json:"value" binding:"max=2000" example:"+91 98765 43210"`
}

// ValidateFieldResponse carries the outcome of ValidateFieldRequest
type ValidateFieldResponse struct {
	Field Field  `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// FieldValueRequest is the body of a field change or blur
type FieldValueRequest struct {
	Value string `json:"value" binding:"max=2000"`
}

// InquirySessionResponse is returned when a session starts
type InquirySessionResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"`
	Snapshot  InquirySnapshot `json:"snapshot"`
}
