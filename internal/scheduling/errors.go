package scheduling

import (
	"errors"
	"strings"
)

// Kind sentinels. A *ValidationError matches exactly one of them with errors.Is.
var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTime        = errors.New("invalid time")
	ErrUnknownDoctor      = errors.New("unknown doctor")
	ErrIncompleteRequest  = errors.New("incomplete request")
	ErrInvalidReason      = errors.New("invalid reason")
	ErrNotFoundOrNotOwned = errors.New("appointment not found")
	ErrAlreadyCancelled   = errors.New("appointment is already cancelled")
	ErrAlreadyCompleted   = errors.New("appointment has already taken place")
)

// Field names used for slots and partial updates.
const (
	FieldDate       = "date"
	FieldTime       = "time"
	FieldDoctorName = "doctor_name"
	FieldReason     = "reason"
	FieldLocation   = "location"
)

// RequiredFields lists the slots a booking needs, in prompting order.
var RequiredFields = []string{FieldDate, FieldTime, FieldDoctorName, FieldReason}

// FieldError describes one slot that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidationError is the expected-failure channel of the core. Anything that is
// not a *ValidationError is an infrastructure failure.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
	Missing []string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return e.Kind == target
}

// KindName is the stable, machine-readable name of the error kind.
func (e *ValidationError) KindName() string {
	return KindName(e.Kind)
}

// KindName maps a kind sentinel to its machine-readable name.
func KindName(kind error) string {
	switch kind {
	case ErrInvalidDate:
		return "invalid_date"
	case ErrInvalidTime:
		return "invalid_time"
	case ErrUnknownDoctor:
		return "unknown_doctor"
	case ErrIncompleteRequest:
		return "incomplete_request"
	case ErrInvalidReason:
		return "invalid_reason"
	case ErrNotFoundOrNotOwned:
		return "not_found_or_not_owned"
	case ErrAlreadyCancelled:
		return "already_cancelled"
	case ErrAlreadyCompleted:
		return "already_completed"
	default:
		return "unknown"
	}
}

// IsValidation reports whether err is an expected validation outcome.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func newFieldError(kind error, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

// NewIncompleteError reports the missing slots, in the order given.
func NewIncompleteError(missing []string) *ValidationError {
	return &ValidationError{
		Kind:    ErrIncompleteRequest,
		Message: "I need more information. Please provide: " + strings.Join(missing, ", "),
		Missing: missing,
	}
}

// NewNotFoundError is returned for appointments that are absent or owned by someone else.
func NewNotFoundError() *ValidationError {
	return &ValidationError{
		Kind:    ErrNotFoundOrNotOwned,
		Message: "I couldn't find that appointment among your bookings.",
	}
}

// NewAlreadyCancelledError is returned when acting on a cancelled appointment.
func NewAlreadyCancelledError() *ValidationError {
	return &ValidationError{
		Kind:    ErrAlreadyCancelled,
		Message: "That appointment has already been cancelled.",
	}
}

// NewAlreadyCompletedError is returned when changing a visit that already happened.
func NewAlreadyCompletedError() *ValidationError {
	return &ValidationError{
		Kind:    ErrAlreadyCompleted,
		Message: "That appointment has already taken place and can no longer be changed.",
	}
}

func (e *ValidationError) fieldError() FieldError {
	return FieldError{Field: e.Field, Kind: e.KindName(), Message: e.Message}
}
