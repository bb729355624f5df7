package domain

import "errors"

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfRange     = errors.New("out of range")
)

// ValidationErrorKind classifies why a calculation input was rejected.
type ValidationErrorKind string

const (
	ValidationMalformedInput ValidationErrorKind = "malformed_input"
	ValidationOutOfRange     ValidationErrorKind = "out_of_range"
)

func (k ValidationErrorKind) String() string {
	return string(k)
}

const (
	FieldArrivalTime    = "arrival_time"
	FieldBreakTimeSpent = "break_time_spent"
)

// ValidationError is returned when a calculation input cannot be used.
// It unwraps to ErrMalformedInput or ErrOutOfRange depending on Kind.
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func NewMalformedInputError(field, message string) *ValidationError {
	return &ValidationError{
		Kind:    ValidationMalformedInput,
		Field:   field,
		Message: message,
	}
}

func NewOutOfRangeError(field, message string) *ValidationError {
	return &ValidationError{
		Kind:    ValidationOutOfRange,
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case ValidationOutOfRange:
		return ErrOutOfRange
	default:
		return ErrMalformedInput
	}
}

// Severity of a validation failure is always critical.
func (e *ValidationError) Severity() Severity {
	return SeverityError
}

// AsValidationError reports whether err carries a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
