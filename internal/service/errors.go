package service

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the root of every missing or malformed input error.
	ErrValidation = errors.New("validation failed")

	// ErrPaymentNotFound is returned when no payment exists for an id.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrMethodNotSupported is returned when a simulator is called with the wrong verb.
	ErrMethodNotSupported = errors.New("method not allowed")

	// ErrInvalidCoordinates is returned when coordinates are present but not finite numbers.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrUnknownArea is returned when a load-shedding area is not in the known set.
	ErrUnknownArea = errors.New("invalid area")

	// ErrInvalidEventTime is returned when eventTime cannot be parsed.
	ErrInvalidEventTime = errors.New("invalid event time")
)

// ValidationError describes which inputs were missing or malformed.
type ValidationError struct {
	Message string
	Fields  []string // offending input names
	Valid   []string // accepted values, when the input is an enumeration
	cause   error
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap exposes both ErrValidation and the specific cause to errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrValidation, e.cause}
	}
	return []error{ErrValidation}
}

// MissingFieldsError reports required fields that were absent.
func MissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{
		Message: "missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// MissingParamsError reports required query parameters that were absent.
func MissingParamsError(params ...string) *ValidationError {
	return &ValidationError{
		Message: "missing required parameters: " + strings.Join(params, ", "),
		Fields:  params,
	}
}

// InvalidCoordinatesError reports coordinates that are not finite numbers.
func InvalidCoordinatesError(fields ...string) *ValidationError {
	return &ValidationError{
		Message: ErrInvalidCoordinates.Error(),
		Fields:  fields,
		cause:   ErrInvalidCoordinates,
	}
}

// MethodNotSupportedError is returned for verbs a route does not serve.
type MethodNotSupportedError struct {
	Method  string
	Allowed []string
}

func (e *MethodNotSupportedError) Error() string {
	return "method " + e.Method + " not allowed"
}

func (e *MethodNotSupportedError) Unwrap() error { return ErrMethodNotSupported }
