package enqueue

import (
	"errors"
	"fmt"
)

// Error represents an enqueue library error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for producer operations.
const (
	// ErrCodeValidation indicates an invalid destination, message, delay,
	// or time-to-live value. Raised before any row is built or inserted.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid producer configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeSend indicates the insert gateway failed. The gateway's
	// native error is carried as the cause and never surfaced directly.
	ErrCodeSend = "SEND_ERROR"

	// ErrCodeInternal indicates identifier generation failed.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsSend checks if an error is a send (insert gateway) error.
func IsSend(err error) bool {
	return hasCode(err, ErrCodeSend)
}

func hasCode(err error, code string) bool {
	var enqueueErr *Error
	if errors.As(err, &enqueueErr) {
		return enqueueErr.Code == code
	}
	return false
}
