package models

import "fmt"

// ValidationError marks input that failed a field or enum check. The
// gateway maps it to a 400 response with the message as the body.
type ValidationError struct {
	Message string
}

// NewValidationError builds a validation error from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
