package errors

import (
	"errors"
	"fmt"
)

// ValidationError is the error type produced when caller input is
// rejected before any work starts, such as an archive path without the
// expected extension. Like OpError it records the operation that was
// attempted, plus the field and value that failed the check.
type ValidationError struct {
	Err       error
	Operation string
	Field     string
	Value     any
}

// NewValidationError wraps err with the operation it aborted and the
// offending field and value.
func NewValidationError(operation, field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:       err,
		Operation: operation,
		Field:     field,
		Value:     value,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q: %v", e.Operation, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if a given error is of type ValidationError.
func IsValidationError(err error) bool {
	return AsValidationError(err) != nil
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
