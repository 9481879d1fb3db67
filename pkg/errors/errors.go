package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can occur while building
// or unpacking an archive. Categories drive logging and let callers
// react to a class of failure without parsing status strings.
type ErrorCategory int

const (
	// ErrorSource indicates a problem reading one of the inputs being
	// archived, such as a permission error or a vanished file.
	ErrorSource ErrorCategory = iota + 1

	// ErrorDestination indicates a problem resolving or preparing the
	// output location (deleting a stale archive, creating directories).
	ErrorDestination

	// ErrorArchive indicates a failure while writing entries into the
	// archive container.
	ErrorArchive

	// ErrorExtract indicates a failure while reading entries out of an
	// archive or writing them to disk.
	ErrorExtract

	// ErrorIntegrity indicates that an extracted entry did not match
	// the checksum recorded in the archive.
	ErrorIntegrity
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorSource:
		return "source"
	case ErrorDestination:
		return "destination"
	case ErrorArchive:
		return "archive"
	case ErrorExtract:
		return "extract"
	case ErrorIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// OpError is the error type produced by archive and extract operations.
// It records what was being attempted, when, and the underlying cause.
type OpError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewOpError wraps err with its category and the operation that failed.
func NewOpError(category ErrorCategory, operation string, err error) *OpError {
	return &OpError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *OpError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsOpError checks if a given error is of type OpError.
func IsOpError(err error) bool {
	return AsOpError(err) != nil
}

// AsOpError attempts to extract an OpError from a given error.
func AsOpError(err error) *OpError {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe
	}
	return nil
}
