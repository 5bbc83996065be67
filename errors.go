package colframe

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
)

// Contract violations. These are raised with panic: they mean the API was
// misused, not that external data was bad. The panic value is an error that
// wraps one of these sentinels and is marked as an assertion failure.
var (
	// ErrColumnNotFound indicates a lookup of a column name the frame does not have
	ErrColumnNotFound = errors.New("colframe: column not found")

	// ErrMaskLength indicates a boolean mask whose length differs from the column length
	ErrMaskLength = errors.New("colframe: mask length does not match column length")

	// ErrOutOfRange indicates an index or slice bound outside the column
	ErrOutOfRange = errors.New("colframe: index out of range")

	// ErrOperandMismatch indicates a filter operand of the wrong kind for the column
	ErrOperandMismatch = errors.New("colframe: operand kind does not match column kind")

	// ErrShapeMismatch indicates column data whose lengths or counts disagree
	ErrShapeMismatch = errors.New("colframe: inconsistent column shape")

	// ErrDuplicateColumn indicates two columns with the same name in one frame
	ErrDuplicateColumn = errors.New("colframe: duplicate column name")

	// ErrUnknownComparator indicates a Comparator value outside the defined set
	ErrUnknownComparator = errors.New("colframe: unknown comparator")
)

// Recoverable errors returned by load and save operations.
var (
	// ErrEmptyData indicates that the data source contains no header
	ErrEmptyData = errors.New("colframe: empty data source")

	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("colframe: unsupported file format")

	// ErrFileNotFound indicates file not found
	ErrFileNotFound = errors.New("colframe: file not found")

	// ErrPermissionDenied indicates permission denied
	ErrPermissionDenied = errors.New("colframe: permission denied")
)

// violation builds the panic value for a contract violation.
func violation(sentinel error, format string, args ...any) error {
	return errors.WithAssertionFailure(errors.Wrapf(sentinel, format, args...))
}

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context. Missing files and permission
// problems are additionally marked with ErrFileNotFound and ErrPermissionDenied.
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("colframe: %s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	msg := strings.Join(parts, ", ")
	if baseErr == nil {
		return errors.New(msg)
	}

	err := errors.Wrap(baseErr, msg)
	switch {
	case errors.Is(baseErr, fs.ErrNotExist):
		err = errors.Mark(err, ErrFileNotFound)
	case errors.Is(baseErr, fs.ErrPermission):
		err = errors.Mark(err, ErrPermissionDenied)
	}
	return err
}
