// Package apperrors provides typed error handling for the beacon service.
// It uses struct-based errors with separate user-safe and internal messages.
package apperrors

import (
	"errors"
	"fmt"
)

// Code categorizes errors for consistent handling across the application.
type Code int

// Error codes for categorizing application errors.
const (
	// CodeUnknown indicates an unspecified error type
	CodeUnknown Code = iota
	// CodeStoreMissing indicates the transmission store file does not exist
	CodeStoreMissing
	// CodeStoreRead indicates the store exists but could not be read
	CodeStoreRead
	// CodeStoreDecode indicates the store content is not a valid document
	CodeStoreDecode
	// CodeStoreEmpty indicates the store parsed but holds no entries
	CodeStoreEmpty
	// CodeStoreWrite indicates serializing or writing the store failed
	CodeStoreWrite
)

// Error represents a domain error with separate user-safe and internal messages.
// The Message field is always safe to expose to clients.
// The Internal field contains debugging details and should only be logged.
type Error struct {
	Code     Code   // Error category for handler mapping
	Message  string // User-safe message (always exposable)
	Internal string // Internal details (for logging only)
	Err      error  // Wrapped underlying error
}

// Error implements the error interface.
// Returns the user-safe message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithInternal adds internal debugging details to the error.
func (e *Error) WithInternal(format string, args ...any) *Error {
	e.Internal = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeStoreMissing:
		return "store_missing"
	case CodeStoreRead:
		return "store_read"
	case CodeStoreDecode:
		return "store_decode"
	case CodeStoreEmpty:
		return "store_empty"
	case CodeStoreWrite:
		return "store_write"
	default:
		return fmt.Sprintf("unknown_code_%d", c)
	}
}

// Is reports whether target matches this error's code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// New creates an error with the given code and user-safe message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Sentinels for errors.Is matching by code.
var (
	ErrStoreMissing = &Error{Code: CodeStoreMissing, Message: "transmission store not found"}
	ErrStoreRead    = &Error{Code: CodeStoreRead, Message: "transmission store unreadable"}
	ErrStoreDecode  = &Error{Code: CodeStoreDecode, Message: "transmission store corrupt"}
	ErrStoreEmpty   = &Error{Code: CodeStoreEmpty, Message: "transmission store empty"}
	ErrStoreWrite   = &Error{Code: CodeStoreWrite, Message: "transmission store write failed"}
)
