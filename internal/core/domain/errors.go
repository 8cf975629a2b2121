// Package domain defines the error vocabulary shared by the ordmap tools.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a failure with a structured error code.
// Codes follow the format OM-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "OM-KEY-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Key errors (KEY).
var (
	// ErrKeyNotFound indicates a lookup found no entry for the key.
	ErrKeyNotFound = NewDomainError("OM-KEY-4040", "key not found")
)

// Pair file errors (FILE).
var (
	// ErrInvalidPairFile indicates a pair file could not be decoded.
	ErrInvalidPairFile = NewDomainError("OM-FILE-4000", "invalid pair file")

	// ErrPairFileIO indicates a pair file could not be read or written.
	ErrPairFileIO = NewDomainError("OM-FILE-5000", "pair file i/o failed")
)

// Operation errors (OP).
var (
	// ErrUnknownReducer indicates an unsupported reduce operation.
	ErrUnknownReducer = NewDomainError("OM-OP-4001", "unknown reduce operation")

	// ErrUnknownTransform indicates an unsupported map function.
	ErrUnknownTransform = NewDomainError("OM-OP-4002", "unknown transform")

	// ErrInvalidNumber indicates a value could not be parsed as a number.
	ErrInvalidNumber = NewDomainError("OM-OP-4003", "value is not a number")

	// ErrEmptyReduce indicates a reduce without identity over no values.
	ErrEmptyReduce = NewDomainError("OM-OP-4220", "nothing to reduce")
)

// Configuration and argument errors (CFG, ARG).
var (
	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = NewDomainError("OM-CFG-4000", "invalid configuration")

	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("OM-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("OM-ARG-1002", "missing required argument")
)
