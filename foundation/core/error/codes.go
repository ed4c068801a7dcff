// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit so callers can branch
//              on the kind of failure instead of on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to text-processing and configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Argument validation
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// I/O and encoding
	CodeIOError       Code = "IO_ERROR"
	CodeEncodingError Code = "ENCODING_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsClientError reports whether the code describes bad input from the caller
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidInput, CodeValueOutOfRange, CodeInvalidFormat, CodeNotFound:
		return true
	}
	return false
}
