// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the string keyword library and
//              its boundary layers. Codes classify failures so the runner and
//              the CLI can report them consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial set of keyword error codes
// - 2026-10-09 v0.2.0: Added boundary codes for registry and suite runner

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Keyword failures
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodeAssertionFailed  Code = "ASSERTION_FAILED"
	CodeOutOfRange       Code = "OUT_OF_RANGE"
	CodeInvalidPattern   Code = "INVALID_PATTERN"

	// Boundary failures
	CodeUnknownKeyword   Code = "UNKNOWN_KEYWORD"
	CodeInvalidArguments Code = "INVALID_ARGUMENTS"
	CodeSuiteError       Code = "SUITE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeConversionFailed, CodeAssertionFailed, CodeOutOfRange, CodeInvalidPattern,
		CodeUnknownKeyword, CodeInvalidArguments, CodeSuiteError,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConversionFailed, CodeAssertionFailed, CodeOutOfRange, CodeInvalidPattern:
		return "keyword"
	case CodeUnknownKeyword, CodeInvalidArguments, CodeSuiteError:
		return "boundary"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// IsTestFailure reports whether the code describes a failed check rather than
// a broken invocation. The runner reports the two differently.
func (c Code) IsTestFailure() bool {
	return c == CodeAssertionFailed
}
