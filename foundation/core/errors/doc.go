// Package errors provides the standard constructors for strkw errors.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Every package creates its errors through this package so that
//              codes, severities and the module/operation details are set the
//              same way everywhere. The constructors return *error.Error from
//              foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Failure kinds:
//
//   - ConversionFailed: an index or count argument is not an integer
//   - AssertionFailed: a case assertion did not hold
//   - IndexOutOfRange: a line index is outside the line list
//   - InvalidPattern: a regular expression or glob could not be compiled
//   - InvalidInput: an argument value is not allowed (e.g. empty marker)
//   - UnknownKeyword, InvalidArguments: keyword lookup and binding
//   - SuiteError, ConfigError: file level problems
//
// Example:
//
//	err := errors.ConversionFailed(errors.ModuleStringx, "get_line", "line_number", "x")
//	fmt.Println(err) // Cannot convert 'line_number' argument 'x' to an integer.
package errors
