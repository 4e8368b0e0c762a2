// Package error provides the structured error type used across strkw.
//
// Package: error
// Title: Structured Errors for the String Keyword Library
// Description: Every failing keyword returns an *Error carrying a Code, a
//              Severity, structured details and a short stack trace. The suite
//              runner and the CLI classify failures by code, and the logger
//              maps severity to log level.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Usage:
//
//	err := error.New("Cannot convert 'count' argument 'x' to an integer.").
//		WithCode(error.CodeConversionFailed).
//		WithDetail("argument", "count")
//
//	if error.HasCode(err, error.CodeAssertionFailed) {
//		// a check failed, as opposed to a broken invocation
//	}
package error
