// File: utils.go
// Title: Standard Error Constructors
// Description: Constructors for every failure kind a keyword or its boundary
//              can produce, plus helpers to read module and operation back out
//              of an error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-02 v0.1.0: Conversion, assertion and range errors
// - 2026-10-09 v0.2.0: Registry, argument and suite errors
// - 2026-10-15 v0.2.1: Undefined suite variables

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
)

// ConversionFailed reports an argument that is not an integer. The message
// names the argument and the offending value.
func ConversionFailed(module, operation, argument, value string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("Cannot convert '%s' argument '%s' to an integer.", argument, value).
		Code(mdwerror.CodeConversionFailed).
		Detail("argument", argument).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// AssertionFailed reports a failed check. An empty message is replaced by
// defaultMessage.
func AssertionFailed(module, operation, message, defaultMessage string) *mdwerror.Error {
	if message == "" {
		message = defaultMessage
	}
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeAssertionFailed).
		Severity(mdwerror.SeverityLow).
		Build()
}

// IndexOutOfRange reports an index outside [-length, length)
func IndexOutOfRange(module, operation string, index, length int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of range for %d items", index, length).
		Code(mdwerror.CodeOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidPattern reports a pattern the engine could not compile or run
func InvalidPattern(module, operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern '%s'", pattern).
		Cause(cause).
		Code(mdwerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// UnknownKeyword reports a keyword name the registry cannot resolve
func UnknownKeyword(name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleKeywords).
		Operation("resolve").
		Messagef("No keyword with name '%s' found.", name).
		Code(mdwerror.CodeUnknownKeyword).
		Detail("keyword", name).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidArguments reports arguments that do not fit a keyword's signature
func InvalidArguments(keyword, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleKeywords).
		Operation("bind").
		Messagef("Keyword '%s' %s.", keyword, reason).
		Code(mdwerror.CodeInvalidArguments).
		Detail("keyword", keyword).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// UndefinedVariable reports a ${name} reference with no value in scope
func UndefinedVariable(name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleSuite).
		Operation("expand").
		Messagef("Variable '${%s}' not found.", name).
		Code(mdwerror.CodeInvalidInput).
		Detail("variable", name).
		Severity(mdwerror.SeverityLow).
		Build()
}

// SuiteError reports a suite file that cannot be read or parsed
func SuiteError(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleSuite).
		Operation(operation).
		Messagef("suite %s: %s failed", path, operation).
		Cause(cause).
		Code(mdwerror.CodeSuiteError).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ConfigError reports a configuration file or value that cannot be used
func ConfigError(operation string, cause error, details map[string]interface{}) *mdwerror.Error {
	b := NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(fmt.Sprintf("config.%s failed", operation)).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Severity(mdwerror.SeverityHigh)
	for k, v := range details {
		b.Detail(k, v)
	}
	return b.Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := mdwerror.As(err); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// MessageOf returns the message a test engine shows for err: the error's own
// message for structured errors, err.Error() otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if mdwErr, ok := err.(*mdwerror.Error); ok && mdwErr.Unwrap() == nil {
		return mdwErr.Message()
	}
	return err.Error()
}
