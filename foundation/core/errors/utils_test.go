// File: utils_test.go
// Title: Standard Error Constructor Tests
// Description: Tests that every constructor produces the expected message,
//              code and module details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09

package errors

import (
	"errors"
	"fmt"
	"testing"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
	})
}

func TestConversionFailed(t *testing.T) {
	err := ConversionFailed(ModuleStringx, "get_line", "line_number", "abc")

	want := "Cannot convert 'line_number' argument 'abc' to an integer."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != mdwerror.CodeConversionFailed {
		t.Errorf("Code() = %v", err.Code())
	}
	details := err.Details()
	if details["argument"] != "line_number" || details["value"] != "abc" {
		t.Errorf("details = %v", details)
	}
}

func TestAssertionFailed(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"default message", "", "'ABC' is not lowercase"},
		{"custom message", "custom", "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertionFailed(ModuleStringx, "should_be_lowercase", tt.message, "'ABC' is not lowercase")
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
			if !err.Code().IsTestFailure() {
				t.Error("assertion errors should be test failures")
			}
		})
	}
}

func TestIndexOutOfRange(t *testing.T) {
	err := IndexOutOfRange(ModuleStringx, "get_line", 5, 3)
	if err.Code() != mdwerror.CodeOutOfRange {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Error() != "index 5 out of range for 3 items" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestInvalidPattern(t *testing.T) {
	cause := errors.New("missing )")
	err := InvalidPattern(ModuleStringx, "get_lines_matching_regexp", "(", cause)
	if !errors.Is(err, cause) {
		t.Error("InvalidPattern should wrap its cause")
	}
	if err.Code() != mdwerror.CodeInvalidPattern {
		t.Errorf("Code() = %v", err.Code())
	}
}

func TestBoundaryErrors(t *testing.T) {
	unknown := UnknownKeyword("Frobnicate")
	if unknown.Error() != "No keyword with name 'Frobnicate' found." {
		t.Errorf("UnknownKeyword() = %q", unknown.Error())
	}
	if ExtractModule(unknown) != ModuleKeywords {
		t.Errorf("ExtractModule() = %q", ExtractModule(unknown))
	}

	args := InvalidArguments("Get Line", "expected 2 arguments, got 1")
	if args.Error() != "Keyword 'Get Line' expected 2 arguments, got 1." {
		t.Errorf("InvalidArguments() = %q", args.Error())
	}

	undefined := UndefinedVariable("name")
	if undefined.Error() != "Variable '${name}' not found." {
		t.Errorf("UndefinedVariable() = %q", undefined.Error())
	}
	if undefined.Code() != mdwerror.CodeInvalidInput || !IsModuleOperation(undefined, ModuleSuite, "expand") {
		t.Errorf("UndefinedVariable() code/module = %v/%q", undefined.Code(), ExtractModule(undefined))
	}

	suite := SuiteError("load", "suite.yaml", errors.New("boom"))
	if suite.Severity() != mdwerror.SeverityHigh {
		t.Errorf("SuiteError severity = %v", suite.Severity())
	}
}

func TestExtractors(t *testing.T) {
	err := InvalidInput(ModuleStringx, "fetch_from_left", "", "non-empty marker")

	if !IsModuleOperation(err, ModuleStringx, "fetch_from_left") {
		t.Error("IsModuleOperation() = false, want true")
	}

	wrapped := fmt.Errorf("step 1: %w", err)
	if ExtractOperation(wrapped) != "fetch_from_left" {
		t.Errorf("ExtractOperation() through fmt wrap = %q", ExtractOperation(wrapped))
	}

	if ExtractModule(errors.New("plain")) != "" {
		t.Error("ExtractModule() on plain error should be empty")
	}
}

func TestMessageOf(t *testing.T) {
	if MessageOf(nil) != "" {
		t.Error("MessageOf(nil) should be empty")
	}
	if got := MessageOf(AssertionFailed(ModuleStringx, "op", "boom", "")); got != "boom" {
		t.Errorf("MessageOf() = %q", got)
	}
	wrapped := InvalidPattern(ModuleStringx, "op", "(", errors.New("missing )"))
	if got := MessageOf(wrapped); got != "invalid pattern '(': missing )" {
		t.Errorf("MessageOf() wrapped = %q", got)
	}
}
