// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests for code validation, categorization and the severity
//              derived from each code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02

package error

import (
	"testing"
)

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"conversion", CodeConversionFailed, true},
		{"assertion", CodeAssertionFailed, true},
		{"unknown keyword", CodeUnknownKeyword, true},
		{"made up", Code("NOT_A_CODE"), false},
		{"empty", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeConversionFailed, "keyword"},
		{CodeAssertionFailed, "keyword"},
		{CodeOutOfRange, "keyword"},
		{CodeInvalidPattern, "keyword"},
		{CodeUnknownKeyword, "boundary"},
		{CodeInvalidArguments, "boundary"},
		{CodeConfigError, "configuration"},
		{CodeInvalidInput, "validation"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestCodeIsTestFailure(t *testing.T) {
	if !CodeAssertionFailed.IsTestFailure() {
		t.Error("ASSERTION_FAILED should be a test failure")
	}
	if CodeConversionFailed.IsTestFailure() {
		t.Error("CONVERSION_FAILED should not be a test failure")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeConfigError, SeverityHigh},
		{CodeSuiteError, SeverityHigh},
		{CodeAssertionFailed, SeverityLow},
		{CodeConversionFailed, SeverityLow},
		{CodeTimeout, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
			}
			if tt.want.ShouldAlert() != (tt.want >= SeverityHigh) {
				t.Errorf("ShouldAlert() mismatch for %v", tt.want)
			}
		})
	}
}
