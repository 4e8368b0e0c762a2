// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02

package error

import (
	"fmt"
	"strconv"
)

func ExampleNew() {
	err := New("'Word In UPPER' is not titlecase").
		WithCode(CodeAssertionFailed).
		WithDetail("value", "Word In UPPER")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: 'Word In UPPER' is not titlecase
	// Code: ASSERTION_FAILED
	// Severity: low
}

func ExampleWrap() {
	_, parseErr := strconv.Atoi("two")

	err := Wrap(parseErr, "invalid max_split").
		WithCode(CodeConversionFailed).
		WithOperation("split_string")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: invalid max_split: strconv.Atoi: parsing "two": invalid syntax
	// Code: CONVERSION_FAILED
}
