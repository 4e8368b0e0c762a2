// File: case.go
// Title: Case Assertion Keywords
// Description: Lowercase, uppercase and titlecase predicates over Unicode
//              case categories, and the assertion keywords built on them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05

package stringx

import (
	"fmt"
	"unicode"

	"github.com/msto63/strkw/foundation/core/errors"
)

// IsLowercase reports whether s has at least one cased character and no
// uppercase or titlecase characters
func IsLowercase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// IsUppercase reports whether s has at least one cased character and no
// lowercase or titlecase characters
func IsUppercase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// IsTitlecase reports whether every run of cased characters in s starts
// with an uppercase or titlecase character followed only by lowercase ones
func IsTitlecase(s string) bool {
	cased := false
	previousCased := false

	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if previousCased {
				return false
			}
			previousCased = true
			cased = true
		case unicode.IsLower(r):
			if !previousCased {
				return false
			}
			previousCased = true
			cased = true
		default:
			previousCased = false
		}
	}

	return cased
}

// AssertLowercase fails unless s is lowercase. An empty message selects the
// default "'<s>' is not lowercase".
func (l *Library) AssertLowercase(s, message string) error {
	return assertCase(IsLowercase(s), opShouldBeLowercase, s, "lower", message)
}

// AssertUppercase fails unless s is uppercase
func (l *Library) AssertUppercase(s, message string) error {
	return assertCase(IsUppercase(s), opShouldBeUppercase, s, "upper", message)
}

// AssertTitlecase fails unless s is titlecase
func (l *Library) AssertTitlecase(s, message string) error {
	return assertCase(IsTitlecase(s), opShouldBeTitlecase, s, "title", message)
}

func assertCase(ok bool, operation, s, kind, message string) error {
	if ok {
		return nil
	}
	return errors.AssertionFailed(module, operation, message, fmt.Sprintf("'%s' is not %scase", s, kind))
}
