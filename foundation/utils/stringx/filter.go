// File: filter.go
// Title: Line Filtering Keywords
// Description: Selects the lines of a text that contain a substring, match a
//              glob or match a regular expression, and joins the selection
//              with newlines.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-04
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-04 v0.1.0: Substring, glob and regex filters
// - 2026-10-10 v0.2.0: Case-insensitive lowering via x/text/cases

package stringx

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2/syntax"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
)

// LinesContaining returns the lines of s that contain substr
func (l *Library) LinesContaining(s, substr string, caseInsensitive bool) string {
	match := func(line string) (bool, error) {
		return strings.Contains(line, substr), nil
	}

	if caseInsensitive {
		lower := newLowerer()
		substr = lower(substr)
		match = func(line string) (bool, error) {
			return strings.Contains(lower(line), substr), nil
		}
	}

	result, _ := l.filterLines(s, match)
	return result
}

// LinesMatchingGlob returns the lines of s that match pattern as a whole
func (l *Library) LinesMatchingGlob(s, pattern string, caseInsensitive bool) (string, error) {
	lower := func(v string) string { return v }
	if caseInsensitive {
		lower = newLowerer()
		pattern = lower(pattern)
	}

	result, err := l.filterLines(s, func(line string) (bool, error) {
		return l.glob.FullMatch(lower(line), pattern)
	})
	if err != nil {
		return "", engineError(opLinesMatchingGlob, pattern, err)
	}
	return result, nil
}

// LinesMatchingRegex returns the lines of s that pattern matches completely.
// Use an inline (?i) flag for case-insensitive matching.
func (l *Library) LinesMatchingRegex(s, pattern string) (string, error) {
	result, err := l.filterLines(s, func(line string) (bool, error) {
		return l.regex.FullMatch(line, pattern)
	})
	if err != nil {
		return "", engineError(opLinesMatchingRegex, pattern, err)
	}
	return result, nil
}

func (l *Library) filterLines(s string, match func(line string) (bool, error)) (string, error) {
	lines := Lines(s)
	matched := make([]string, 0, len(lines))

	for _, line := range lines {
		ok, err := match(line)
		if err != nil {
			return "", err
		}
		if ok {
			matched = append(matched, line)
		}
	}

	l.logger.Info(fmt.Sprintf("%d out of %d lines matched", len(matched), len(lines)),
		log.Fields{"matched": len(matched), "total": len(lines)})

	return strings.Join(matched, "\n"), nil
}

// newLowerer returns a lowering function for use by a single call.
// Casers keep state and must not be shared between goroutines.
func newLowerer() func(string) string {
	caser := cases.Lower(language.Und)
	return caser.String
}

// engineError classifies a glob or regex failure. Syntax problems are the
// caller's pattern; anything else happened while matching.
func engineError(operation, pattern string, err error) error {
	var syntaxErr *syntax.Error
	var replErr *ReplacementError
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &replErr) {
		return errors.InvalidPattern(module, operation, pattern, err)
	}

	return errors.NewErrorBuilder(module).
		Operation(operation).
		Message("regular expression evaluation failed").
		Code(mdwerror.CodeTimeout).
		Detail("pattern", pattern).
		Cause(err).
		Build()
}
