// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx implements the string keywords: line access,
//              line filtering, transformation and case assertions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-03 v0.1.0: Initial keyword set
// - 2026-10-10 v0.2.0: Documented engine interfaces and index arguments

// Package stringx implements string manipulation and assertion keywords for
// test automation.
//
// Package: stringx
// Title: String Keywords
// Description: Every keyword is a method on Library and a pure function of its
//              arguments. Informational records ("3 lines", "2 out of 5
//              lines matched") go to the injected logger; failures are
//              returned as *error.Error values carrying a code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-10
//
// # Keyword Families
//
//   - Line access: LineCount, LinesInRange, LineAt
//   - Line filtering: LinesContaining, LinesMatchingGlob, LinesMatchingRegex
//   - Transformation: Replace, ReplaceRegex, Split, SplitFromRight,
//     SplitToCharacters, Substring, FetchBefore, FetchAfter
//   - Case assertions: AssertLowercase, AssertUppercase, AssertTitlecase
//
// # Lines
//
// Text is split on \n, \r\n and \r. Terminators are removed and a trailing
// terminator does not add an empty line, so "" has no lines and "a\n" has one.
// Filters join their selection with "\n".
//
// # Index Arguments
//
// Range bounds are Index values: Absent leaves the bound open, EmptyIndex
// stands for an empty argument and resolves to 0, At(n) is an integer.
// Negative values count from the end and bounds outside the sequence clamp,
// so LinesInRange and Substring never fail. ParseIndex and ToInteger convert
// raw arguments; ToInteger fails with CONVERSION_FAILED:
//
//	Cannot convert 'count' argument 'abc' to an integer.
//
// # Patterns
//
// Glob patterns support *, ?, [set] and [!set] and must match the whole line.
// Regular expressions use github.com/dlclark/regexp2 syntax and are anchored
// at both ends; write (?i) for case-insensitive matching. Replacement
// templates refer to groups as \1, \g<1> or \g<name>.
//
// Case-insensitive filters lower both sides with golang.org/x/text/cases.
// Language-specific mappings such as the Turkish dotless i are not applied.
//
// # Usage
//
//	lib := stringx.New(stringx.Options{Logger: logger})
//
//	n := lib.LineCount("a\nb\nc")                           // 3
//	mid := lib.LinesInRange("a\nb\nc\nd", stringx.At(1), stringx.At(-1)) // [b c]
//	if err := lib.AssertTitlecase("Word In UPPER", ""); err != nil {
//		// 'Word In UPPER' is not titlecase
//	}
package stringx
