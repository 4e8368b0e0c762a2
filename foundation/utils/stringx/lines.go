// File: lines.go
// Title: Line Access Keywords
// Description: Splits text into lines on \n, \r\n and \r and implements the
//              line count, line range and single line keywords.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03

package stringx

import (
	"fmt"

	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
)

// Lines splits s into lines with terminators removed. A trailing terminator
// does not start another line, so "" and "\n" hold zero and one line.
func Lines(s string) []string {
	lines := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// LineCount returns the number of lines in s
func (l *Library) LineCount(s string) int {
	count := len(Lines(s))
	l.logger.Info(fmt.Sprintf("%d lines", count), log.Int("lines", count))
	return count
}

// LinesInRange returns the lines of s in the half-open range [start, end)
func (l *Library) LinesInRange(s string, start, end Index) []string {
	lines := Lines(s)
	lo, hi := sliceBounds(len(lines), start, end)

	selected := make([]string, hi-lo)
	copy(selected, lines[lo:hi])

	l.logger.Info(fmt.Sprintf("%d lines returned", len(selected)), log.Int("lines", len(selected)))
	return selected
}

// LineAt returns the line at lineNumber. Negative numbers count from the
// last line.
func (l *Library) LineAt(s string, lineNumber int) (string, error) {
	lines := Lines(s)

	i := lineNumber
	if i < 0 {
		i += len(lines)
	}
	if i < 0 || i >= len(lines) {
		return "", errors.IndexOutOfRange(module, opGetLine, lineNumber, len(lines))
	}
	return lines[i], nil
}
