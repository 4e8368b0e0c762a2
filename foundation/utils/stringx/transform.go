// File: transform.go
// Title: Transformation Keywords
// Description: Literal and regex replacement with bounded counts, splitting
//              from either end, splitting into characters, substrings by
//              character range and fetching around a marker.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-05 v0.1.0: Replacement, splitting and substring keywords
// - 2026-10-10 v0.2.0: Right splitting without reversing the input

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/strkw/foundation/core/errors"
)

// Replace replaces the first count non-overlapping occurrences of search.
// A negative count replaces all of them; zero returns s unchanged.
func (l *Library) Replace(s, search, replacement string, count int) string {
	if count == 0 {
		return s
	}
	return strings.Replace(s, search, replacement, count)
}

// ReplaceRegex replaces the first count matches of pattern. The zero count
// never reaches the engine, where it would mean unlimited.
func (l *Library) ReplaceRegex(s, pattern, replacement string, count int) (string, error) {
	if count == 0 {
		return s, nil
	}
	if count < 0 {
		count = -1
	}

	result, err := l.regex.Substitute(s, pattern, replacement, count)
	if err != nil {
		return "", engineError(opReplaceRegex, pattern, err)
	}
	return result, nil
}

// Split splits s around separator into at most maxSplit+1 pieces. An empty
// separator splits on runs of whitespace and drops leading and trailing
// whitespace. A negative maxSplit means no limit.
func (l *Library) Split(s, separator string, maxSplit int) []string {
	if separator == "" {
		return splitWhitespace(s, maxSplit)
	}
	// s has at most len(s) separators
	if maxSplit < 0 || maxSplit >= len(s) {
		return strings.Split(s, separator)
	}
	return strings.SplitN(s, separator, maxSplit+1)
}

// SplitFromRight is Split with the split points taken from the right end, so
// any unsplit remainder stays in the first piece
func (l *Library) SplitFromRight(s, separator string, maxSplit int) []string {
	if separator == "" {
		return splitWhitespaceRight(s, maxSplit)
	}
	if maxSplit < 0 {
		return strings.Split(s, separator)
	}

	var reversed []string
	end := len(s)
	for len(reversed) < maxSplit {
		i := strings.LastIndex(s[:end], separator)
		if i < 0 {
			break
		}
		reversed = append(reversed, s[i+len(separator):end])
		end = i
	}
	reversed = append(reversed, s[:end])

	pieces := make([]string, len(reversed))
	for i, p := range reversed {
		pieces[len(reversed)-1-i] = p
	}
	return pieces
}

// SplitToCharacters returns every character of s as its own string.
// Invalid UTF-8 bytes are returned one byte at a time.
func (l *Library) SplitToCharacters(s string) []string {
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		chars = append(chars, s[i:i+size])
		i += size
	}
	return chars
}

// Substring returns the characters of s in the half-open range [start, end)
func (l *Library) Substring(s string, start, end Index) string {
	offsets := runeOffsets(s)
	lo, hi := sliceBounds(len(offsets)-1, start, end)
	return s[offsets[lo]:offsets[hi]]
}

// FetchBefore returns the part of s before the first marker, or s when the
// marker does not occur
func (l *Library) FetchBefore(s, marker string) (string, error) {
	if marker == "" {
		return "", errors.InvalidInput(module, opFetchFromLeft, marker, "non-empty marker")
	}
	if i := strings.Index(s, marker); i >= 0 {
		return s[:i], nil
	}
	return s, nil
}

// FetchAfter returns the part of s after the last marker, or s when the
// marker does not occur
func (l *Library) FetchAfter(s, marker string) (string, error) {
	if marker == "" {
		return "", errors.InvalidInput(module, opFetchFromRight, marker, "non-empty marker")
	}
	if i := strings.LastIndex(s, marker); i >= 0 {
		return s[i+len(marker):], nil
	}
	return s, nil
}

// runeOffsets returns the byte offset of every character of s followed by
// len(s)
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(offsets, len(s))
}

func splitWhitespace(s string, maxSplit int) []string {
	fields := make([]string, 0, 4)
	i := 0
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return fields
		}
		if maxSplit >= 0 && len(fields) == maxSplit {
			return append(fields, s[i:])
		}

		j := i
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if unicode.IsSpace(r) {
				break
			}
			j += size
		}
		fields = append(fields, s[i:j])
		i = j
	}
}

func splitWhitespaceRight(s string, maxSplit int) []string {
	var reversed []string
	end := len(s)
	for {
		end = skipSpaceRight(s, end)
		if end <= 0 {
			break
		}
		if maxSplit >= 0 && len(reversed) == maxSplit {
			reversed = append(reversed, s[:end])
			break
		}

		j := end
		for j > 0 {
			r, size := utf8.DecodeLastRuneInString(s[:j])
			if unicode.IsSpace(r) {
				break
			}
			j -= size
		}
		reversed = append(reversed, s[j:end])
		end = j
	}

	fields := make([]string, len(reversed))
	for i, f := range reversed {
		fields[len(reversed)-1-i] = f
	}
	return fields
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func skipSpaceRight(s string, end int) int {
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}
