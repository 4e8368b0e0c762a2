// File: index.go
// Title: Index Arguments and Integer Conversion
// Description: The Index type models an optional range bound (absent, empty
//              or an integer) and resolves it against a sequence length the
//              way slice bounds work: negatives count from the end and
//              out-of-range bounds clamp. ToInteger is the strict conversion
//              used for counts and line numbers.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-03
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-03 v0.1.0: Index type and strict integer conversion
// - 2026-10-15 v0.1.1: Integers beyond the int range saturate

package stringx

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"

	"github.com/msto63/strkw/foundation/core/errors"
)

type indexKind uint8

const (
	indexAbsent indexKind = iota
	indexEmpty
	indexInteger
)

// Index is an optional slice bound
type Index struct {
	kind  indexKind
	value int
}

// Absent returns an Index that leaves its bound open
func Absent() Index {
	return Index{kind: indexAbsent}
}

// EmptyIndex returns the Index given as an empty string. It resolves to 0.
func EmptyIndex() Index {
	return Index{kind: indexEmpty}
}

// At returns an integer Index
func At(n int) Index {
	return Index{kind: indexInteger, value: n}
}

// ParseIndex converts a raw argument into an Index. The empty string maps to
// EmptyIndex; anything else must be an integer.
func ParseIndex(name, raw string) (Index, error) {
	if raw == "" {
		return EmptyIndex(), nil
	}
	n, err := ToInteger(name, raw)
	if err != nil {
		return Index{}, err
	}
	return At(n), nil
}

// IsAbsent reports whether the bound is open
func (i Index) IsAbsent() bool {
	return i.kind == indexAbsent
}

// String returns the index as it would be written as an argument
func (i Index) String() string {
	switch i.kind {
	case indexEmpty:
		return ""
	case indexInteger:
		return strconv.Itoa(i.value)
	default:
		return "None"
	}
}

// resolve maps the index onto [0, length]. Absent returns def.
func (i Index) resolve(length, def int) int {
	var v int
	switch i.kind {
	case indexAbsent:
		return def
	case indexEmpty:
		v = 0
	default:
		v = i.value
	}

	if v < 0 {
		v += length
		if v < 0 {
			v = 0
		}
	} else if v > length {
		v = length
	}
	return v
}

// sliceBounds returns the half-open range selected by start and end in a
// sequence of the given length
func sliceBounds(length int, start, end Index) (int, int) {
	lo := start.resolve(length, 0)
	hi := end.resolve(length, length)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// ToInteger converts value to an int. Surrounding whitespace, one leading
// sign and single underscores between digits are accepted. Integers beyond
// the int range saturate at math.MaxInt or math.MinInt, which every index,
// count and line number treats like any other out-of-range value. On
// failure the error names the argument.
func ToInteger(name, value string) (int, error) {
	s := strings.TrimSpace(value)

	digits := s
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if !validDigits(digits) {
		return 0, errors.ConversionFailed(module, "convert_to_integer", name, value)
	}

	n, err := strconv.Atoi(strings.ReplaceAll(s, "_", ""))
	if stderrors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, errors.ConversionFailed(module, "convert_to_integer", name, value)
	}
	return n, nil
}

func validDigits(s string) bool {
	if s == "" || s[0] == '_' || s[len(s)-1] == '_' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '_' && s[i-1] != '_':
		default:
			return false
		}
	}
	return true
}

// IsTruthy reports whether a flag argument is set. Empty, "false", "no",
// "off", "none" and "0" are false regardless of case.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "no", "off", "none", "0":
		return false
	default:
		return true
	}
}
