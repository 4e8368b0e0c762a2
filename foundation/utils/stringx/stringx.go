// File: stringx.go
// Title: String Keyword Library
// Description: Defines the Library that carries the injected collaborators of
//              every keyword (logger, glob matcher, regex engine) and the
//              module and operation identifiers used in its errors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation with line access and filters
// - 2026-10-10 v0.2.0: Pluggable glob and regex engines, match timeout

package stringx

import (
	"time"

	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
)

// Operation identifiers reported in error details
const (
	opGetLine            = "get_line"
	opLinesMatchingGlob  = "get_lines_matching_pattern"
	opLinesMatchingRegex = "get_lines_matching_regexp"
	opReplaceRegex       = "replace_string_using_regexp"
	opFetchFromLeft      = "fetch_from_left"
	opFetchFromRight     = "fetch_from_right"
	opShouldBeLowercase  = "should_be_lowercase"
	opShouldBeUppercase  = "should_be_uppercase"
	opShouldBeTitlecase  = "should_be_titlecase"
)

const module = errors.ModuleStringx

// DefaultMatchTimeout bounds a single regex evaluation
const DefaultMatchTimeout = 5 * time.Second

// Options configures a Library. Zero values select the defaults.
type Options struct {
	// Logger receives the informational records of every keyword
	Logger *log.Logger

	// Glob performs full-line wildcard matching
	Glob GlobMatcher

	// Regex performs full-line matching and substitution
	Regex RegexEngine

	// MatchTimeout is used when Regex is nil
	MatchTimeout time.Duration
}

// Library exposes the string keywords. It holds only immutable
// collaborators and is safe for concurrent use.
type Library struct {
	logger *log.Logger
	glob   GlobMatcher
	regex  RegexEngine
}

// New creates a Library from opts
func New(opts Options) *Library {
	lib := &Library{
		logger: opts.Logger,
		glob:   opts.Glob,
		regex:  opts.Regex,
	}

	if lib.logger == nil {
		lib.logger = log.GetDefault().WithName(module)
	}
	if lib.glob == nil {
		lib.glob = NewGlobMatcher()
	}
	if lib.regex == nil {
		timeout := opts.MatchTimeout
		if timeout <= 0 {
			timeout = DefaultMatchTimeout
		}
		lib.regex = NewRegexEngine(timeout)
	}

	return lib
}

// Default returns a Library with default collaborators
func Default() *Library {
	return New(Options{})
}

// Logger returns the logger the library reports through
func (l *Library) Logger() *log.Logger {
	return l.logger
}
