// File: regex.go
// Title: Regular Expression Engine
// Description: RegexEngine abstracts full-line matching and bounded
//              substitution. The default implementation uses regexp2, whose
//              syntax (lookarounds, backreferences, inline flags) is close to
//              what test authors write, and bounds every evaluation with a
//              match timeout.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-04
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-04 v0.1.0: Full-line matching and substitution
// - 2026-10-10 v0.2.0: Backslash group references in replacements
// - 2026-10-15 v0.2.1: Patterns compiled alone before anchoring, group
//                      references checked against the pattern

package stringx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// RegexEngine matches and substitutes regular expressions. A negative limit
// passed to Substitute means unlimited; zero means no substitution.
type RegexEngine interface {
	FullMatch(text, pattern string) (bool, error)
	Substitute(text, pattern, replacement string, limit int) (string, error)
}

// Regexp2Engine implements RegexEngine with github.com/dlclark/regexp2
type Regexp2Engine struct {
	timeout time.Duration
	cache   *patternCache
}

// NewRegexEngine creates an engine that aborts evaluations running longer
// than timeout
func NewRegexEngine(timeout time.Duration) *Regexp2Engine {
	return &Regexp2Engine{
		timeout: timeout,
		cache:   newPatternCache(0),
	}
}

// Timeout returns the per-evaluation match timeout
func (e *Regexp2Engine) Timeout() time.Duration {
	return e.timeout
}

// FullMatch reports whether pattern matches the whole of text. The pattern
// must compile on its own so that it cannot close the anchoring group.
func (e *Regexp2Engine) FullMatch(text, pattern string) (bool, error) {
	if _, err := e.compile(pattern); err != nil {
		return false, err
	}
	re, err := e.compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}

// Substitute replaces up to limit leftmost matches of pattern in text.
// Group references in replacement use the \1, \g<1> and \g<name> forms.
func (e *Regexp2Engine) Substitute(text, pattern, replacement string, limit int) (string, error) {
	if limit == 0 {
		return text, nil
	}
	if limit < 0 {
		limit = -1
	}

	re, err := e.compile(pattern)
	if err != nil {
		return "", err
	}

	template, refs, err := translateReplacement(replacement)
	if err != nil {
		return "", err
	}
	if err := checkGroupReferences(re, replacement, refs); err != nil {
		return "", err
	}

	return re.Replace(text, template, -1, limit)
}

// Validate compiles pattern without using it
func (e *Regexp2Engine) Validate(pattern string) error {
	_, err := e.compile(pattern)
	return err
}

func (e *Regexp2Engine) compile(expr string) (*regexp2.Regexp, error) {
	return e.cache.get(expr, func() (*regexp2.Regexp, error) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, err
		}
		if e.timeout > 0 {
			re.MatchTimeout = e.timeout
		}
		return re, nil
	})
}

// ReplacementError reports a malformed replacement template
type ReplacementError struct {
	Template string
	Reason   string
}

// Error implements the error interface
func (e *ReplacementError) Error() string {
	return e.Reason
}

// TranslateReplacement converts a backslash-style replacement template
// (\1, \g<1>, \g<name>, \\, \n, \t, \r) into regexp2's $-syntax. Literal
// '$' characters are escaped.
func TranslateReplacement(repl string) (string, error) {
	template, _, err := translateReplacement(repl)
	return template, err
}

// translateReplacement also returns the group numbers and names referenced
func translateReplacement(repl string) (string, []string, error) {
	if !strings.ContainsAny(repl, `\$`) {
		return repl, nil, nil
	}

	var refs []string
	var b strings.Builder
	b.Grow(len(repl) + 8)

	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c == '$' {
			b.WriteString("$$")
			continue
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(repl) {
			return "", nil, badReplacement(repl, "bad escape (end of pattern) at position %d", i)
		}

		i++
		next := repl[i]
		switch {
		case next == '0':
			b.WriteByte(0)
		case next >= '1' && next <= '9':
			end := i + 1
			if end < len(repl) && repl[end] >= '0' && repl[end] <= '9' {
				end++
			}
			refs = append(refs, repl[i:end])
			b.WriteString("${" + repl[i:end] + "}")
			i = end - 1
		case next == 'g':
			if i+1 >= len(repl) || repl[i+1] != '<' {
				return "", nil, badReplacement(repl, "missing < at position %d", i)
			}
			closing := strings.IndexByte(repl[i+2:], '>')
			if closing <= 0 {
				return "", nil, badReplacement(repl, "missing group name at position %d", i)
			}
			name := repl[i+2 : i+2+closing]
			refs = append(refs, name)
			b.WriteString("${" + name + "}")
			i += 2 + closing
		case next == '\\':
			b.WriteByte('\\')
		case next == 'n':
			b.WriteByte('\n')
		case next == 't':
			b.WriteByte('\t')
		case next == 'r':
			b.WriteByte('\r')
		case next == 'f':
			b.WriteByte('\f')
		case next == 'v':
			b.WriteByte('\v')
		case next == 'a':
			b.WriteByte('\a')
		case next == 'b':
			b.WriteByte('\b')
		case isASCIILetter(next):
			return "", nil, badReplacement(repl, "bad escape \\%c at position %d", next, i-1)
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
	}

	return b.String(), refs, nil
}

// checkGroupReferences fails for a reference to a group re does not define
func checkGroupReferences(re *regexp2.Regexp, template string, refs []string) error {
	for _, ref := range refs {
		if n, err := strconv.Atoi(ref); err == nil {
			if !hasGroupNumber(re, n) {
				return badReplacement(template, "invalid group reference %d", n)
			}
			continue
		}
		if re.GroupNumberFromName(ref) < 0 {
			return badReplacement(template, "unknown group name '%s'", ref)
		}
	}
	return nil
}

func hasGroupNumber(re *regexp2.Regexp, n int) bool {
	for _, group := range re.GetGroupNumbers() {
		if group == n {
			return true
		}
	}
	return false
}

func badReplacement(template, format string, args ...interface{}) error {
	return &ReplacementError{Template: template, Reason: fmt.Sprintf(format, args...)}
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
