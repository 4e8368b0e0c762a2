// File: glob.go
// Title: Shell-Style Glob Matching
// Description: Translates shell wildcards (*, ?, [set], [!set]) into anchored
//              regexp2 expressions so that a pattern must consume the whole
//              line. Unlike path.Match, '*' also crosses '/'.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04

package stringx

import (
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
)

// GlobMatcher matches a whole text against a shell-style pattern
type GlobMatcher interface {
	FullMatch(text, pattern string) (bool, error)
}

// RegexpGlobMatcher implements GlobMatcher on top of regexp2
type RegexpGlobMatcher struct {
	cache *patternCache
}

// NewGlobMatcher creates a glob matcher with its own compiled-pattern cache
func NewGlobMatcher() *RegexpGlobMatcher {
	return &RegexpGlobMatcher{cache: newPatternCache(0)}
}

// FullMatch reports whether the entire text matches pattern
func (g *RegexpGlobMatcher) FullMatch(text, pattern string) (bool, error) {
	re, err := g.cache.get(pattern, func() (*regexp2.Regexp, error) {
		return regexp2.Compile(TranslateGlob(pattern), regexp2.None)
	})
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}

// TranslateGlob returns the anchored regular expression equivalent to a
// shell-style pattern. An unterminated '[' is matched literally.
func TranslateGlob(pattern string) string {
	runes := []rune(pattern)
	n := len(runes)

	var b strings.Builder
	b.WriteString(`\A(?s:`)

	for i := 0; i < n; {
		c := runes[i]
		i++

		switch c {
		case '*':
			for i < n && runes[i] == '*' {
				i++
			}
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i
			if j < n && runes[j] == '!' {
				j++
			}
			if j < n && runes[j] == ']' {
				j++
			}
			for j < n && runes[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(translateSet(runes[i:j]))
			i = j + 1
		default:
			b.WriteString(regexp2.Escape(string(c)))
		}
	}

	b.WriteString(`)\z`)
	return b.String()
}

// translateSet renders the body of a [...] set as a character class
func translateSet(set []rune) string {
	var b strings.Builder
	b.WriteByte('[')

	for k, r := range set {
		switch {
		case k == 0 && r == '!':
			b.WriteByte('^')
		case k == 0 && r == '^':
			b.WriteString(`\^`)
		case r == '\\' || r == '[' || r == ']':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte(']')
	return b.String()
}

const defaultPatternCacheSize = 256

// patternCache keeps compiled expressions keyed by their source. When full
// it is cleared rather than evicting individual entries.
type patternCache struct {
	mu      sync.RWMutex
	entries map[string]*regexp2.Regexp
	limit   int
}

func newPatternCache(limit int) *patternCache {
	if limit <= 0 {
		limit = defaultPatternCacheSize
	}
	return &patternCache{entries: make(map[string]*regexp2.Regexp), limit: limit}
}

func (c *patternCache) get(key string, compile func() (*regexp2.Regexp, error)) (*regexp2.Regexp, error) {
	c.mu.RLock()
	re, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := compile()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[string]*regexp2.Regexp)
	}
	c.entries[key] = re
	c.mu.Unlock()

	return re, nil
}

func (c *patternCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
