package suite

import (
	"strings"

	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/internal/keywords"
)

// builtinVariables are defined in every test
var builtinVariables = map[string]string{
	"EMPTY": "",
	"SPACE": " ",
}

// variables holds the values visible to one test. Names are matched like
// keyword names: case, spaces and underscores are ignored.
type variables map[string]string

func newVariables(suite map[string]string) variables {
	vars := make(variables, len(builtinVariables)+len(suite))
	for name, value := range builtinVariables {
		vars.set(name, value)
	}
	for name, value := range suite {
		vars.set(name, value)
	}
	return vars
}

func (v variables) set(name, value string) {
	v[keywords.Normalize(variableName(name))] = value
}

func (v variables) get(name string) (string, bool) {
	value, ok := v[keywords.Normalize(name)]
	return value, ok
}

// expand replaces every ${name} in args
func (v variables) expand(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		expanded, err := v.expandOne(arg)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

func (v variables) expandOne(s string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		end += start

		name := s[start+2 : end]
		value, ok := v.get(name)
		if !ok {
			return "", errors.UndefinedVariable(name)
		}
		b.WriteString(s[:start])
		b.WriteString(value)
		s = s[end+1:]
	}
}

// variableName accepts both "name" and "${name}"
func variableName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "${") && strings.HasSuffix(name, "}") {
		return name[2 : len(name)-1]
	}
	return name
}
