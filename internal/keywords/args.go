package keywords

import (
	"fmt"
	"strings"

	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/utils/stringx"
)

// Args holds converted argument values by parameter name
type Args struct {
	values map[string]interface{}
}

// String returns a string argument, or "" when it was not given
func (a Args) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Index returns an index argument, or an absent index when it was not given
func (a Args) Index(name string) stringx.Index {
	if idx, ok := a.values[name].(stringx.Index); ok {
		return idx
	}
	return stringx.Absent()
}

// Int returns an integer argument
func (a Args) Int(name string) int {
	n, _ := a.values[name].(int)
	return n
}

// Bool returns a flag argument
func (a Args) Bool(name string) bool {
	b, _ := a.values[name].(bool)
	return b
}

// Has reports whether the argument has a value, given or defaulted
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Bind matches raw arguments to the parameters of def. Positional arguments
// come first; "name=value" binds by name when name is a parameter of the
// keyword; write name\=value to pass such text positionally. Missing
// optional arguments take their default.
func Bind(def *Definition, raw []string) (Args, error) {
	given := make([]*string, len(def.Parameters))
	named := false

	position := 0
	for _, arg := range raw {
		if name, value, ok := strings.Cut(arg, "="); ok {
			if strings.HasSuffix(name, `\`) {
				arg = strings.TrimSuffix(name, `\`) + "=" + value
			} else if i, isParam := def.parameter(name); isParam {
				if given[i] != nil {
					return Args{}, errors.InvalidArguments(def.Name, fmt.Sprintf("got multiple values for argument '%s'", name))
				}
				v := value
				given[i] = &v
				named = true
				continue
			}
		}

		if named {
			return Args{}, errors.InvalidArguments(def.Name, "got a positional argument after named arguments")
		}
		if position >= len(def.Parameters) {
			return Args{}, errors.InvalidArguments(def.Name,
				fmt.Sprintf("expected at most %d arguments, got %d", len(def.Parameters), len(raw)))
		}
		v := arg
		given[position] = &v
		position++
	}

	args := Args{values: make(map[string]interface{}, len(def.Parameters))}
	for i, p := range def.Parameters {
		var text string
		switch {
		case given[i] != nil:
			text = *given[i]
		case p.Default != "":
			text = p.Default
		case p.Required:
			return Args{}, errors.InvalidArguments(def.Name, fmt.Sprintf("missing value for argument '%s'", p.Name))
		default:
			continue
		}

		value, err := convert(p, text)
		if err != nil {
			return Args{}, err
		}
		args.values[p.Name] = value
	}

	return args, nil
}

func convert(p Parameter, raw string) (interface{}, error) {
	switch p.Kind {
	case KindIndex:
		return stringx.ParseIndex(p.Name, raw)
	case KindInteger:
		return stringx.ToInteger(p.Name, raw)
	case KindBool:
		return stringx.IsTruthy(raw), nil
	default:
		return raw, nil
	}
}
