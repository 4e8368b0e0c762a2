// Package suite loads keyword test suites from YAML or TOML files, runs them
// through the keyword executor and renders reports.
package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/strkw/foundation/core/errors"
)

// Suite is a named list of tests sharing variables
type Suite struct {
	Name      string            `yaml:"name" toml:"name"`
	Variables map[string]string `yaml:"variables" toml:"variables"`
	Tests     []Test            `yaml:"tests" toml:"tests"`

	// Path is the file the suite was loaded from
	Path string `yaml:"-" toml:"-"`
}

// Test is a sequence of keyword steps
type Test struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
}

// Step calls one keyword. Assign stores the value in a variable, Expect
// compares it and ExpectError expects the keyword to fail with that message.
type Step struct {
	Keyword     string      `yaml:"keyword" toml:"keyword"`
	Args        Arguments   `yaml:"args" toml:"args"`
	Assign      string      `yaml:"assign" toml:"assign"`
	Expect      Expectation `yaml:"expect" toml:"expect"`
	ExpectError string      `yaml:"expect_error" toml:"expect_error"`
}

// Arguments are raw keyword arguments. Scalars of any type are kept as
// their text so that `args: [text, 1, -1]` needs no quoting.
type Arguments []string

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Arguments) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: args must be a list", node.Line)
	}
	args := make(Arguments, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: args must be scalars", item.Line)
		}
		args = append(args, item.Value)
	}
	*a = args
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler
func (a *Arguments) UnmarshalTOML(data interface{}) error {
	items, ok := data.([]interface{})
	if !ok {
		return fmt.Errorf("args must be an array, got %T", data)
	}
	args := make(Arguments, 0, len(items))
	for _, item := range items {
		args = append(args, scalarText(item))
	}
	*a = args
	return nil
}

// Expectation is an optional expected value: a scalar compares with the
// value's text and a list compares with a list value
type Expectation struct {
	text string
	set  bool
}

// Expect returns an expectation of text
func Expect(text string) Expectation {
	return Expectation{text: text, set: true}
}

// IsSet reports whether a value is expected
func (e Expectation) IsSet() bool {
	return e.set
}

// Text returns the expected value as rendered by keywords.FormatValue
func (e Expectation) Text() string {
	return e.text
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = Expect(node.Value)
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			items = append(items, item.Value)
		}
		return e.setList(items)
	default:
		return fmt.Errorf("line %d: expect must be a scalar or a list", node.Line)
	}
}

// UnmarshalTOML implements toml.Unmarshaler
func (e *Expectation) UnmarshalTOML(data interface{}) error {
	list, ok := data.([]interface{})
	if !ok {
		*e = Expect(scalarText(data))
		return nil
	}
	items := make([]string, 0, len(list))
	for _, item := range list {
		items = append(items, scalarText(item))
	}
	return e.setList(items)
}

func (e *Expectation) setList(items []string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	*e = Expect(string(data))
	return nil
}

func scalarText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Load reads a suite from a .yaml, .yml or .toml file
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SuiteError("read", path, err)
	}

	s, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, errors.SuiteError("parse", path, err)
	}
	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := s.Validate(); err != nil {
		return nil, errors.SuiteError("validate", path, err)
	}
	return s, nil
}

// Format is a suite file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes a suite document
func Parse(data []byte, format Format) (*Suite, error) {
	var s Suite
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported suite format %q", format)
	}
	return &s, nil
}

// Validate checks that the suite has tests and every step names a keyword
func (s *Suite) Validate() error {
	if len(s.Tests) == 0 {
		return fmt.Errorf("suite has no tests")
	}
	for i, t := range s.Tests {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("test %d has no name", i+1)
		}
		if len(t.Steps) == 0 {
			return fmt.Errorf("test '%s' has no steps", t.Name)
		}
		for j, step := range t.Steps {
			if strings.TrimSpace(step.Keyword) == "" {
				return fmt.Errorf("test '%s' step %d has no keyword", t.Name, j+1)
			}
			if step.Expect.IsSet() && step.ExpectError != "" {
				return fmt.Errorf("test '%s' step %d sets both expect and expect_error", t.Name, j+1)
			}
		}
	}
	return nil
}
