package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/errors"
)

const yamlSuite = `
name: Lines
variables:
  text: "a\nb\nc"
tests:
  - name: count and fetch
    steps:
      - keyword: Get Line Count
        args: ["${text}"]
        expect: 3
      - keyword: Split To Lines
        args: ["${text}", 1]
        expect: [b, c]
      - keyword: Get Line
        args: ["${text}", -1]
        assign: last
  - name: missing line
    steps:
      - keyword: Get Line
        args: ["${text}", 9]
        expect_error: "glob:index * out of range*"
`

const tomlSuite = `
name = "Lines"

[variables]
text = "a\nb\nc"

[[tests]]
name = "count and fetch"

  [[tests.steps]]
  keyword = "Get Line Count"
  args = ["${text}"]
  expect = 3

  [[tests.steps]]
  keyword = "Split To Lines"
  args = ["${text}", 1]
  expect = ["b", "c"]

  [[tests.steps]]
  keyword = "Get Line"
  args = ["${text}", -1]
  assign = "last"

[[tests]]
name = "missing line"

  [[tests.steps]]
  keyword = "Get Line"
  args = ["${text}", 9]
  expect_error = "glob:index * out of range*"
`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", yamlSuite, FormatYAML},
		{"toml", tomlSuite, FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if err := s.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			if s.Name != "Lines" || len(s.Tests) != 2 {
				t.Fatalf("suite = %q with %d tests", s.Name, len(s.Tests))
			}
			if s.Variables["text"] != "a\nb\nc" {
				t.Errorf("variables = %q", s.Variables)
			}

			steps := s.Tests[0].Steps
			if got := strings.Join(steps[1].Args, "|"); got != "${text}|1" {
				t.Errorf("args = %q, want non-string scalars as text", got)
			}
			if !steps[0].Expect.IsSet() || steps[0].Expect.Text() != "3" {
				t.Errorf("scalar expect = %+v", steps[0].Expect)
			}
			if steps[1].Expect.Text() != `["b","c"]` {
				t.Errorf("list expect = %q", steps[1].Expect.Text())
			}
			if steps[2].Expect.IsSet() {
				t.Error("missing expect should not be set")
			}
			if steps[2].Assign != "last" {
				t.Errorf("assign = %q", steps[2].Assign)
			}
			if s.Tests[1].Steps[0].ExpectError != "glob:index * out of range*" {
				t.Errorf("expect_error = %q", s.Tests[1].Steps[0].ExpectError)
			}
		})
	}
}

func TestParseRejectsMalformedArgs(t *testing.T) {
	data := `
tests:
  - name: bad
    steps:
      - keyword: Get Line
        args: {string: text}
`
	if _, err := Parse([]byte(data), FormatYAML); err == nil {
		t.Error("Parse() should reject a mapping as args")
	}
	if _, err := Parse([]byte("x"), Format("ini")); err == nil {
		t.Error("Parse() should reject an unknown format")
	}
}

func TestValidate(t *testing.T) {
	step := Step{Keyword: "Get Line Count", Args: Arguments{"a"}}

	tests := []struct {
		name  string
		suite Suite
		want  string
	}{
		{"no tests", Suite{}, "no tests"},
		{"unnamed test", Suite{Tests: []Test{{Steps: []Step{step}}}}, "has no name"},
		{"no steps", Suite{Tests: []Test{{Name: "t"}}}, "has no steps"},
		{"no keyword", Suite{Tests: []Test{{Name: "t", Steps: []Step{{}}}}}, "has no keyword"},
		{
			"both expectations",
			Suite{Tests: []Test{{Name: "t", Steps: []Step{{Keyword: "k", Expect: Expect("x"), ExpectError: "y"}}}}},
			"both expect and expect_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suite.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "lines.yaml")
		writeFile(t, path, yamlSuite)

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Path != path {
			t.Errorf("Path = %q", s.Path)
		}
	})

	t.Run("toml file named after the file", func(t *testing.T) {
		path := filepath.Join(dir, "unnamed.toml")
		writeFile(t, path, strings.Replace(tomlSuite, `name = "Lines"`, "", 1))

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Name != "unnamed" {
			t.Errorf("Name = %q, want file name", s.Name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		if err == nil {
			t.Fatal("Load() should fail for a missing file")
		}
		if !errors.IsModuleOperation(err, errors.ModuleSuite, "read") {
			t.Errorf("error module/operation = %q/%q", errors.ExtractModule(err), errors.ExtractOperation(err))
		}
	})

	t.Run("invalid suite", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		writeFile(t, path, "name: empty\n")

		_, err := Load(path)
		if !errors.IsModuleOperation(err, errors.ModuleSuite, "validate") {
			t.Errorf("Load() = %v, want validate error", err)
		}
		if mdwerror.GetSeverity(err) != mdwerror.SeverityHigh {
			t.Errorf("severity = %v", mdwerror.GetSeverity(err))
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}
