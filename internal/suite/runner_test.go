package suite

import (
	"context"
	"strings"
	"testing"

	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
	"github.com/msto63/strkw/internal/keywords"
)

func newTestRunner(t *testing.T, failFast bool) *Runner {
	t.Helper()
	reg, err := keywords.New(keywords.Options{Logger: log.Discard()})
	if err != nil {
		t.Fatalf("keywords.New() error = %v", err)
	}
	lib := stringx.New(stringx.Options{Logger: log.Discard()})
	executor := keywords.NewExecutor(reg, lib, log.Discard())
	return NewRunner(executor, RunnerOptions{Logger: log.Discard(), FailFast: failFast})
}

func step(keyword string, args ...string) Step {
	return Step{Keyword: keyword, Args: args}
}

func TestRunPassingSuite(t *testing.T) {
	s, err := Parse([]byte(yamlSuite), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	report := newTestRunner(t, false).Run(context.Background(), s)

	if !report.Passed() {
		t.Fatalf("report failed: %+v", report.Tests)
	}
	if report.RunID == "" {
		t.Error("RunID should be set")
	}
	passed, failed, skipped := report.Counts()
	if passed != 2 || failed != 0 || skipped != 0 {
		t.Errorf("Counts() = %d/%d/%d", passed, failed, skipped)
	}

	steps := report.Tests[0].Steps
	if steps[0].Args[0] != "a\nb\nc" {
		t.Errorf("variable not expanded: %q", steps[0].Args)
	}
	if steps[1].Value != `["b","c"]` {
		t.Errorf("list value = %q", steps[1].Value)
	}
	if report.Tests[1].Steps[0].Message == "" {
		t.Error("expected error message should be recorded")
	}
}

func TestRunStopsTestAtFirstFailure(t *testing.T) {
	s := &Suite{
		Name: "failing",
		Tests: []Test{
			{Name: "bad", Steps: []Step{
				{Keyword: "Should Be Lowercase", Args: Arguments{"ABC"}},
				step("Get Line Count", "a"),
			}},
			{Name: "good", Steps: []Step{step("Get Line Count", "a")}},
		},
	}

	report := newTestRunner(t, false).Run(context.Background(), s)

	bad := report.Tests[0]
	if bad.Status != StatusFail {
		t.Fatalf("bad status = %s", bad.Status)
	}
	if bad.Message != "'ABC' is not lowercase" {
		t.Errorf("message = %q", bad.Message)
	}
	if bad.Steps[0].Code != "ASSERTION_FAILED" {
		t.Errorf("code = %q", bad.Steps[0].Code)
	}
	if bad.Steps[1].Status != StatusSkip {
		t.Errorf("step after failure = %s, want SKIP", bad.Steps[1].Status)
	}
	if report.Tests[1].Status != StatusPass {
		t.Errorf("next test = %s, want PASS without fail fast", report.Tests[1].Status)
	}
	if report.Passed() {
		t.Error("Passed() = true with a failed test")
	}
}

func TestRunFailFast(t *testing.T) {
	s := &Suite{
		Name: "fail fast",
		Tests: []Test{
			{Name: "bad", Steps: []Step{step("No Such Keyword")}},
			{Name: "skipped", Steps: []Step{step("Get Line Count", "a")}},
		},
	}

	report := newTestRunner(t, true).Run(context.Background(), s)

	if report.Tests[0].Steps[0].Code != "UNKNOWN_KEYWORD" {
		t.Errorf("code = %q", report.Tests[0].Steps[0].Code)
	}
	skipped := report.Tests[1]
	if skipped.Status != StatusSkip || skipped.Steps[0].Status != StatusSkip {
		t.Errorf("second test = %+v, want skipped", skipped)
	}
	if _, _, n := report.Counts(); n != 1 {
		t.Errorf("skipped count = %d", n)
	}
}

func TestRunStepExpectations(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		status  Status
		message string
		code    string
	}{
		{
			name:   "expect matches",
			step:   Step{Keyword: "Fetch From Left", Args: Arguments{"key=value", "="}, Expect: Expect("key")},
			status: StatusPass,
		},
		{
			name:    "expect differs",
			step:    Step{Keyword: "Fetch From Left", Args: Arguments{"key=value", "="}, Expect: Expect("value")},
			status:  StatusFail,
			message: "'key' != 'value'",
		},
		{
			name:   "exact expected error",
			step:   Step{Keyword: "Should Be Uppercase", Args: Arguments{"abc", "custom"}, ExpectError: "custom"},
			status: StatusPass,
		},
		{
			name:    "keyword passed unexpectedly",
			step:    Step{Keyword: "Should Be Uppercase", Args: Arguments{"ABC"}, ExpectError: "boom"},
			status:  StatusFail,
			message: "Expected error 'boom' but the keyword passed.",
		},
		{
			name:    "different error",
			step:    Step{Keyword: "Should Be Uppercase", Args: Arguments{"abc"}, ExpectError: "boom"},
			status:  StatusFail,
			message: "Expected error 'boom' but got ''abc' is not uppercase'.",
		},
		{
			name:   "glob expected error",
			step:   Step{Keyword: "Get Line", Args: Arguments{"a", "x"}, ExpectError: "glob:Cannot convert*"},
			status: StatusPass,
		},
		{
			name:    "undefined variable",
			step:    Step{Keyword: "Get Line Count", Args: Arguments{"${missing}"}},
			status:  StatusFail,
			message: "Variable '${missing}' not found.",
			code:    "INVALID_INPUT",
		},
		{
			name:   "builtin variables",
			step:   Step{Keyword: "Replace String", Args: Arguments{"a b", "${SPACE}", "${EMPTY}"}, Expect: Expect("ab")},
			status: StatusPass,
		},
	}

	r := newTestRunner(t, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.runStep(context.Background(), tt.step, newVariables(nil))
			if got.Status != tt.status {
				t.Fatalf("status = %s (%s), want %s", got.Status, got.Message, tt.status)
			}
			if tt.message != "" && got.Message != tt.message {
				t.Errorf("message = %q, want %q", got.Message, tt.message)
			}
			if tt.code != "" && got.Code != tt.code {
				t.Errorf("code = %q, want %q", got.Code, tt.code)
			}
		})
	}
}

func TestRunAssignIsScopedToTest(t *testing.T) {
	s := &Suite{
		Name: "assign",
		Tests: []Test{
			{Name: "assigns", Steps: []Step{
				{Keyword: "Fetch From Right", Args: Arguments{"a.b.c", "."}, Assign: "${ext}"},
				{Keyword: "Get Substring", Args: Arguments{"${ext}", "0", "1"}, Expect: Expect("c")},
			}},
			{Name: "cannot see it", Steps: []Step{
				{Keyword: "Get Line Count", Args: Arguments{"${ext}"}, ExpectError: "Variable '${ext}' not found."},
			}},
		},
	}

	report := newTestRunner(t, false).Run(context.Background(), s)
	if !report.Passed() {
		t.Fatalf("report = %+v", report.Tests)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Suite{Name: "canceled", Tests: []Test{{Name: "t", Steps: []Step{step("Get Line Count", "a")}}}}
	report := newTestRunner(t, false).Run(ctx, s)

	test := report.Tests[0]
	if test.Status != StatusSkip {
		t.Errorf("status = %s, want SKIP", test.Status)
	}
	if !strings.HasPrefix(test.Message, "Run canceled") {
		t.Errorf("message = %q", test.Message)
	}
}

func TestVariables(t *testing.T) {
	vars := newVariables(map[string]string{"User Name": "robot"})

	tests := []struct {
		in   string
		want string
	}{
		{"${user_name}", "robot"},
		{"hello ${USERNAME}!", "hello robot!"},
		{"${EMPTY}${SPACE}x", " x"},
		{"no variables", "no variables"},
		{"${unterminated", "${unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := vars.expandOne(tt.in)
			if err != nil {
				t.Fatalf("expandOne() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandOne() = %q, want %q", got, tt.want)
			}
		})
	}
}
