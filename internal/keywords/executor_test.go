package keywords

import (
	"context"
	"encoding/json"
	"testing"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	lib := stringx.New(stringx.Options{Logger: log.Discard()})
	return NewExecutor(newTestRegistry(t), lib, log.Discard())
}

func TestExecuteScenarios(t *testing.T) {
	e := newTestExecutor(t)

	tests := []struct {
		keyword string
		args    []string
		want    string
	}{
		{"Get Line Count", []string{"a\nb\nc"}, "3"},
		{"lines_in_range", []string{"a\nb\nc\nd", "1", "-1"}, `["b","c"]`},
		{"Get Line", []string{"a\nb\nc", "-1"}, "c"},
		{"Get Lines Containing String", []string{"Hello\nworld\nHELLO", "hello", "case_insensitive=True"}, "Hello\nHELLO"},
		{"Get Lines Matching Pattern", []string{"a.txt\nb.log", "*.txt"}, "a.txt"},
		{"Get Lines Matching Regexp", []string{"abc\nabcd", "abc"}, "abc"},
		{"Replace String", []string{"aaa", "a", "b", "2"}, "bba"},
		{"Replace String Using Regexp", []string{"a1b2", `\d`, "#", "0"}, "a1b2"},
		{"Split String", []string{"a b  c"}, `["a","b","c"]`},
		{"Split String From Right", []string{"a-b-c-d", "-", "1"}, `["a-b-c","d"]`},
		{"Split String To Characters", []string{"abc"}, `["a","b","c"]`},
		{"Get Substring", []string{"abcdef", "-2"}, "ef"},
		{"Fetch From Left", []string{"key=value", "="}, "key"},
		{"Fetch From Right", []string{"key=value", "="}, "value"},
		{"Should Be Titlecase", []string{"This Is Title"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			result := e.Execute(context.Background(), tt.keyword, tt.args)
			if !result.Passed() {
				t.Fatalf("Execute() error = %v", result.Error)
			}
			if got := result.Text(); got != tt.want {
				t.Errorf("Execute() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestExecuteFailures(t *testing.T) {
	e := newTestExecutor(t)

	tests := []struct {
		name    string
		keyword string
		args    []string
		code    mdwerror.Code
		message string
	}{
		{"assertion", "Should Be Titlecase", []string{"Word In UPPER"}, mdwerror.CodeAssertionFailed, "'Word In UPPER' is not titlecase"},
		{"custom message", "Should Be Uppercase", []string{"abc", "msg=shout"}, mdwerror.CodeAssertionFailed, "shout"},
		{"out of range", "Get Line", []string{"a", "5"}, mdwerror.CodeOutOfRange, ""},
		{"unknown", "Nope", nil, mdwerror.CodeUnknownKeyword, "No keyword with name 'Nope' found."},
		{"conversion", "Replace String", []string{"a", "a", "b", "many"}, mdwerror.CodeConversionFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Execute(context.Background(), tt.keyword, tt.args)
			if result.Passed() {
				t.Fatalf("Execute() passed with %q", result.Text())
			}
			if !mdwerror.HasCode(result.Error, tt.code) {
				t.Errorf("code = %v; want %v", mdwerror.GetCode(result.Error), tt.code)
			}
			if tt.message != "" && result.Error.Error() != tt.message {
				t.Errorf("message = %q; want %q", result.Error.Error(), tt.message)
			}
			if result.Value != nil {
				t.Errorf("failed result carries value %v", result.Value)
			}
		})
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	e := newTestExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := e.Execute(ctx, "Get Line Count", []string{"a"})
	if result.Error != context.Canceled {
		t.Errorf("Error = %v; want context.Canceled", result.Error)
	}
}

func TestResultJSON(t *testing.T) {
	e := newTestExecutor(t)
	result := e.Execute(context.Background(), "Get Line", []string{"a", "9"})

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["keyword"] != "Get Line" {
		t.Errorf("keyword = %v", decoded["keyword"])
	}
	if decoded["code"] != "OUT_OF_RANGE" {
		t.Errorf("code = %v", decoded["code"])
	}
	if _, ok := decoded["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, ""},
		{"text", "text"},
		{42, "42"},
		{[]string{"a", "b"}, `["a","b"]`},
		{[]string{}, `[]`},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q; want %q", tt.value, got, tt.want)
		}
	}
}
