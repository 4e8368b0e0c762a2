package suite

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleReport() *Report {
	return &Report{
		RunID:      "run-1",
		Suite:      "Lines",
		Started:    time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		DurationMS: 3.5,
		Tests: []TestResult{
			{Name: "passes", Status: StatusPass, Steps: []StepResult{{Keyword: "Get Line Count", Status: StatusPass, Value: "3"}}},
			{Name: "fails", Status: StatusFail, Message: "'ABC' is not lowercase", Steps: []StepResult{
				{Keyword: "Should Be Lowercase", Status: StatusFail, Message: "'ABC' is not lowercase", Code: "ASSERTION_FAILED"},
				{Keyword: "Get Line Count", Status: StatusSkip},
			}},
			{Name: "skipped", Status: StatusSkip, Message: "Skipped after a failed test (fail fast).", Steps: []StepResult{{Keyword: "Get Line", Status: StatusSkip}}},
		},
	}
}

func TestRenderConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderConsole(&buf, sampleReport(), false); err != nil {
		t.Fatalf("RenderConsole() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Suite: Lines (run run-1)",
		"  PASS  passes",
		"  FAIL  fails",
		"step 1 Should Be Lowercase: 'ABC' is not lowercase",
		"  SKIP  skipped",
		"Skipped after a failed test (fail fast).",
		"3 tests, 1 passed, 1 failed, 1 skipped in 3.5ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "step 2") {
		t.Errorf("skipped steps should not be listed:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded struct {
		RunID string `json:"run_id"`
		Tests []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
			Steps  []struct {
				Code string `json:"code"`
			} `json:"steps"`
		} `json:"tests"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, buf.String())
	}

	if decoded.RunID != "run-1" || len(decoded.Tests) != 3 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Tests[1].Status != "FAIL" || decoded.Tests[1].Steps[0].Code != "ASSERTION_FAILED" {
		t.Errorf("failed test = %+v", decoded.Tests[1])
	}
}
