package suite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
	"github.com/msto63/strkw/internal/keywords"
)

// Status of a step or test
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// globPrefix marks an expect_error value as a glob pattern
const globPrefix = "glob:"

// StepResult is the outcome of one step
type StepResult struct {
	Keyword    string        `json:"keyword"`
	Args       []string      `json:"args,omitempty"`
	Status     Status        `json:"status"`
	Value      string        `json:"value,omitempty"`
	Message    string        `json:"message,omitempty"`
	Code       string        `json:"code,omitempty"`
	Duration   time.Duration `json:"-"`
	DurationMS float64       `json:"duration_ms"`
}

// TestResult is the outcome of one test
type TestResult struct {
	Name       string        `json:"name"`
	Status     Status        `json:"status"`
	Message    string        `json:"message,omitempty"`
	Steps      []StepResult  `json:"steps"`
	Duration   time.Duration `json:"-"`
	DurationMS float64       `json:"duration_ms"`
}

// Report is the outcome of one suite run
type Report struct {
	RunID      string        `json:"run_id"`
	Suite      string        `json:"suite"`
	Path       string        `json:"path,omitempty"`
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"-"`
	DurationMS float64       `json:"duration_ms"`
	Tests      []TestResult  `json:"tests"`
}

// Counts returns the number of passed, failed and skipped tests
func (r *Report) Counts() (passed, failed, skipped int) {
	for _, t := range r.Tests {
		switch t.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		default:
			skipped++
		}
	}
	return passed, failed, skipped
}

// Passed reports whether no test failed
func (r *Report) Passed() bool {
	_, failed, _ := r.Counts()
	return failed == 0
}

// RunnerOptions configures a Runner
type RunnerOptions struct {
	Logger *log.Logger

	// FailFast stops the suite after the first failed test
	FailFast bool
}

// Runner executes suites through a keyword executor
type Runner struct {
	executor *keywords.Executor
	logger   *log.Logger
	glob     stringx.GlobMatcher
	failFast bool
}

// NewRunner creates a runner
func NewRunner(executor *keywords.Executor, opts RunnerOptions) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Runner{
		executor: executor,
		logger:   logger.WithField("component", "suite-runner"),
		glob:     stringx.NewGlobMatcher(),
		failFast: opts.FailFast,
	}
}

// Run executes every test of s. Test failures are recorded in the report;
// a canceled context skips the tests that have not started.
func (r *Runner) Run(ctx context.Context, s *Suite) *Report {
	report := &Report{
		RunID:   uuid.NewString(),
		Suite:   s.Name,
		Path:    s.Path,
		Started: time.Now(),
		Tests:   make([]TestResult, 0, len(s.Tests)),
	}

	logger := r.logger.WithCorrelationID(report.RunID).WithField("suite", s.Name)
	logger.Info("suite started", log.Fields{"tests": len(s.Tests)})
	timer := logger.StartTimer("suite " + s.Name).WithLevel(log.LevelInfo)

	stopReason := ""
	for _, test := range s.Tests {
		if stopReason == "" {
			if err := ctx.Err(); err != nil {
				stopReason = fmt.Sprintf("Run canceled: %v", err)
			}
		}
		if stopReason != "" {
			report.Tests = append(report.Tests, skippedTest(test, stopReason))
			continue
		}

		result := r.runTest(ctx, logger, s, test)
		report.Tests = append(report.Tests, result)

		if result.Status == StatusFail && r.failFast {
			stopReason = "Skipped after a failed test (fail fast)."
		}
	}

	report.Duration = timer.Stop()
	report.DurationMS = milliseconds(report.Duration)

	passed, failed, skipped := report.Counts()
	logger.Info("suite finished", log.Fields{"passed": passed, "failed": failed, "skipped": skipped})

	return report
}

func (r *Runner) runTest(ctx context.Context, logger *log.Logger, s *Suite, test Test) TestResult {
	result := TestResult{
		Name:   test.Name,
		Status: StatusPass,
		Steps:  make([]StepResult, 0, len(test.Steps)),
	}
	start := time.Now()
	vars := newVariables(s.Variables)

	for i, step := range test.Steps {
		if result.Status == StatusFail {
			result.Steps = append(result.Steps, StepResult{
				Keyword: step.Keyword,
				Args:    step.Args,
				Status:  StatusSkip,
			})
			continue
		}

		sr := r.runStep(ctx, step, vars)
		result.Steps = append(result.Steps, sr)

		if sr.Status == StatusFail {
			result.Status = StatusFail
			result.Message = sr.Message
			logger.Debug("step failed", log.Fields{
				"test":    test.Name,
				"step":    i + 1,
				"keyword": sr.Keyword,
			})
		}
	}

	result.Duration = time.Since(start)
	result.DurationMS = milliseconds(result.Duration)
	logger.Debug(fmt.Sprintf("test '%s' %s", test.Name, result.Status), log.Fields{"steps": len(test.Steps)})
	return result
}

func (r *Runner) runStep(ctx context.Context, step Step, vars variables) StepResult {
	sr := StepResult{Keyword: step.Keyword, Args: step.Args}

	// an undefined variable fails the step like a failing keyword
	var res *keywords.Result
	if args, err := vars.expand(step.Args); err != nil {
		res = &keywords.Result{Keyword: step.Keyword, Args: step.Args, Error: err}
	} else {
		sr.Args = args
		res = r.executor.Execute(ctx, step.Keyword, args)
	}
	sr.Keyword = res.Keyword
	sr.Duration = res.Duration
	sr.DurationMS = milliseconds(res.Duration)

	if step.ExpectError != "" {
		if res.Passed() {
			return fail(sr, fmt.Sprintf("Expected error '%s' but the keyword passed.", step.ExpectError), "")
		}
		message := errors.MessageOf(res.Error)
		matched, err := r.matchError(step.ExpectError, message)
		if err != nil {
			return fail(sr, err.Error(), string(mdwerror.GetCode(err)))
		}
		if !matched {
			return fail(sr, fmt.Sprintf("Expected error '%s' but got '%s'.", step.ExpectError, message), string(mdwerror.GetCode(res.Error)))
		}
		sr.Status = StatusPass
		sr.Message = message
		return sr
	}

	if !res.Passed() {
		return fail(sr, errors.MessageOf(res.Error), string(mdwerror.GetCode(res.Error)))
	}

	sr.Value = res.Text()
	if step.Expect.IsSet() && sr.Value != step.Expect.Text() {
		return fail(sr, fmt.Sprintf("'%s' != '%s'", sr.Value, step.Expect.Text()), "")
	}
	if step.Assign != "" {
		vars.set(step.Assign, sr.Value)
	}

	sr.Status = StatusPass
	return sr
}

func (r *Runner) matchError(expected, message string) (bool, error) {
	if pattern, ok := strings.CutPrefix(expected, globPrefix); ok {
		return r.glob.FullMatch(message, strings.TrimSpace(pattern))
	}
	return expected == message, nil
}

func fail(sr StepResult, message, code string) StepResult {
	sr.Status = StatusFail
	sr.Message = message
	sr.Code = code
	return sr
}

func skippedTest(test Test, reason string) TestResult {
	result := TestResult{
		Name:    test.Name,
		Status:  StatusSkip,
		Message: reason,
		Steps:   make([]StepResult, 0, len(test.Steps)),
	}
	for _, step := range test.Steps {
		result.Steps = append(result.Steps, StepResult{Keyword: step.Keyword, Args: step.Args, Status: StatusSkip})
	}
	return result
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
