package keywords

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
)

// Result is the outcome of one keyword call
type Result struct {
	Keyword  string        `json:"keyword"`
	Args     []string      `json:"args,omitempty"`
	Value    interface{}   `json:"value,omitempty"`
	Duration time.Duration `json:"duration"`
	Error    error         `json:"-"`
}

// Passed reports whether the call succeeded
func (r *Result) Passed() bool {
	return r.Error == nil
}

// Text renders the value as a test engine would show it
func (r *Result) Text() string {
	return FormatValue(r.Value)
}

// MarshalJSON adds the error message and code to the encoded result
func (r *Result) MarshalJSON() ([]byte, error) {
	type plain Result
	out := struct {
		*plain
		DurationMS float64 `json:"duration_ms"`
		Error      string  `json:"error,omitempty"`
		Code       string  `json:"code,omitempty"`
	}{
		plain:      (*plain)(r),
		DurationMS: float64(r.Duration.Nanoseconds()) / 1e6,
	}
	if r.Error != nil {
		out.Error = r.Error.Error()
		out.Code = string(mdwerror.GetCode(r.Error))
	}
	return json.Marshal(out)
}

// Executor runs keywords by name
type Executor struct {
	registry *Registry
	library  *stringx.Library
	logger   *log.Logger
}

// NewExecutor creates an executor over registry and library
func NewExecutor(registry *Registry, library *stringx.Library, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Executor{
		registry: registry,
		library:  library,
		logger:   logger.WithField("component", "keyword-executor"),
	}
}

// Registry returns the registry the executor resolves names in
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Execute resolves name, binds args and runs the keyword. Failures are
// reported in Result.Error, never returned separately.
func (e *Executor) Execute(ctx context.Context, name string, args []string) *Result {
	result := &Result{Keyword: name, Args: args}

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	def, err := e.registry.Lookup(name)
	if err != nil {
		result.Error = err
		return result
	}
	result.Keyword = def.Name

	bound, err := Bind(def, args)
	if err != nil {
		result.Error = err
		return result
	}

	timer := e.logger.StartTimer(def.Name).WithField("args", len(args))
	result.Value, result.Error = def.Handler(e.library, bound)
	result.Duration = timer.Stop()

	if result.Error != nil {
		result.Value = nil
		e.logger.WithField("keyword", def.Name).LogError(result.Error)
	}

	return result
}

// FormatValue renders a keyword value: strings as is, integers in decimal,
// lists as JSON arrays and nothing as the empty string
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case []string:
		data, _ := json.Marshal(value)
		return string(data)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
