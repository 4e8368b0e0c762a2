// File: timer.go
// Title: Performance Timer
// Description: Measures how long an operation took and logs the duration
//              when stopped. The suite runner times every keyword step with it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
	elapsed   time.Duration
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started, or the
// final duration once stopped
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.elapsed
	}
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Later calls return the
// same duration without logging again.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError stops the timer and logs err together with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	if t.stopped {
		return t.elapsed
	}
	t.elapsed = time.Since(t.startTime)
	t.stopped = true

	if t.logger == nil {
		return t.elapsed
	}

	t.fields["operation"] = t.operation
	if err != nil {
		t.logger.log(LevelError, t.operation+" failed", err, t.elapsed, t.fields)
	} else {
		t.logger.log(t.level, t.operation+" completed", nil, t.elapsed, t.fields)
	}

	return t.elapsed
}
