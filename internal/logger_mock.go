// Package internal holds test doubles for the meltimers Logger collaborator.
package internal

import (
	"errors"
	"sync"

	meltimers "github.com/natehaby/mel-timers"
)

var errLoggerMockNotConfigured = errors.New("LoggerMock: LogFunc not configured")

// LoggerMock is a meltimers.Logger whose behavior is supplied per test via
// LogFunc. Calling Log without configuring LogFunc panics, so an unexpected
// emission fails the test loudly.
type LoggerMock struct {
	LogFunc func(level meltimers.Level, template string, args []any, err error)
}

// NewLoggerMock returns a LoggerMock with the given LogFunc.
func NewLoggerMock(logFunc func(level meltimers.Level, template string, args []any, err error)) *LoggerMock {
	return &LoggerMock{LogFunc: logFunc}
}

func (m *LoggerMock) Log(level meltimers.Level, template string, args []any, err error) {
	if m.LogFunc == nil {
		panic(errLoggerMockNotConfigured)
	}
	m.LogFunc(level, template, args, err)
}

// Event is one captured Log call.
type Event struct {
	Level    meltimers.Level
	Template string
	Args     []any
	Err      error
}

// LogRecorder is a meltimers.Logger that records every Log call for
// assertions. Safe for concurrent use so parallel tests can share one.
type LogRecorder struct {
	mu     sync.Mutex
	events []Event
}

// NewLogRecorder returns an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (r *LogRecorder) Log(level meltimers.Level, template string, args []any, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Template: template, Args: args, Err: err})
}

// Events returns a copy of all captured events in emission order.
func (r *LogRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent event, or false if nothing was logged.
func (r *LogRecorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
