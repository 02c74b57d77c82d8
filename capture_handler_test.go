package meltimers_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// captureRecord is one log record captured by captureHandler: the rendered
// message, its level, and the attributes flattened to strings.
type captureRecord struct {
	message string
	level   slog.Level
	attrs   map[string]string
}

// captureHandler is a slog.Handler that records every log record for
// assertions. Handlers derived via WithAttrs share the same store so default
// logger fields still show up in captured records.
type captureHandler struct {
	store    *captureStore
	preAttrs []slog.Attr
}

type captureStore struct {
	mu      sync.Mutex
	records []captureRecord
}

func newCaptureHandler() *captureHandler {
	return &captureHandler{store: &captureStore{}}
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string, len(h.preAttrs)+r.NumAttrs())
	for _, a := range h.preAttrs {
		attrs[a.Key] = fmt.Sprintf("%v", a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = fmt.Sprintf("%v", a.Value.Any())
		return true
	})
	h.store.mu.Lock()
	h.store.records = append(h.store.records, captureRecord{
		message: r.Message,
		level:   r.Level,
		attrs:   attrs,
	})
	h.store.mu.Unlock()
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.preAttrs), len(h.preAttrs)+len(attrs))
	copy(merged, h.preAttrs)
	merged = append(merged, attrs...)
	return &captureHandler{store: h.store, preAttrs: merged}
}

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

// records returns a copy of everything captured so far.
func (h *captureHandler) records() []captureRecord {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	out := make([]captureRecord, len(h.store.records))
	copy(out, h.store.records)
	return out
}
