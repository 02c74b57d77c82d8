package meltimers

import (
	"context"
	"log/slog"
)

// slog has no named trace or critical levels; these follow slog's numeric
// spacing (4 apart) below Debug and above Error.
const (
	slogLevelTrace    = slog.Level(-8)
	slogLevelCritical = slog.Level(12)
)

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger that renders the message template and emits
// it through l. Placeholder values are attached as slog attributes under
// their placeholder names, and an attached error under "error". LevelTrace
// maps to slog.Level(-8) and LevelCritical to slog.Level(12); the other
// levels map to their slog equivalents. If l is nil, slog.Default() is used.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{logger: l}
}

func (s *slogLogger) Log(level Level, template string, args []any, err error) {
	msg, props := RenderTemplate(template, args)
	attrs := make([]any, 0, len(props)+1)
	for _, p := range props {
		attrs = append(attrs, slog.Any(p.Name, p.Value))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	s.logger.Log(context.Background(), toSlogLevel(level), msg, attrs...)
}

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelTrace:
		return slogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return slogLevelCritical
	default:
		return slog.LevelInfo
	}
}
