package meltimers

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type gokitLogger struct {
	logger log.Logger
}

// NewGoKitLogger returns a Logger that renders the message template and
// emits it through l as leveled keyvals: the rendered message under "msg",
// placeholder values under their placeholder names, and an attached error
// under "err". go-kit carries four levels, so LevelTrace maps to
// level.Debug and LevelCritical to level.Error. If l is nil, a nop logger
// is used.
func NewGoKitLogger(l log.Logger) Logger {
	if l == nil {
		l = log.NewNopLogger()
	}
	return &gokitLogger{logger: l}
}

func (g *gokitLogger) Log(lvl Level, template string, args []any, err error) {
	msg, props := RenderTemplate(template, args)
	keyvals := make([]any, 0, 2*(len(props)+2))
	keyvals = append(keyvals, "msg", msg)
	for _, p := range props {
		keyvals = append(keyvals, p.Name, p.Value)
	}
	if err != nil {
		keyvals = append(keyvals, "err", err)
	}
	_ = toGoKitLevel(g.logger, lvl).Log(keyvals...)
}

func toGoKitLevel(l log.Logger, lvl Level) log.Logger {
	switch lvl {
	case LevelTrace, LevelDebug:
		return level.Debug(l)
	case LevelInfo:
		return level.Info(l)
	case LevelWarning:
		return level.Warn(l)
	default:
		return level.Error(l)
	}
}
