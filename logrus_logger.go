package meltimers

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger returns a Logger that renders the message template and
// emits it through l. Placeholder values become logrus fields under their
// placeholder names; an attached error is added with WithError. LevelCritical
// maps to logrus.FatalLevel (Entry.Log does not exit the process); the other
// levels map to their logrus equivalents. If l is nil, the logrus standard
// logger is used.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{logger: l}
}

func (r *logrusLogger) Log(level Level, template string, args []any, err error) {
	msg, props := RenderTemplate(template, args)
	fields := make(logrus.Fields, len(props))
	for _, p := range props {
		fields[p.Name] = p.Value
	}
	entry := r.logger.WithFields(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(toLogrusLevel(level), msg)
}

func toLogrusLevel(l Level) logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarning:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelCritical:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
