package meltimers

// Level is the severity passed to the Logger collaborator. Levels form an
// ordered scale; the warning-threshold escalation compares against
// LevelWarning using this ordering.
type Level int8

const (
	// LevelTrace is the most verbose severity.
	LevelTrace Level = iota
	// LevelDebug is for diagnostic events.
	LevelDebug
	// LevelInfo is the default severity for completed operations.
	LevelInfo
	// LevelWarning is the default severity for abandoned operations and the
	// floor used by warning-threshold escalation.
	LevelWarning
	// LevelError indicates a failure.
	LevelError
	// LevelCritical is the most severe level.
	LevelCritical
)

// String returns the level name in lowercase ("trace", "debug", "info",
// "warning", "error", "critical"). Unknown values render as "info".
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return "info"
	}
}
