package meltimers

import "time"

const (
	// defaultCompletionLevel is the severity used for completed operations
	// when no explicit level is configured.
	defaultCompletionLevel = LevelInfo
	// defaultAbandonmentLevel is the severity used for abandoned operations
	// when no explicit level is configured.
	defaultAbandonmentLevel = LevelWarning
)

// config holds optional settings for an operation. It is configured via
// Option when creating a Factory with Configure.
type config struct {
	completionLevel  Level
	abandonmentLevel Level
	warningThreshold time.Duration
}

// Option configures the operations created by a Factory. Use
// WithCompletionLevel, WithAbandonmentLevel, WithLevels, and
// WithWarningThreshold; anything not set keeps its default.
type Option func(*config)

// WithCompletionLevel sets the severity used when the operation completes.
// Default is LevelInfo.
func WithCompletionLevel(l Level) Option {
	return func(c *config) { c.completionLevel = l }
}

// WithAbandonmentLevel sets the severity used when the operation is
// abandoned. Default is LevelWarning.
func WithAbandonmentLevel(l Level) Option {
	return func(c *config) { c.abandonmentLevel = l }
}

// WithLevels sets both severities at once: completed for successful
// completion, abandoned for abandonment.
func WithLevels(completed, abandoned Level) Option {
	return func(c *config) {
		c.completionLevel = completed
		c.abandonmentLevel = abandoned
	}
}

// WithWarningThreshold escalates the terminal event to LevelWarning when the
// measured elapsed time exceeds d and the level about to be used is below
// LevelWarning. Use 0 to disable (default).
func WithWarningThreshold(d time.Duration) Option {
	return func(c *config) { c.warningThreshold = d }
}

// applyOptions applies the given options over the default configuration.
func applyOptions(opts ...Option) config {
	c := config{
		completionLevel:  defaultCompletionLevel,
		abandonmentLevel: defaultAbandonmentLevel,
	}
	for _, opt := range opts {
		opt(&c)
	}
	// Normalize so a negative threshold from options means "disabled".
	if c.warningThreshold < 0 {
		c.warningThreshold = 0
	}
	return c
}
