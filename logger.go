package meltimers

// Logger is the structured-logger collaborator driven by an Operation. An
// implementation renders the message template (placeholders substituted
// positionally from args) and emits it through its sink at the given level,
// attaching err as error context when non-nil.
//
// The template uses {Name} placeholders, optionally with a numeric format
// such as {Elapsed:0.0}; RenderTemplate implements the reference rendering
// used by the in-package adapters. Operations call Log exactly once, on
// their terminal action; the args slice must not be retained or mutated.
//
// Use NewSlogLogger, NewGoKitLogger, or NewLogrusLogger to bind an existing
// logger, or implement Logger directly to target another backend.
type Logger interface {
	Log(level Level, template string, args []any, err error)
}
