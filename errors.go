package meltimers

import "errors"

// Usage errors. Constructing an operation with a missing collaborator, or
// naming a result/reason field with an empty name, is a programming mistake;
// the factories and terminal methods panic with one of these sentinels rather
// than deferring the failure to log time. Recover and check with errors.Is:
//
//	defer func() {
//		if v := recover(); v != nil {
//			if err, ok := v.(error); ok && errors.Is(err, meltimers.ErrNilLogger) { ... }
//		}
//	}()
var (
	// ErrNilLogger is the panic value when TimeOperation, BeginOperation, or a
	// Factory method is called with a nil Logger.
	ErrNilLogger = errors.New("meltimers: logger must not be nil")

	// ErrEmptyTemplate is the panic value when an operation is created with an
	// empty message template.
	ErrEmptyTemplate = errors.New("meltimers: message template must not be empty")

	// ErrEmptyName is the panic value when CompleteWith or AbandonWith is
	// called with an empty field name.
	ErrEmptyName = errors.New("meltimers: field name must not be empty")
)
