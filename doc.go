// Package meltimers brackets a unit of work and emits exactly one structured
// log event describing how it ended (completed or abandoned) and how long it
// took.
//
// # Overview
//
// The package exposes:
//   - Operation: a single measured unit of work; terminal methods Complete,
//     CompleteWith, Abandon, AbandonWith, Cancel, plus SetError for error
//     enrichment and Elapsed for polling.
//   - TimeOperation: fire-and-forget timing; the operation completes on
//     scope exit unless cancelled.
//   - BeginOperation: explicit success tracking; the operation is abandoned
//     on scope exit unless Complete was called.
//   - Configure: binds non-default levels and an optional warning threshold
//     for the operations it creates.
//   - Logger: the structured-logger collaborator, with adapters for
//     log/slog (NewSlogLogger), go-kit/log (NewGoKitLogger), and logrus
//     (NewLogrusLogger).
//
// # Usage
//
// Acquire an operation at the start of work and defer Done; call a terminal
// method if the outcome is known before scope exit:
//
//	logger := meltimers.NewSlogLogger(slog.Default())
//
//	op := meltimers.BeginOperation(logger, "Submitting order {OrderId}", orderID)
//	defer op.Done()
//	rows, err := submit(orderID)
//	if err != nil {
//		op.SetError(err)
//		return err // abandoned on scope exit, with err attached
//	}
//	op.CompleteWith("Rows", rows)
//
// For pure timing, where success is assumed:
//
//	defer meltimers.TimeOperation(logger, "Loading config {Path}", path).Done()
//
// Exactly one log event is produced per operation, no matter how many
// terminal methods run; Cancel suppresses the event entirely. The message
// template is rendered by the logger adapter only when the terminal action
// fires, with the captured arguments followed by the outcome, the optional
// result or reason, and the elapsed milliseconds.
package meltimers
