package meltimers

import "time"

// behavior is the operation's one-shot lifecycle flag. It starts as one of
// the pending states and becomes silent on the first terminal action; once
// silent, every terminal method is a no-op.
type behavior int8

const (
	// behaviorPendingComplete means scope exit completes the operation
	// (fire-and-forget mode, set by TimeOperation).
	behaviorPendingComplete behavior = iota
	// behaviorPendingAbandon means scope exit abandons the operation
	// (explicit mode, set by BeginOperation).
	behaviorPendingAbandon
	// behaviorSilent means a terminal action already fired or the operation
	// was cancelled; no further event may be emitted.
	behaviorSilent
)

// outcome tags how an operation ended. It is rendered to its literal string
// only at the logging boundary.
type outcome string

const (
	outcomeCompleted outcome = "completed"
	outcomeAbandoned outcome = "abandoned"
)

// Operation is a single measured unit of work bound to a Logger, a message
// template, and its captured arguments. Exactly one log event is produced
// over its lifetime, on the first terminal action (Complete, CompleteWith,
// Abandon, AbandonWith, or the Done scope-exit default); Cancel suppresses
// the event entirely.
//
// An Operation must be driven by a single goroutine from creation to Done;
// it performs no internal locking.
type Operation struct {
	logger   Logger
	template string
	args     []any
	start    time.Time
	stop     time.Time
	stopSet  bool
	cfg      config
	behavior behavior
	err      error
}

// Factory creates operations with non-default levels or a warning threshold.
// Create one with Configure; the zero value behaves like Configure() with no
// options.
type Factory struct {
	cfg        config
	configured bool
}

// Configure returns a Factory whose operations use the given options, e.g.
//
//	f := meltimers.Configure(meltimers.WithLevels(meltimers.LevelDebug, meltimers.LevelError))
//	op := f.BeginOperation(logger, "Rebuilding index {Name}", name)
func Configure(opts ...Option) Factory {
	return Factory{cfg: applyOptions(opts...), configured: true}
}

func (f Factory) config() config {
	if !f.configured {
		return applyOptions()
	}
	return f.cfg
}

// TimeOperation creates an operation that completes on scope exit. Use it
// when success is assumed and only the timing is of interest:
//
//	defer f.TimeOperation(logger, "Flushing {Count} entries", n).Done()
//
// Panics with ErrNilLogger or ErrEmptyTemplate on misuse.
func (f Factory) TimeOperation(logger Logger, template string, args ...any) *Operation {
	return newOperation(logger, template, args, f.config(), behaviorPendingComplete)
}

// BeginOperation creates an operation that is abandoned on scope exit unless
// Complete or CompleteWith is called first.
//
// Panics with ErrNilLogger or ErrEmptyTemplate on misuse.
func (f Factory) BeginOperation(logger Logger, template string, args ...any) *Operation {
	return newOperation(logger, template, args, f.config(), behaviorPendingAbandon)
}

// TimeOperation creates a fire-and-forget operation with default levels
// (completed=LevelInfo, abandoned=LevelWarning). See Factory.TimeOperation.
func TimeOperation(logger Logger, template string, args ...any) *Operation {
	return Factory{}.TimeOperation(logger, template, args...)
}

// BeginOperation creates an explicitly-tracked operation with default levels
// (completed=LevelInfo, abandoned=LevelWarning). See Factory.BeginOperation.
func BeginOperation(logger Logger, template string, args ...any) *Operation {
	return Factory{}.BeginOperation(logger, template, args...)
}

func newOperation(logger Logger, template string, args []any, cfg config, b behavior) *Operation {
	if logger == nil {
		panic(ErrNilLogger)
	}
	if template == "" {
		panic(ErrEmptyTemplate)
	}
	// Capture the arguments now; the template is rendered only when the
	// terminal action fires.
	captured := make([]any, len(args))
	copy(captured, args)
	return &Operation{
		logger:   logger,
		template: template,
		args:     captured,
		start:    time.Now(),
		cfg:      cfg,
		behavior: b,
	}
}

// Elapsed returns the time from creation to the first terminal action, or to
// now while the operation is still pending. The reading is monotonic and
// never negative.
func (o *Operation) Elapsed() time.Duration {
	var d time.Duration
	if o.stopSet {
		d = o.stop.Sub(o.start)
	} else {
		d = time.Since(o.start)
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Complete marks the operation as completed and logs the terminal event at
// the completion level. No-op if a terminal action already fired.
func (o *Operation) Complete() {
	o.finish(o.cfg.completionLevel, outcomeCompleted, "", nil)
}

// CompleteWith is Complete with a named result attached, e.g.
// CompleteWith("Rows", 42). The message gains a "with result of {Rows}"
// clause and the value is available as a structured field. Panics with
// ErrEmptyName if name is empty; no-op if a terminal action already fired.
func (o *Operation) CompleteWith(name string, result any) {
	if name == "" {
		panic(ErrEmptyName)
	}
	o.finish(o.cfg.completionLevel, outcomeCompleted, name, result)
}

// Abandon marks the operation as abandoned and logs the terminal event at
// the abandonment level. No-op if a terminal action already fired.
func (o *Operation) Abandon() {
	o.finish(o.cfg.abandonmentLevel, outcomeAbandoned, "", nil)
}

// AbandonWith is Abandon with a named reason attached, e.g.
// AbandonWith("Reason", "order not found"). Panics with ErrEmptyName if name
// is empty; no-op if a terminal action already fired.
func (o *Operation) AbandonWith(name string, reason any) {
	if name == "" {
		panic(ErrEmptyName)
	}
	o.finish(o.cfg.abandonmentLevel, outcomeAbandoned, name, reason)
}

// Cancel freezes the elapsed time and suppresses all logging for this
// operation: neither this call, later terminal calls, nor Done will emit an
// event. Safe to call at any point.
func (o *Operation) Cancel() {
	o.freezeStop()
	o.behavior = behaviorSilent
}

// SetError attaches err to the operation. It is passed to the logger as
// error context on whichever terminal event eventually fires and does not
// change the lifecycle. Returns the operation for chaining.
func (o *Operation) SetError(err error) *Operation {
	o.err = err
	return o
}

// Done runs the operation's default terminal action: Complete for operations
// from TimeOperation, Abandon for operations from BeginOperation, nothing if
// a terminal action already fired. Defer it right after creation so the
// event is emitted on every exit path, including early returns and panics:
//
//	op := meltimers.BeginOperation(logger, "Syncing {Shard}", shard)
//	defer op.Done()
func (o *Operation) Done() {
	switch o.behavior {
	case behaviorPendingComplete:
		o.Complete()
	case behaviorPendingAbandon:
		o.Abandon()
	}
}

// finish is the shared terminal path: freeze the stop timestamp, go silent,
// then hand the event to the logger. Going silent before the Log call keeps
// the at-most-one-event guarantee even if the sink panics.
func (o *Operation) finish(level Level, out outcome, name string, value any) {
	if o.behavior == behaviorSilent {
		return
	}
	o.freezeStop()
	o.behavior = behaviorSilent

	elapsed := o.Elapsed()
	if o.cfg.warningThreshold > 0 && elapsed > o.cfg.warningThreshold && level < LevelWarning {
		level = LevelWarning
	}

	template := o.template
	args := make([]any, 0, len(o.args)+3)
	args = append(args, o.args...)
	args = append(args, string(out))
	switch {
	case name == "":
		template += " {Outcome} in {Elapsed:0.0} ms"
	case out == outcomeCompleted:
		template += " {Outcome} with result of {" + name + "} in {Elapsed:0.0} ms."
	default:
		template += " {Outcome} for {" + name + "} in {Elapsed:0.0} ms."
	}
	if name != "" {
		args = append(args, value)
	}
	args = append(args, float64(elapsed)/float64(time.Millisecond))

	o.logger.Log(level, template, args, o.err)
}

// freezeStop records the stop timestamp once; later calls keep the first
// reading.
func (o *Operation) freezeStop() {
	if !o.stopSet {
		o.stop = time.Now()
		o.stopSet = true
	}
}
