package failure

// Error is the unified error value generated by the runtime client. Every
// failure the client observes internally is normalized into an Error before it
// leaves the layer that produced it.
//
// An Error belongs to a single invocation's failure path and has a single
// owner; it is moved along the propagation chain, never shared between
// goroutines. The package provides no internal synchronization and needs none.
type Error struct {
	msg string

	// trace holds the program counters captured at construction, or nil when
	// stack capture was disabled. It is fixed at construction and rendered
	// lazily by Report.
	trace []uintptr

	recoverable bool
}

var _ Reportable = (*Error)(nil)

// New creates an Error from a description. The LAMBDA_RUNTIME_BACKTRACE
// environment variable is read fresh on every call; when it is "1" the current
// call stack is captured synchronously, once, at construction. The returned
// Error is recoverable.
func New(description string) *Error {
	return &Error{
		msg:         description,
		trace:       maybeCapture(),
		recoverable: true,
	}
}

// Error returns the description the value was created with, verbatim.
func (e *Error) Error() string {
	return e.msg
}

// Recoverable reports whether the host may keep serving invocations in the
// current execution environment after this failure.
func (e *Error) Recoverable() bool {
	return e.recoverable
}

// Unrecoverable marks the error as fatal to the execution environment and
// returns the receiver. The host is expected to report the failure and then
// terminate rather than poll for further work. The transition is one-way and
// idempotent; there is no way to make the error recoverable again.
func (e *Error) Unrecoverable() *Error {
	e.recoverable = false

	return e
}

// Report implements Reportable. The error type is always KindUnhandled: an
// Error represents a failure the client itself is surfacing, never one the
// function author classified. A stack trace captured at construction is
// rendered into one line per frame, most recent frame first.
func (e *Error) Report() Report {
	rep := Unhandled(e.msg)
	if e.trace != nil {
		rep.StackTrace = formatTrace(e.trace)
	}

	return rep
}
