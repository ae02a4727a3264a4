// Package failure provides the error reporting types for the runtime client.
//
// The package normalizes the heterogeneous failures a runtime client can hit
// (decode errors, bad endpoint addresses, transport failures, header encoding
// problems, integer parsing, plain I/O) into a single Error value that carries
// a human-readable description, an optional stack trace, and a recoverability
// flag. The rest of the client propagates that one value instead of translating
// errors at every call site.
//
// # Failure reports
//
// The runtime API expects a fixed JSON shape for failed invocations:
//
//	{
//	    "errorMessage": "connection refused",
//	    "errorType": "Unhandled",
//	    "stackTrace": null
//	}
//
// Report is that shape. The two constructors set the error type:
//
//	rep := failure.Handled("validation failed: missing field x")
//	rep := failure.Unhandled("connection refused")
//
// # Custom error types
//
// Any type that implements Reportable can be delivered to the runtime API.
// Function authors plug their own error types into the reporting path by
// returning a Report from the single Report method; the client never inspects
// the concrete type and never overrides the chosen error type:
//
//	type ValidationError struct{ Field string }
//
//	func (e *ValidationError) Report() failure.Report {
//	    return failure.Handled("validation failed: missing field " + e.Field)
//	}
//
// # The unified client error
//
// Error is the client's own error value. New reads the LAMBDA_RUNTIME_BACKTRACE
// environment variable on every call; when it is set to "1" the current call
// stack is captured at construction and rendered into the report later:
//
//	err := failure.New("failed to parse invocation deadline")
//	rep := err.Report() // errorType is always "Unhandled"
//
// An Error starts recoverable. Marking it unrecoverable tells the host the
// execution environment is no longer safe to reuse and must be torn down:
//
//	return failure.FromTransportError(err).Unrecoverable()
//
// The transition is one-way; there is no way to make an unrecoverable Error
// recoverable again.
//
// # Adapters
//
// The From* constructors convert the client's underlying failure categories
// into an Error, keeping only the textual description. Adaptation alone never
// marks an error unrecoverable; callers decide that where the fatality of the
// failure is actually known.
package failure
