package failure

// Kind is the error type the runtime API distinguishes in a failure report.
// Kinds are string-based so they serialize naturally into the errorType field.
type Kind string

const (
	// KindHandled marks an error the function code or framework explicitly
	// produced and understood.
	KindHandled Kind = "Handled"

	// KindUnhandled marks an error the client itself surfaced, or one that
	// was not specifically classified.
	KindUnhandled Kind = "Unhandled"
)

// Report is the wire-level failure description sent to the runtime API for a
// failed invocation. Field names are fixed by the API contract and must not
// change.
//
// A Report is built immediately before being handed to the transport and is
// not reused across invocations.
type Report struct {
	// Message is the human-readable description of the failure.
	Message string `json:"errorMessage"`

	// Kind is either KindHandled or KindUnhandled.
	Kind Kind `json:"errorType"`

	// StackTrace holds one formatted line per captured stack frame, most
	// recent frame first. It is nil unless stack capture was enabled when
	// the underlying error was created; nil encodes as JSON null.
	StackTrace []string `json:"stackTrace"`
}

// Handled returns a Report with KindHandled and no stack trace.
func Handled(message string) Report {
	return Report{
		Message: message,
		Kind:    KindHandled,
	}
}

// Unhandled returns a Report with KindUnhandled and no stack trace.
func Unhandled(message string) Report {
	return Report{
		Message: message,
		Kind:    KindUnhandled,
	}
}
