package reporter

import "context"

// Transport delivers serialized failure reports to the runtime API. The body
// passed to both methods is the JSON encoding of a failure.Report and must be
// sent as-is.
//
// Implementations own connection handling and endpoint construction; the
// reporter never retries, so a Transport that wants retries must provide its
// own.
type Transport interface {
	// SendInvocationError reports a failed invocation identified by its
	// request ID.
	SendInvocationError(ctx context.Context, requestID string, body []byte) error

	// SendInitError reports a failure during environment initialization,
	// before any invocation has been received.
	SendInitError(ctx context.Context, body []byte) error
}
