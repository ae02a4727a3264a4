package reporter

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/AmeliaLLC/lambda-runtime-go/failure"
)

// Reporter serializes failure reports and hands them to a Transport.
type Reporter struct {
	transport Transport
	log       *slog.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the logger used for report delivery logging. Defaults to
// slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reporter) {
		r.log = log
	}
}

// New creates a Reporter that delivers reports through the given transport.
func New(t Transport, opts ...Option) *Reporter {
	r := &Reporter{
		transport: t,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// InvocationError reports a failed invocation. The Reportable's own report is
// serialized untouched: a domain error that classifies itself as Handled
// reaches the transport exactly as it chose to appear.
//
// Returns a *failure.Error when serialization or delivery fails.
func (r *Reporter) InvocationError(ctx context.Context, requestID string, f failure.Reportable) error {
	body, rep, err := r.encode(f)
	if err != nil {
		return err
	}

	r.log.Error("reporting invocation failure",
		"requestID", requestID,
		"errorType", rep.Kind,
		"errorMessage", rep.Message)

	if err := r.transport.SendInvocationError(ctx, requestID, body); err != nil {
		return failure.FromTransportError(err)
	}

	return nil
}

// InitError reports a failure that occurred before the first invocation.
func (r *Reporter) InitError(ctx context.Context, f failure.Reportable) error {
	body, rep, err := r.encode(f)
	if err != nil {
		return err
	}

	r.log.Error("reporting initialization failure",
		"errorType", rep.Kind,
		"errorMessage", rep.Message)

	if err := r.transport.SendInitError(ctx, body); err != nil {
		return failure.FromTransportError(err)
	}

	return nil
}

func (r *Reporter) encode(f failure.Reportable) ([]byte, failure.Report, error) {
	rep := f.Report()

	body, err := json.Marshal(rep)
	if err != nil {
		// Report fields are plain strings and slices, so this only fires on
		// invalid UTF-8 or similar corruption.
		return nil, rep, failure.FromDecodeError(err)
	}

	return body, rep, nil
}
