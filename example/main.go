// Command example demonstrates the failure reporting path end to end with a
// stub transport: build client errors and domain errors, serialize them, and
// watch what the runtime API would receive.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/AmeliaLLC/lambda-runtime-go/config"
	"github.com/AmeliaLLC/lambda-runtime-go/failure"
	"github.com/AmeliaLLC/lambda-runtime-go/reporter"
)

// printTransport stands in for the HTTP transport and prints what it would
// deliver to the runtime API.
type printTransport struct{}

func (printTransport) SendInvocationError(_ context.Context, requestID string, body []byte) error {
	fmt.Printf("POST /runtime/invocation/%s/error\n%s\n", requestID, body)
	return nil
}

func (printTransport) SendInitError(_ context.Context, body []byte) error {
	fmt.Printf("POST /runtime/init/error\n%s\n", body)
	return nil
}

// timeoutError is a domain error type: it classifies itself as Handled and
// the client delivers it untouched.
type timeoutError struct {
	limit time.Duration
}

func (e *timeoutError) Report() failure.Report {
	return failure.Handled(fmt.Sprintf("function timed out after %s", e.limit))
}

func main() {
	backtrace := flag.Bool("backtrace", false, "capture stack traces on error construction")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := config.FromEnv()
	if *backtrace {
		cfg.Backtrace = true
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	cfg.Apply()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.RFC3339,
	})))

	ctx := context.Background()
	r := reporter.New(printTransport{})

	// A transport failure observed by the client itself: adapted, reported
	// as Unhandled.
	clientErr := failure.FromTransportError(errors.New("dial tcp 127.0.0.1:9001: connect: connection refused"))
	if err := r.InvocationError(ctx, "8476a536-e9f4-11e8-9739-2dfe598c3fcd", clientErr); err != nil {
		slog.Error("report delivery failed", "error", err)
		os.Exit(1)
	}

	// A domain error: Handled classification passes through untouched.
	if err := r.InvocationError(ctx, "8476a536-e9f4-11e8-9739-2dfe598c3fcd", &timeoutError{limit: 3 * time.Second}); err != nil {
		slog.Error("report delivery failed", "error", err)
		os.Exit(1)
	}

	// An unrecoverable initialization failure: the host reports it and must
	// then terminate instead of polling for work.
	initErr := failure.New("handler module not found").Unrecoverable()
	if err := r.InitError(ctx, initErr); err != nil {
		slog.Error("report delivery failed", "error", err)
		os.Exit(1)
	}
	if !initErr.Recoverable() {
		slog.Warn("execution environment is unsafe to reuse, exiting")
	}

	// The raw wire shape, for reference.
	body, _ := json.MarshalIndent(clientErr.Report(), "", "  ")
	fmt.Println(string(body))
}
