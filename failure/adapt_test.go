package failure

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// adapterCases builds one adapted Error per underlying failure category, all
// from real source errors.
func adapterCases(t *testing.T) map[string]func() *Error {
	t.Helper()

	var v struct{}
	decodeErr := json.Unmarshal([]byte(`{"broken`), &v)
	require.Error(t, decodeErr)

	_, urlErr := url.Parse(":not-a-url")
	require.Error(t, urlErr)
	var parsedURLErr *url.Error
	require.ErrorAs(t, urlErr, &parsedURLErr)

	_, numErr := strconv.Atoi("abc")
	require.Error(t, numErr)
	var parsedNumErr *strconv.NumError
	require.ErrorAs(t, numErr, &parsedNumErr)

	return map[string]func() *Error{
		"decode":    func() *Error { return FromDecodeError(decodeErr) },
		"url":       func() *Error { return FromURLError(parsedURLErr) },
		"transport": func() *Error { return FromTransportError(errors.New("connection refused")) },
		"header":    func() *Error { return FromHeaderError(errors.New("invalid header value")) },
		"num":       func() *Error { return FromNumError(parsedNumErr) },
		"io":        func() *Error { return FromIOError(io.ErrUnexpectedEOF) },
	}
}

func TestAdapters_RecoverableByDefault(t *testing.T) {
	t.Setenv(BacktraceEnv, "")

	for name, build := range adapterCases(t) {
		t.Run(name, func(t *testing.T) {
			err := build()
			require.True(t, err.Recoverable())
			require.Equal(t, KindUnhandled, err.Report().Kind)
		})
	}
}

func TestAdapters_MessageVerbatim(t *testing.T) {
	t.Setenv(BacktraceEnv, "")

	tests := []struct {
		name    string
		source  error
		adapted *Error
	}{
		{
			name:    "transport",
			source:  errors.New("dial tcp 127.0.0.1:9001: connect: connection refused"),
			adapted: FromTransportError(errors.New("dial tcp 127.0.0.1:9001: connect: connection refused")),
		},
		{
			name:    "header",
			source:  errors.New("invalid character at position 4"),
			adapted: FromHeaderError(errors.New("invalid character at position 4")),
		},
		{
			name:    "io",
			source:  io.ErrUnexpectedEOF,
			adapted: FromIOError(io.ErrUnexpectedEOF),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.source.Error(), tt.adapted.Error())
			require.Equal(t, tt.source.Error(), tt.adapted.Report().Message)
		})
	}
}

func TestAdapters_TraceDisabled(t *testing.T) {
	t.Setenv(BacktraceEnv, "")

	for name, build := range adapterCases(t) {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, build().Report().StackTrace)
		})
	}
}

func TestAdapters_TraceEnabled(t *testing.T) {
	t.Setenv(BacktraceEnv, "1")

	for name, build := range adapterCases(t) {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, build().Report().StackTrace)
		})
	}
}

func TestAdapters_MalformedIdentifierScenario(t *testing.T) {
	t.Setenv(BacktraceEnv, "")

	rep := FromHeaderError(errors.New("invalid character at position 4")).Report()

	require.Equal(t, "invalid character at position 4", rep.Message)
	require.Equal(t, KindUnhandled, rep.Kind)
}
