package failure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandled(t *testing.T) {
	rep := Handled("validation failed: missing field x")

	require.Equal(t, "validation failed: missing field x", rep.Message)
	require.Equal(t, KindHandled, rep.Kind)
	require.Nil(t, rep.StackTrace)
}

func TestUnhandled(t *testing.T) {
	rep := Unhandled("connection refused")

	require.Equal(t, "connection refused", rep.Message)
	require.Equal(t, KindUnhandled, rep.Kind)
	require.Nil(t, rep.StackTrace)
}

func TestReport_WireShape(t *testing.T) {
	rep := Unhandled("connection refused")

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"errorMessage":"connection refused","errorType":"Unhandled","stackTrace":null}`,
		string(data))
}

func TestReport_AbsentTraceEncodesAsNull(t *testing.T) {
	data, err := json.Marshal(Handled("boom"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"stackTrace":null`)
}

func TestReport_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rep  Report
	}{
		{
			name: "handled without trace",
			rep:  Handled("validation failed"),
		},
		{
			name: "unhandled without trace",
			rep:  Unhandled("connection refused"),
		},
		{
			name: "unhandled with trace",
			rep: Report{
				Message:    "parse error",
				Kind:       KindUnhandled,
				StackTrace: []string{"main.handler (main.go:42)", "main.main (main.go:12)"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rep)
			require.NoError(t, err)

			var decoded Report
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.Equal(t, tt.rep, decoded)
		})
	}
}
