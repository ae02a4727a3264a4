package failure

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

// BacktraceEnv is the environment variable that enables stack capture when set
// to "1". It is read on every Error construction, so flipping it mid-process
// affects subsequently created errors only.
const BacktraceEnv = "LAMBDA_RUNTIME_BACKTRACE"

const backtraceOn = "1"

// skip runtime.Callers, maybeCapture, and the constructor itself so the first
// recorded frame is the caller that observed the failure.
const captureSkip = 3

// maybeCapture returns the current call stack when capture is enabled, nil
// otherwise.
func maybeCapture() []uintptr {
	if os.Getenv(BacktraceEnv) != backtraceOn {
		return nil
	}

	pcs := make([]uintptr, 32)
	for {
		n := runtime.Callers(captureSkip, pcs)
		if n < len(pcs) {
			slog.Debug("captured stack trace for failure report", "frames", n)
			return pcs[:n]
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
}

// formatTrace renders captured program counters into one line per frame, most
// recent frame first, in the form "pkg.Func (file:line)".
func formatTrace(pcs []uintptr) []string {
	lines := make([]string, 0, len(pcs))

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			lines = append(lines, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}

	return lines
}
