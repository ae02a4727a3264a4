package failure

// Reportable is implemented by any error value that can describe itself to
// the runtime API. The reporting path calls Report exactly once per failed
// invocation and serializes the result as-is; it never inspects the concrete
// type and never overrides the Kind the implementation chose.
//
// Implementations must be deterministic over the receiver's current state and
// free of side effects.
type Reportable interface {
	// Report produces the failure report for this error.
	Report() Report
}
