// Package reporter delivers failure reports to the runtime API.
//
// The package sits between the failure types and whatever transport the host
// uses to talk to the runtime API. It serializes a Reportable into the fixed
// wire shape and hands the bytes to a Transport implementation; it does not
// perform HTTP itself, does not retry failed deliveries, and does not
// aggregate errors. Exactly one report is produced per failed invocation.
package reporter
