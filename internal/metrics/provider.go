package metrics

import "time"

// Provider is the outbound metrics port. The prometheus implementation is the
// only real one; handlers and repositories only ever see this interface.
type Provider interface {
	IncrementHTTPRequests(handler, status string)
	RecordHTTPRequestDuration(handler, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementGroupOperations(operation string, success bool)
	IncrementAuthOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
