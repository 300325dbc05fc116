// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Failure kinds reported by IncUserCreateFailed.
const (
	KindValidation = "validation"
	KindStore      = "store"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User list metrics
	IncUsersListCacheHit()
	IncUsersListCacheMiss()

	// User write metrics
	IncUserCreated()
	IncUserCreateFailed(kind string) // kind: "validation" or "store"
	IncUsersSeeded(count int)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
