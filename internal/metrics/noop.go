package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUsersListCacheHit is a no-op.
func (n *NoopRecorder) IncUsersListCacheHit() {}

// IncUsersListCacheMiss is a no-op.
func (n *NoopRecorder) IncUsersListCacheMiss() {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserCreateFailed is a no-op.
func (n *NoopRecorder) IncUserCreateFailed(kind string) {}

// IncUsersSeeded is a no-op.
func (n *NoopRecorder) IncUsersSeeded(count int) {}
