package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersListCacheHits    uint64
	UsersListCacheMisses  uint64
	UsersCreated          uint64
	UserCreateFailedValid uint64
	UserCreateFailedStore uint64
	SeedRuns              uint64
	UsersSeeded           uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersListCacheHits    uint64
	usersListCacheMisses  uint64
	usersCreated          uint64
	userCreateFailedValid uint64
	userCreateFailedStore uint64
	seedRuns              uint64
	usersSeeded           uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersListCacheHits:    atomic.LoadUint64(&m.usersListCacheHits),
		UsersListCacheMisses:  atomic.LoadUint64(&m.usersListCacheMisses),
		UsersCreated:          atomic.LoadUint64(&m.usersCreated),
		UserCreateFailedValid: atomic.LoadUint64(&m.userCreateFailedValid),
		UserCreateFailedStore: atomic.LoadUint64(&m.userCreateFailedStore),
		SeedRuns:              atomic.LoadUint64(&m.seedRuns),
		UsersSeeded:           atomic.LoadUint64(&m.usersSeeded),
	}
}

// IncUsersListCacheHit increments the list cache hit counter.
func (m *InMemoryRecorder) IncUsersListCacheHit() {
	atomic.AddUint64(&m.usersListCacheHits, 1)
}

// IncUsersListCacheMiss increments the list cache miss counter.
func (m *InMemoryRecorder) IncUsersListCacheMiss() {
	atomic.AddUint64(&m.usersListCacheMisses, 1)
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserCreateFailed increments the failure counter for kind.
// Unknown kinds count as store failures.
func (m *InMemoryRecorder) IncUserCreateFailed(kind string) {
	if kind == KindValidation {
		atomic.AddUint64(&m.userCreateFailedValid, 1)
		return
	}
	atomic.AddUint64(&m.userCreateFailedStore, 1)
}

// IncUsersSeeded records a seed run and the number of users it wrote.
func (m *InMemoryRecorder) IncUsersSeeded(count int) {
	atomic.AddUint64(&m.seedRuns, 1)
	atomic.AddUint64(&m.usersSeeded, uint64(count))
}
