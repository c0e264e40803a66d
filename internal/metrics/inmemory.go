package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// InMemoryRecorder implements Recorder with atomic counters.
// Useful for tests and for exposing a snapshot on an admin endpoint.
type InMemoryRecorder struct {
	entryCreated       atomic.Int64
	entryUpdated       atomic.Int64
	entryDeleted       atomic.Int64
	entryStatusChanged atomic.Int64
	userRegistered     atomic.Int64

	mu               sync.Mutex
	authAttempts     map[string]int64
	balanceDurations []time.Duration
}

// NewInMemory returns a Recorder backed by in-process counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		authAttempts: make(map[string]int64),
	}
}

// Snapshot is a point-in-time copy of recorded metrics.
type Snapshot struct {
	EntryCreated       int64
	EntryUpdated       int64
	EntryDeleted       int64
	EntryStatusChanged int64
	UserRegistered     int64
	AuthAttempts       map[string]int64
	BalanceObserved    int
}

// IncEntryCreated increments the entry-created counter.
func (r *InMemoryRecorder) IncEntryCreated() { r.entryCreated.Add(1) }

// IncEntryUpdated increments the entry-updated counter.
func (r *InMemoryRecorder) IncEntryUpdated() { r.entryUpdated.Add(1) }

// IncEntryDeleted increments the entry-deleted counter.
func (r *InMemoryRecorder) IncEntryDeleted() { r.entryDeleted.Add(1) }

// IncEntryStatusChanged increments the status-transition counter.
func (r *InMemoryRecorder) IncEntryStatusChanged() { r.entryStatusChanged.Add(1) }

// ObserveBalanceDuration records one balance computation duration.
func (r *InMemoryRecorder) ObserveBalanceDuration(duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balanceDurations = append(r.balanceDurations, duration)
}

// IncUserRegistered increments the user-registered counter.
func (r *InMemoryRecorder) IncUserRegistered() { r.userRegistered.Add(1) }

// IncAuthAttempt increments the auth-attempt counter for a status.
func (r *InMemoryRecorder) IncAuthAttempt(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authAttempts[status]++
}

// Snapshot returns a copy of the current counters.
func (r *InMemoryRecorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempts := make(map[string]int64, len(r.authAttempts))
	for k, v := range r.authAttempts {
		attempts[k] = v
	}

	return Snapshot{
		EntryCreated:       r.entryCreated.Load(),
		EntryUpdated:       r.entryUpdated.Load(),
		EntryDeleted:       r.entryDeleted.Load(),
		EntryStatusChanged: r.entryStatusChanged.Load(),
		UserRegistered:     r.userRegistered.Load(),
		AuthAttempts:       attempts,
		BalanceObserved:    len(r.balanceDurations),
	}
}
