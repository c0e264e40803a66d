package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncEntryCreated is a no-op.
func (n *NoopRecorder) IncEntryCreated() {}

// IncEntryUpdated is a no-op.
func (n *NoopRecorder) IncEntryUpdated() {}

// IncEntryDeleted is a no-op.
func (n *NoopRecorder) IncEntryDeleted() {}

// IncEntryStatusChanged is a no-op.
func (n *NoopRecorder) IncEntryStatusChanged() {}

// ObserveBalanceDuration is a no-op.
func (n *NoopRecorder) ObserveBalanceDuration(duration time.Duration) {}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncAuthAttempt is a no-op.
func (n *NoopRecorder) IncAuthAttempt(status string) {}
