// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Entry lifecycle metrics
	IncEntryCreated()
	IncEntryUpdated()
	IncEntryDeleted()
	IncEntryStatusChanged()

	// Balance metrics
	ObserveBalanceDuration(duration time.Duration)

	// User metrics
	IncUserRegistered()
	IncAuthAttempt(status string) // status: "success" or "failure"
}

// Snapshotter exposes a point-in-time view of recorded metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
