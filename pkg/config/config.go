// Package config loads and validates the simwatch.yaml configuration.
package config

import "time"

// Config is the immutable configuration snapshot the components hold.
// The scheduler re-reads it at the top of each wakeup through the
// snapshot it was given; in-flight batches keep the snapshot they
// started with.
type Config struct {
	// RefreshInterval is the sleep between comparison pipeline cycles.
	RefreshInterval time.Duration

	// IgnoreFilesLargerThan skips files above this many bytes from
	// digest extraction. nil means no limit.
	IgnoreFilesLargerThan *int64

	// IgnoreFilesOlderThan skips files uploaded before now minus this
	// age. nil means no limit.
	IgnoreFilesOlderThan *time.Duration

	// PluginSettings maps a plugin name to its settings slice.
	PluginSettings map[string]map[string]any

	Scheduler SchedulerConfig
	Pipeline  PipelineConfig
	Pool      PoolConfig
	API       APIConfig
}

// SchedulerConfig drives the monitoring scheduler's three cache tiers.
type SchedulerConfig struct {
	// WakeupInterval bounds the sleep between scheduler passes; an
	// external wakeup re-enters the loop earlier.
	WakeupInterval time.Duration

	// CoursesInterval is the cadence of the courses tier (batch size
	// is fixed at 1, there is a single enrolled-courses endpoint).
	CoursesInterval time.Duration

	// AssignmentsInterval and AssignmentsBatchSize drive the
	// assignments tier over known open courses.
	AssignmentsInterval  time.Duration
	AssignmentsBatchSize int

	// ActiveInterval and ActiveBatchSize drive submissions of
	// assignments with no deadline near.
	ActiveInterval  time.Duration
	ActiveBatchSize int

	// DeadlineInterval and DeadlineBatchSize drive submissions of
	// assignments whose deadline falls inside the window below.
	// DeadlineInterval is typically much shorter than ActiveInterval.
	DeadlineInterval  time.Duration
	DeadlineBatchSize int

	// DeadlineWindowBefore/After define the deadline window
	// [now-before, now+after] on due and cutoff timestamps.
	DeadlineWindowBefore time.Duration
	DeadlineWindowAfter  time.Duration
}

// PipelineConfig sizes the comparison pipeline batches.
type PipelineConfig struct {
	BatchSize int
}

// PoolConfig sizes the worker pool.
type PoolConfig struct {
	Workers   int
	QueueSize int
}

// APIConfig configures the HTTP surface.
type APIConfig struct {
	ListenAddr string
}
