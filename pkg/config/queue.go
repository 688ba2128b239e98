package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how sessions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes sessions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions is the global limit of concurrent sessions being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking queued sessions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// SessionTimeout is the maximum time a session's analysis run may take.
	SessionTimeout time.Duration `yaml:"session_timeout"`

	// GracefulShutdownTimeout is loaded with the queue config but not read
	// by the worker pool: WorkerPool.Stop waits for active sessions to
	// finish without a time limit.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often workers refresh last_interaction_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned sessions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a session can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// TriggersPerPatientPerMinute limits how often analysis may be
	// triggered for any single patient (admission control).
	TriggersPerPatientPerMinute int `yaml:"triggers_per_patient_per_minute"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:                 4,
		MaxConcurrentSessions:       8,
		PollInterval:                1 * time.Second,
		PollIntervalJitter:          500 * time.Millisecond,
		SessionTimeout:              10 * time.Minute,
		GracefulShutdownTimeout:     10 * time.Minute,
		HeartbeatInterval:           30 * time.Second,
		OrphanDetectionInterval:     2 * time.Minute,
		OrphanThreshold:             3 * time.Minute,
		TriggersPerPatientPerMinute: 6,
	}
}
