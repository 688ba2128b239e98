// Package queue provides the session queue: a worker pool that claims
// queued sessions from the database and drives them through the analysis
// orchestrator, with heartbeats and orphan recovery for crashed pods.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/orchestrator"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no queued sessions are waiting.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// QueueStore is the gateway surface the queue depends on. *store.Gateway
// implements it; tests substitute fakes.
type QueueStore interface {
	ClaimNextQueued(ctx context.Context, podID string) (*store.SessionView, *models.RetryRequest, error)
	Heartbeat(ctx context.Context, sessionID string) error
	MarkInterrupted(ctx context.Context, sessionID, message string) error
	RequeueOrphans(ctx context.Context, threshold time.Time) (int, error)
	RequeueStartupOrphans(ctx context.Context, podID string) (int, error)
	QueueDepth(ctx context.Context) (int, error)
	ActiveCount(ctx context.Context, podID string) (int, error)
}

// SessionExecutor runs one claimed session to a settled state. The
// orchestrator writes all progress itself; the worker only handles
// claiming, heartbeat, and interruption bookkeeping.
type SessionExecutor interface {
	Execute(ctx context.Context, sessionID string, retry *models.RetryRequest) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one executed session.
type ExecutionResult struct {
	Status therapysession.Status
	NoOp   bool
	Err    error
}

// OrchestratorExecutor adapts the analysis orchestrator to SessionExecutor.
type OrchestratorExecutor struct {
	Orchestrator *orchestrator.Orchestrator
}

// Execute implements SessionExecutor.
func (e *OrchestratorExecutor) Execute(ctx context.Context, sessionID string, retry *models.RetryRequest) *ExecutionResult {
	result, err := e.Orchestrator.RunClaimedWith(ctx, sessionID, retry)
	if err != nil {
		return &ExecutionResult{Err: err}
	}
	return &ExecutionResult{Status: result.Status, NoOp: result.NoOp}
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveSessions  int            `json:"active_sessions"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string       `json:"id"`
	Status            WorkerStatus `json:"status"`
	CurrentSessionID  string       `json:"current_session_id,omitempty"`
	SessionsProcessed int          `json:"sessions_processed"`
	LastActivity      time.Time    `json:"last_activity"`
}
