package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
)

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id              string
	podID           string
	store           QueueStore
	config          *config.QueueConfig
	sessionExecutor SessionExecutor
	pool            SessionRegistry
	stopCh          chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, st QueueStore, cfg *config.QueueConfig, executor SessionExecutor, pool SessionRegistry) *Worker {
	return &Worker{
		id:              id,
		podID:           podID,
		store:           st,
		config:          cfg,
		sessionExecutor: executor,
		pool:            pool,
		stopCh:          make(chan struct{}),
		status:          WorkerStatusIdle,
		lastActivity:    time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            w.status,
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.store.ActiveCount(ctx, "")
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	// 2. Claim the oldest queued session (queued → wave1_running).
	view, retryReq, err := w.store.ClaimNextQueued(ctx, w.podID)
	if err != nil {
		if errors.Is(err, store.ErrNoneQueued) {
			return ErrNoSessionsAvailable
		}
		return err
	}

	log := slog.With("session_id", view.ID, "worker_id", w.id)
	log.Info("Session claimed", "retry", retryReq != nil)

	w.setStatus(WorkerStatusWorking, view.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Session context with timeout.
	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout)
	defer cancelSession()

	// 4. Register cancel function for API-triggered cancellation.
	w.pool.RegisterSession(view.ID, cancelSession)
	defer w.pool.UnregisterSession(view.ID)

	// 5. Heartbeat for orphan detection.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	go w.runHeartbeat(heartbeatCtx, view.ID)

	// 6. Execute; the orchestrator persists progress itself.
	result := w.sessionExecutor.Execute(sessionCtx, view.ID, retryReq)
	cancelHeartbeat()

	// 7. A timeout or cancellation leaves the session mid-wave; fail it so
	//    retry stays open (use background context — session ctx is dead).
	if result.Err != nil {
		var message string
		switch {
		case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
			message = fmt.Sprintf("analysis timed out after %v", w.config.SessionTimeout)
		case errors.Is(sessionCtx.Err(), context.Canceled):
			message = "analysis cancelled"
		default:
			message = fmt.Sprintf("analysis aborted: %v", result.Err)
		}
		if err := w.store.MarkInterrupted(context.Background(), view.ID, message); err != nil {
			log.Error("Failed to mark interrupted session", "error", err)
		}
		log.Warn("Session interrupted", "reason", message)
	} else {
		log.Info("Session processing complete", "status", result.Status, "no_op", result.NoOp)
	}

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	return nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.store.Heartbeat(ctx, sessionID); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
