package queue

import (
	"context"
	"log/slog"
	"time"
)

// runOrphanDetection periodically requeues sessions with stale heartbeats.
// All pods run this independently — the requeue is idempotent, and a
// requeued session resumes from its persisted artifacts rather than losing
// completed work.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			threshold := time.Now().Add(-p.config.OrphanThreshold)
			requeued, err := p.store.RequeueOrphans(ctx, threshold)
			if err != nil {
				slog.Error("Orphan detection failed", "error", err)
				continue
			}
			if requeued > 0 {
				slog.Warn("Requeued orphaned sessions", "count", requeued)
			}

			p.orphans.mu.Lock()
			p.orphans.lastOrphanScan = time.Now()
			p.orphans.orphansRequeued += requeued
			p.orphans.mu.Unlock()
		}
	}
}

// RecoverStartupOrphans performs a one-time requeue of sessions owned by
// this pod that were mid-run when the pod previously crashed. Called once
// during startup, before the worker pool begins processing.
func RecoverStartupOrphans(ctx context.Context, st QueueStore, podID string) error {
	requeued, err := st.RequeueStartupOrphans(ctx, podID)
	if err != nil {
		return err
	}
	if requeued > 0 {
		slog.Warn("Requeued startup orphans from previous run",
			"pod_id", podID,
			"count", requeued)
	}
	return nil
}
