package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/evolvedtroglodyte/therabridge/ent"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

// ErrNoneQueued is returned by ClaimNextQueued when the queue is empty.
var ErrNoneQueued = errors.New("no queued sessions")

// Enqueue moves a session into the queue for the worker pool, optionally
// attaching a retry request for the claiming worker. Optimistic on
// expectedPrev like SetStatus.
func (g *Gateway) Enqueue(ctx context.Context, sessionID string, expectedPrev therapysession.Status, req *models.RetryRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := g.client.TherapySession.Update().
		Where(
			therapysession.IDEQ(sessionID),
			therapysession.StatusEQ(expectedPrev),
			therapysession.DeletedAtIsNil(),
		).
		SetStatus(therapysession.StatusQueued).
		SetLastInteractionAt(time.Now())
	if req != nil {
		update = update.SetRetryRequest(req)
	} else {
		update = update.ClearRetryRequest()
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to enqueue session: %w", err)
	}
	if count == 0 {
		exists, err := g.client.TherapySession.Query().
			Where(therapysession.IDEQ(sessionID), therapysession.DeletedAtIsNil()).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check session existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrStaleStatus
	}
	return nil
}

// ClaimNextQueued atomically claims the oldest queued session using
// FOR UPDATE SKIP LOCKED, transitions it to wave1_running, and consumes any
// pending retry request. Returns ErrNoneQueued when the queue is empty.
func (g *Gateway) ClaimNextQueued(ctx context.Context, podID string) (*SessionView, *models.RetryRequest, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := g.client.Tx(claimCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.TherapySession.Query().
		Where(
			therapysession.StatusEQ(therapysession.StatusQueued),
			therapysession.DeletedAtIsNil(),
		).
		Order(ent.Asc(therapysession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNoneQueued
		}
		return nil, nil, fmt.Errorf("failed to query queued session: %w", err)
	}

	retryReq := row.RetryRequest

	now := time.Now()
	row, err = row.Update().
		SetStatus(therapysession.StatusWave1Running).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		ClearRetryRequest().
		ClearErrorMessage().
		Save(claimCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	view, err := g.Load(ctx, row.ID)
	if err != nil {
		return nil, nil, err
	}
	return view, retryReq, nil
}

// Heartbeat refreshes last_interaction_at for orphan detection.
func (g *Gateway) Heartbeat(ctx context.Context, sessionID string) error {
	return g.client.TherapySession.UpdateOneID(sessionID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// MarkInterrupted fails a mid-run session after a timeout or cancellation.
// Already-committed artifacts remain; the failed state keeps retry open.
func (g *Gateway) MarkInterrupted(ctx context.Context, sessionID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	count, err := g.client.TherapySession.Update().
		Where(
			therapysession.IDEQ(sessionID),
			therapysession.StatusIn(therapysession.StatusWave1Running, therapysession.StatusWave2Running),
		).
		SetStatus(therapysession.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark session interrupted: %w", err)
	}
	if count == 0 {
		// The orchestrator already settled the session; nothing to do.
		return nil
	}
	return nil
}

// RequeueOrphans returns stale mid-run sessions to the queue so another
// worker resumes them from their persisted artifacts. Idempotent; every
// pod runs it.
func (g *Gateway) RequeueOrphans(ctx context.Context, threshold time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	count, err := g.client.TherapySession.Update().
		Where(
			therapysession.StatusIn(therapysession.StatusWave1Running, therapysession.StatusWave2Running),
			therapysession.LastInteractionAtNotNil(),
			therapysession.LastInteractionAtLT(threshold),
			therapysession.DeletedAtIsNil(),
		).
		SetStatus(therapysession.StatusQueued).
		ClearPodID().
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphans: %w", err)
	}
	return count, nil
}

// RequeueStartupOrphans requeues sessions this pod abandoned in a previous
// crash. Called once before the worker pool starts.
func (g *Gateway) RequeueStartupOrphans(ctx context.Context, podID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	count, err := g.client.TherapySession.Update().
		Where(
			therapysession.StatusIn(therapysession.StatusWave1Running, therapysession.StatusWave2Running),
			therapysession.PodIDEQ(podID),
			therapysession.DeletedAtIsNil(),
		).
		SetStatus(therapysession.StatusQueued).
		ClearPodID().
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	return count, nil
}

// QueueDepth counts sessions waiting for a worker.
func (g *Gateway) QueueDepth(ctx context.Context) (int, error) {
	return g.client.TherapySession.Query().
		Where(
			therapysession.StatusEQ(therapysession.StatusQueued),
			therapysession.DeletedAtIsNil(),
		).
		Count(ctx)
}

// ActiveCount counts mid-run sessions, optionally scoped to one pod.
func (g *Gateway) ActiveCount(ctx context.Context, podID string) (int, error) {
	query := g.client.TherapySession.Query().
		Where(therapysession.StatusIn(therapysession.StatusWave1Running, therapysession.StatusWave2Running))
	if podID != "" {
		query = query.Where(therapysession.PodIDEQ(podID))
	}
	return query.Count(ctx)
}
