package store

import (
	"context"
	"fmt"
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent/auditevent"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
)

// SoftDeleteOldSessions soft deletes terminal sessions older than the
// retention period. The admin deletion path; the orchestrator never
// destroys sessions.
func (g *Gateway) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := g.client.TherapySession.Update().
		Where(
			therapysession.StatusIn(therapysession.StatusComplete, therapysession.StatusFailed),
			therapysession.CompletedAtLT(cutoff),
			therapysession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}
	return count, nil
}

// PurgeOldAuditEvents deletes audit_events rows older than ttl. The line
// sink keeps the operator copy.
func (g *Gateway) PurgeOldAuditEvents(ctx context.Context, ttl time.Duration) (int, error) {
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := g.client.AuditEvent.Delete().
		Where(auditevent.CreatedAtLT(time.Now().Add(-ttl))).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit events: %w", err)
	}
	return count, nil
}

// RestoreSession clears the soft-delete marker.
func (g *Gateway) RestoreSession(ctx context.Context, sessionID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := g.client.TherapySession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}
