// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
)

// RetentionStore is the gateway surface the cleanup loop uses.
type RetentionStore interface {
	SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error)
	PurgeOldAuditEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically enforces retention policies:
//   - Soft-deletes old terminal sessions
//   - Purges audit_events rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	store  RetentionStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, store RetentionStore) *Service {
	return &Service{
		config: cfg,
		store:  store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"audit_event_ttl", s.config.AuditEventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	// One pass at startup, then on the interval.
	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	deleted, err := s.store.SoftDeleteOldSessions(ctx, s.config.SessionRetentionDays)
	if err != nil {
		slog.Error("Session retention pass failed", "error", err)
	} else if deleted > 0 {
		slog.Info("Soft-deleted old sessions", "count", deleted)
	}

	purged, err := s.store.PurgeOldAuditEvents(ctx, s.config.AuditEventTTL)
	if err != nil {
		slog.Error("Audit event purge failed", "error", err)
	} else if purged > 0 {
		slog.Info("Purged old audit events", "count", purged)
	}
}
