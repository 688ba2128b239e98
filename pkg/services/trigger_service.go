package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
)

// TriggerService is the analysis trigger façade: admission control,
// per-patient rate limiting, and queueing work to the orchestrator via the
// session queue. It returns a poll handle; it never runs analysis inline.
type TriggerService struct {
	store   SessionStore
	limiter *patientRateLimiter
}

// NewTriggerService creates a TriggerService.
func NewTriggerService(st SessionStore, triggersPerPatientPerMinute int) *TriggerService {
	return &TriggerService{
		store:   st,
		limiter: newPatientRateLimiter(triggersPerPatientPerMinute),
	}
}

// OnTranscriptionComplete is the entry point invoked after transcription
// finishes: it queues the session for Wave 1.
func (s *TriggerService) OnTranscriptionComplete(ctx context.Context, sessionID string) (*models.TriggerResponse, error) {
	return s.Analyze(ctx, sessionID, nil)
}

// Analyze triggers analysis idempotently. On a failed session it behaves as
// a retry of the given kinds (all exhausted kinds when empty). Triggering a
// session that is queued, mid-run, or complete is a no-op returning the
// current status.
func (s *TriggerService) Analyze(ctx context.Context, sessionID string, kinds []models.Kind) (*models.TriggerResponse, error) {
	view, err := s.admit(ctx, sessionID, kinds)
	if err != nil {
		return nil, err
	}

	switch view.Status {
	case therapysession.StatusTranscribed:
		if err := s.enqueue(ctx, view, therapysession.StatusTranscribed, nil); err != nil {
			return nil, err
		}
		return s.handle(ctx, sessionID)

	case therapysession.StatusFailed:
		req := &models.RetryRequest{Kinds: kinds}
		if err := s.enqueue(ctx, view, therapysession.StatusFailed, req); err != nil {
			return nil, err
		}
		return s.handle(ctx, sessionID)

	default:
		// Already queued, mid-run, or complete: idempotent no-op.
		return &models.TriggerResponse{SessionID: sessionID, Status: externalStatus(view.Status)}, nil
	}
}

// Retry re-attempts exhausted kinds on a failed session.
func (s *TriggerService) Retry(ctx context.Context, sessionID string, kinds []models.Kind) (*models.TriggerResponse, error) {
	view, err := s.admit(ctx, sessionID, kinds)
	if err != nil {
		return nil, err
	}
	if view.Status != therapysession.StatusFailed {
		return nil, ErrNotRetryable
	}
	if err := s.enqueue(ctx, view, therapysession.StatusFailed, &models.RetryRequest{Kinds: kinds}); err != nil {
		return nil, err
	}
	return s.handle(ctx, sessionID)
}

// ForceRerun recomputes the named kinds on a failed session, regardless of
// existing artifacts. Completed sessions are immutable.
func (s *TriggerService) ForceRerun(ctx context.Context, sessionID string, kinds []models.Kind) (*models.TriggerResponse, error) {
	if len(kinds) == 0 {
		return nil, NewValidationError("kinds", "required for force rerun")
	}
	view, err := s.admit(ctx, sessionID, kinds)
	if err != nil {
		return nil, err
	}
	if view.Status != therapysession.StatusFailed {
		return nil, ErrNotRetryable
	}
	if err := s.enqueue(ctx, view, therapysession.StatusFailed, &models.RetryRequest{Kinds: kinds, Force: true}); err != nil {
		return nil, err
	}
	return s.handle(ctx, sessionID)
}

// admit validates the request and applies the per-patient rate limit.
func (s *TriggerService) admit(ctx context.Context, sessionID string, kinds []models.Kind) (*store.SessionView, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, NewValidationError("kinds", "unknown kind: "+string(kind))
		}
	}

	view, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !s.limiter.allow(view.PatientID) {
		slog.Warn("Trigger rate limited", "session_id", sessionID, "patient_id", view.PatientID)
		return nil, ErrRateLimited
	}
	return view, nil
}

// enqueue queues the session, tolerating a concurrent transition (the
// session is then already on its way — idempotent success).
func (s *TriggerService) enqueue(ctx context.Context, view *store.SessionView, expectedPrev therapysession.Status, req *models.RetryRequest) error {
	err := s.store.Enqueue(ctx, view.ID, expectedPrev, req)
	if err != nil && !errors.Is(err, store.ErrStaleStatus) {
		return err
	}
	return nil
}

// handle returns the poll handle with the freshest status.
func (s *TriggerService) handle(ctx context.Context, sessionID string) (*models.TriggerResponse, error) {
	view, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.TriggerResponse{SessionID: sessionID, Status: externalStatus(view.Status)}, nil
}
