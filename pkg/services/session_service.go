// Package services implements the API-facing service layer: session
// ingestion, the composed read views, and the analysis trigger façade.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
)

// SessionStore is the gateway surface the service layer reads and writes
// through. *store.Gateway implements it.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*store.SessionView, error)
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (*store.SessionView, error)
	ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error)
	Enqueue(ctx context.Context, sessionID string, expectedPrev therapysession.Status, req *models.RetryRequest) error
}

// SessionService serves session ingestion and composed read views.
type SessionService struct {
	store      SessionStore
	techniques *techniques.Library
	analysis   *config.AnalysisConfig
}

// NewSessionService creates a SessionService.
func NewSessionService(st SessionStore, lib *techniques.Library, analysis *config.AnalysisConfig) *SessionService {
	return &SessionService{store: st, techniques: lib, analysis: analysis}
}

// CreateSession ingests a diarized transcript from the transcription
// pipeline and creates the session in the transcribed state.
func (s *SessionService) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*store.SessionView, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.PatientID == "" {
		return nil, NewValidationError("patient_id", "required")
	}
	if req.TherapistID == "" {
		return nil, NewValidationError("therapist_id", "required")
	}
	if len(req.Transcript) == 0 {
		return nil, NewValidationError("transcript", "required")
	}
	if req.DurationSec <= 0 {
		return nil, NewValidationError("duration_sec", "must be positive")
	}
	for i, seg := range req.Transcript {
		if seg.Text == "" || seg.Speaker == "" {
			return nil, NewValidationError("transcript",
				fmt.Sprintf("segment %d is missing speaker or text", i))
		}
		if seg.EndSec < seg.StartSec {
			return nil, NewValidationError("transcript",
				fmt.Sprintf("segment %d has inverted timestamps", i))
		}
	}

	view, err := s.store.CreateSession(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return view, nil
}

// GetSessionDetail composes the full read view: transcript, all current
// artifacts, and the technique definition resolved against the catalog
// (null for unknown or free-text technique ids).
func (s *SessionService) GetSessionDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	view, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &models.SessionDetail{
		SessionID:     view.ID,
		PatientID:     view.PatientID,
		TherapistID:   view.TherapistID,
		SessionTS:     view.SessionTS,
		DurationSec:   view.DurationSec,
		Status:        string(view.Status),
		Transcript:    view.Transcript,
		Mood:          view.Mood,
		Topics:        view.Topics,
		ActionSummary: view.ActionSummary,
		Breakthrough:  view.Breakthrough,
		Deep:          view.Deep,
		CostUSD:       view.CostUSD,
		CreatedAt:     view.CreatedAt,
		CompletedAt:   view.CompletedAt,
	}

	if view.Topics != nil && view.Topics.TechniqueID != "" {
		detail.TechniqueDefinition = s.techniques.Lookup(view.Topics.TechniqueID)
	}

	return detail, nil
}

// GetStatus reports per-kind analysis progress. It always succeeds for an
// existing session and describes partial state.
func (s *SessionService) GetStatus(ctx context.Context, sessionID string) (*models.StatusResponse, error) {
	view, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := &models.StatusResponse{
		SessionID: view.ID,
		Status:    externalStatus(view.Status),
		PerKind:   make(map[models.Kind]models.KindState, len(models.AllKinds)),
		CostUSD:   view.CostUSD,
	}

	topicsTerminal := view.Topics == nil && kindExhausted(view, models.KindTopics, s.analysis)
	running := view.Status == therapysession.StatusWave1Running ||
		view.Status == therapysession.StatusWave1Complete ||
		view.Status == therapysession.StatusWave2Running

	for _, kind := range models.AllKinds {
		progress := view.Progress[kind]
		state := models.KindState{
			RetryCount: progress.FailedAttempts,
			LastError:  progress.LastError,
		}
		switch {
		case view.HasArtifact(kind):
			state.State = "complete"
		case kindExhausted(view, kind, s.analysis):
			state.State = "exhausted"
		case (kind == models.KindActionSummary || kind == models.KindDeep) && topicsTerminal:
			// Dependency lost for good: these kinds can never start.
			state.State = "blocked"
		case running:
			state.State = "running"
		default:
			state.State = "pending"
		}
		resp.PerKind[kind] = state
	}

	return resp, nil
}

// ListSessions lists sessions with filtering and pagination.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	return s.store.ListSessions(ctx, filters)
}

// externalStatus hides the internal queued sub-state: externally a queued
// session is still transcribed (analysis has not started).
func externalStatus(status therapysession.Status) string {
	if status == therapysession.StatusQueued {
		return string(therapysession.StatusTranscribed)
	}
	return string(status)
}

// kindExhausted mirrors the orchestrator's exhaustion rules for reporting.
func kindExhausted(view *store.SessionView, kind models.Kind, analysis *config.AnalysisConfig) bool {
	progress := view.Progress[kind]
	switch progress.LastClass {
	case "schema":
		return progress.FailedAttempts >= analysis.Retry.SchemaMaxAttempts
	case "config":
		return progress.FailedAttempts >= 1
	}
	return progress.FailedAttempts >= analysis.Retry.MaxAttempts
}
