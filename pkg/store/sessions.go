package store

import (
	"context"
	"fmt"
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

// ErrAlreadyExists is returned when creating a session whose id is taken.
var ErrAlreadyExists = fmt.Errorf("session already exists")

// CreateSession inserts a new session in the transcribed state. Input
// validation happens in the service layer; this enforces uniqueness only.
func (g *Gateway) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*SessionView, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := g.client.TherapySession.Create().
		SetID(req.SessionID).
		SetPatientID(req.PatientID).
		SetTherapistID(req.TherapistID).
		SetSessionTs(req.SessionTS).
		SetDurationSec(req.DurationSec).
		SetTranscript(req.Transcript).
		SetTherapistLabel(req.TherapistLabel).
		SetStatus(therapysession.StatusTranscribed).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return viewFromEnt(row, nil), nil
}

// PriorSessionSummaries returns clinician summaries from the patient's most
// recent earlier analyzed sessions, oldest first. Longitudinal context for
// the deep analysis; sessions without a topics artifact have no summary and
// are skipped.
func (g *Gateway) PriorSessionSummaries(ctx context.Context, patientID string, before time.Time, limit int) ([]string, error) {
	rows, err := g.client.TherapySession.Query().
		Where(
			therapysession.PatientIDEQ(patientID),
			therapysession.SessionTsLT(before),
			therapysession.TopicsNotNil(),
			therapysession.DeletedAtIsNil(),
		).
		Order(ent.Desc(therapysession.FieldSessionTs)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior sessions: %w", err)
	}

	summaries := make([]string, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Topics != nil && rows[i].Topics.Summary != "" {
			summaries = append(summaries, rows[i].Topics.Summary)
		}
	}
	return summaries, nil
}

// ListSessions returns a filtered, paginated listing for dashboards.
func (g *Gateway) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := g.client.TherapySession.Query().
		Where(therapysession.DeletedAtIsNil())

	if filters.Status != "" {
		query = query.Where(therapysession.StatusEQ(therapysession.Status(filters.Status)))
	}
	if filters.PatientID != "" {
		query = query.Where(therapysession.PatientIDEQ(filters.PatientID))
	}
	if filters.TherapistID != "" {
		query = query.Where(therapysession.TherapistIDEQ(filters.TherapistID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(therapysession.FieldSessionTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]models.SessionSummary, 0, len(rows))
	for _, row := range rows {
		summary := models.SessionSummary{
			SessionID:   row.ID,
			PatientID:   row.PatientID,
			TherapistID: row.TherapistID,
			SessionTS:   row.SessionTs,
			Status:      string(row.Status),
			CostUSD:     row.CostUsd,
			CreatedAt:   row.CreatedAt,
			CompletedAt: row.CompletedAt,
		}
		if row.Mood != nil {
			score := row.Mood.Score
			summary.MoodScore = &score
		}
		sessions = append(sessions, summary)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
