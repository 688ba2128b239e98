package store

import (
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// KindProgress summarizes one kind's attempt history for retry selection
// and the status endpoint.
type KindProgress struct {
	// FailedAttempts counts failed attempts recorded in the log.
	FailedAttempts int
	// LastError is the most recent failure message.
	LastError string
	// LastClass is the most recent failure class (transient, schema,
	// config). Schema and config failures exhaust on lower attempt caps.
	LastClass string
}

// SessionView is the gateway's read model: current artifacts, status,
// transcript, and per-kind attempt history.
type SessionView struct {
	ID             string
	PatientID      string
	TherapistID    string
	SessionTS      time.Time
	DurationSec    int
	Transcript     []transcript.Segment
	TherapistLabel string
	Status         therapysession.Status

	Mood          *models.MoodResult
	Topics        *models.TopicsResult
	ActionSummary *models.ActionSummaryResult
	Breakthrough  *models.BreakthroughResult
	Deep          *models.DeepResult

	CostUSD      float64
	ErrorMessage string
	CreatedAt    time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time

	Progress map[models.Kind]KindProgress
}

// Artifact returns the current artifact payload for a kind, or nil.
func (v *SessionView) Artifact(kind models.Kind) interface{} {
	switch kind {
	case models.KindMood:
		if v.Mood != nil {
			return v.Mood
		}
	case models.KindTopics:
		if v.Topics != nil {
			return v.Topics
		}
	case models.KindActionSummary:
		if v.ActionSummary != nil {
			return v.ActionSummary
		}
	case models.KindBreakthrough:
		if v.Breakthrough != nil {
			return v.Breakthrough
		}
	case models.KindDeep:
		if v.Deep != nil {
			return v.Deep
		}
	}
	return nil
}

// HasArtifact reports whether a current artifact exists for the kind.
func (v *SessionView) HasArtifact(kind models.Kind) bool {
	return v.Artifact(kind) != nil
}

// viewFromEnt maps the session row plus its log history into a SessionView.
func viewFromEnt(row *ent.TherapySession, logs []*ent.AnalysisLog) *SessionView {
	v := &SessionView{
		ID:             row.ID,
		PatientID:      row.PatientID,
		TherapistID:    row.TherapistID,
		SessionTS:      row.SessionTs,
		DurationSec:    row.DurationSec,
		Transcript:     row.Transcript,
		TherapistLabel: row.TherapistLabel,
		Status:         row.Status,
		Mood:           row.Mood,
		Topics:         row.Topics,
		ActionSummary:  row.ActionSummary,
		Breakthrough:   row.Breakthrough,
		Deep:           row.Deep,
		CostUSD:        row.CostUsd,
		CreatedAt:      row.CreatedAt,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		Progress:       make(map[models.Kind]KindProgress, len(models.AllKinds)),
	}
	if row.ErrorMessage != nil {
		v.ErrorMessage = *row.ErrorMessage
	}

	// Logs arrive ordered by started_at, then attempt, ascending, so the last
	// failed row per kind wins LastError.
	for _, log := range logs {
		kind := models.Kind(log.Kind)
		if !kind.Valid() || log.Status != "failed" {
			continue
		}
		progress := v.Progress[kind]
		progress.FailedAttempts++
		if log.ErrorMessage != nil {
			progress.LastError = *log.ErrorMessage
		}
		progress.LastClass = log.ErrorClass
		v.Progress[kind] = progress
	}
	return v
}
