package models

import (
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// CreateSessionRequest is the transcript hand-off from the upstream
// transcription pipeline.
type CreateSessionRequest struct {
	SessionID   string               `json:"session_id"`
	PatientID   string               `json:"patient_id"`
	TherapistID string               `json:"therapist_id"`
	SessionTS   time.Time            `json:"session_ts"`
	DurationSec int                  `json:"duration_sec"`
	Transcript  []transcript.Segment `json:"transcript"`
	// TherapistLabel optionally overrides the first-speaker-is-therapist
	// convention.
	TherapistLabel string `json:"therapist_label,omitempty"`
}

// AnalyzeRequest triggers analysis of a session. Kinds optionally restricts
// which analyzers run (retry/rerun paths).
type AnalyzeRequest struct {
	Kinds []Kind `json:"kinds,omitempty"`
}

// RetryRequest is queued alongside a session when an explicit retry or
// forced rerun is requested; the claiming worker consumes it.
type RetryRequest struct {
	// Kinds limits which kinds may re-attempt. Empty = every exhausted kind.
	Kinds []Kind `json:"kinds,omitempty"`
	// Force recomputes the listed kinds even when current artifacts exist.
	Force bool `json:"force,omitempty"`
}

// TriggerResponse is the 202 body returned by the analyze/retry/rerun
// endpoints: a handle the caller can poll.
type TriggerResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// KindState describes one analyzer kind's progress for the status endpoint.
type KindState struct {
	State      string `json:"state"` // pending, running, complete, exhausted, blocked
	RetryCount int    `json:"retry_count"`
	LastError  string `json:"last_error,omitempty"`
}

// StatusResponse is the poll surface: always renderable, even mid-failure.
type StatusResponse struct {
	SessionID string             `json:"session_id"`
	Status    string             `json:"status"`
	PerKind   map[Kind]KindState `json:"per_kind"`
	CostUSD   float64            `json:"cost_usd"`
}

// TechniqueDefinition is a catalog entry resolved for the composed view.
type TechniqueDefinition struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// SessionDetail is the composed read view: transcript plus all current
// artifacts plus the resolved technique definition, if any.
type SessionDetail struct {
	SessionID   string               `json:"session_id"`
	PatientID   string               `json:"patient_id"`
	TherapistID string               `json:"therapist_id"`
	SessionTS   time.Time            `json:"session_ts"`
	DurationSec int                  `json:"duration_sec"`
	Status      string               `json:"status"`
	Transcript  []transcript.Segment `json:"transcript"`

	Mood          *MoodResult          `json:"mood,omitempty"`
	Topics        *TopicsResult        `json:"topics,omitempty"`
	ActionSummary *ActionSummaryResult `json:"action_summary,omitempty"`
	Breakthrough  *BreakthroughResult  `json:"breakthrough,omitempty"`
	Deep          *DeepResult          `json:"deep,omitempty"`

	TechniqueDefinition *TechniqueDefinition `json:"technique_definition"`

	CostUSD     float64    `json:"cost_usd"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SessionFilters narrows session listings.
type SessionFilters struct {
	Status      string
	PatientID   string
	TherapistID string
	Limit       int
	Offset      int
}

// SessionSummary is one row in a session listing.
type SessionSummary struct {
	SessionID   string     `json:"session_id"`
	PatientID   string     `json:"patient_id"`
	TherapistID string     `json:"therapist_id"`
	SessionTS   time.Time  `json:"session_ts"`
	Status      string     `json:"status"`
	MoodScore   *float64   `json:"mood_score,omitempty"`
	CostUSD     float64    `json:"cost_usd"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SessionListResponse is a paginated listing.
type SessionListResponse struct {
	Sessions   []SessionSummary `json:"sessions"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}
