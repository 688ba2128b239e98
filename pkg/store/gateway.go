// Package store implements the session store gateway: the single owner of
// the session row and its derived analysis columns. All other components
// read through it and mutate only via its typed operations.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evolvedtroglodyte/therabridge/ent"
	"github.com/evolvedtroglodyte/therabridge/ent/analysisartifact"
	"github.com/evolvedtroglodyte/therabridge/ent/analysislog"
	"github.com/evolvedtroglodyte/therabridge/ent/auditevent"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/auditlog"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

// writeTimeout bounds critical writes issued on background contexts.
const writeTimeout = 10 * time.Second

// Gateway is the ent-backed session store gateway.
type Gateway struct {
	client *ent.Client
}

// New creates a Gateway.
func New(client *ent.Client) *Gateway {
	return &Gateway{client: client}
}

// Load returns the composed session view: current artifacts, status,
// transcript, and per-kind attempt history. Reads are not locked.
func (g *Gateway) Load(ctx context.Context, sessionID string) (*SessionView, error) {
	row, err := g.client.TherapySession.Query().
		Where(
			therapysession.IDEQ(sessionID),
			therapysession.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	logs, err := g.client.AnalysisLog.Query().
		Where(analysislog.SessionIDEQ(sessionID)).
		Order(ent.Asc(analysislog.FieldStartedAt), ent.Asc(analysislog.FieldAttempt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis logs: %w", err)
	}

	return viewFromEnt(row, logs), nil
}

// ArtifactWrite is the typed update submitted for one completed analysis.
type ArtifactWrite struct {
	Kind             models.Kind
	Payload          interface{} // the models.*Result for the kind
	Confidence       float64
	ModelID          string
	PromptTokens     int
	CompletionTokens int
	CostUSD          float64
	ProducedAt       time.Time
	Attempt          int
	DurationMS       int
}

// WriteArtifact persists one analysis result: the artifact-history row, the
// derived session column, the cost increment, and the `completed` log row —
// all in one transaction. The session row is locked for the duration, which
// serializes mutations per session.
//
// Any current artifact of the same kind is superseded before the insert, so
// a second write of a kind versions it; ErrDuplicateArtifact is returned
// only when the insert still violates the one-current-artifact constraint.
// Writes against a completed session return ErrTerminalState.
func (g *Gateway) WriteArtifact(ctx context.Context, sessionID string, write ArtifactWrite) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := g.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.TherapySession.Query().
		Where(therapysession.IDEQ(sessionID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock session: %w", err)
	}
	if row.Status == therapysession.StatusComplete {
		return ErrTerminalState
	}

	// Supersede any prior artifact of this kind (force reruns).
	if _, err := tx.AnalysisArtifact.Update().
		Where(
			analysisartifact.SessionIDEQ(sessionID),
			analysisartifact.KindEQ(analysisartifact.Kind(write.Kind)),
			analysisartifact.SupersededEQ(false),
		).
		SetSuperseded(true).
		Save(writeCtx); err != nil {
		return fmt.Errorf("failed to supersede prior artifact: %w", err)
	}

	payloadMap, err := payloadToMap(write.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode artifact payload: %w", err)
	}

	_, err = tx.AnalysisArtifact.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetKind(analysisartifact.Kind(write.Kind)).
		SetPayload(payloadMap).
		SetConfidence(write.Confidence).
		SetModelID(write.ModelID).
		SetPromptTokens(write.PromptTokens).
		SetCompletionTokens(write.CompletionTokens).
		SetCostUsd(write.CostUSD).
		SetProducedAt(write.ProducedAt).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateArtifact
		}
		return fmt.Errorf("failed to insert artifact: %w", err)
	}

	update := tx.TherapySession.UpdateOneID(sessionID).
		AddCostUsd(write.CostUSD).
		SetLastInteractionAt(time.Now())
	if err := applyDerivedColumn(update, write); err != nil {
		return err
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update derived columns: %w", err)
	}

	started := write.ProducedAt.Add(-time.Duration(write.DurationMS) * time.Millisecond)
	_, err = tx.AnalysisLog.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetKind(string(write.Kind)).
		SetStatus(analysislog.StatusCompleted).
		SetAttempt(write.Attempt).
		SetStartedAt(started).
		SetEndedAt(write.ProducedAt).
		SetDurationMs(write.DurationMS).
		SetPromptTokens(write.PromptTokens).
		SetCompletionTokens(write.CompletionTokens).
		SetCostUsd(write.CostUSD).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to insert completed log row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit artifact write: %w", err)
	}
	return nil
}

// SetStatus advances the session state machine with optimistic concurrency:
// the update applies only when the current status equals expectedPrev.
func (g *Gateway) SetStatus(ctx context.Context, sessionID string, newStatus, expectedPrev therapysession.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := g.client.TherapySession.Update().
		Where(
			therapysession.IDEQ(sessionID),
			therapysession.StatusEQ(expectedPrev),
		).
		SetStatus(newStatus).
		SetLastInteractionAt(time.Now())

	switch newStatus {
	case therapysession.StatusWave1Running:
		update = update.SetStartedAt(time.Now()).ClearErrorMessage().ClearCompletedAt()
	case therapysession.StatusComplete, therapysession.StatusFailed:
		update = update.SetCompletedAt(time.Now())
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	if count == 0 {
		// Distinguish a missing session from a lost race.
		exists, err := g.client.TherapySession.Query().
			Where(therapysession.IDEQ(sessionID)).
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

// SetFailure records the aggregated error message on a failed session.
func (g *Gateway) SetFailure(ctx context.Context, sessionID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := g.client.TherapySession.UpdateOneID(sessionID).
		SetErrorMessage(message).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set failure message: %w", err)
	}
	return nil
}

// LogWrite records a started or failed analyzer attempt.
type LogWrite struct {
	Kind             models.Kind
	Status           analysislog.Status
	Attempt          int
	Error            string
	ErrorClass       string
	StartedAt        time.Time
	DurationMS       int
	PromptTokens     int
	CompletionTokens int
	CostUSD          float64
}

// RecordLog appends one attempt row. Failed attempts that consumed tokens
// still increment the session cost so cost_usd stays the sum of per-call
// costs in the log.
func (g *Gateway) RecordLog(ctx context.Context, sessionID string, write LogWrite) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := g.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.AnalysisLog.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetKind(string(write.Kind)).
		SetStatus(write.Status).
		SetAttempt(write.Attempt).
		SetStartedAt(write.StartedAt).
		SetPromptTokens(write.PromptTokens).
		SetCompletionTokens(write.CompletionTokens).
		SetCostUsd(write.CostUSD)
	if write.Error != "" {
		builder = builder.SetErrorMessage(write.Error)
	}
	if write.ErrorClass != "" {
		builder = builder.SetErrorClass(write.ErrorClass)
	}
	if write.Status != analysislog.StatusStarted {
		builder = builder.
			SetEndedAt(write.StartedAt.Add(time.Duration(write.DurationMS) * time.Millisecond)).
			SetDurationMs(write.DurationMS)
	}
	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to insert log row: %w", err)
	}

	if write.CostUSD != 0 {
		if err := tx.TherapySession.UpdateOneID(sessionID).
			AddCostUsd(write.CostUSD).
			Exec(writeCtx); err != nil {
			return fmt.Errorf("failed to add session cost: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit log write: %w", err)
	}
	return nil
}

// InsertAuditEvent implements auditlog.RowSink.
func (g *Gateway) InsertAuditEvent(ctx context.Context, entry auditlog.Entry, seq int64, at time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := g.client.AuditEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(entry.SessionID).
		SetComponent(entry.Component).
		SetEvent(auditevent.Event(entry.Event)).
		SetWave(entry.Wave).
		SetAttempt(entry.Attempt).
		SetSeq(seq).
		SetCreatedAt(at)
	if entry.Payload != nil {
		builder = builder.SetPayload(entry.Payload)
	}
	return builder.Exec(writeCtx)
}

// payloadToMap converts a typed payload into the JSON map stored on the
// artifact-history row.
func payloadToMap(payload interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// applyDerivedColumn sets the session column matching the artifact kind.
func applyDerivedColumn(update *ent.TherapySessionUpdateOne, write ArtifactWrite) error {
	switch write.Kind {
	case models.KindMood:
		payload, ok := write.Payload.(*models.MoodResult)
		if !ok {
			return fmt.Errorf("mood artifact payload has type %T", write.Payload)
		}
		update.SetMood(payload)
	case models.KindTopics:
		payload, ok := write.Payload.(*models.TopicsResult)
		if !ok {
			return fmt.Errorf("topics artifact payload has type %T", write.Payload)
		}
		update.SetTopics(payload)
	case models.KindActionSummary:
		payload, ok := write.Payload.(*models.ActionSummaryResult)
		if !ok {
			return fmt.Errorf("action summary artifact payload has type %T", write.Payload)
		}
		update.SetActionSummary(payload)
	case models.KindBreakthrough:
		payload, ok := write.Payload.(*models.BreakthroughResult)
		if !ok {
			return fmt.Errorf("breakthrough artifact payload has type %T", write.Payload)
		}
		update.SetBreakthrough(payload)
	case models.KindDeep:
		payload, ok := write.Payload.(*models.DeepResult)
		if !ok {
			return fmt.Errorf("deep artifact payload has type %T", write.Payload)
		}
		update.SetDeep(payload)
	default:
		return fmt.Errorf("unknown artifact kind %q", write.Kind)
	}
	return nil
}
