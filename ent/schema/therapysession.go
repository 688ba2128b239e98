package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// TherapySession holds the schema definition for the TherapySession entity.
// A session is created with a diarized transcript and carries the derived
// analysis columns populated by the orchestrator.
type TherapySession struct {
	ent.Schema
}

// Fields of the TherapySession.
func (TherapySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("patient_id").
			Immutable(),
		field.String("therapist_id").
			Immutable(),
		field.Time("session_ts").
			Comment("When the therapy session took place"),
		field.Int("duration_sec").
			Comment("Recorded session length in seconds"),
		field.JSON("transcript", []transcript.Segment{}).
			Comment("Speaker-diarized transcript segments, ordered by start time"),
		field.String("therapist_label").
			Optional().
			Comment("Speaker label override; empty = first-speaker convention"),
		field.Enum("status").
			Values("transcribed", "queued", "wave1_running", "wave1_complete", "wave2_running", "complete", "failed").
			Default("transcribed"),

		// Derived analysis columns. Each holds the current artifact for its
		// kind; history lives in analysis_artifacts.
		field.JSON("mood", &models.MoodResult{}).
			Optional(),
		field.JSON("topics", &models.TopicsResult{}).
			Optional(),
		field.JSON("action_summary", &models.ActionSummaryResult{}).
			Optional(),
		field.JSON("breakthrough", &models.BreakthroughResult{}).
			Optional(),
		field.JSON("deep", &models.DeepResult{}).
			Optional(),

		field.JSON("retry_request", &models.RetryRequest{}).
			Optional().
			Comment("Pending explicit retry/rerun, consumed by the claiming worker"),
		field.Float("cost_usd").
			Default(0).
			Comment("Accumulated LLM spend across all analyzer calls"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session for analysis"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the TherapySession.
func (TherapySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("artifacts", AnalysisArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analysis_logs", AnalysisLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_events", AuditEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TherapySession.
func (TherapySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("patient_id"),
		index.Fields("therapist_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
