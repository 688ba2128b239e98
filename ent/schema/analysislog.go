package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisLog holds the schema definition for the AnalysisLog entity.
// One row per analyzer attempt; drives retry selection and observability.
type AnalysisLog struct {
	ent.Schema
}

// Fields of the AnalysisLog.
func (AnalysisLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("kind").
			Comment("Analyzer kind or wave marker (e.g. 'mood', 'wave1')"),
		field.Enum("status").
			Values("started", "completed", "failed"),
		field.Int("attempt").
			Default(1),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_class").
			Optional().
			Comment("Failure class of a failed attempt (transient, schema, config)"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
	}
}

// Edges of the AnalysisLog.
func (AnalysisLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", TherapySession.Type).
			Ref("analysis_logs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnalysisLog.
func (AnalysisLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "kind", "started_at"),
		index.Fields("session_id", "status"),
	}
}
