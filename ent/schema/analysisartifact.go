package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisArtifact holds the schema definition for the AnalysisArtifact
// entity. Artifacts are append-only: a rerun marks the prior row superseded
// instead of updating it, so at most one non-superseded row exists per
// (session, kind).
type AnalysisArtifact struct {
	ent.Schema
}

// Fields of the AnalysisArtifact.
func (AnalysisArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("kind").
			Values("mood", "topics", "action_summary", "breakthrough", "deep").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Validated analyzer output"),
		field.Float("confidence"),
		field.String("model_id"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Time("produced_at").
			Default(time.Now).
			Immutable(),
		field.Bool("superseded").
			Default(false),
	}
}

// Edges of the AnalysisArtifact.
func (AnalysisArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", TherapySession.Type).
			Ref("artifacts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnalysisArtifact.
func (AnalysisArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "kind", "produced_at"),
		// One current artifact per (session, kind).
		index.Fields("session_id", "kind").
			Unique().
			Annotations(entsql.IndexWhere("NOT superseded")),
	}
}
