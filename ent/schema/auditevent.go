package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Append-only mirror of the structured audit trail the orchestrator emits to
// the line sink. Ordering within a session is carried by seq.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("component").
			Comment("Emitting component (e.g. 'orchestrator', 'analyzer.mood')"),
		field.Enum("event").
			Values("START", "CONTEXT_BUILT", "CALL_BEGIN", "CALL_END", "VERSION_SAVE", "COMPLETE", "FAILED").
			Immutable(),
		field.String("wave").
			Optional(),
		field.Int("attempt").
			Default(0),
		field.Int64("seq").
			Comment("Monotonic per session within a run"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditEvent.
func (AuditEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", TherapySession.Type).
			Ref("audit_events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq"),
		index.Fields("session_id", "created_at"),
	}
}
