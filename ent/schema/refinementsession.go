package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RefinementSession holds the schema definition for the
// RefinementSession entity, one row per refinement run.
type RefinementSession struct {
	ent.Schema
}

// Fields of the RefinementSession.
func (RefinementSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("goal").
			Comment("What the refinement is trying to achieve"),
		field.String("document_type").
			Comment("e.g. 'prd', 'design doc', 'business plan'"),
		field.Enum("status").
			Values("pending", "planning", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("config", map[string]interface{}{}).
			Comment("Effective session config after clamping and defaults"),
		field.JSON("participants", []map[string]interface{}{}).
			Optional().
			Comment("Planned panel, set when planning completes"),
		field.Text("moderator_focus").
			Optional(),
		field.String("planner_warning").
			Optional().
			Nillable().
			Comment("Set when the planner fell back to the generic panel"),
		field.Int("current_iteration").
			Default(0),
		field.Int("final_version").
			Optional().
			Nillable(),
		field.String("stopped_by").
			Optional().
			Nillable(),
		field.Text("convergence_reason").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("continued_from_iteration").
			Optional().
			Nillable().
			Comment("Set when the session was extended past its original cap"),
		field.JSON("tokens", map[string]interface{}{}).
			Optional().
			Comment("Per-caller token usage"),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("convergence_report", map[string]interface{}{}).
			Optional().
			Comment("Terminal report, written when the session completes"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the RefinementSession.
func (RefinementSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", DocumentVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reviews", Review.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("iterations", IterationRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RefinementSession.
func (RefinementSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_type"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
