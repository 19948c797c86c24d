package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IterationRecord holds the outcome of one completed review iteration:
// severity totals, convergence delta and the stop decision. Written
// atomically with the iteration's reviews and output version.
type IterationRecord struct {
	ent.Schema
}

// Fields of the IterationRecord.
func (IterationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("iteration_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("iteration").
			Immutable().
			Comment("1-based, dense per session"),
		field.Int("input_version").
			Immutable(),
		field.Int("output_version").
			Default(0).
			Comment("0 when the iteration produced no rewrite"),
		field.Int("high_count").
			Default(0),
		field.Int("medium_count").
			Default(0),
		field.Int("low_count").
			Default(0),
		field.Float("delta").
			Default(-1).
			Comment("-1 before any prior rewrite exists"),
		field.Bool("should_stop").
			Default(false),
		field.Text("decision_reason").
			Optional(),
		field.String("stopped_by").
			Optional().
			Nillable(),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Default(time.Now),
	}
}

// Edges of the IterationRecord.
func (IterationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", RefinementSession.Type).
			Ref("iterations").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IterationRecord.
func (IterationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "iteration").
			Unique(),
	}
}
