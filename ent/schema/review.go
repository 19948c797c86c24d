package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Review holds one reviewer's structured review of one document
// version.
type Review struct {
	ent.Schema
}

// Fields of the Review.
func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("iteration").
			Immutable().
			Comment("1-based iteration the review belongs to"),
		field.Int("document_version").
			Immutable().
			Comment("Version that was reviewed"),
		field.String("reviewer_name").
			Immutable(),
		field.String("model").
			Optional().
			Immutable(),
		field.JSON("issues", []map[string]interface{}{}).
			Comment("Structured issue list"),
		field.Text("overall_assessment").
			Optional(),
		field.Int("high_count").
			Default(0),
		field.Int("medium_count").
			Default(0),
		field.Int("low_count").
			Default(0),
		field.Bool("salvaged").
			Default(false).
			Comment("Output needed a reformat round-trip"),
		field.JSON("tokens", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Review.
func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", RefinementSession.Type).
			Ref("reviews").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Review.
func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "iteration"),
		index.Fields("session_id", "document_version"),
	}
}
