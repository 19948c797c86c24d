package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentVersion holds one immutable version of a session's document.
// Version 1 is the submitted original; each moderator rewrite appends
// the next version. Rows are never updated.
type DocumentVersion struct {
	ent.Schema
}

// Fields of the DocumentVersion.
func (DocumentVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("1-based, dense per session"),
		field.String("title").
			Immutable(),
		field.String("document_type").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Int("produced_from_version").
			Immutable().
			Comment("0 for the submitted original"),
		field.Int("length_chars").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentVersion.
func (DocumentVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", RefinementSession.Type).
			Ref("versions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DocumentVersion.
func (DocumentVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "version").
			Unique(),
	}
}
