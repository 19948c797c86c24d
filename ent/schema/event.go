package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds persisted progress events for WebSocket catchup. IDs are
// serial so "everything after last_event_id" is a range query.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("e.g. 'session:abc-123'"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", RefinementSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
