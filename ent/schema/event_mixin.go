package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every append-only event table: charges,
// session lifecycle, assist usage, submissions and LLM requests. The
// sequence gives all events one total order across tables, which is
// what lets the stats queries interleave them.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global position in the event log, across all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// sequence is already indexed through its unique constraint.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
