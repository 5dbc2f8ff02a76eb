package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records the outcome of reconciling one session with the
// remote system of record: how much of it actually made it upstream.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Bool("score_saved").
			Comment("Whether the score PATCH succeeded"),
		field.Int("submissions_sent").
			Default(0).
			Comment("Per-question submissions accepted upstream"),
		field.Int("submissions_total").
			Default(0),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
