package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice-test lifecycle events (start/finish/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Remote practice-test id (or local attempt tag if creation failed)"),
		field.String("action").
			NotEmpty().
			Comment("start, finish, or abandon"),
		field.String("exam_name").
			Default(""),
		field.String("subject_name").
			Default(""),
		field.Int("question_count").
			Default(0),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on finish only)"),
		field.Float("score").
			Default(0).
			Comment("Score percentage (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
