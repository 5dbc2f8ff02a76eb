package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssistEvent records one use of a paid assist track on a question.
type AssistEvent struct {
	ent.Schema
}

func (AssistEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssistEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("track").
			NotEmpty().
			Comment("explanation, check-answer, or example"),
		field.Int("question_index").
			Comment("Position of the question within the session"),
		field.String("question_id").
			Default(""),
		field.Bool("fallback").
			Default(false).
			Comment("True when the fallback payload was synthesized"),
	}
}

func (AssistEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("track"),
	}
}
