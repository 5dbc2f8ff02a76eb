package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one model API call, success or failure. The
// `prepcli llm stats` command aggregates these into per-model token and
// cost totals.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Default("").
			Comment("Client-generated correlation id for the call"),
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini"),
		field.String("model").
			Comment("Model id that served the request"),
		field.String("purpose").
			Comment("Assist track the call was made for: explanation, example"),
		field.Int("input_tokens").
			Default(0).
			Comment("Tokens in the prompt"),
		field.Int("output_tokens").
			Default(0).
			Comment("Tokens in the completion"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success").
			Comment("Whether the call returned usable content"),
		field.String("error_message").
			Default("").
			Comment("Error text for failed calls"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
