package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChargeEvent records an authorization decision for a paid action:
// a free-quota grant, a wallet debit, or a denial.
type ChargeEvent struct {
	ent.Schema
}

func (ChargeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChargeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Platform user the charge belongs to"),
		field.String("action").
			NotEmpty().
			Comment("explanation, check-answer, example, or submit"),
		field.String("description").
			Default("").
			Comment("Human-readable charge description"),
		field.Int("amount").
			Comment("Price in naira (0 when a free unit was used)"),
		field.String("outcome").
			NotEmpty().
			Comment("free, debited, or denied"),
		field.String("reason").
			Default("").
			Comment("Denial reason, empty otherwise"),
		field.Int("balance_after").
			Default(0).
			Comment("Cached wallet balance after the decision"),
	}
}

func (ChargeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("action"),
		index.Fields("outcome"),
	}
}
