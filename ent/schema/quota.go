package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quota persists the free-action counter per platform user, so the
// complimentary allowance survives restarts. It is local to this machine;
// the same account on another device gets its own counter.
type Quota struct {
	ent.Schema
}

func (Quota) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Int("free_used").
			Default(0).
			NonNegative(),
	}
}

func (Quota) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
