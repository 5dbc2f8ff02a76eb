// Code generated by ent, DO NOT EDIT.

package quota

import (
	"entgo.io/ent/dialect/sql"
	"github.com/obinna/prepcli/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Quota {
	return predicate.Quota(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Quota {
	return predicate.Quota(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Quota {
	return predicate.Quota(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Quota {
	return predicate.Quota(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Quota {
	return predicate.Quota(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Quota {
	return predicate.Quota(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Quota {
	return predicate.Quota(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldUserID, v))
}

// FreeUsed applies equality check predicate on the "free_used" field. It's identical to FreeUsedEQ.
func FreeUsed(v int) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldFreeUsed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Quota {
	return predicate.Quota(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Quota {
	return predicate.Quota(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Quota {
	return predicate.Quota(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Quota {
	return predicate.Quota(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Quota {
	return predicate.Quota(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Quota {
	return predicate.Quota(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Quota {
	return predicate.Quota(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Quota {
	return predicate.Quota(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Quota {
	return predicate.Quota(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Quota {
	return predicate.Quota(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Quota {
	return predicate.Quota(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Quota {
	return predicate.Quota(sql.FieldContainsFold(FieldUserID, v))
}

// FreeUsedEQ applies the EQ predicate on the "free_used" field.
func FreeUsedEQ(v int) predicate.Quota {
	return predicate.Quota(sql.FieldEQ(FieldFreeUsed, v))
}

// FreeUsedNEQ applies the NEQ predicate on the "free_used" field.
func FreeUsedNEQ(v int) predicate.Quota {
	return predicate.Quota(sql.FieldNEQ(FieldFreeUsed, v))
}

// FreeUsedIn applies the In predicate on the "free_used" field.
func FreeUsedIn(vs ...int) predicate.Quota {
	return predicate.Quota(sql.FieldIn(FieldFreeUsed, vs...))
}

// FreeUsedNotIn applies the NotIn predicate on the "free_used" field.
func FreeUsedNotIn(vs ...int) predicate.Quota {
	return predicate.Quota(sql.FieldNotIn(FieldFreeUsed, vs...))
}

// FreeUsedGT applies the GT predicate on the "free_used" field.
func FreeUsedGT(v int) predicate.Quota {
	return predicate.Quota(sql.FieldGT(FieldFreeUsed, v))
}

// FreeUsedGTE applies the GTE predicate on the "free_used" field.
func FreeUsedGTE(v int) predicate.Quota {
	return predicate.Quota(sql.FieldGTE(FieldFreeUsed, v))
}

// FreeUsedLT applies the LT predicate on the "free_used" field.
func FreeUsedLT(v int) predicate.Quota {
	return predicate.Quota(sql.FieldLT(FieldFreeUsed, v))
}

// FreeUsedLTE applies the LTE predicate on the "free_used" field.
func FreeUsedLTE(v int) predicate.Quota {
	return predicate.Quota(sql.FieldLTE(FieldFreeUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quota) predicate.Quota {
	return predicate.Quota(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quota) predicate.Quota {
	return predicate.Quota(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quota) predicate.Quota {
	return predicate.Quota(sql.NotPredicates(p))
}
