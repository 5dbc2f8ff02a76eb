// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/chargeevent"
	"github.com/obinna/prepcli/ent/predicate"
)

// ChargeEventUpdate is the builder for updating ChargeEvent entities.
type ChargeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChargeEventMutation
}

// Where appends a list predicates to the ChargeEventUpdate builder.
func (_u *ChargeEventUpdate) Where(ps ...predicate.ChargeEvent) *ChargeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChargeEventUpdate) SetUserID(v string) *ChargeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableUserID(v *string) *ChargeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ChargeEventUpdate) SetAction(v string) *ChargeEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableAction(v *string) *ChargeEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChargeEventUpdate) SetDescription(v string) *ChargeEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableDescription(v *string) *ChargeEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ChargeEventUpdate) SetAmount(v int) *ChargeEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableAmount(v *int) *ChargeEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ChargeEventUpdate) AddAmount(v int) *ChargeEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ChargeEventUpdate) SetOutcome(v string) *ChargeEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableOutcome(v *string) *ChargeEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ChargeEventUpdate) SetReason(v string) *ChargeEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableReason(v *string) *ChargeEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *ChargeEventUpdate) SetBalanceAfter(v int) *ChargeEventUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *ChargeEventUpdate) SetNillableBalanceAfter(v *int) *ChargeEventUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *ChargeEventUpdate) AddBalanceAfter(v int) *ChargeEventUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// Mutation returns the ChargeEventMutation object of the builder.
func (_u *ChargeEventUpdate) Mutation() *ChargeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChargeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChargeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChargeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChargeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChargeEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := chargeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := chargeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := chargeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ChargeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chargeevent.Table, chargeevent.Columns, sqlgraph.NewFieldSpec(chargeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chargeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(chargeevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chargeevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(chargeevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(chargeevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(chargeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(chargeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(chargeevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(chargeevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chargeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChargeEventUpdateOne is the builder for updating a single ChargeEvent entity.
type ChargeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChargeEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChargeEventUpdateOne) SetUserID(v string) *ChargeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableUserID(v *string) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ChargeEventUpdateOne) SetAction(v string) *ChargeEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableAction(v *string) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChargeEventUpdateOne) SetDescription(v string) *ChargeEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableDescription(v *string) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ChargeEventUpdateOne) SetAmount(v int) *ChargeEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableAmount(v *int) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ChargeEventUpdateOne) AddAmount(v int) *ChargeEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ChargeEventUpdateOne) SetOutcome(v string) *ChargeEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableOutcome(v *string) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ChargeEventUpdateOne) SetReason(v string) *ChargeEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableReason(v *string) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *ChargeEventUpdateOne) SetBalanceAfter(v int) *ChargeEventUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *ChargeEventUpdateOne) SetNillableBalanceAfter(v *int) *ChargeEventUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *ChargeEventUpdateOne) AddBalanceAfter(v int) *ChargeEventUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// Mutation returns the ChargeEventMutation object of the builder.
func (_u *ChargeEventUpdateOne) Mutation() *ChargeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChargeEventUpdate builder.
func (_u *ChargeEventUpdateOne) Where(ps ...predicate.ChargeEvent) *ChargeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChargeEventUpdateOne) Select(field string, fields ...string) *ChargeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChargeEvent entity.
func (_u *ChargeEventUpdateOne) Save(ctx context.Context) (*ChargeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChargeEventUpdateOne) SaveX(ctx context.Context) *ChargeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChargeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChargeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChargeEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := chargeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := chargeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := chargeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ChargeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChargeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chargeevent.Table, chargeevent.Columns, sqlgraph.NewFieldSpec(chargeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChargeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chargeevent.FieldID)
		for _, f := range fields {
			if !chargeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chargeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chargeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(chargeevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chargeevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(chargeevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(chargeevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(chargeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(chargeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(chargeevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(chargeevent.FieldBalanceAfter, field.TypeInt, value)
	}
	_node = &ChargeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chargeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
