// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/chargeevent"
)

// ChargeEventCreate is the builder for creating a ChargeEvent entity.
type ChargeEventCreate struct {
	config
	mutation *ChargeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChargeEventCreate) SetSequence(v int64) *ChargeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChargeEventCreate) SetTimestamp(v time.Time) *ChargeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChargeEventCreate) SetNillableTimestamp(v *time.Time) *ChargeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChargeEventCreate) SetUserID(v string) *ChargeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ChargeEventCreate) SetAction(v string) *ChargeEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChargeEventCreate) SetDescription(v string) *ChargeEventCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ChargeEventCreate) SetNillableDescription(v *string) *ChargeEventCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ChargeEventCreate) SetAmount(v int) *ChargeEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ChargeEventCreate) SetOutcome(v string) *ChargeEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ChargeEventCreate) SetReason(v string) *ChargeEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ChargeEventCreate) SetNillableReason(v *string) *ChargeEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *ChargeEventCreate) SetBalanceAfter(v int) *ChargeEventCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_c *ChargeEventCreate) SetNillableBalanceAfter(v *int) *ChargeEventCreate {
	if v != nil {
		_c.SetBalanceAfter(*v)
	}
	return _c
}

// Mutation returns the ChargeEventMutation object of the builder.
func (_c *ChargeEventCreate) Mutation() *ChargeEventMutation {
	return _c.mutation
}

// Save creates the ChargeEvent in the database.
func (_c *ChargeEventCreate) Save(ctx context.Context) (*ChargeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChargeEventCreate) SaveX(ctx context.Context) *ChargeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChargeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChargeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChargeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chargeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := chargeevent.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := chargeevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		v := chargeevent.DefaultBalanceAfter
		_c.mutation.SetBalanceAfter(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChargeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChargeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChargeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChargeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := chargeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ChargeEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := chargeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ChargeEvent.description"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ChargeEvent.amount"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ChargeEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := chargeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ChargeEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ChargeEvent.reason"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "ChargeEvent.balance_after"`)}
	}
	return nil
}

func (_c *ChargeEventCreate) sqlSave(ctx context.Context) (*ChargeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChargeEventCreate) createSpec() (*ChargeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChargeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chargeevent.Table, sqlgraph.NewFieldSpec(chargeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(chargeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chargeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chargeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(chargeevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(chargeevent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(chargeevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(chargeevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(chargeevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(chargeevent.FieldBalanceAfter, field.TypeInt, value)
		_node.BalanceAfter = value
	}
	return _node, _spec
}

// ChargeEventCreateBulk is the builder for creating many ChargeEvent entities in bulk.
type ChargeEventCreateBulk struct {
	config
	err      error
	builders []*ChargeEventCreate
}

// Save creates the ChargeEvent entities in the database.
func (_c *ChargeEventCreateBulk) Save(ctx context.Context) ([]*ChargeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChargeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChargeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChargeEventCreateBulk) SaveX(ctx context.Context) []*ChargeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChargeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChargeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
