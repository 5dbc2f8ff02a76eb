// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/assistevent"
)

// AssistEventCreate is the builder for creating a AssistEvent entity.
type AssistEventCreate struct {
	config
	mutation *AssistEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssistEventCreate) SetSequence(v int64) *AssistEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssistEventCreate) SetTimestamp(v time.Time) *AssistEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssistEventCreate) SetNillableTimestamp(v *time.Time) *AssistEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssistEventCreate) SetSessionID(v string) *AssistEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *AssistEventCreate) SetTrack(v string) *AssistEventCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *AssistEventCreate) SetQuestionIndex(v int) *AssistEventCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AssistEventCreate) SetQuestionID(v string) *AssistEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *AssistEventCreate) SetNillableQuestionID(v *string) *AssistEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *AssistEventCreate) SetFallback(v bool) *AssistEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *AssistEventCreate) SetNillableFallback(v *bool) *AssistEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the AssistEventMutation object of the builder.
func (_c *AssistEventCreate) Mutation() *AssistEventMutation {
	return _c.mutation
}

// Save creates the AssistEvent in the database.
func (_c *AssistEventCreate) Save(ctx context.Context) (*AssistEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssistEventCreate) SaveX(ctx context.Context) *AssistEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssistEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assistevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := assistevent.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := assistevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssistEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssistEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssistEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssistEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assistevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "AssistEvent.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := assistevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "AssistEvent.question_index"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AssistEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "AssistEvent.fallback"`)}
	}
	return nil
}

func (_c *AssistEventCreate) sqlSave(ctx context.Context) (*AssistEvent, error) {
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

func (_c *AssistEventCreate) createSpec() (*AssistEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssistEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assistevent.Table, sqlgraph.NewFieldSpec(assistevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assistevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assistevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assistevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(assistevent.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(assistevent.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(assistevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(assistevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// AssistEventCreateBulk is the builder for creating many AssistEvent entities in bulk.
type AssistEventCreateBulk struct {
	config
	err      error
	builders []*AssistEventCreate
}

// Save creates the AssistEvent entities in the database.
func (_c *AssistEventCreateBulk) Save(ctx context.Context) ([]*AssistEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssistEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssistEventMutation)
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
func (_c *AssistEventCreateBulk) SaveX(ctx context.Context) []*AssistEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
