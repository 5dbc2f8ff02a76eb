// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/assistevent"
	"github.com/obinna/prepcli/ent/predicate"
)

// AssistEventUpdate is the builder for updating AssistEvent entities.
type AssistEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssistEventMutation
}

// Where appends a list predicates to the AssistEventUpdate builder.
func (_u *AssistEventUpdate) Where(ps ...predicate.AssistEvent) *AssistEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssistEventUpdate) SetSessionID(v string) *AssistEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableSessionID(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AssistEventUpdate) SetTrack(v string) *AssistEventUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableTrack(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AssistEventUpdate) SetQuestionIndex(v int) *AssistEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableQuestionIndex(v *int) *AssistEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AssistEventUpdate) AddQuestionIndex(v int) *AssistEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AssistEventUpdate) SetQuestionID(v string) *AssistEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableQuestionID(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *AssistEventUpdate) SetFallback(v bool) *AssistEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableFallback(v *bool) *AssistEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the AssistEventMutation object of the builder.
func (_u *AssistEventUpdate) Mutation() *AssistEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssistEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssistEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assistevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := assistevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.track": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistevent.Table, assistevent.Columns, sqlgraph.NewFieldSpec(assistevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assistevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(assistevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(assistevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(assistevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(assistevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(assistevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssistEventUpdateOne is the builder for updating a single AssistEvent entity.
type AssistEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssistEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssistEventUpdateOne) SetSessionID(v string) *AssistEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableSessionID(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AssistEventUpdateOne) SetTrack(v string) *AssistEventUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableTrack(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AssistEventUpdateOne) SetQuestionIndex(v int) *AssistEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableQuestionIndex(v *int) *AssistEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AssistEventUpdateOne) AddQuestionIndex(v int) *AssistEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AssistEventUpdateOne) SetQuestionID(v string) *AssistEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableQuestionID(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *AssistEventUpdateOne) SetFallback(v bool) *AssistEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableFallback(v *bool) *AssistEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the AssistEventMutation object of the builder.
func (_u *AssistEventUpdateOne) Mutation() *AssistEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssistEventUpdate builder.
func (_u *AssistEventUpdateOne) Where(ps ...predicate.AssistEvent) *AssistEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssistEventUpdateOne) Select(field string, fields ...string) *AssistEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssistEvent entity.
func (_u *AssistEventUpdateOne) Save(ctx context.Context) (*AssistEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistEventUpdateOne) SaveX(ctx context.Context) *AssistEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssistEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assistevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := assistevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.track": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistEventUpdateOne) sqlSave(ctx context.Context) (_node *AssistEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistevent.Table, assistevent.Columns, sqlgraph.NewFieldSpec(assistevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssistEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assistevent.FieldID)
		for _, f := range fields {
			if !assistevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assistevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assistevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(assistevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(assistevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(assistevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(assistevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(assistevent.FieldFallback, field.TypeBool, value)
	}
	_node = &AssistEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
