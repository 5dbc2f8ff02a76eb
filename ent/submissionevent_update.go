// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/predicate"
	"github.com/obinna/prepcli/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdate) SetSessionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSessionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScoreSaved sets the "score_saved" field.
func (_u *SubmissionEventUpdate) SetScoreSaved(v bool) *SubmissionEventUpdate {
	_u.mutation.SetScoreSaved(v)
	return _u
}

// SetNillableScoreSaved sets the "score_saved" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableScoreSaved(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetScoreSaved(*v)
	}
	return _u
}

// SetSubmissionsSent sets the "submissions_sent" field.
func (_u *SubmissionEventUpdate) SetSubmissionsSent(v int) *SubmissionEventUpdate {
	_u.mutation.ResetSubmissionsSent()
	_u.mutation.SetSubmissionsSent(v)
	return _u
}

// SetNillableSubmissionsSent sets the "submissions_sent" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSubmissionsSent(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSubmissionsSent(*v)
	}
	return _u
}

// AddSubmissionsSent adds value to the "submissions_sent" field.
func (_u *SubmissionEventUpdate) AddSubmissionsSent(v int) *SubmissionEventUpdate {
	_u.mutation.AddSubmissionsSent(v)
	return _u
}

// SetSubmissionsTotal sets the "submissions_total" field.
func (_u *SubmissionEventUpdate) SetSubmissionsTotal(v int) *SubmissionEventUpdate {
	_u.mutation.ResetSubmissionsTotal()
	_u.mutation.SetSubmissionsTotal(v)
	return _u
}

// SetNillableSubmissionsTotal sets the "submissions_total" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSubmissionsTotal(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSubmissionsTotal(*v)
	}
	return _u
}

// AddSubmissionsTotal adds value to the "submissions_total" field.
func (_u *SubmissionEventUpdate) AddSubmissionsTotal(v int) *SubmissionEventUpdate {
	_u.mutation.AddSubmissionsTotal(v)
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreSaved(); ok {
		_spec.SetField(submissionevent.FieldScoreSaved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmissionsSent(); ok {
		_spec.SetField(submissionevent.FieldSubmissionsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionsSent(); ok {
		_spec.AddField(submissionevent.FieldSubmissionsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmissionsTotal(); ok {
		_spec.SetField(submissionevent.FieldSubmissionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionsTotal(); ok {
		_spec.AddField(submissionevent.FieldSubmissionsTotal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdateOne) SetSessionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSessionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScoreSaved sets the "score_saved" field.
func (_u *SubmissionEventUpdateOne) SetScoreSaved(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetScoreSaved(v)
	return _u
}

// SetNillableScoreSaved sets the "score_saved" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableScoreSaved(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetScoreSaved(*v)
	}
	return _u
}

// SetSubmissionsSent sets the "submissions_sent" field.
func (_u *SubmissionEventUpdateOne) SetSubmissionsSent(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetSubmissionsSent()
	_u.mutation.SetSubmissionsSent(v)
	return _u
}

// SetNillableSubmissionsSent sets the "submissions_sent" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSubmissionsSent(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSubmissionsSent(*v)
	}
	return _u
}

// AddSubmissionsSent adds value to the "submissions_sent" field.
func (_u *SubmissionEventUpdateOne) AddSubmissionsSent(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddSubmissionsSent(v)
	return _u
}

// SetSubmissionsTotal sets the "submissions_total" field.
func (_u *SubmissionEventUpdateOne) SetSubmissionsTotal(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetSubmissionsTotal()
	_u.mutation.SetSubmissionsTotal(v)
	return _u
}

// SetNillableSubmissionsTotal sets the "submissions_total" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSubmissionsTotal(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSubmissionsTotal(*v)
	}
	return _u
}

// AddSubmissionsTotal adds value to the "submissions_total" field.
func (_u *SubmissionEventUpdateOne) AddSubmissionsTotal(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddSubmissionsTotal(v)
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreSaved(); ok {
		_spec.SetField(submissionevent.FieldScoreSaved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmissionsSent(); ok {
		_spec.SetField(submissionevent.FieldSubmissionsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionsSent(); ok {
		_spec.AddField(submissionevent.FieldSubmissionsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmissionsTotal(); ok {
		_spec.SetField(submissionevent.FieldSubmissionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionsTotal(); ok {
		_spec.AddField(submissionevent.FieldSubmissionsTotal, field.TypeInt, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
