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
	"github.com/obinna/prepcli/ent/quota"
)

// QuotaUpdate is the builder for updating Quota entities.
type QuotaUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaMutation
}

// Where appends a list predicates to the QuotaUpdate builder.
func (_u *QuotaUpdate) Where(ps ...predicate.Quota) *QuotaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuotaUpdate) SetUserID(v string) *QuotaUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuotaUpdate) SetNillableUserID(v *string) *QuotaUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFreeUsed sets the "free_used" field.
func (_u *QuotaUpdate) SetFreeUsed(v int) *QuotaUpdate {
	_u.mutation.ResetFreeUsed()
	_u.mutation.SetFreeUsed(v)
	return _u
}

// SetNillableFreeUsed sets the "free_used" field if the given value is not nil.
func (_u *QuotaUpdate) SetNillableFreeUsed(v *int) *QuotaUpdate {
	if v != nil {
		_u.SetFreeUsed(*v)
	}
	return _u
}

// AddFreeUsed adds value to the "free_used" field.
func (_u *QuotaUpdate) AddFreeUsed(v int) *QuotaUpdate {
	_u.mutation.AddFreeUsed(v)
	return _u
}

// Mutation returns the QuotaMutation object of the builder.
func (_u *QuotaUpdate) Mutation() *QuotaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quota.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Quota.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreeUsed(); ok {
		if err := quota.FreeUsedValidator(v); err != nil {
			return &ValidationError{Name: "free_used", err: fmt.Errorf(`ent: validator failed for field "Quota.free_used": %w`, err)}
		}
	}
	return nil
}

func (_u *QuotaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quota.Table, quota.Columns, sqlgraph.NewFieldSpec(quota.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quota.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FreeUsed(); ok {
		_spec.SetField(quota.FieldFreeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFreeUsed(); ok {
		_spec.AddField(quota.FieldFreeUsed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quota.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaUpdateOne is the builder for updating a single Quota entity.
type QuotaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuotaUpdateOne) SetUserID(v string) *QuotaUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuotaUpdateOne) SetNillableUserID(v *string) *QuotaUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFreeUsed sets the "free_used" field.
func (_u *QuotaUpdateOne) SetFreeUsed(v int) *QuotaUpdateOne {
	_u.mutation.ResetFreeUsed()
	_u.mutation.SetFreeUsed(v)
	return _u
}

// SetNillableFreeUsed sets the "free_used" field if the given value is not nil.
func (_u *QuotaUpdateOne) SetNillableFreeUsed(v *int) *QuotaUpdateOne {
	if v != nil {
		_u.SetFreeUsed(*v)
	}
	return _u
}

// AddFreeUsed adds value to the "free_used" field.
func (_u *QuotaUpdateOne) AddFreeUsed(v int) *QuotaUpdateOne {
	_u.mutation.AddFreeUsed(v)
	return _u
}

// Mutation returns the QuotaMutation object of the builder.
func (_u *QuotaUpdateOne) Mutation() *QuotaMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaUpdate builder.
func (_u *QuotaUpdateOne) Where(ps ...predicate.Quota) *QuotaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaUpdateOne) Select(field string, fields ...string) *QuotaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quota entity.
func (_u *QuotaUpdateOne) Save(ctx context.Context) (*Quota, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUpdateOne) SaveX(ctx context.Context) *Quota {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quota.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Quota.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreeUsed(); ok {
		if err := quota.FreeUsedValidator(v); err != nil {
			return &ValidationError{Name: "free_used", err: fmt.Errorf(`ent: validator failed for field "Quota.free_used": %w`, err)}
		}
	}
	return nil
}

func (_u *QuotaUpdateOne) sqlSave(ctx context.Context) (_node *Quota, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quota.Table, quota.Columns, sqlgraph.NewFieldSpec(quota.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quota.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quota.FieldID)
		for _, f := range fields {
			if !quota.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quota.FieldID {
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
		_spec.SetField(quota.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FreeUsed(); ok {
		_spec.SetField(quota.FieldFreeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFreeUsed(); ok {
		_spec.AddField(quota.FieldFreeUsed, field.TypeInt, value)
	}
	_node = &Quota{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quota.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
