// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obinna/prepcli/ent/quota"
)

// QuotaCreate is the builder for creating a Quota entity.
type QuotaCreate struct {
	config
	mutation *QuotaMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuotaCreate) SetUserID(v string) *QuotaCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFreeUsed sets the "free_used" field.
func (_c *QuotaCreate) SetFreeUsed(v int) *QuotaCreate {
	_c.mutation.SetFreeUsed(v)
	return _c
}

// SetNillableFreeUsed sets the "free_used" field if the given value is not nil.
func (_c *QuotaCreate) SetNillableFreeUsed(v *int) *QuotaCreate {
	if v != nil {
		_c.SetFreeUsed(*v)
	}
	return _c
}

// Mutation returns the QuotaMutation object of the builder.
func (_c *QuotaCreate) Mutation() *QuotaMutation {
	return _c.mutation
}

// Save creates the Quota in the database.
func (_c *QuotaCreate) Save(ctx context.Context) (*Quota, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaCreate) SaveX(ctx context.Context) *Quota {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaCreate) defaults() {
	if _, ok := _c.mutation.FreeUsed(); !ok {
		v := quota.DefaultFreeUsed
		_c.mutation.SetFreeUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Quota.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quota.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Quota.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FreeUsed(); !ok {
		return &ValidationError{Name: "free_used", err: errors.New(`ent: missing required field "Quota.free_used"`)}
	}
	if v, ok := _c.mutation.FreeUsed(); ok {
		if err := quota.FreeUsedValidator(v); err != nil {
			return &ValidationError{Name: "free_used", err: fmt.Errorf(`ent: validator failed for field "Quota.free_used": %w`, err)}
		}
	}
	return nil
}

func (_c *QuotaCreate) sqlSave(ctx context.Context) (*Quota, error) {
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

func (_c *QuotaCreate) createSpec() (*Quota, *sqlgraph.CreateSpec) {
	var (
		_node = &Quota{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quota.Table, sqlgraph.NewFieldSpec(quota.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quota.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FreeUsed(); ok {
		_spec.SetField(quota.FieldFreeUsed, field.TypeInt, value)
		_node.FreeUsed = value
	}
	return _node, _spec
}

// QuotaCreateBulk is the builder for creating many Quota entities in bulk.
type QuotaCreateBulk struct {
	config
	err      error
	builders []*QuotaCreate
}

// Save creates the Quota entities in the database.
func (_c *QuotaCreateBulk) Save(ctx context.Context) ([]*Quota, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quota, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaMutation)
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
func (_c *QuotaCreateBulk) SaveX(ctx context.Context) []*Quota {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
