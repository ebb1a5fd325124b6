// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/explaincache"
)

// ExplainCacheCreate is the builder for creating a ExplainCache entity.
type ExplainCacheCreate struct {
	config
	mutation *ExplainCacheMutation
	hooks    []Hook
}

// SetCacheKey sets the "cache_key" field.
func (_c *ExplainCacheCreate) SetCacheKey(v string) *ExplainCacheCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ExplainCacheCreate) SetExplanation(v string) *ExplainCacheCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetVerdictFlip sets the "verdict_flip" field.
func (_c *ExplainCacheCreate) SetVerdictFlip(v bool) *ExplainCacheCreate {
	_c.mutation.SetVerdictFlip(v)
	return _c
}

// SetNillableVerdictFlip sets the "verdict_flip" field if the given value is not nil.
func (_c *ExplainCacheCreate) SetNillableVerdictFlip(v *bool) *ExplainCacheCreate {
	if v != nil {
		_c.SetVerdictFlip(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExplainCacheCreate) SetCreatedAt(v time.Time) *ExplainCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExplainCacheCreate) SetNillableCreatedAt(v *time.Time) *ExplainCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExplainCacheMutation object of the builder.
func (_c *ExplainCacheCreate) Mutation() *ExplainCacheMutation {
	return _c.mutation
}

// Save creates the ExplainCache in the database.
func (_c *ExplainCacheCreate) Save(ctx context.Context) (*ExplainCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExplainCacheCreate) SaveX(ctx context.Context) *ExplainCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplainCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplainCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExplainCacheCreate) defaults() {
	if _, ok := _c.mutation.VerdictFlip(); !ok {
		v := explaincache.DefaultVerdictFlip
		_c.mutation.SetVerdictFlip(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := explaincache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExplainCacheCreate) check() error {
	if _, ok := _c.mutation.CacheKey(); !ok {
		return &ValidationError{Name: "cache_key", err: errors.New(`ent: missing required field "ExplainCache.cache_key"`)}
	}
	if v, ok := _c.mutation.CacheKey(); ok {
		if err := explaincache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.cache_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "ExplainCache.explanation"`)}
	}
	if v, ok := _c.mutation.Explanation(); ok {
		if err := explaincache.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.explanation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerdictFlip(); !ok {
		return &ValidationError{Name: "verdict_flip", err: errors.New(`ent: missing required field "ExplainCache.verdict_flip"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExplainCache.created_at"`)}
	}
	return nil
}

func (_c *ExplainCacheCreate) sqlSave(ctx context.Context) (*ExplainCache, error) {
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

func (_c *ExplainCacheCreate) createSpec() (*ExplainCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ExplainCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(explaincache.Table, sqlgraph.NewFieldSpec(explaincache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(explaincache.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(explaincache.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.VerdictFlip(); ok {
		_spec.SetField(explaincache.FieldVerdictFlip, field.TypeBool, value)
		_node.VerdictFlip = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(explaincache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExplainCacheCreateBulk is the builder for creating many ExplainCache entities in bulk.
type ExplainCacheCreateBulk struct {
	config
	err      error
	builders []*ExplainCacheCreate
}

// Save creates the ExplainCache entities in the database.
func (_c *ExplainCacheCreateBulk) Save(ctx context.Context) ([]*ExplainCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExplainCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExplainCacheMutation)
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
func (_c *ExplainCacheCreateBulk) SaveX(ctx context.Context) []*ExplainCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplainCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplainCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
