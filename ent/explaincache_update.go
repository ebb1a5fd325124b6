// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/explaincache"
	"github.com/verba-app/verba/ent/predicate"
)

// ExplainCacheUpdate is the builder for updating ExplainCache entities.
type ExplainCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ExplainCacheMutation
}

// Where appends a list predicates to the ExplainCacheUpdate builder.
func (_u *ExplainCacheUpdate) Where(ps ...predicate.ExplainCache) *ExplainCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCacheKey sets the "cache_key" field.
func (_u *ExplainCacheUpdate) SetCacheKey(v string) *ExplainCacheUpdate {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *ExplainCacheUpdate) SetNillableCacheKey(v *string) *ExplainCacheUpdate {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExplainCacheUpdate) SetExplanation(v string) *ExplainCacheUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExplainCacheUpdate) SetNillableExplanation(v *string) *ExplainCacheUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetVerdictFlip sets the "verdict_flip" field.
func (_u *ExplainCacheUpdate) SetVerdictFlip(v bool) *ExplainCacheUpdate {
	_u.mutation.SetVerdictFlip(v)
	return _u
}

// SetNillableVerdictFlip sets the "verdict_flip" field if the given value is not nil.
func (_u *ExplainCacheUpdate) SetNillableVerdictFlip(v *bool) *ExplainCacheUpdate {
	if v != nil {
		_u.SetVerdictFlip(*v)
	}
	return _u
}

// Mutation returns the ExplainCacheMutation object of the builder.
func (_u *ExplainCacheUpdate) Mutation() *ExplainCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExplainCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplainCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExplainCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplainCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplainCacheUpdate) check() error {
	if v, ok := _u.mutation.CacheKey(); ok {
		if err := explaincache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.cache_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := explaincache.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.explanation": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplainCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explaincache.Table, explaincache.Columns, sqlgraph.NewFieldSpec(explaincache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(explaincache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(explaincache.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerdictFlip(); ok {
		_spec.SetField(explaincache.FieldVerdictFlip, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explaincache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExplainCacheUpdateOne is the builder for updating a single ExplainCache entity.
type ExplainCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExplainCacheMutation
}

// SetCacheKey sets the "cache_key" field.
func (_u *ExplainCacheUpdateOne) SetCacheKey(v string) *ExplainCacheUpdateOne {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *ExplainCacheUpdateOne) SetNillableCacheKey(v *string) *ExplainCacheUpdateOne {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExplainCacheUpdateOne) SetExplanation(v string) *ExplainCacheUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExplainCacheUpdateOne) SetNillableExplanation(v *string) *ExplainCacheUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetVerdictFlip sets the "verdict_flip" field.
func (_u *ExplainCacheUpdateOne) SetVerdictFlip(v bool) *ExplainCacheUpdateOne {
	_u.mutation.SetVerdictFlip(v)
	return _u
}

// SetNillableVerdictFlip sets the "verdict_flip" field if the given value is not nil.
func (_u *ExplainCacheUpdateOne) SetNillableVerdictFlip(v *bool) *ExplainCacheUpdateOne {
	if v != nil {
		_u.SetVerdictFlip(*v)
	}
	return _u
}

// Mutation returns the ExplainCacheMutation object of the builder.
func (_u *ExplainCacheUpdateOne) Mutation() *ExplainCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExplainCacheUpdate builder.
func (_u *ExplainCacheUpdateOne) Where(ps ...predicate.ExplainCache) *ExplainCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExplainCacheUpdateOne) Select(field string, fields ...string) *ExplainCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExplainCache entity.
func (_u *ExplainCacheUpdateOne) Save(ctx context.Context) (*ExplainCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplainCacheUpdateOne) SaveX(ctx context.Context) *ExplainCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExplainCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplainCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplainCacheUpdateOne) check() error {
	if v, ok := _u.mutation.CacheKey(); ok {
		if err := explaincache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.cache_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := explaincache.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ExplainCache.explanation": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplainCacheUpdateOne) sqlSave(ctx context.Context) (_node *ExplainCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explaincache.Table, explaincache.Columns, sqlgraph.NewFieldSpec(explaincache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExplainCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, explaincache.FieldID)
		for _, f := range fields {
			if !explaincache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != explaincache.FieldID {
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
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(explaincache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(explaincache.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerdictFlip(); ok {
		_spec.SetField(explaincache.FieldVerdictFlip, field.TypeBool, value)
	}
	_node = &ExplainCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explaincache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
