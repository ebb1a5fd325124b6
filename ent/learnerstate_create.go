// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/learnerstate"
)

// LearnerStateCreate is the builder for creating a LearnerState entity.
type LearnerStateCreate struct {
	config
	mutation *LearnerStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerStateCreate) SetLearnerID(v int) *LearnerStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPlacementIndex sets the "placement_index" field.
func (_c *LearnerStateCreate) SetPlacementIndex(v int) *LearnerStateCreate {
	_c.mutation.SetPlacementIndex(v)
	return _c
}

// SetNillablePlacementIndex sets the "placement_index" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillablePlacementIndex(v *int) *LearnerStateCreate {
	if v != nil {
		_c.SetPlacementIndex(*v)
	}
	return _c
}

// SetPlacementCorrect sets the "placement_correct" field.
func (_c *LearnerStateCreate) SetPlacementCorrect(v int) *LearnerStateCreate {
	_c.mutation.SetPlacementCorrect(v)
	return _c
}

// SetNillablePlacementCorrect sets the "placement_correct" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillablePlacementCorrect(v *int) *LearnerStateCreate {
	if v != nil {
		_c.SetPlacementCorrect(*v)
	}
	return _c
}

// SetPlacementDone sets the "placement_done" field.
func (_c *LearnerStateCreate) SetPlacementDone(v bool) *LearnerStateCreate {
	_c.mutation.SetPlacementDone(v)
	return _c
}

// SetNillablePlacementDone sets the "placement_done" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillablePlacementDone(v *bool) *LearnerStateCreate {
	if v != nil {
		_c.SetPlacementDone(*v)
	}
	return _c
}

// SetBatchNum sets the "batch_num" field.
func (_c *LearnerStateCreate) SetBatchNum(v int) *LearnerStateCreate {
	_c.mutation.SetBatchNum(v)
	return _c
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableBatchNum(v *int) *LearnerStateCreate {
	if v != nil {
		_c.SetBatchNum(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerStateCreate) SetUpdatedAt(v time.Time) *LearnerStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableUpdatedAt(v *time.Time) *LearnerStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_c *LearnerStateCreate) Mutation() *LearnerStateMutation {
	return _c.mutation
}

// Save creates the LearnerState in the database.
func (_c *LearnerStateCreate) Save(ctx context.Context) (*LearnerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerStateCreate) SaveX(ctx context.Context) *LearnerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerStateCreate) defaults() {
	if _, ok := _c.mutation.PlacementIndex(); !ok {
		v := learnerstate.DefaultPlacementIndex
		_c.mutation.SetPlacementIndex(v)
	}
	if _, ok := _c.mutation.PlacementCorrect(); !ok {
		v := learnerstate.DefaultPlacementCorrect
		_c.mutation.SetPlacementCorrect(v)
	}
	if _, ok := _c.mutation.PlacementDone(); !ok {
		v := learnerstate.DefaultPlacementDone
		_c.mutation.SetPlacementDone(v)
	}
	if _, ok := _c.mutation.BatchNum(); !ok {
		v := learnerstate.DefaultBatchNum
		_c.mutation.SetBatchNum(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerState.learner_id"`)}
	}
	if _, ok := _c.mutation.PlacementIndex(); !ok {
		return &ValidationError{Name: "placement_index", err: errors.New(`ent: missing required field "LearnerState.placement_index"`)}
	}
	if _, ok := _c.mutation.PlacementCorrect(); !ok {
		return &ValidationError{Name: "placement_correct", err: errors.New(`ent: missing required field "LearnerState.placement_correct"`)}
	}
	if _, ok := _c.mutation.PlacementDone(); !ok {
		return &ValidationError{Name: "placement_done", err: errors.New(`ent: missing required field "LearnerState.placement_done"`)}
	}
	if _, ok := _c.mutation.BatchNum(); !ok {
		return &ValidationError{Name: "batch_num", err: errors.New(`ent: missing required field "LearnerState.batch_num"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerState.updated_at"`)}
	}
	return nil
}

func (_c *LearnerStateCreate) sqlSave(ctx context.Context) (*LearnerState, error) {
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

func (_c *LearnerStateCreate) createSpec() (*LearnerState, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerstate.Table, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnerstate.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.PlacementIndex(); ok {
		_spec.SetField(learnerstate.FieldPlacementIndex, field.TypeInt, value)
		_node.PlacementIndex = value
	}
	if value, ok := _c.mutation.PlacementCorrect(); ok {
		_spec.SetField(learnerstate.FieldPlacementCorrect, field.TypeInt, value)
		_node.PlacementCorrect = value
	}
	if value, ok := _c.mutation.PlacementDone(); ok {
		_spec.SetField(learnerstate.FieldPlacementDone, field.TypeBool, value)
		_node.PlacementDone = value
	}
	if value, ok := _c.mutation.BatchNum(); ok {
		_spec.SetField(learnerstate.FieldBatchNum, field.TypeInt, value)
		_node.BatchNum = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerStateCreateBulk is the builder for creating many LearnerState entities in bulk.
type LearnerStateCreateBulk struct {
	config
	err      error
	builders []*LearnerStateCreate
}

// Save creates the LearnerState entities in the database.
func (_c *LearnerStateCreateBulk) Save(ctx context.Context) ([]*LearnerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerStateMutation)
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
func (_c *LearnerStateCreateBulk) SaveX(ctx context.Context) []*LearnerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
