// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/unitexercise"
	"github.com/verba-app/verba/internal/content"
)

// UnitExerciseCreate is the builder for creating a UnitExercise entity.
type UnitExerciseCreate struct {
	config
	mutation *UnitExerciseMutation
	hooks    []Hook
}

// SetUnitKey sets the "unit_key" field.
func (_c *UnitExerciseCreate) SetUnitKey(v string) *UnitExerciseCreate {
	_c.mutation.SetUnitKey(v)
	return _c
}

// SetExerciseIndex sets the "exercise_index" field.
func (_c *UnitExerciseCreate) SetExerciseIndex(v int) *UnitExerciseCreate {
	_c.mutation.SetExerciseIndex(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *UnitExerciseCreate) SetExerciseType(v string) *UnitExerciseCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetInstruction sets the "instruction" field.
func (_c *UnitExerciseCreate) SetInstruction(v string) *UnitExerciseCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *UnitExerciseCreate) SetItems(v []content.Item) *UnitExerciseCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *UnitExerciseCreate) SetSource(v string) *UnitExerciseCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *UnitExerciseCreate) SetNillableSource(v *string) *UnitExerciseCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnitExerciseCreate) SetCreatedAt(v time.Time) *UnitExerciseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnitExerciseCreate) SetNillableCreatedAt(v *time.Time) *UnitExerciseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the UnitExerciseMutation object of the builder.
func (_c *UnitExerciseCreate) Mutation() *UnitExerciseMutation {
	return _c.mutation
}

// Save creates the UnitExercise in the database.
func (_c *UnitExerciseCreate) Save(ctx context.Context) (*UnitExercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitExerciseCreate) SaveX(ctx context.Context) *UnitExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitExerciseCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := unitexercise.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unitexercise.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitExerciseCreate) check() error {
	if _, ok := _c.mutation.UnitKey(); !ok {
		return &ValidationError{Name: "unit_key", err: errors.New(`ent: missing required field "UnitExercise.unit_key"`)}
	}
	if v, ok := _c.mutation.UnitKey(); ok {
		if err := unitexercise.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.unit_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseIndex(); !ok {
		return &ValidationError{Name: "exercise_index", err: errors.New(`ent: missing required field "UnitExercise.exercise_index"`)}
	}
	if v, ok := _c.mutation.ExerciseIndex(); ok {
		if err := unitexercise.ExerciseIndexValidator(v); err != nil {
			return &ValidationError{Name: "exercise_index", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		return &ValidationError{Name: "exercise_type", err: errors.New(`ent: missing required field "UnitExercise.exercise_type"`)}
	}
	if v, ok := _c.mutation.ExerciseType(); ok {
		if err := unitexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Instruction(); !ok {
		return &ValidationError{Name: "instruction", err: errors.New(`ent: missing required field "UnitExercise.instruction"`)}
	}
	if v, ok := _c.mutation.Instruction(); ok {
		if err := unitexercise.InstructionValidator(v); err != nil {
			return &ValidationError{Name: "instruction", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.instruction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "UnitExercise.items"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "UnitExercise.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnitExercise.created_at"`)}
	}
	return nil
}

func (_c *UnitExerciseCreate) sqlSave(ctx context.Context) (*UnitExercise, error) {
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

func (_c *UnitExerciseCreate) createSpec() (*UnitExercise, *sqlgraph.CreateSpec) {
	var (
		_node = &UnitExercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unitexercise.Table, sqlgraph.NewFieldSpec(unitexercise.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UnitKey(); ok {
		_spec.SetField(unitexercise.FieldUnitKey, field.TypeString, value)
		_node.UnitKey = value
	}
	if value, ok := _c.mutation.ExerciseIndex(); ok {
		_spec.SetField(unitexercise.FieldExerciseIndex, field.TypeInt, value)
		_node.ExerciseIndex = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(unitexercise.FieldExerciseType, field.TypeString, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(unitexercise.FieldInstruction, field.TypeString, value)
		_node.Instruction = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(unitexercise.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(unitexercise.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unitexercise.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UnitExerciseCreateBulk is the builder for creating many UnitExercise entities in bulk.
type UnitExerciseCreateBulk struct {
	config
	err      error
	builders []*UnitExerciseCreate
}

// Save creates the UnitExercise entities in the database.
func (_c *UnitExerciseCreateBulk) Save(ctx context.Context) ([]*UnitExercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnitExercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitExerciseMutation)
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
func (_c *UnitExerciseCreateBulk) SaveX(ctx context.Context) []*UnitExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
