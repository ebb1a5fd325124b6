// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/dueitem"
)

// DueItemCreate is the builder for creating a DueItem entity.
type DueItemCreate struct {
	config
	mutation *DueItemMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *DueItemCreate) SetLearnerID(v int) *DueItemCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *DueItemCreate) SetKind(v string) *DueItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetUnitKey sets the "unit_key" field.
func (_c *DueItemCreate) SetUnitKey(v string) *DueItemCreate {
	_c.mutation.SetUnitKey(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *DueItemCreate) SetDueAt(v time.Time) *DueItemCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetExerciseIndex sets the "exercise_index" field.
func (_c *DueItemCreate) SetExerciseIndex(v int) *DueItemCreate {
	_c.mutation.SetExerciseIndex(v)
	return _c
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableExerciseIndex(v *int) *DueItemCreate {
	if v != nil {
		_c.SetExerciseIndex(*v)
	}
	return _c
}

// SetItemInExercise sets the "item_in_exercise" field.
func (_c *DueItemCreate) SetItemInExercise(v int) *DueItemCreate {
	_c.mutation.SetItemInExercise(v)
	return _c
}

// SetNillableItemInExercise sets the "item_in_exercise" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableItemInExercise(v *int) *DueItemCreate {
	if v != nil {
		_c.SetItemInExercise(*v)
	}
	return _c
}

// SetCorrectInExercise sets the "correct_in_exercise" field.
func (_c *DueItemCreate) SetCorrectInExercise(v int) *DueItemCreate {
	_c.mutation.SetCorrectInExercise(v)
	return _c
}

// SetNillableCorrectInExercise sets the "correct_in_exercise" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableCorrectInExercise(v *int) *DueItemCreate {
	if v != nil {
		_c.SetCorrectInExercise(*v)
	}
	return _c
}

// SetBatchNum sets the "batch_num" field.
func (_c *DueItemCreate) SetBatchNum(v int) *DueItemCreate {
	_c.mutation.SetBatchNum(v)
	return _c
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableBatchNum(v *int) *DueItemCreate {
	if v != nil {
		_c.SetBatchNum(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DueItemCreate) SetIsActive(v bool) *DueItemCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableIsActive(v *bool) *DueItemCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCauseRuleKeys sets the "cause_rule_keys" field.
func (_c *DueItemCreate) SetCauseRuleKeys(v []string) *DueItemCreate {
	_c.mutation.SetCauseRuleKeys(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DueItemCreate) SetCreatedAt(v time.Time) *DueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableCreatedAt(v *time.Time) *DueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DueItemCreate) SetUpdatedAt(v time.Time) *DueItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DueItemCreate) SetNillableUpdatedAt(v *time.Time) *DueItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DueItemMutation object of the builder.
func (_c *DueItemCreate) Mutation() *DueItemMutation {
	return _c.mutation
}

// Save creates the DueItem in the database.
func (_c *DueItemCreate) Save(ctx context.Context) (*DueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DueItemCreate) SaveX(ctx context.Context) *DueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DueItemCreate) defaults() {
	if _, ok := _c.mutation.ExerciseIndex(); !ok {
		v := dueitem.DefaultExerciseIndex
		_c.mutation.SetExerciseIndex(v)
	}
	if _, ok := _c.mutation.ItemInExercise(); !ok {
		v := dueitem.DefaultItemInExercise
		_c.mutation.SetItemInExercise(v)
	}
	if _, ok := _c.mutation.CorrectInExercise(); !ok {
		v := dueitem.DefaultCorrectInExercise
		_c.mutation.SetCorrectInExercise(v)
	}
	if _, ok := _c.mutation.BatchNum(); !ok {
		v := dueitem.DefaultBatchNum
		_c.mutation.SetBatchNum(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := dueitem.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dueitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DueItemCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "DueItem.learner_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "DueItem.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := dueitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DueItem.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitKey(); !ok {
		return &ValidationError{Name: "unit_key", err: errors.New(`ent: missing required field "DueItem.unit_key"`)}
	}
	if v, ok := _c.mutation.UnitKey(); ok {
		if err := dueitem.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "DueItem.unit_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "DueItem.due_at"`)}
	}
	if _, ok := _c.mutation.ExerciseIndex(); !ok {
		return &ValidationError{Name: "exercise_index", err: errors.New(`ent: missing required field "DueItem.exercise_index"`)}
	}
	if _, ok := _c.mutation.ItemInExercise(); !ok {
		return &ValidationError{Name: "item_in_exercise", err: errors.New(`ent: missing required field "DueItem.item_in_exercise"`)}
	}
	if _, ok := _c.mutation.CorrectInExercise(); !ok {
		return &ValidationError{Name: "correct_in_exercise", err: errors.New(`ent: missing required field "DueItem.correct_in_exercise"`)}
	}
	if _, ok := _c.mutation.BatchNum(); !ok {
		return &ValidationError{Name: "batch_num", err: errors.New(`ent: missing required field "DueItem.batch_num"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "DueItem.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DueItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DueItem.updated_at"`)}
	}
	return nil
}

func (_c *DueItemCreate) sqlSave(ctx context.Context) (*DueItem, error) {
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

func (_c *DueItemCreate) createSpec() (*DueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &DueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dueitem.Table, sqlgraph.NewFieldSpec(dueitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(dueitem.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(dueitem.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.UnitKey(); ok {
		_spec.SetField(dueitem.FieldUnitKey, field.TypeString, value)
		_node.UnitKey = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(dueitem.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.ExerciseIndex(); ok {
		_spec.SetField(dueitem.FieldExerciseIndex, field.TypeInt, value)
		_node.ExerciseIndex = value
	}
	if value, ok := _c.mutation.ItemInExercise(); ok {
		_spec.SetField(dueitem.FieldItemInExercise, field.TypeInt, value)
		_node.ItemInExercise = value
	}
	if value, ok := _c.mutation.CorrectInExercise(); ok {
		_spec.SetField(dueitem.FieldCorrectInExercise, field.TypeInt, value)
		_node.CorrectInExercise = value
	}
	if value, ok := _c.mutation.BatchNum(); ok {
		_spec.SetField(dueitem.FieldBatchNum, field.TypeInt, value)
		_node.BatchNum = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(dueitem.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CauseRuleKeys(); ok {
		_spec.SetField(dueitem.FieldCauseRuleKeys, field.TypeJSON, value)
		_node.CauseRuleKeys = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dueitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DueItemCreateBulk is the builder for creating many DueItem entities in bulk.
type DueItemCreateBulk struct {
	config
	err      error
	builders []*DueItemCreate
}

// Save creates the DueItem entities in the database.
func (_c *DueItemCreateBulk) Save(ctx context.Context) ([]*DueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DueItemMutation)
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
func (_c *DueItemCreateBulk) SaveX(ctx context.Context) []*DueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
