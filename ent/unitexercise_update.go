// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/predicate"
	"github.com/verba-app/verba/ent/unitexercise"
	"github.com/verba-app/verba/internal/content"
)

// UnitExerciseUpdate is the builder for updating UnitExercise entities.
type UnitExerciseUpdate struct {
	config
	hooks    []Hook
	mutation *UnitExerciseMutation
}

// Where appends a list predicates to the UnitExerciseUpdate builder.
func (_u *UnitExerciseUpdate) Where(ps ...predicate.UnitExercise) *UnitExerciseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *UnitExerciseUpdate) SetUnitKey(v string) *UnitExerciseUpdate {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *UnitExerciseUpdate) SetNillableUnitKey(v *string) *UnitExerciseUpdate {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *UnitExerciseUpdate) SetExerciseIndex(v int) *UnitExerciseUpdate {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *UnitExerciseUpdate) SetNillableExerciseIndex(v *int) *UnitExerciseUpdate {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *UnitExerciseUpdate) AddExerciseIndex(v int) *UnitExerciseUpdate {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *UnitExerciseUpdate) SetExerciseType(v string) *UnitExerciseUpdate {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *UnitExerciseUpdate) SetNillableExerciseType(v *string) *UnitExerciseUpdate {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *UnitExerciseUpdate) SetInstruction(v string) *UnitExerciseUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *UnitExerciseUpdate) SetNillableInstruction(v *string) *UnitExerciseUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *UnitExerciseUpdate) SetItems(v []content.Item) *UnitExerciseUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *UnitExerciseUpdate) AppendItems(v []content.Item) *UnitExerciseUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *UnitExerciseUpdate) SetSource(v string) *UnitExerciseUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UnitExerciseUpdate) SetNillableSource(v *string) *UnitExerciseUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the UnitExerciseMutation object of the builder.
func (_u *UnitExerciseUpdate) Mutation() *UnitExerciseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitExerciseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitExerciseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitExerciseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitExerciseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitExerciseUpdate) check() error {
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := unitexercise.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.unit_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseIndex(); ok {
		if err := unitexercise.ExerciseIndexValidator(v); err != nil {
			return &ValidationError{Name: "exercise_index", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := unitexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instruction(); ok {
		if err := unitexercise.InstructionValidator(v); err != nil {
			return &ValidationError{Name: "instruction", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.instruction": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitExerciseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitexercise.Table, unitexercise.Columns, sqlgraph.NewFieldSpec(unitexercise.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(unitexercise.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(unitexercise.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(unitexercise.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(unitexercise.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(unitexercise.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(unitexercise.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unitexercise.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(unitexercise.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitExerciseUpdateOne is the builder for updating a single UnitExercise entity.
type UnitExerciseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitExerciseMutation
}

// SetUnitKey sets the "unit_key" field.
func (_u *UnitExerciseUpdateOne) SetUnitKey(v string) *UnitExerciseUpdateOne {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *UnitExerciseUpdateOne) SetNillableUnitKey(v *string) *UnitExerciseUpdateOne {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *UnitExerciseUpdateOne) SetExerciseIndex(v int) *UnitExerciseUpdateOne {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *UnitExerciseUpdateOne) SetNillableExerciseIndex(v *int) *UnitExerciseUpdateOne {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *UnitExerciseUpdateOne) AddExerciseIndex(v int) *UnitExerciseUpdateOne {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *UnitExerciseUpdateOne) SetExerciseType(v string) *UnitExerciseUpdateOne {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *UnitExerciseUpdateOne) SetNillableExerciseType(v *string) *UnitExerciseUpdateOne {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *UnitExerciseUpdateOne) SetInstruction(v string) *UnitExerciseUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *UnitExerciseUpdateOne) SetNillableInstruction(v *string) *UnitExerciseUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *UnitExerciseUpdateOne) SetItems(v []content.Item) *UnitExerciseUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *UnitExerciseUpdateOne) AppendItems(v []content.Item) *UnitExerciseUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *UnitExerciseUpdateOne) SetSource(v string) *UnitExerciseUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UnitExerciseUpdateOne) SetNillableSource(v *string) *UnitExerciseUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the UnitExerciseMutation object of the builder.
func (_u *UnitExerciseUpdateOne) Mutation() *UnitExerciseMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitExerciseUpdate builder.
func (_u *UnitExerciseUpdateOne) Where(ps ...predicate.UnitExercise) *UnitExerciseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitExerciseUpdateOne) Select(field string, fields ...string) *UnitExerciseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnitExercise entity.
func (_u *UnitExerciseUpdateOne) Save(ctx context.Context) (*UnitExercise, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitExerciseUpdateOne) SaveX(ctx context.Context) *UnitExercise {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitExerciseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitExerciseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitExerciseUpdateOne) check() error {
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := unitexercise.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.unit_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseIndex(); ok {
		if err := unitexercise.ExerciseIndexValidator(v); err != nil {
			return &ValidationError{Name: "exercise_index", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := unitexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instruction(); ok {
		if err := unitexercise.InstructionValidator(v); err != nil {
			return &ValidationError{Name: "instruction", err: fmt.Errorf(`ent: validator failed for field "UnitExercise.instruction": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitExerciseUpdateOne) sqlSave(ctx context.Context) (_node *UnitExercise, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitexercise.Table, unitexercise.Columns, sqlgraph.NewFieldSpec(unitexercise.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitExercise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitexercise.FieldID)
		for _, f := range fields {
			if !unitexercise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitexercise.FieldID {
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
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(unitexercise.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(unitexercise.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(unitexercise.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(unitexercise.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(unitexercise.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(unitexercise.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unitexercise.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(unitexercise.FieldSource, field.TypeString, value)
	}
	_node = &UnitExercise{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
