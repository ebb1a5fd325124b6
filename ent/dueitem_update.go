// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/ent/predicate"
)

// DueItemUpdate is the builder for updating DueItem entities.
type DueItemUpdate struct {
	config
	hooks    []Hook
	mutation *DueItemMutation
}

// Where appends a list predicates to the DueItemUpdate builder.
func (_u *DueItemUpdate) Where(ps ...predicate.DueItem) *DueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DueItemUpdate) SetLearnerID(v int) *DueItemUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableLearnerID(v *int) *DueItemUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *DueItemUpdate) AddLearnerID(v int) *DueItemUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *DueItemUpdate) SetKind(v string) *DueItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableKind(v *string) *DueItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *DueItemUpdate) SetUnitKey(v string) *DueItemUpdate {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableUnitKey(v *string) *DueItemUpdate {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *DueItemUpdate) SetDueAt(v time.Time) *DueItemUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableDueAt(v *time.Time) *DueItemUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *DueItemUpdate) SetExerciseIndex(v int) *DueItemUpdate {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableExerciseIndex(v *int) *DueItemUpdate {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *DueItemUpdate) AddExerciseIndex(v int) *DueItemUpdate {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetItemInExercise sets the "item_in_exercise" field.
func (_u *DueItemUpdate) SetItemInExercise(v int) *DueItemUpdate {
	_u.mutation.ResetItemInExercise()
	_u.mutation.SetItemInExercise(v)
	return _u
}

// SetNillableItemInExercise sets the "item_in_exercise" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableItemInExercise(v *int) *DueItemUpdate {
	if v != nil {
		_u.SetItemInExercise(*v)
	}
	return _u
}

// AddItemInExercise adds value to the "item_in_exercise" field.
func (_u *DueItemUpdate) AddItemInExercise(v int) *DueItemUpdate {
	_u.mutation.AddItemInExercise(v)
	return _u
}

// SetCorrectInExercise sets the "correct_in_exercise" field.
func (_u *DueItemUpdate) SetCorrectInExercise(v int) *DueItemUpdate {
	_u.mutation.ResetCorrectInExercise()
	_u.mutation.SetCorrectInExercise(v)
	return _u
}

// SetNillableCorrectInExercise sets the "correct_in_exercise" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableCorrectInExercise(v *int) *DueItemUpdate {
	if v != nil {
		_u.SetCorrectInExercise(*v)
	}
	return _u
}

// AddCorrectInExercise adds value to the "correct_in_exercise" field.
func (_u *DueItemUpdate) AddCorrectInExercise(v int) *DueItemUpdate {
	_u.mutation.AddCorrectInExercise(v)
	return _u
}

// SetBatchNum sets the "batch_num" field.
func (_u *DueItemUpdate) SetBatchNum(v int) *DueItemUpdate {
	_u.mutation.ResetBatchNum()
	_u.mutation.SetBatchNum(v)
	return _u
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableBatchNum(v *int) *DueItemUpdate {
	if v != nil {
		_u.SetBatchNum(*v)
	}
	return _u
}

// AddBatchNum adds value to the "batch_num" field.
func (_u *DueItemUpdate) AddBatchNum(v int) *DueItemUpdate {
	_u.mutation.AddBatchNum(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DueItemUpdate) SetIsActive(v bool) *DueItemUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DueItemUpdate) SetNillableIsActive(v *bool) *DueItemUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCauseRuleKeys sets the "cause_rule_keys" field.
func (_u *DueItemUpdate) SetCauseRuleKeys(v []string) *DueItemUpdate {
	_u.mutation.SetCauseRuleKeys(v)
	return _u
}

// AppendCauseRuleKeys appends value to the "cause_rule_keys" field.
func (_u *DueItemUpdate) AppendCauseRuleKeys(v []string) *DueItemUpdate {
	_u.mutation.AppendCauseRuleKeys(v)
	return _u
}

// ClearCauseRuleKeys clears the value of the "cause_rule_keys" field.
func (_u *DueItemUpdate) ClearCauseRuleKeys() *DueItemUpdate {
	_u.mutation.ClearCauseRuleKeys()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DueItemUpdate) SetUpdatedAt(v time.Time) *DueItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DueItemMutation object of the builder.
func (_u *DueItemUpdate) Mutation() *DueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DueItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DueItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DueItemUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := dueitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DueItem.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := dueitem.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "DueItem.unit_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dueitem.Table, dueitem.Columns, sqlgraph.NewFieldSpec(dueitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(dueitem.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(dueitem.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dueitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(dueitem.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(dueitem.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(dueitem.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(dueitem.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemInExercise(); ok {
		_spec.SetField(dueitem.FieldItemInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemInExercise(); ok {
		_spec.AddField(dueitem.FieldItemInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectInExercise(); ok {
		_spec.SetField(dueitem.FieldCorrectInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectInExercise(); ok {
		_spec.AddField(dueitem.FieldCorrectInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchNum(); ok {
		_spec.SetField(dueitem.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNum(); ok {
		_spec.AddField(dueitem.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dueitem.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CauseRuleKeys(); ok {
		_spec.SetField(dueitem.FieldCauseRuleKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCauseRuleKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dueitem.FieldCauseRuleKeys, value)
		})
	}
	if _u.mutation.CauseRuleKeysCleared() {
		_spec.ClearField(dueitem.FieldCauseRuleKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DueItemUpdateOne is the builder for updating a single DueItem entity.
type DueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DueItemMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *DueItemUpdateOne) SetLearnerID(v int) *DueItemUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableLearnerID(v *int) *DueItemUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *DueItemUpdateOne) AddLearnerID(v int) *DueItemUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *DueItemUpdateOne) SetKind(v string) *DueItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableKind(v *string) *DueItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *DueItemUpdateOne) SetUnitKey(v string) *DueItemUpdateOne {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableUnitKey(v *string) *DueItemUpdateOne {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *DueItemUpdateOne) SetDueAt(v time.Time) *DueItemUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableDueAt(v *time.Time) *DueItemUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *DueItemUpdateOne) SetExerciseIndex(v int) *DueItemUpdateOne {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableExerciseIndex(v *int) *DueItemUpdateOne {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *DueItemUpdateOne) AddExerciseIndex(v int) *DueItemUpdateOne {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetItemInExercise sets the "item_in_exercise" field.
func (_u *DueItemUpdateOne) SetItemInExercise(v int) *DueItemUpdateOne {
	_u.mutation.ResetItemInExercise()
	_u.mutation.SetItemInExercise(v)
	return _u
}

// SetNillableItemInExercise sets the "item_in_exercise" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableItemInExercise(v *int) *DueItemUpdateOne {
	if v != nil {
		_u.SetItemInExercise(*v)
	}
	return _u
}

// AddItemInExercise adds value to the "item_in_exercise" field.
func (_u *DueItemUpdateOne) AddItemInExercise(v int) *DueItemUpdateOne {
	_u.mutation.AddItemInExercise(v)
	return _u
}

// SetCorrectInExercise sets the "correct_in_exercise" field.
func (_u *DueItemUpdateOne) SetCorrectInExercise(v int) *DueItemUpdateOne {
	_u.mutation.ResetCorrectInExercise()
	_u.mutation.SetCorrectInExercise(v)
	return _u
}

// SetNillableCorrectInExercise sets the "correct_in_exercise" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableCorrectInExercise(v *int) *DueItemUpdateOne {
	if v != nil {
		_u.SetCorrectInExercise(*v)
	}
	return _u
}

// AddCorrectInExercise adds value to the "correct_in_exercise" field.
func (_u *DueItemUpdateOne) AddCorrectInExercise(v int) *DueItemUpdateOne {
	_u.mutation.AddCorrectInExercise(v)
	return _u
}

// SetBatchNum sets the "batch_num" field.
func (_u *DueItemUpdateOne) SetBatchNum(v int) *DueItemUpdateOne {
	_u.mutation.ResetBatchNum()
	_u.mutation.SetBatchNum(v)
	return _u
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableBatchNum(v *int) *DueItemUpdateOne {
	if v != nil {
		_u.SetBatchNum(*v)
	}
	return _u
}

// AddBatchNum adds value to the "batch_num" field.
func (_u *DueItemUpdateOne) AddBatchNum(v int) *DueItemUpdateOne {
	_u.mutation.AddBatchNum(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DueItemUpdateOne) SetIsActive(v bool) *DueItemUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DueItemUpdateOne) SetNillableIsActive(v *bool) *DueItemUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCauseRuleKeys sets the "cause_rule_keys" field.
func (_u *DueItemUpdateOne) SetCauseRuleKeys(v []string) *DueItemUpdateOne {
	_u.mutation.SetCauseRuleKeys(v)
	return _u
}

// AppendCauseRuleKeys appends value to the "cause_rule_keys" field.
func (_u *DueItemUpdateOne) AppendCauseRuleKeys(v []string) *DueItemUpdateOne {
	_u.mutation.AppendCauseRuleKeys(v)
	return _u
}

// ClearCauseRuleKeys clears the value of the "cause_rule_keys" field.
func (_u *DueItemUpdateOne) ClearCauseRuleKeys() *DueItemUpdateOne {
	_u.mutation.ClearCauseRuleKeys()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DueItemUpdateOne) SetUpdatedAt(v time.Time) *DueItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DueItemMutation object of the builder.
func (_u *DueItemUpdateOne) Mutation() *DueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the DueItemUpdate builder.
func (_u *DueItemUpdateOne) Where(ps ...predicate.DueItem) *DueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DueItemUpdateOne) Select(field string, fields ...string) *DueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DueItem entity.
func (_u *DueItemUpdateOne) Save(ctx context.Context) (*DueItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DueItemUpdateOne) SaveX(ctx context.Context) *DueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DueItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DueItemUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := dueitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DueItem.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := dueitem.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "DueItem.unit_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DueItemUpdateOne) sqlSave(ctx context.Context) (_node *DueItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dueitem.Table, dueitem.Columns, sqlgraph.NewFieldSpec(dueitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dueitem.FieldID)
		for _, f := range fields {
			if !dueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dueitem.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(dueitem.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(dueitem.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dueitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(dueitem.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(dueitem.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(dueitem.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(dueitem.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemInExercise(); ok {
		_spec.SetField(dueitem.FieldItemInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemInExercise(); ok {
		_spec.AddField(dueitem.FieldItemInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectInExercise(); ok {
		_spec.SetField(dueitem.FieldCorrectInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectInExercise(); ok {
		_spec.AddField(dueitem.FieldCorrectInExercise, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchNum(); ok {
		_spec.SetField(dueitem.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNum(); ok {
		_spec.AddField(dueitem.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dueitem.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CauseRuleKeys(); ok {
		_spec.SetField(dueitem.FieldCauseRuleKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCauseRuleKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dueitem.FieldCauseRuleKeys, value)
		})
	}
	if _u.mutation.CauseRuleKeysCleared() {
		_spec.ClearField(dueitem.FieldCauseRuleKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
