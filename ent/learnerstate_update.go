// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/learnerstate"
	"github.com/verba-app/verba/ent/predicate"
)

// LearnerStateUpdate is the builder for updating LearnerState entities.
type LearnerStateUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerStateMutation
}

// Where appends a list predicates to the LearnerStateUpdate builder.
func (_u *LearnerStateUpdate) Where(ps ...predicate.LearnerState) *LearnerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerStateUpdate) SetLearnerID(v int) *LearnerStateUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableLearnerID(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *LearnerStateUpdate) AddLearnerID(v int) *LearnerStateUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetPlacementIndex sets the "placement_index" field.
func (_u *LearnerStateUpdate) SetPlacementIndex(v int) *LearnerStateUpdate {
	_u.mutation.ResetPlacementIndex()
	_u.mutation.SetPlacementIndex(v)
	return _u
}

// SetNillablePlacementIndex sets the "placement_index" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillablePlacementIndex(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetPlacementIndex(*v)
	}
	return _u
}

// AddPlacementIndex adds value to the "placement_index" field.
func (_u *LearnerStateUpdate) AddPlacementIndex(v int) *LearnerStateUpdate {
	_u.mutation.AddPlacementIndex(v)
	return _u
}

// SetPlacementCorrect sets the "placement_correct" field.
func (_u *LearnerStateUpdate) SetPlacementCorrect(v int) *LearnerStateUpdate {
	_u.mutation.ResetPlacementCorrect()
	_u.mutation.SetPlacementCorrect(v)
	return _u
}

// SetNillablePlacementCorrect sets the "placement_correct" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillablePlacementCorrect(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetPlacementCorrect(*v)
	}
	return _u
}

// AddPlacementCorrect adds value to the "placement_correct" field.
func (_u *LearnerStateUpdate) AddPlacementCorrect(v int) *LearnerStateUpdate {
	_u.mutation.AddPlacementCorrect(v)
	return _u
}

// SetPlacementDone sets the "placement_done" field.
func (_u *LearnerStateUpdate) SetPlacementDone(v bool) *LearnerStateUpdate {
	_u.mutation.SetPlacementDone(v)
	return _u
}

// SetNillablePlacementDone sets the "placement_done" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillablePlacementDone(v *bool) *LearnerStateUpdate {
	if v != nil {
		_u.SetPlacementDone(*v)
	}
	return _u
}

// SetBatchNum sets the "batch_num" field.
func (_u *LearnerStateUpdate) SetBatchNum(v int) *LearnerStateUpdate {
	_u.mutation.ResetBatchNum()
	_u.mutation.SetBatchNum(v)
	return _u
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableBatchNum(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetBatchNum(*v)
	}
	return _u
}

// AddBatchNum adds value to the "batch_num" field.
func (_u *LearnerStateUpdate) AddBatchNum(v int) *LearnerStateUpdate {
	_u.mutation.AddBatchNum(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerStateUpdate) SetUpdatedAt(v time.Time) *LearnerStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_u *LearnerStateUpdate) Mutation() *LearnerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerstate.Table, learnerstate.Columns, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learnerstate.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(learnerstate.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementIndex(); ok {
		_spec.SetField(learnerstate.FieldPlacementIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacementIndex(); ok {
		_spec.AddField(learnerstate.FieldPlacementIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementCorrect(); ok {
		_spec.SetField(learnerstate.FieldPlacementCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacementCorrect(); ok {
		_spec.AddField(learnerstate.FieldPlacementCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementDone(); ok {
		_spec.SetField(learnerstate.FieldPlacementDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatchNum(); ok {
		_spec.SetField(learnerstate.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNum(); ok {
		_spec.AddField(learnerstate.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerStateUpdateOne is the builder for updating a single LearnerState entity.
type LearnerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerStateUpdateOne) SetLearnerID(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableLearnerID(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *LearnerStateUpdateOne) AddLearnerID(v int) *LearnerStateUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetPlacementIndex sets the "placement_index" field.
func (_u *LearnerStateUpdateOne) SetPlacementIndex(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetPlacementIndex()
	_u.mutation.SetPlacementIndex(v)
	return _u
}

// SetNillablePlacementIndex sets the "placement_index" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillablePlacementIndex(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetPlacementIndex(*v)
	}
	return _u
}

// AddPlacementIndex adds value to the "placement_index" field.
func (_u *LearnerStateUpdateOne) AddPlacementIndex(v int) *LearnerStateUpdateOne {
	_u.mutation.AddPlacementIndex(v)
	return _u
}

// SetPlacementCorrect sets the "placement_correct" field.
func (_u *LearnerStateUpdateOne) SetPlacementCorrect(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetPlacementCorrect()
	_u.mutation.SetPlacementCorrect(v)
	return _u
}

// SetNillablePlacementCorrect sets the "placement_correct" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillablePlacementCorrect(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetPlacementCorrect(*v)
	}
	return _u
}

// AddPlacementCorrect adds value to the "placement_correct" field.
func (_u *LearnerStateUpdateOne) AddPlacementCorrect(v int) *LearnerStateUpdateOne {
	_u.mutation.AddPlacementCorrect(v)
	return _u
}

// SetPlacementDone sets the "placement_done" field.
func (_u *LearnerStateUpdateOne) SetPlacementDone(v bool) *LearnerStateUpdateOne {
	_u.mutation.SetPlacementDone(v)
	return _u
}

// SetNillablePlacementDone sets the "placement_done" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillablePlacementDone(v *bool) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetPlacementDone(*v)
	}
	return _u
}

// SetBatchNum sets the "batch_num" field.
func (_u *LearnerStateUpdateOne) SetBatchNum(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetBatchNum()
	_u.mutation.SetBatchNum(v)
	return _u
}

// SetNillableBatchNum sets the "batch_num" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableBatchNum(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetBatchNum(*v)
	}
	return _u
}

// AddBatchNum adds value to the "batch_num" field.
func (_u *LearnerStateUpdateOne) AddBatchNum(v int) *LearnerStateUpdateOne {
	_u.mutation.AddBatchNum(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerStateUpdateOne) SetUpdatedAt(v time.Time) *LearnerStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_u *LearnerStateUpdateOne) Mutation() *LearnerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerStateUpdate builder.
func (_u *LearnerStateUpdateOne) Where(ps ...predicate.LearnerState) *LearnerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerStateUpdateOne) Select(field string, fields ...string) *LearnerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerState entity.
func (_u *LearnerStateUpdateOne) Save(ctx context.Context) (*LearnerState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerStateUpdateOne) SaveX(ctx context.Context) *LearnerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerStateUpdateOne) sqlSave(ctx context.Context) (_node *LearnerState, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerstate.Table, learnerstate.Columns, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerstate.FieldID)
		for _, f := range fields {
			if !learnerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerstate.FieldID {
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
		_spec.SetField(learnerstate.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(learnerstate.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementIndex(); ok {
		_spec.SetField(learnerstate.FieldPlacementIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacementIndex(); ok {
		_spec.AddField(learnerstate.FieldPlacementIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementCorrect(); ok {
		_spec.SetField(learnerstate.FieldPlacementCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacementCorrect(); ok {
		_spec.AddField(learnerstate.FieldPlacementCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlacementDone(); ok {
		_spec.SetField(learnerstate.FieldPlacementDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatchNum(); ok {
		_spec.SetField(learnerstate.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNum(); ok {
		_spec.AddField(learnerstate.FieldBatchNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
