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
	"github.com/verba-app/verba/ent/attempt"
	"github.com/verba-app/verba/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptUpdate) SetLearnerID(v int) *AttemptUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableLearnerID(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *AttemptUpdate) AddLearnerID(v int) *AttemptUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetDueItemID sets the "due_item_id" field.
func (_u *AttemptUpdate) SetDueItemID(v int) *AttemptUpdate {
	_u.mutation.ResetDueItemID()
	_u.mutation.SetDueItemID(v)
	return _u
}

// SetNillableDueItemID sets the "due_item_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableDueItemID(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetDueItemID(*v)
	}
	return _u
}

// AddDueItemID adds value to the "due_item_id" field.
func (_u *AttemptUpdate) AddDueItemID(v int) *AttemptUpdate {
	_u.mutation.AddDueItemID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdate) SetSessionID(v string) *AttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSessionID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *AttemptUpdate) SetUnitKey(v string) *AttemptUpdate {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUnitKey(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *AttemptUpdate) SetExerciseIndex(v int) *AttemptUpdate {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableExerciseIndex(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *AttemptUpdate) AddExerciseIndex(v int) *AttemptUpdate {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *AttemptUpdate) SetItemIndex(v int) *AttemptUpdate {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableItemIndex(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *AttemptUpdate) AddItemIndex(v int) *AttemptUpdate {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdate) SetPrompt(v string) *AttemptUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillablePrompt(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptUpdate) SetAnswer(v string) *AttemptUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAnswer(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnswerNorm sets the "answer_norm" field.
func (_u *AttemptUpdate) SetAnswerNorm(v string) *AttemptUpdate {
	_u.mutation.SetAnswerNorm(v)
	return _u
}

// SetNillableAnswerNorm sets the "answer_norm" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAnswerNorm(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetAnswerNorm(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *AttemptUpdate) SetCanonical(v string) *AttemptUpdate {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCanonical(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetRuleKeys sets the "rule_keys" field.
func (_u *AttemptUpdate) SetRuleKeys(v []string) *AttemptUpdate {
	_u.mutation.SetRuleKeys(v)
	return _u
}

// AppendRuleKeys appends value to the "rule_keys" field.
func (_u *AttemptUpdate) AppendRuleKeys(v []string) *AttemptUpdate {
	_u.mutation.AppendRuleKeys(v)
	return _u
}

// ClearRuleKeys clears the value of the "rule_keys" field.
func (_u *AttemptUpdate) ClearRuleKeys() *AttemptUpdate {
	_u.mutation.ClearRuleKeys()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptUpdate) SetVerdict(v string) *AttemptUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableVerdict(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetEffectiveCorrect sets the "effective_correct" field.
func (_u *AttemptUpdate) SetEffectiveCorrect(v bool) *AttemptUpdate {
	_u.mutation.SetEffectiveCorrect(v)
	return _u
}

// SetNillableEffectiveCorrect sets the "effective_correct" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableEffectiveCorrect(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetEffectiveCorrect(*v)
	}
	return _u
}

// SetFlipped sets the "flipped" field.
func (_u *AttemptUpdate) SetFlipped(v bool) *AttemptUpdate {
	_u.mutation.SetFlipped(v)
	return _u
}

// SetNillableFlipped sets the "flipped" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFlipped(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetFlipped(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(attempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(attempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueItemID(); ok {
		_spec.SetField(attempt.FieldDueItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDueItemID(); ok {
		_spec.AddField(attempt.FieldDueItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(attempt.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(attempt.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(attempt.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(attempt.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(attempt.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerNorm(); ok {
		_spec.SetField(attempt.FieldAnswerNorm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(attempt.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleKeys(); ok {
		_spec.SetField(attempt.FieldRuleKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRuleKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldRuleKeys, value)
		})
	}
	if _u.mutation.RuleKeysCleared() {
		_spec.ClearField(attempt.FieldRuleKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveCorrect(); ok {
		_spec.SetField(attempt.FieldEffectiveCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flipped(); ok {
		_spec.SetField(attempt.FieldFlipped, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptUpdateOne) SetLearnerID(v int) *AttemptUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableLearnerID(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *AttemptUpdateOne) AddLearnerID(v int) *AttemptUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetDueItemID sets the "due_item_id" field.
func (_u *AttemptUpdateOne) SetDueItemID(v int) *AttemptUpdateOne {
	_u.mutation.ResetDueItemID()
	_u.mutation.SetDueItemID(v)
	return _u
}

// SetNillableDueItemID sets the "due_item_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableDueItemID(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetDueItemID(*v)
	}
	return _u
}

// AddDueItemID adds value to the "due_item_id" field.
func (_u *AttemptUpdateOne) AddDueItemID(v int) *AttemptUpdateOne {
	_u.mutation.AddDueItemID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdateOne) SetSessionID(v string) *AttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSessionID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *AttemptUpdateOne) SetUnitKey(v string) *AttemptUpdateOne {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUnitKey(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetExerciseIndex sets the "exercise_index" field.
func (_u *AttemptUpdateOne) SetExerciseIndex(v int) *AttemptUpdateOne {
	_u.mutation.ResetExerciseIndex()
	_u.mutation.SetExerciseIndex(v)
	return _u
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableExerciseIndex(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetExerciseIndex(*v)
	}
	return _u
}

// AddExerciseIndex adds value to the "exercise_index" field.
func (_u *AttemptUpdateOne) AddExerciseIndex(v int) *AttemptUpdateOne {
	_u.mutation.AddExerciseIndex(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *AttemptUpdateOne) SetItemIndex(v int) *AttemptUpdateOne {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableItemIndex(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *AttemptUpdateOne) AddItemIndex(v int) *AttemptUpdateOne {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdateOne) SetPrompt(v string) *AttemptUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillablePrompt(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptUpdateOne) SetAnswer(v string) *AttemptUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAnswer(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnswerNorm sets the "answer_norm" field.
func (_u *AttemptUpdateOne) SetAnswerNorm(v string) *AttemptUpdateOne {
	_u.mutation.SetAnswerNorm(v)
	return _u
}

// SetNillableAnswerNorm sets the "answer_norm" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAnswerNorm(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetAnswerNorm(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *AttemptUpdateOne) SetCanonical(v string) *AttemptUpdateOne {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCanonical(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetRuleKeys sets the "rule_keys" field.
func (_u *AttemptUpdateOne) SetRuleKeys(v []string) *AttemptUpdateOne {
	_u.mutation.SetRuleKeys(v)
	return _u
}

// AppendRuleKeys appends value to the "rule_keys" field.
func (_u *AttemptUpdateOne) AppendRuleKeys(v []string) *AttemptUpdateOne {
	_u.mutation.AppendRuleKeys(v)
	return _u
}

// ClearRuleKeys clears the value of the "rule_keys" field.
func (_u *AttemptUpdateOne) ClearRuleKeys() *AttemptUpdateOne {
	_u.mutation.ClearRuleKeys()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptUpdateOne) SetVerdict(v string) *AttemptUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableVerdict(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetEffectiveCorrect sets the "effective_correct" field.
func (_u *AttemptUpdateOne) SetEffectiveCorrect(v bool) *AttemptUpdateOne {
	_u.mutation.SetEffectiveCorrect(v)
	return _u
}

// SetNillableEffectiveCorrect sets the "effective_correct" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableEffectiveCorrect(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetEffectiveCorrect(*v)
	}
	return _u
}

// SetFlipped sets the "flipped" field.
func (_u *AttemptUpdateOne) SetFlipped(v bool) *AttemptUpdateOne {
	_u.mutation.SetFlipped(v)
	return _u
}

// SetNillableFlipped sets the "flipped" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFlipped(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetFlipped(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(attempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueItemID(); ok {
		_spec.SetField(attempt.FieldDueItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDueItemID(); ok {
		_spec.AddField(attempt.FieldDueItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(attempt.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseIndex(); ok {
		_spec.SetField(attempt.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseIndex(); ok {
		_spec.AddField(attempt.FieldExerciseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(attempt.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(attempt.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerNorm(); ok {
		_spec.SetField(attempt.FieldAnswerNorm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(attempt.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleKeys(); ok {
		_spec.SetField(attempt.FieldRuleKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRuleKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldRuleKeys, value)
		})
	}
	if _u.mutation.RuleKeysCleared() {
		_spec.ClearField(attempt.FieldRuleKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveCorrect(); ok {
		_spec.SetField(attempt.FieldEffectiveCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flipped(); ok {
		_spec.SetField(attempt.FieldFlipped, field.TypeBool, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
