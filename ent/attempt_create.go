// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *AttemptCreate) SetLearnerID(v int) *AttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetDueItemID sets the "due_item_id" field.
func (_c *AttemptCreate) SetDueItemID(v int) *AttemptCreate {
	_c.mutation.SetDueItemID(v)
	return _c
}

// SetNillableDueItemID sets the "due_item_id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableDueItemID(v *int) *AttemptCreate {
	if v != nil {
		_c.SetDueItemID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptCreate) SetSessionID(v string) *AttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUnitKey sets the "unit_key" field.
func (_c *AttemptCreate) SetUnitKey(v string) *AttemptCreate {
	_c.mutation.SetUnitKey(v)
	return _c
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUnitKey(v *string) *AttemptCreate {
	if v != nil {
		_c.SetUnitKey(*v)
	}
	return _c
}

// SetExerciseIndex sets the "exercise_index" field.
func (_c *AttemptCreate) SetExerciseIndex(v int) *AttemptCreate {
	_c.mutation.SetExerciseIndex(v)
	return _c
}

// SetNillableExerciseIndex sets the "exercise_index" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableExerciseIndex(v *int) *AttemptCreate {
	if v != nil {
		_c.SetExerciseIndex(*v)
	}
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *AttemptCreate) SetItemIndex(v int) *AttemptCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableItemIndex(v *int) *AttemptCreate {
	if v != nil {
		_c.SetItemIndex(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *AttemptCreate) SetPrompt(v string) *AttemptCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AttemptCreate) SetAnswer(v string) *AttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetAnswerNorm sets the "answer_norm" field.
func (_c *AttemptCreate) SetAnswerNorm(v string) *AttemptCreate {
	_c.mutation.SetAnswerNorm(v)
	return _c
}

// SetNillableAnswerNorm sets the "answer_norm" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableAnswerNorm(v *string) *AttemptCreate {
	if v != nil {
		_c.SetAnswerNorm(*v)
	}
	return _c
}

// SetCanonical sets the "canonical" field.
func (_c *AttemptCreate) SetCanonical(v string) *AttemptCreate {
	_c.mutation.SetCanonical(v)
	return _c
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCanonical(v *string) *AttemptCreate {
	if v != nil {
		_c.SetCanonical(*v)
	}
	return _c
}

// SetRuleKeys sets the "rule_keys" field.
func (_c *AttemptCreate) SetRuleKeys(v []string) *AttemptCreate {
	_c.mutation.SetRuleKeys(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AttemptCreate) SetVerdict(v string) *AttemptCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetEffectiveCorrect sets the "effective_correct" field.
func (_c *AttemptCreate) SetEffectiveCorrect(v bool) *AttemptCreate {
	_c.mutation.SetEffectiveCorrect(v)
	return _c
}

// SetFlipped sets the "flipped" field.
func (_c *AttemptCreate) SetFlipped(v bool) *AttemptCreate {
	_c.mutation.SetFlipped(v)
	return _c
}

// SetNillableFlipped sets the "flipped" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFlipped(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetFlipped(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.DueItemID(); !ok {
		v := attempt.DefaultDueItemID
		_c.mutation.SetDueItemID(v)
	}
	if _, ok := _c.mutation.UnitKey(); !ok {
		v := attempt.DefaultUnitKey
		_c.mutation.SetUnitKey(v)
	}
	if _, ok := _c.mutation.ExerciseIndex(); !ok {
		v := attempt.DefaultExerciseIndex
		_c.mutation.SetExerciseIndex(v)
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		v := attempt.DefaultItemIndex
		_c.mutation.SetItemIndex(v)
	}
	if _, ok := _c.mutation.AnswerNorm(); !ok {
		v := attempt.DefaultAnswerNorm
		_c.mutation.SetAnswerNorm(v)
	}
	if _, ok := _c.mutation.Canonical(); !ok {
		v := attempt.DefaultCanonical
		_c.mutation.SetCanonical(v)
	}
	if _, ok := _c.mutation.Flipped(); !ok {
		v := attempt.DefaultFlipped
		_c.mutation.SetFlipped(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Attempt.learner_id"`)}
	}
	if _, ok := _c.mutation.DueItemID(); !ok {
		return &ValidationError{Name: "due_item_id", err: errors.New(`ent: missing required field "Attempt.due_item_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Attempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitKey(); !ok {
		return &ValidationError{Name: "unit_key", err: errors.New(`ent: missing required field "Attempt.unit_key"`)}
	}
	if _, ok := _c.mutation.ExerciseIndex(); !ok {
		return &ValidationError{Name: "exercise_index", err: errors.New(`ent: missing required field "Attempt.exercise_index"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "Attempt.item_index"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Attempt.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Attempt.answer"`)}
	}
	if _, ok := _c.mutation.AnswerNorm(); !ok {
		return &ValidationError{Name: "answer_norm", err: errors.New(`ent: missing required field "Attempt.answer_norm"`)}
	}
	if _, ok := _c.mutation.Canonical(); !ok {
		return &ValidationError{Name: "canonical", err: errors.New(`ent: missing required field "Attempt.canonical"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "Attempt.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EffectiveCorrect(); !ok {
		return &ValidationError{Name: "effective_correct", err: errors.New(`ent: missing required field "Attempt.effective_correct"`)}
	}
	if _, ok := _c.mutation.Flipped(); !ok {
		return &ValidationError{Name: "flipped", err: errors.New(`ent: missing required field "Attempt.flipped"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(attempt.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.DueItemID(); ok {
		_spec.SetField(attempt.FieldDueItemID, field.TypeInt, value)
		_node.DueItemID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UnitKey(); ok {
		_spec.SetField(attempt.FieldUnitKey, field.TypeString, value)
		_node.UnitKey = value
	}
	if value, ok := _c.mutation.ExerciseIndex(); ok {
		_spec.SetField(attempt.FieldExerciseIndex, field.TypeInt, value)
		_node.ExerciseIndex = value
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(attempt.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.AnswerNorm(); ok {
		_spec.SetField(attempt.FieldAnswerNorm, field.TypeString, value)
		_node.AnswerNorm = value
	}
	if value, ok := _c.mutation.Canonical(); ok {
		_spec.SetField(attempt.FieldCanonical, field.TypeString, value)
		_node.Canonical = value
	}
	if value, ok := _c.mutation.RuleKeys(); ok {
		_spec.SetField(attempt.FieldRuleKeys, field.TypeJSON, value)
		_node.RuleKeys = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.EffectiveCorrect(); ok {
		_spec.SetField(attempt.FieldEffectiveCorrect, field.TypeBool, value)
		_node.EffectiveCorrect = value
	}
	if value, ok := _c.mutation.Flipped(); ok {
		_spec.SetField(attempt.FieldFlipped, field.TypeBool, value)
		_node.Flipped = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
