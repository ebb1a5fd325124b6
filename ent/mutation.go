// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/attempt"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/ent/explaincache"
	"github.com/verba-app/verba/ent/learner"
	"github.com/verba-app/verba/ent/learnerstate"
	"github.com/verba-app/verba/ent/llmrequestevent"
	"github.com/verba-app/verba/ent/placementitem"
	"github.com/verba-app/verba/ent/predicate"
	"github.com/verba-app/verba/ent/rule"
	"github.com/verba-app/verba/ent/unitexercise"
	"github.com/verba-app/verba/internal/content"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt         = "Attempt"
	TypeDueItem         = "DueItem"
	TypeExplainCache    = "ExplainCache"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearner         = "Learner"
	TypeLearnerState    = "LearnerState"
	TypePlacementItem   = "PlacementItem"
	TypeRule            = "Rule"
	TypeUnitExercise    = "UnitExercise"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                Op
	typ               string
	id                *int
	learner_id        *int
	addlearner_id     *int
	due_item_id       *int
	adddue_item_id    *int
	session_id        *string
	unit_key          *string
	exercise_index    *int
	addexercise_index *int
	item_index        *int
	additem_index     *int
	prompt            *string
	answer            *string
	answer_norm       *string
	canonical         *string
	rule_keys         *[]string
	appendrule_keys   []string
	verdict           *string
	effective_correct *bool
	flipped           *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Attempt, error)
	predicates        []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *AttemptMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *AttemptMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetDueItemID sets the "due_item_id" field.
func (m *AttemptMutation) SetDueItemID(i int) {
	m.due_item_id = &i
	m.adddue_item_id = nil
}

// DueItemID returns the value of the "due_item_id" field in the mutation.
func (m *AttemptMutation) DueItemID() (r int, exists bool) {
	v := m.due_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDueItemID returns the old "due_item_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldDueItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueItemID: %w", err)
	}
	return oldValue.DueItemID, nil
}

// AddDueItemID adds i to the "due_item_id" field.
func (m *AttemptMutation) AddDueItemID(i int) {
	if m.adddue_item_id != nil {
		*m.adddue_item_id += i
	} else {
		m.adddue_item_id = &i
	}
}

// AddedDueItemID returns the value that was added to the "due_item_id" field in this mutation.
func (m *AttemptMutation) AddedDueItemID() (r int, exists bool) {
	v := m.adddue_item_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetDueItemID resets all changes to the "due_item_id" field.
func (m *AttemptMutation) ResetDueItemID() {
	m.due_item_id = nil
	m.adddue_item_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUnitKey sets the "unit_key" field.
func (m *AttemptMutation) SetUnitKey(s string) {
	m.unit_key = &s
}

// UnitKey returns the value of the "unit_key" field in the mutation.
func (m *AttemptMutation) UnitKey() (r string, exists bool) {
	v := m.unit_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitKey returns the old "unit_key" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUnitKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitKey: %w", err)
	}
	return oldValue.UnitKey, nil
}

// ResetUnitKey resets all changes to the "unit_key" field.
func (m *AttemptMutation) ResetUnitKey() {
	m.unit_key = nil
}

// SetExerciseIndex sets the "exercise_index" field.
func (m *AttemptMutation) SetExerciseIndex(i int) {
	m.exercise_index = &i
	m.addexercise_index = nil
}

// ExerciseIndex returns the value of the "exercise_index" field in the mutation.
func (m *AttemptMutation) ExerciseIndex() (r int, exists bool) {
	v := m.exercise_index
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseIndex returns the old "exercise_index" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldExerciseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseIndex: %w", err)
	}
	return oldValue.ExerciseIndex, nil
}

// AddExerciseIndex adds i to the "exercise_index" field.
func (m *AttemptMutation) AddExerciseIndex(i int) {
	if m.addexercise_index != nil {
		*m.addexercise_index += i
	} else {
		m.addexercise_index = &i
	}
}

// AddedExerciseIndex returns the value that was added to the "exercise_index" field in this mutation.
func (m *AttemptMutation) AddedExerciseIndex() (r int, exists bool) {
	v := m.addexercise_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseIndex resets all changes to the "exercise_index" field.
func (m *AttemptMutation) ResetExerciseIndex() {
	m.exercise_index = nil
	m.addexercise_index = nil
}

// SetItemIndex sets the "item_index" field.
func (m *AttemptMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *AttemptMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldItemIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *AttemptMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *AttemptMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *AttemptMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
}

// SetPrompt sets the "prompt" field.
func (m *AttemptMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *AttemptMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *AttemptMutation) ResetPrompt() {
	m.prompt = nil
}

// SetAnswer sets the "answer" field.
func (m *AttemptMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *AttemptMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *AttemptMutation) ResetAnswer() {
	m.answer = nil
}

// SetAnswerNorm sets the "answer_norm" field.
func (m *AttemptMutation) SetAnswerNorm(s string) {
	m.answer_norm = &s
}

// AnswerNorm returns the value of the "answer_norm" field in the mutation.
func (m *AttemptMutation) AnswerNorm() (r string, exists bool) {
	v := m.answer_norm
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerNorm returns the old "answer_norm" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAnswerNorm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerNorm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerNorm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerNorm: %w", err)
	}
	return oldValue.AnswerNorm, nil
}

// ResetAnswerNorm resets all changes to the "answer_norm" field.
func (m *AttemptMutation) ResetAnswerNorm() {
	m.answer_norm = nil
}

// SetCanonical sets the "canonical" field.
func (m *AttemptMutation) SetCanonical(s string) {
	m.canonical = &s
}

// Canonical returns the value of the "canonical" field in the mutation.
func (m *AttemptMutation) Canonical() (r string, exists bool) {
	v := m.canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonical returns the old "canonical" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCanonical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonical: %w", err)
	}
	return oldValue.Canonical, nil
}

// ResetCanonical resets all changes to the "canonical" field.
func (m *AttemptMutation) ResetCanonical() {
	m.canonical = nil
}

// SetRuleKeys sets the "rule_keys" field.
func (m *AttemptMutation) SetRuleKeys(s []string) {
	m.rule_keys = &s
	m.appendrule_keys = nil
}

// RuleKeys returns the value of the "rule_keys" field in the mutation.
func (m *AttemptMutation) RuleKeys() (r []string, exists bool) {
	v := m.rule_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleKeys returns the old "rule_keys" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldRuleKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleKeys: %w", err)
	}
	return oldValue.RuleKeys, nil
}

// AppendRuleKeys adds s to the "rule_keys" field.
func (m *AttemptMutation) AppendRuleKeys(s []string) {
	m.appendrule_keys = append(m.appendrule_keys, s...)
}

// AppendedRuleKeys returns the list of values that were appended to the "rule_keys" field in this mutation.
func (m *AttemptMutation) AppendedRuleKeys() ([]string, bool) {
	if len(m.appendrule_keys) == 0 {
		return nil, false
	}
	return m.appendrule_keys, true
}

// ClearRuleKeys clears the value of the "rule_keys" field.
func (m *AttemptMutation) ClearRuleKeys() {
	m.rule_keys = nil
	m.appendrule_keys = nil
	m.clearedFields[attempt.FieldRuleKeys] = struct{}{}
}

// RuleKeysCleared returns if the "rule_keys" field was cleared in this mutation.
func (m *AttemptMutation) RuleKeysCleared() bool {
	_, ok := m.clearedFields[attempt.FieldRuleKeys]
	return ok
}

// ResetRuleKeys resets all changes to the "rule_keys" field.
func (m *AttemptMutation) ResetRuleKeys() {
	m.rule_keys = nil
	m.appendrule_keys = nil
	delete(m.clearedFields, attempt.FieldRuleKeys)
}

// SetVerdict sets the "verdict" field.
func (m *AttemptMutation) SetVerdict(s string) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *AttemptMutation) Verdict() (r string, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldVerdict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *AttemptMutation) ResetVerdict() {
	m.verdict = nil
}

// SetEffectiveCorrect sets the "effective_correct" field.
func (m *AttemptMutation) SetEffectiveCorrect(b bool) {
	m.effective_correct = &b
}

// EffectiveCorrect returns the value of the "effective_correct" field in the mutation.
func (m *AttemptMutation) EffectiveCorrect() (r bool, exists bool) {
	v := m.effective_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveCorrect returns the old "effective_correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldEffectiveCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveCorrect: %w", err)
	}
	return oldValue.EffectiveCorrect, nil
}

// ResetEffectiveCorrect resets all changes to the "effective_correct" field.
func (m *AttemptMutation) ResetEffectiveCorrect() {
	m.effective_correct = nil
}

// SetFlipped sets the "flipped" field.
func (m *AttemptMutation) SetFlipped(b bool) {
	m.flipped = &b
}

// Flipped returns the value of the "flipped" field in the mutation.
func (m *AttemptMutation) Flipped() (r bool, exists bool) {
	v := m.flipped
	if v == nil {
		return
	}
	return *v, true
}

// OldFlipped returns the old "flipped" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFlipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlipped: %w", err)
	}
	return oldValue.Flipped, nil
}

// ResetFlipped resets all changes to the "flipped" field.
func (m *AttemptMutation) ResetFlipped() {
	m.flipped = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.learner_id != nil {
		fields = append(fields, attempt.FieldLearnerID)
	}
	if m.due_item_id != nil {
		fields = append(fields, attempt.FieldDueItemID)
	}
	if m.session_id != nil {
		fields = append(fields, attempt.FieldSessionID)
	}
	if m.unit_key != nil {
		fields = append(fields, attempt.FieldUnitKey)
	}
	if m.exercise_index != nil {
		fields = append(fields, attempt.FieldExerciseIndex)
	}
	if m.item_index != nil {
		fields = append(fields, attempt.FieldItemIndex)
	}
	if m.prompt != nil {
		fields = append(fields, attempt.FieldPrompt)
	}
	if m.answer != nil {
		fields = append(fields, attempt.FieldAnswer)
	}
	if m.answer_norm != nil {
		fields = append(fields, attempt.FieldAnswerNorm)
	}
	if m.canonical != nil {
		fields = append(fields, attempt.FieldCanonical)
	}
	if m.rule_keys != nil {
		fields = append(fields, attempt.FieldRuleKeys)
	}
	if m.verdict != nil {
		fields = append(fields, attempt.FieldVerdict)
	}
	if m.effective_correct != nil {
		fields = append(fields, attempt.FieldEffectiveCorrect)
	}
	if m.flipped != nil {
		fields = append(fields, attempt.FieldFlipped)
	}
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldLearnerID:
		return m.LearnerID()
	case attempt.FieldDueItemID:
		return m.DueItemID()
	case attempt.FieldSessionID:
		return m.SessionID()
	case attempt.FieldUnitKey:
		return m.UnitKey()
	case attempt.FieldExerciseIndex:
		return m.ExerciseIndex()
	case attempt.FieldItemIndex:
		return m.ItemIndex()
	case attempt.FieldPrompt:
		return m.Prompt()
	case attempt.FieldAnswer:
		return m.Answer()
	case attempt.FieldAnswerNorm:
		return m.AnswerNorm()
	case attempt.FieldCanonical:
		return m.Canonical()
	case attempt.FieldRuleKeys:
		return m.RuleKeys()
	case attempt.FieldVerdict:
		return m.Verdict()
	case attempt.FieldEffectiveCorrect:
		return m.EffectiveCorrect()
	case attempt.FieldFlipped:
		return m.Flipped()
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attempt.FieldDueItemID:
		return m.OldDueItemID(ctx)
	case attempt.FieldSessionID:
		return m.OldSessionID(ctx)
	case attempt.FieldUnitKey:
		return m.OldUnitKey(ctx)
	case attempt.FieldExerciseIndex:
		return m.OldExerciseIndex(ctx)
	case attempt.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case attempt.FieldPrompt:
		return m.OldPrompt(ctx)
	case attempt.FieldAnswer:
		return m.OldAnswer(ctx)
	case attempt.FieldAnswerNorm:
		return m.OldAnswerNorm(ctx)
	case attempt.FieldCanonical:
		return m.OldCanonical(ctx)
	case attempt.FieldRuleKeys:
		return m.OldRuleKeys(ctx)
	case attempt.FieldVerdict:
		return m.OldVerdict(ctx)
	case attempt.FieldEffectiveCorrect:
		return m.OldEffectiveCorrect(ctx)
	case attempt.FieldFlipped:
		return m.OldFlipped(ctx)
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attempt.FieldDueItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueItemID(v)
		return nil
	case attempt.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attempt.FieldUnitKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitKey(v)
		return nil
	case attempt.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseIndex(v)
		return nil
	case attempt.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case attempt.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case attempt.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case attempt.FieldAnswerNorm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerNorm(v)
		return nil
	case attempt.FieldCanonical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonical(v)
		return nil
	case attempt.FieldRuleKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleKeys(v)
		return nil
	case attempt.FieldVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case attempt.FieldEffectiveCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveCorrect(v)
		return nil
	case attempt.FieldFlipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlipped(v)
		return nil
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addlearner_id != nil {
		fields = append(fields, attempt.FieldLearnerID)
	}
	if m.adddue_item_id != nil {
		fields = append(fields, attempt.FieldDueItemID)
	}
	if m.addexercise_index != nil {
		fields = append(fields, attempt.FieldExerciseIndex)
	}
	if m.additem_index != nil {
		fields = append(fields, attempt.FieldItemIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldLearnerID:
		return m.AddedLearnerID()
	case attempt.FieldDueItemID:
		return m.AddedDueItemID()
	case attempt.FieldExerciseIndex:
		return m.AddedExerciseIndex()
	case attempt.FieldItemIndex:
		return m.AddedItemIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case attempt.FieldDueItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueItemID(v)
		return nil
	case attempt.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseIndex(v)
		return nil
	case attempt.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldRuleKeys) {
		fields = append(fields, attempt.FieldRuleKeys)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldRuleKeys:
		m.ClearRuleKeys()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attempt.FieldDueItemID:
		m.ResetDueItemID()
		return nil
	case attempt.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attempt.FieldUnitKey:
		m.ResetUnitKey()
		return nil
	case attempt.FieldExerciseIndex:
		m.ResetExerciseIndex()
		return nil
	case attempt.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case attempt.FieldPrompt:
		m.ResetPrompt()
		return nil
	case attempt.FieldAnswer:
		m.ResetAnswer()
		return nil
	case attempt.FieldAnswerNorm:
		m.ResetAnswerNorm()
		return nil
	case attempt.FieldCanonical:
		m.ResetCanonical()
		return nil
	case attempt.FieldRuleKeys:
		m.ResetRuleKeys()
		return nil
	case attempt.FieldVerdict:
		m.ResetVerdict()
		return nil
	case attempt.FieldEffectiveCorrect:
		m.ResetEffectiveCorrect()
		return nil
	case attempt.FieldFlipped:
		m.ResetFlipped()
		return nil
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// DueItemMutation represents an operation that mutates the DueItem nodes in the graph.
type DueItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	learner_id             *int
	addlearner_id          *int
	kind                   *string
	unit_key               *string
	due_at                 *time.Time
	exercise_index         *int
	addexercise_index      *int
	item_in_exercise       *int
	additem_in_exercise    *int
	correct_in_exercise    *int
	addcorrect_in_exercise *int
	batch_num              *int
	addbatch_num           *int
	is_active              *bool
	cause_rule_keys        *[]string
	appendcause_rule_keys  []string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DueItem, error)
	predicates             []predicate.DueItem
}

var _ ent.Mutation = (*DueItemMutation)(nil)

// dueitemOption allows management of the mutation configuration using functional options.
type dueitemOption func(*DueItemMutation)

// newDueItemMutation creates new mutation for the DueItem entity.
func newDueItemMutation(c config, op Op, opts ...dueitemOption) *DueItemMutation {
	m := &DueItemMutation{
		config:        c,
		op:            op,
		typ:           TypeDueItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDueItemID sets the ID field of the mutation.
func withDueItemID(id int) dueitemOption {
	return func(m *DueItemMutation) {
		var (
			err   error
			once  sync.Once
			value *DueItem
		)
		m.oldValue = func(ctx context.Context) (*DueItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DueItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDueItem sets the old DueItem of the mutation.
func withDueItem(node *DueItem) dueitemOption {
	return func(m *DueItemMutation) {
		m.oldValue = func(context.Context) (*DueItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DueItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DueItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DueItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DueItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DueItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *DueItemMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *DueItemMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *DueItemMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *DueItemMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *DueItemMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetKind sets the "kind" field.
func (m *DueItemMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DueItemMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DueItemMutation) ResetKind() {
	m.kind = nil
}

// SetUnitKey sets the "unit_key" field.
func (m *DueItemMutation) SetUnitKey(s string) {
	m.unit_key = &s
}

// UnitKey returns the value of the "unit_key" field in the mutation.
func (m *DueItemMutation) UnitKey() (r string, exists bool) {
	v := m.unit_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitKey returns the old "unit_key" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldUnitKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitKey: %w", err)
	}
	return oldValue.UnitKey, nil
}

// ResetUnitKey resets all changes to the "unit_key" field.
func (m *DueItemMutation) ResetUnitKey() {
	m.unit_key = nil
}

// SetDueAt sets the "due_at" field.
func (m *DueItemMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *DueItemMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldDueAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *DueItemMutation) ResetDueAt() {
	m.due_at = nil
}

// SetExerciseIndex sets the "exercise_index" field.
func (m *DueItemMutation) SetExerciseIndex(i int) {
	m.exercise_index = &i
	m.addexercise_index = nil
}

// ExerciseIndex returns the value of the "exercise_index" field in the mutation.
func (m *DueItemMutation) ExerciseIndex() (r int, exists bool) {
	v := m.exercise_index
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseIndex returns the old "exercise_index" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldExerciseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseIndex: %w", err)
	}
	return oldValue.ExerciseIndex, nil
}

// AddExerciseIndex adds i to the "exercise_index" field.
func (m *DueItemMutation) AddExerciseIndex(i int) {
	if m.addexercise_index != nil {
		*m.addexercise_index += i
	} else {
		m.addexercise_index = &i
	}
}

// AddedExerciseIndex returns the value that was added to the "exercise_index" field in this mutation.
func (m *DueItemMutation) AddedExerciseIndex() (r int, exists bool) {
	v := m.addexercise_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseIndex resets all changes to the "exercise_index" field.
func (m *DueItemMutation) ResetExerciseIndex() {
	m.exercise_index = nil
	m.addexercise_index = nil
}

// SetItemInExercise sets the "item_in_exercise" field.
func (m *DueItemMutation) SetItemInExercise(i int) {
	m.item_in_exercise = &i
	m.additem_in_exercise = nil
}

// ItemInExercise returns the value of the "item_in_exercise" field in the mutation.
func (m *DueItemMutation) ItemInExercise() (r int, exists bool) {
	v := m.item_in_exercise
	if v == nil {
		return
	}
	return *v, true
}

// OldItemInExercise returns the old "item_in_exercise" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldItemInExercise(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemInExercise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemInExercise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemInExercise: %w", err)
	}
	return oldValue.ItemInExercise, nil
}

// AddItemInExercise adds i to the "item_in_exercise" field.
func (m *DueItemMutation) AddItemInExercise(i int) {
	if m.additem_in_exercise != nil {
		*m.additem_in_exercise += i
	} else {
		m.additem_in_exercise = &i
	}
}

// AddedItemInExercise returns the value that was added to the "item_in_exercise" field in this mutation.
func (m *DueItemMutation) AddedItemInExercise() (r int, exists bool) {
	v := m.additem_in_exercise
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemInExercise resets all changes to the "item_in_exercise" field.
func (m *DueItemMutation) ResetItemInExercise() {
	m.item_in_exercise = nil
	m.additem_in_exercise = nil
}

// SetCorrectInExercise sets the "correct_in_exercise" field.
func (m *DueItemMutation) SetCorrectInExercise(i int) {
	m.correct_in_exercise = &i
	m.addcorrect_in_exercise = nil
}

// CorrectInExercise returns the value of the "correct_in_exercise" field in the mutation.
func (m *DueItemMutation) CorrectInExercise() (r int, exists bool) {
	v := m.correct_in_exercise
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectInExercise returns the old "correct_in_exercise" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldCorrectInExercise(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectInExercise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectInExercise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectInExercise: %w", err)
	}
	return oldValue.CorrectInExercise, nil
}

// AddCorrectInExercise adds i to the "correct_in_exercise" field.
func (m *DueItemMutation) AddCorrectInExercise(i int) {
	if m.addcorrect_in_exercise != nil {
		*m.addcorrect_in_exercise += i
	} else {
		m.addcorrect_in_exercise = &i
	}
}

// AddedCorrectInExercise returns the value that was added to the "correct_in_exercise" field in this mutation.
func (m *DueItemMutation) AddedCorrectInExercise() (r int, exists bool) {
	v := m.addcorrect_in_exercise
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectInExercise resets all changes to the "correct_in_exercise" field.
func (m *DueItemMutation) ResetCorrectInExercise() {
	m.correct_in_exercise = nil
	m.addcorrect_in_exercise = nil
}

// SetBatchNum sets the "batch_num" field.
func (m *DueItemMutation) SetBatchNum(i int) {
	m.batch_num = &i
	m.addbatch_num = nil
}

// BatchNum returns the value of the "batch_num" field in the mutation.
func (m *DueItemMutation) BatchNum() (r int, exists bool) {
	v := m.batch_num
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNum returns the old "batch_num" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldBatchNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNum: %w", err)
	}
	return oldValue.BatchNum, nil
}

// AddBatchNum adds i to the "batch_num" field.
func (m *DueItemMutation) AddBatchNum(i int) {
	if m.addbatch_num != nil {
		*m.addbatch_num += i
	} else {
		m.addbatch_num = &i
	}
}

// AddedBatchNum returns the value that was added to the "batch_num" field in this mutation.
func (m *DueItemMutation) AddedBatchNum() (r int, exists bool) {
	v := m.addbatch_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNum resets all changes to the "batch_num" field.
func (m *DueItemMutation) ResetBatchNum() {
	m.batch_num = nil
	m.addbatch_num = nil
}

// SetIsActive sets the "is_active" field.
func (m *DueItemMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DueItemMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DueItemMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCauseRuleKeys sets the "cause_rule_keys" field.
func (m *DueItemMutation) SetCauseRuleKeys(s []string) {
	m.cause_rule_keys = &s
	m.appendcause_rule_keys = nil
}

// CauseRuleKeys returns the value of the "cause_rule_keys" field in the mutation.
func (m *DueItemMutation) CauseRuleKeys() (r []string, exists bool) {
	v := m.cause_rule_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseRuleKeys returns the old "cause_rule_keys" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldCauseRuleKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseRuleKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseRuleKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseRuleKeys: %w", err)
	}
	return oldValue.CauseRuleKeys, nil
}

// AppendCauseRuleKeys adds s to the "cause_rule_keys" field.
func (m *DueItemMutation) AppendCauseRuleKeys(s []string) {
	m.appendcause_rule_keys = append(m.appendcause_rule_keys, s...)
}

// AppendedCauseRuleKeys returns the list of values that were appended to the "cause_rule_keys" field in this mutation.
func (m *DueItemMutation) AppendedCauseRuleKeys() ([]string, bool) {
	if len(m.appendcause_rule_keys) == 0 {
		return nil, false
	}
	return m.appendcause_rule_keys, true
}

// ClearCauseRuleKeys clears the value of the "cause_rule_keys" field.
func (m *DueItemMutation) ClearCauseRuleKeys() {
	m.cause_rule_keys = nil
	m.appendcause_rule_keys = nil
	m.clearedFields[dueitem.FieldCauseRuleKeys] = struct{}{}
}

// CauseRuleKeysCleared returns if the "cause_rule_keys" field was cleared in this mutation.
func (m *DueItemMutation) CauseRuleKeysCleared() bool {
	_, ok := m.clearedFields[dueitem.FieldCauseRuleKeys]
	return ok
}

// ResetCauseRuleKeys resets all changes to the "cause_rule_keys" field.
func (m *DueItemMutation) ResetCauseRuleKeys() {
	m.cause_rule_keys = nil
	m.appendcause_rule_keys = nil
	delete(m.clearedFields, dueitem.FieldCauseRuleKeys)
}

// SetCreatedAt sets the "created_at" field.
func (m *DueItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DueItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DueItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DueItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DueItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DueItem entity.
// If the DueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DueItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DueItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DueItemMutation builder.
func (m *DueItemMutation) Where(ps ...predicate.DueItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DueItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DueItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DueItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DueItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DueItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DueItem).
func (m *DueItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DueItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.learner_id != nil {
		fields = append(fields, dueitem.FieldLearnerID)
	}
	if m.kind != nil {
		fields = append(fields, dueitem.FieldKind)
	}
	if m.unit_key != nil {
		fields = append(fields, dueitem.FieldUnitKey)
	}
	if m.due_at != nil {
		fields = append(fields, dueitem.FieldDueAt)
	}
	if m.exercise_index != nil {
		fields = append(fields, dueitem.FieldExerciseIndex)
	}
	if m.item_in_exercise != nil {
		fields = append(fields, dueitem.FieldItemInExercise)
	}
	if m.correct_in_exercise != nil {
		fields = append(fields, dueitem.FieldCorrectInExercise)
	}
	if m.batch_num != nil {
		fields = append(fields, dueitem.FieldBatchNum)
	}
	if m.is_active != nil {
		fields = append(fields, dueitem.FieldIsActive)
	}
	if m.cause_rule_keys != nil {
		fields = append(fields, dueitem.FieldCauseRuleKeys)
	}
	if m.created_at != nil {
		fields = append(fields, dueitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dueitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DueItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dueitem.FieldLearnerID:
		return m.LearnerID()
	case dueitem.FieldKind:
		return m.Kind()
	case dueitem.FieldUnitKey:
		return m.UnitKey()
	case dueitem.FieldDueAt:
		return m.DueAt()
	case dueitem.FieldExerciseIndex:
		return m.ExerciseIndex()
	case dueitem.FieldItemInExercise:
		return m.ItemInExercise()
	case dueitem.FieldCorrectInExercise:
		return m.CorrectInExercise()
	case dueitem.FieldBatchNum:
		return m.BatchNum()
	case dueitem.FieldIsActive:
		return m.IsActive()
	case dueitem.FieldCauseRuleKeys:
		return m.CauseRuleKeys()
	case dueitem.FieldCreatedAt:
		return m.CreatedAt()
	case dueitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DueItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dueitem.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case dueitem.FieldKind:
		return m.OldKind(ctx)
	case dueitem.FieldUnitKey:
		return m.OldUnitKey(ctx)
	case dueitem.FieldDueAt:
		return m.OldDueAt(ctx)
	case dueitem.FieldExerciseIndex:
		return m.OldExerciseIndex(ctx)
	case dueitem.FieldItemInExercise:
		return m.OldItemInExercise(ctx)
	case dueitem.FieldCorrectInExercise:
		return m.OldCorrectInExercise(ctx)
	case dueitem.FieldBatchNum:
		return m.OldBatchNum(ctx)
	case dueitem.FieldIsActive:
		return m.OldIsActive(ctx)
	case dueitem.FieldCauseRuleKeys:
		return m.OldCauseRuleKeys(ctx)
	case dueitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dueitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DueItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DueItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dueitem.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case dueitem.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case dueitem.FieldUnitKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitKey(v)
		return nil
	case dueitem.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case dueitem.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseIndex(v)
		return nil
	case dueitem.FieldItemInExercise:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemInExercise(v)
		return nil
	case dueitem.FieldCorrectInExercise:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectInExercise(v)
		return nil
	case dueitem.FieldBatchNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNum(v)
		return nil
	case dueitem.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case dueitem.FieldCauseRuleKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseRuleKeys(v)
		return nil
	case dueitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dueitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DueItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DueItemMutation) AddedFields() []string {
	var fields []string
	if m.addlearner_id != nil {
		fields = append(fields, dueitem.FieldLearnerID)
	}
	if m.addexercise_index != nil {
		fields = append(fields, dueitem.FieldExerciseIndex)
	}
	if m.additem_in_exercise != nil {
		fields = append(fields, dueitem.FieldItemInExercise)
	}
	if m.addcorrect_in_exercise != nil {
		fields = append(fields, dueitem.FieldCorrectInExercise)
	}
	if m.addbatch_num != nil {
		fields = append(fields, dueitem.FieldBatchNum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DueItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dueitem.FieldLearnerID:
		return m.AddedLearnerID()
	case dueitem.FieldExerciseIndex:
		return m.AddedExerciseIndex()
	case dueitem.FieldItemInExercise:
		return m.AddedItemInExercise()
	case dueitem.FieldCorrectInExercise:
		return m.AddedCorrectInExercise()
	case dueitem.FieldBatchNum:
		return m.AddedBatchNum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DueItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dueitem.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case dueitem.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseIndex(v)
		return nil
	case dueitem.FieldItemInExercise:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemInExercise(v)
		return nil
	case dueitem.FieldCorrectInExercise:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectInExercise(v)
		return nil
	case dueitem.FieldBatchNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNum(v)
		return nil
	}
	return fmt.Errorf("unknown DueItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DueItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dueitem.FieldCauseRuleKeys) {
		fields = append(fields, dueitem.FieldCauseRuleKeys)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DueItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DueItemMutation) ClearField(name string) error {
	switch name {
	case dueitem.FieldCauseRuleKeys:
		m.ClearCauseRuleKeys()
		return nil
	}
	return fmt.Errorf("unknown DueItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DueItemMutation) ResetField(name string) error {
	switch name {
	case dueitem.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case dueitem.FieldKind:
		m.ResetKind()
		return nil
	case dueitem.FieldUnitKey:
		m.ResetUnitKey()
		return nil
	case dueitem.FieldDueAt:
		m.ResetDueAt()
		return nil
	case dueitem.FieldExerciseIndex:
		m.ResetExerciseIndex()
		return nil
	case dueitem.FieldItemInExercise:
		m.ResetItemInExercise()
		return nil
	case dueitem.FieldCorrectInExercise:
		m.ResetCorrectInExercise()
		return nil
	case dueitem.FieldBatchNum:
		m.ResetBatchNum()
		return nil
	case dueitem.FieldIsActive:
		m.ResetIsActive()
		return nil
	case dueitem.FieldCauseRuleKeys:
		m.ResetCauseRuleKeys()
		return nil
	case dueitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dueitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DueItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DueItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DueItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DueItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DueItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DueItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DueItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DueItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DueItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DueItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DueItem edge %s", name)
}

// ExplainCacheMutation represents an operation that mutates the ExplainCache nodes in the graph.
type ExplainCacheMutation struct {
	config
	op            Op
	typ           string
	id            *int
	cache_key     *string
	explanation   *string
	verdict_flip  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExplainCache, error)
	predicates    []predicate.ExplainCache
}

var _ ent.Mutation = (*ExplainCacheMutation)(nil)

// explaincacheOption allows management of the mutation configuration using functional options.
type explaincacheOption func(*ExplainCacheMutation)

// newExplainCacheMutation creates new mutation for the ExplainCache entity.
func newExplainCacheMutation(c config, op Op, opts ...explaincacheOption) *ExplainCacheMutation {
	m := &ExplainCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeExplainCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExplainCacheID sets the ID field of the mutation.
func withExplainCacheID(id int) explaincacheOption {
	return func(m *ExplainCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *ExplainCache
		)
		m.oldValue = func(ctx context.Context) (*ExplainCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExplainCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExplainCache sets the old ExplainCache of the mutation.
func withExplainCache(node *ExplainCache) explaincacheOption {
	return func(m *ExplainCacheMutation) {
		m.oldValue = func(context.Context) (*ExplainCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExplainCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExplainCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExplainCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExplainCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExplainCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCacheKey sets the "cache_key" field.
func (m *ExplainCacheMutation) SetCacheKey(s string) {
	m.cache_key = &s
}

// CacheKey returns the value of the "cache_key" field in the mutation.
func (m *ExplainCacheMutation) CacheKey() (r string, exists bool) {
	v := m.cache_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheKey returns the old "cache_key" field's value of the ExplainCache entity.
// If the ExplainCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplainCacheMutation) OldCacheKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheKey: %w", err)
	}
	return oldValue.CacheKey, nil
}

// ResetCacheKey resets all changes to the "cache_key" field.
func (m *ExplainCacheMutation) ResetCacheKey() {
	m.cache_key = nil
}

// SetExplanation sets the "explanation" field.
func (m *ExplainCacheMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *ExplainCacheMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the ExplainCache entity.
// If the ExplainCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplainCacheMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *ExplainCacheMutation) ResetExplanation() {
	m.explanation = nil
}

// SetVerdictFlip sets the "verdict_flip" field.
func (m *ExplainCacheMutation) SetVerdictFlip(b bool) {
	m.verdict_flip = &b
}

// VerdictFlip returns the value of the "verdict_flip" field in the mutation.
func (m *ExplainCacheMutation) VerdictFlip() (r bool, exists bool) {
	v := m.verdict_flip
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdictFlip returns the old "verdict_flip" field's value of the ExplainCache entity.
// If the ExplainCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplainCacheMutation) OldVerdictFlip(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdictFlip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdictFlip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdictFlip: %w", err)
	}
	return oldValue.VerdictFlip, nil
}

// ResetVerdictFlip resets all changes to the "verdict_flip" field.
func (m *ExplainCacheMutation) ResetVerdictFlip() {
	m.verdict_flip = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExplainCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExplainCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExplainCache entity.
// If the ExplainCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplainCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExplainCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExplainCacheMutation builder.
func (m *ExplainCacheMutation) Where(ps ...predicate.ExplainCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExplainCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExplainCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExplainCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExplainCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExplainCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExplainCache).
func (m *ExplainCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExplainCacheMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.cache_key != nil {
		fields = append(fields, explaincache.FieldCacheKey)
	}
	if m.explanation != nil {
		fields = append(fields, explaincache.FieldExplanation)
	}
	if m.verdict_flip != nil {
		fields = append(fields, explaincache.FieldVerdictFlip)
	}
	if m.created_at != nil {
		fields = append(fields, explaincache.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExplainCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case explaincache.FieldCacheKey:
		return m.CacheKey()
	case explaincache.FieldExplanation:
		return m.Explanation()
	case explaincache.FieldVerdictFlip:
		return m.VerdictFlip()
	case explaincache.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExplainCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case explaincache.FieldCacheKey:
		return m.OldCacheKey(ctx)
	case explaincache.FieldExplanation:
		return m.OldExplanation(ctx)
	case explaincache.FieldVerdictFlip:
		return m.OldVerdictFlip(ctx)
	case explaincache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExplainCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplainCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case explaincache.FieldCacheKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheKey(v)
		return nil
	case explaincache.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case explaincache.FieldVerdictFlip:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdictFlip(v)
		return nil
	case explaincache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExplainCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExplainCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExplainCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplainCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExplainCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExplainCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExplainCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExplainCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExplainCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExplainCacheMutation) ResetField(name string) error {
	switch name {
	case explaincache.FieldCacheKey:
		m.ResetCacheKey()
		return nil
	case explaincache.FieldExplanation:
		m.ResetExplanation()
		return nil
	case explaincache.FieldVerdictFlip:
		m.ResetVerdictFlip()
		return nil
	case explaincache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExplainCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExplainCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExplainCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExplainCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExplainCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExplainCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExplainCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExplainCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExplainCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExplainCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExplainCache edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	strictness    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Learner, error)
	predicates    []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LearnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LearnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LearnerMutation) ResetName() {
	m.name = nil
}

// SetStrictness sets the "strictness" field.
func (m *LearnerMutation) SetStrictness(s string) {
	m.strictness = &s
}

// Strictness returns the value of the "strictness" field in the mutation.
func (m *LearnerMutation) Strictness() (r string, exists bool) {
	v := m.strictness
	if v == nil {
		return
	}
	return *v, true
}

// OldStrictness returns the old "strictness" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldStrictness(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrictness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrictness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrictness: %w", err)
	}
	return oldValue.Strictness, nil
}

// ResetStrictness resets all changes to the "strictness" field.
func (m *LearnerMutation) ResetStrictness() {
	m.strictness = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, learner.FieldName)
	}
	if m.strictness != nil {
		fields = append(fields, learner.FieldStrictness)
	}
	if m.created_at != nil {
		fields = append(fields, learner.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldName:
		return m.Name()
	case learner.FieldStrictness:
		return m.Strictness()
	case learner.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldName:
		return m.OldName(ctx)
	case learner.FieldStrictness:
		return m.OldStrictness(ctx)
	case learner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case learner.FieldStrictness:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrictness(v)
		return nil
	case learner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldName:
		m.ResetName()
		return nil
	case learner.FieldStrictness:
		m.ResetStrictness()
		return nil
	case learner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}

// LearnerStateMutation represents an operation that mutates the LearnerState nodes in the graph.
type LearnerStateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	learner_id           *int
	addlearner_id        *int
	placement_index      *int
	addplacement_index   *int
	placement_correct    *int
	addplacement_correct *int
	placement_done       *bool
	batch_num            *int
	addbatch_num         *int
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LearnerState, error)
	predicates           []predicate.LearnerState
}

var _ ent.Mutation = (*LearnerStateMutation)(nil)

// learnerstateOption allows management of the mutation configuration using functional options.
type learnerstateOption func(*LearnerStateMutation)

// newLearnerStateMutation creates new mutation for the LearnerState entity.
func newLearnerStateMutation(c config, op Op, opts ...learnerstateOption) *LearnerStateMutation {
	m := &LearnerStateMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerStateID sets the ID field of the mutation.
func withLearnerStateID(id int) learnerstateOption {
	return func(m *LearnerStateMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerState
		)
		m.oldValue = func(ctx context.Context) (*LearnerState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerState sets the old LearnerState of the mutation.
func withLearnerState(node *LearnerState) learnerstateOption {
	return func(m *LearnerStateMutation) {
		m.oldValue = func(context.Context) (*LearnerState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerStateMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerStateMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *LearnerStateMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *LearnerStateMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerStateMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetPlacementIndex sets the "placement_index" field.
func (m *LearnerStateMutation) SetPlacementIndex(i int) {
	m.placement_index = &i
	m.addplacement_index = nil
}

// PlacementIndex returns the value of the "placement_index" field in the mutation.
func (m *LearnerStateMutation) PlacementIndex() (r int, exists bool) {
	v := m.placement_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacementIndex returns the old "placement_index" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldPlacementIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacementIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacementIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacementIndex: %w", err)
	}
	return oldValue.PlacementIndex, nil
}

// AddPlacementIndex adds i to the "placement_index" field.
func (m *LearnerStateMutation) AddPlacementIndex(i int) {
	if m.addplacement_index != nil {
		*m.addplacement_index += i
	} else {
		m.addplacement_index = &i
	}
}

// AddedPlacementIndex returns the value that was added to the "placement_index" field in this mutation.
func (m *LearnerStateMutation) AddedPlacementIndex() (r int, exists bool) {
	v := m.addplacement_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlacementIndex resets all changes to the "placement_index" field.
func (m *LearnerStateMutation) ResetPlacementIndex() {
	m.placement_index = nil
	m.addplacement_index = nil
}

// SetPlacementCorrect sets the "placement_correct" field.
func (m *LearnerStateMutation) SetPlacementCorrect(i int) {
	m.placement_correct = &i
	m.addplacement_correct = nil
}

// PlacementCorrect returns the value of the "placement_correct" field in the mutation.
func (m *LearnerStateMutation) PlacementCorrect() (r int, exists bool) {
	v := m.placement_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacementCorrect returns the old "placement_correct" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldPlacementCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacementCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacementCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacementCorrect: %w", err)
	}
	return oldValue.PlacementCorrect, nil
}

// AddPlacementCorrect adds i to the "placement_correct" field.
func (m *LearnerStateMutation) AddPlacementCorrect(i int) {
	if m.addplacement_correct != nil {
		*m.addplacement_correct += i
	} else {
		m.addplacement_correct = &i
	}
}

// AddedPlacementCorrect returns the value that was added to the "placement_correct" field in this mutation.
func (m *LearnerStateMutation) AddedPlacementCorrect() (r int, exists bool) {
	v := m.addplacement_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlacementCorrect resets all changes to the "placement_correct" field.
func (m *LearnerStateMutation) ResetPlacementCorrect() {
	m.placement_correct = nil
	m.addplacement_correct = nil
}

// SetPlacementDone sets the "placement_done" field.
func (m *LearnerStateMutation) SetPlacementDone(b bool) {
	m.placement_done = &b
}

// PlacementDone returns the value of the "placement_done" field in the mutation.
func (m *LearnerStateMutation) PlacementDone() (r bool, exists bool) {
	v := m.placement_done
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacementDone returns the old "placement_done" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldPlacementDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacementDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacementDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacementDone: %w", err)
	}
	return oldValue.PlacementDone, nil
}

// ResetPlacementDone resets all changes to the "placement_done" field.
func (m *LearnerStateMutation) ResetPlacementDone() {
	m.placement_done = nil
}

// SetBatchNum sets the "batch_num" field.
func (m *LearnerStateMutation) SetBatchNum(i int) {
	m.batch_num = &i
	m.addbatch_num = nil
}

// BatchNum returns the value of the "batch_num" field in the mutation.
func (m *LearnerStateMutation) BatchNum() (r int, exists bool) {
	v := m.batch_num
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNum returns the old "batch_num" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldBatchNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNum: %w", err)
	}
	return oldValue.BatchNum, nil
}

// AddBatchNum adds i to the "batch_num" field.
func (m *LearnerStateMutation) AddBatchNum(i int) {
	if m.addbatch_num != nil {
		*m.addbatch_num += i
	} else {
		m.addbatch_num = &i
	}
}

// AddedBatchNum returns the value that was added to the "batch_num" field in this mutation.
func (m *LearnerStateMutation) AddedBatchNum() (r int, exists bool) {
	v := m.addbatch_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNum resets all changes to the "batch_num" field.
func (m *LearnerStateMutation) ResetBatchNum() {
	m.batch_num = nil
	m.addbatch_num = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnerState entity.
// If the LearnerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerStateMutation builder.
func (m *LearnerStateMutation) Where(ps ...predicate.LearnerState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerState).
func (m *LearnerStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerStateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.learner_id != nil {
		fields = append(fields, learnerstate.FieldLearnerID)
	}
	if m.placement_index != nil {
		fields = append(fields, learnerstate.FieldPlacementIndex)
	}
	if m.placement_correct != nil {
		fields = append(fields, learnerstate.FieldPlacementCorrect)
	}
	if m.placement_done != nil {
		fields = append(fields, learnerstate.FieldPlacementDone)
	}
	if m.batch_num != nil {
		fields = append(fields, learnerstate.FieldBatchNum)
	}
	if m.updated_at != nil {
		fields = append(fields, learnerstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerstate.FieldLearnerID:
		return m.LearnerID()
	case learnerstate.FieldPlacementIndex:
		return m.PlacementIndex()
	case learnerstate.FieldPlacementCorrect:
		return m.PlacementCorrect()
	case learnerstate.FieldPlacementDone:
		return m.PlacementDone()
	case learnerstate.FieldBatchNum:
		return m.BatchNum()
	case learnerstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerstate.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnerstate.FieldPlacementIndex:
		return m.OldPlacementIndex(ctx)
	case learnerstate.FieldPlacementCorrect:
		return m.OldPlacementCorrect(ctx)
	case learnerstate.FieldPlacementDone:
		return m.OldPlacementDone(ctx)
	case learnerstate.FieldBatchNum:
		return m.OldBatchNum(ctx)
	case learnerstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerstate.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnerstate.FieldPlacementIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacementIndex(v)
		return nil
	case learnerstate.FieldPlacementCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacementCorrect(v)
		return nil
	case learnerstate.FieldPlacementDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacementDone(v)
		return nil
	case learnerstate.FieldBatchNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNum(v)
		return nil
	case learnerstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerStateMutation) AddedFields() []string {
	var fields []string
	if m.addlearner_id != nil {
		fields = append(fields, learnerstate.FieldLearnerID)
	}
	if m.addplacement_index != nil {
		fields = append(fields, learnerstate.FieldPlacementIndex)
	}
	if m.addplacement_correct != nil {
		fields = append(fields, learnerstate.FieldPlacementCorrect)
	}
	if m.addbatch_num != nil {
		fields = append(fields, learnerstate.FieldBatchNum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerstate.FieldLearnerID:
		return m.AddedLearnerID()
	case learnerstate.FieldPlacementIndex:
		return m.AddedPlacementIndex()
	case learnerstate.FieldPlacementCorrect:
		return m.AddedPlacementCorrect()
	case learnerstate.FieldBatchNum:
		return m.AddedBatchNum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerstate.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case learnerstate.FieldPlacementIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlacementIndex(v)
		return nil
	case learnerstate.FieldPlacementCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlacementCorrect(v)
		return nil
	case learnerstate.FieldBatchNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNum(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearnerState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerStateMutation) ResetField(name string) error {
	switch name {
	case learnerstate.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnerstate.FieldPlacementIndex:
		m.ResetPlacementIndex()
		return nil
	case learnerstate.FieldPlacementCorrect:
		m.ResetPlacementCorrect()
		return nil
	case learnerstate.FieldPlacementDone:
		m.ResetPlacementDone()
		return nil
	case learnerstate.FieldBatchNum:
		m.ResetBatchNum()
		return nil
	case learnerstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerState edge %s", name)
}

// PlacementItemMutation represents an operation that mutates the PlacementItem nodes in the graph.
type PlacementItemMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	position                *int
	addposition             *int
	unit_key                *string
	prompt                  *string
	item_type               *string
	canonical               *string
	accepted_variants       *[]string
	appendaccepted_variants []string
	options                 *[]string
	appendoptions           []string
	selection_policy        *string
	correct_options         *[]string
	appendcorrect_options   []string
	instruction             *string
	study_unit_keys         *[]string
	appendstudy_unit_keys   []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PlacementItem, error)
	predicates              []predicate.PlacementItem
}

var _ ent.Mutation = (*PlacementItemMutation)(nil)

// placementitemOption allows management of the mutation configuration using functional options.
type placementitemOption func(*PlacementItemMutation)

// newPlacementItemMutation creates new mutation for the PlacementItem entity.
func newPlacementItemMutation(c config, op Op, opts ...placementitemOption) *PlacementItemMutation {
	m := &PlacementItemMutation{
		config:        c,
		op:            op,
		typ:           TypePlacementItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlacementItemID sets the ID field of the mutation.
func withPlacementItemID(id int) placementitemOption {
	return func(m *PlacementItemMutation) {
		var (
			err   error
			once  sync.Once
			value *PlacementItem
		)
		m.oldValue = func(ctx context.Context) (*PlacementItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlacementItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlacementItem sets the old PlacementItem of the mutation.
func withPlacementItem(node *PlacementItem) placementitemOption {
	return func(m *PlacementItemMutation) {
		m.oldValue = func(context.Context) (*PlacementItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlacementItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlacementItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlacementItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlacementItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlacementItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPosition sets the "position" field.
func (m *PlacementItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *PlacementItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *PlacementItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *PlacementItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *PlacementItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetUnitKey sets the "unit_key" field.
func (m *PlacementItemMutation) SetUnitKey(s string) {
	m.unit_key = &s
}

// UnitKey returns the value of the "unit_key" field in the mutation.
func (m *PlacementItemMutation) UnitKey() (r string, exists bool) {
	v := m.unit_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitKey returns the old "unit_key" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldUnitKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitKey: %w", err)
	}
	return oldValue.UnitKey, nil
}

// ResetUnitKey resets all changes to the "unit_key" field.
func (m *PlacementItemMutation) ResetUnitKey() {
	m.unit_key = nil
}

// SetPrompt sets the "prompt" field.
func (m *PlacementItemMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *PlacementItemMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *PlacementItemMutation) ResetPrompt() {
	m.prompt = nil
}

// SetItemType sets the "item_type" field.
func (m *PlacementItemMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *PlacementItemMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *PlacementItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetCanonical sets the "canonical" field.
func (m *PlacementItemMutation) SetCanonical(s string) {
	m.canonical = &s
}

// Canonical returns the value of the "canonical" field in the mutation.
func (m *PlacementItemMutation) Canonical() (r string, exists bool) {
	v := m.canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonical returns the old "canonical" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldCanonical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonical: %w", err)
	}
	return oldValue.Canonical, nil
}

// ResetCanonical resets all changes to the "canonical" field.
func (m *PlacementItemMutation) ResetCanonical() {
	m.canonical = nil
}

// SetAcceptedVariants sets the "accepted_variants" field.
func (m *PlacementItemMutation) SetAcceptedVariants(s []string) {
	m.accepted_variants = &s
	m.appendaccepted_variants = nil
}

// AcceptedVariants returns the value of the "accepted_variants" field in the mutation.
func (m *PlacementItemMutation) AcceptedVariants() (r []string, exists bool) {
	v := m.accepted_variants
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedVariants returns the old "accepted_variants" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldAcceptedVariants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedVariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedVariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedVariants: %w", err)
	}
	return oldValue.AcceptedVariants, nil
}

// AppendAcceptedVariants adds s to the "accepted_variants" field.
func (m *PlacementItemMutation) AppendAcceptedVariants(s []string) {
	m.appendaccepted_variants = append(m.appendaccepted_variants, s...)
}

// AppendedAcceptedVariants returns the list of values that were appended to the "accepted_variants" field in this mutation.
func (m *PlacementItemMutation) AppendedAcceptedVariants() ([]string, bool) {
	if len(m.appendaccepted_variants) == 0 {
		return nil, false
	}
	return m.appendaccepted_variants, true
}

// ClearAcceptedVariants clears the value of the "accepted_variants" field.
func (m *PlacementItemMutation) ClearAcceptedVariants() {
	m.accepted_variants = nil
	m.appendaccepted_variants = nil
	m.clearedFields[placementitem.FieldAcceptedVariants] = struct{}{}
}

// AcceptedVariantsCleared returns if the "accepted_variants" field was cleared in this mutation.
func (m *PlacementItemMutation) AcceptedVariantsCleared() bool {
	_, ok := m.clearedFields[placementitem.FieldAcceptedVariants]
	return ok
}

// ResetAcceptedVariants resets all changes to the "accepted_variants" field.
func (m *PlacementItemMutation) ResetAcceptedVariants() {
	m.accepted_variants = nil
	m.appendaccepted_variants = nil
	delete(m.clearedFields, placementitem.FieldAcceptedVariants)
}

// SetOptions sets the "options" field.
func (m *PlacementItemMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *PlacementItemMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *PlacementItemMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *PlacementItemMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *PlacementItemMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[placementitem.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *PlacementItemMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[placementitem.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *PlacementItemMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, placementitem.FieldOptions)
}

// SetSelectionPolicy sets the "selection_policy" field.
func (m *PlacementItemMutation) SetSelectionPolicy(s string) {
	m.selection_policy = &s
}

// SelectionPolicy returns the value of the "selection_policy" field in the mutation.
func (m *PlacementItemMutation) SelectionPolicy() (r string, exists bool) {
	v := m.selection_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectionPolicy returns the old "selection_policy" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldSelectionPolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectionPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectionPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectionPolicy: %w", err)
	}
	return oldValue.SelectionPolicy, nil
}

// ResetSelectionPolicy resets all changes to the "selection_policy" field.
func (m *PlacementItemMutation) ResetSelectionPolicy() {
	m.selection_policy = nil
}

// SetCorrectOptions sets the "correct_options" field.
func (m *PlacementItemMutation) SetCorrectOptions(s []string) {
	m.correct_options = &s
	m.appendcorrect_options = nil
}

// CorrectOptions returns the value of the "correct_options" field in the mutation.
func (m *PlacementItemMutation) CorrectOptions() (r []string, exists bool) {
	v := m.correct_options
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOptions returns the old "correct_options" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldCorrectOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOptions: %w", err)
	}
	return oldValue.CorrectOptions, nil
}

// AppendCorrectOptions adds s to the "correct_options" field.
func (m *PlacementItemMutation) AppendCorrectOptions(s []string) {
	m.appendcorrect_options = append(m.appendcorrect_options, s...)
}

// AppendedCorrectOptions returns the list of values that were appended to the "correct_options" field in this mutation.
func (m *PlacementItemMutation) AppendedCorrectOptions() ([]string, bool) {
	if len(m.appendcorrect_options) == 0 {
		return nil, false
	}
	return m.appendcorrect_options, true
}

// ClearCorrectOptions clears the value of the "correct_options" field.
func (m *PlacementItemMutation) ClearCorrectOptions() {
	m.correct_options = nil
	m.appendcorrect_options = nil
	m.clearedFields[placementitem.FieldCorrectOptions] = struct{}{}
}

// CorrectOptionsCleared returns if the "correct_options" field was cleared in this mutation.
func (m *PlacementItemMutation) CorrectOptionsCleared() bool {
	_, ok := m.clearedFields[placementitem.FieldCorrectOptions]
	return ok
}

// ResetCorrectOptions resets all changes to the "correct_options" field.
func (m *PlacementItemMutation) ResetCorrectOptions() {
	m.correct_options = nil
	m.appendcorrect_options = nil
	delete(m.clearedFields, placementitem.FieldCorrectOptions)
}

// SetInstruction sets the "instruction" field.
func (m *PlacementItemMutation) SetInstruction(s string) {
	m.instruction = &s
}

// Instruction returns the value of the "instruction" field in the mutation.
func (m *PlacementItemMutation) Instruction() (r string, exists bool) {
	v := m.instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldInstruction returns the old "instruction" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstruction: %w", err)
	}
	return oldValue.Instruction, nil
}

// ResetInstruction resets all changes to the "instruction" field.
func (m *PlacementItemMutation) ResetInstruction() {
	m.instruction = nil
}

// SetStudyUnitKeys sets the "study_unit_keys" field.
func (m *PlacementItemMutation) SetStudyUnitKeys(s []string) {
	m.study_unit_keys = &s
	m.appendstudy_unit_keys = nil
}

// StudyUnitKeys returns the value of the "study_unit_keys" field in the mutation.
func (m *PlacementItemMutation) StudyUnitKeys() (r []string, exists bool) {
	v := m.study_unit_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyUnitKeys returns the old "study_unit_keys" field's value of the PlacementItem entity.
// If the PlacementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlacementItemMutation) OldStudyUnitKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyUnitKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyUnitKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyUnitKeys: %w", err)
	}
	return oldValue.StudyUnitKeys, nil
}

// AppendStudyUnitKeys adds s to the "study_unit_keys" field.
func (m *PlacementItemMutation) AppendStudyUnitKeys(s []string) {
	m.appendstudy_unit_keys = append(m.appendstudy_unit_keys, s...)
}

// AppendedStudyUnitKeys returns the list of values that were appended to the "study_unit_keys" field in this mutation.
func (m *PlacementItemMutation) AppendedStudyUnitKeys() ([]string, bool) {
	if len(m.appendstudy_unit_keys) == 0 {
		return nil, false
	}
	return m.appendstudy_unit_keys, true
}

// ClearStudyUnitKeys clears the value of the "study_unit_keys" field.
func (m *PlacementItemMutation) ClearStudyUnitKeys() {
	m.study_unit_keys = nil
	m.appendstudy_unit_keys = nil
	m.clearedFields[placementitem.FieldStudyUnitKeys] = struct{}{}
}

// StudyUnitKeysCleared returns if the "study_unit_keys" field was cleared in this mutation.
func (m *PlacementItemMutation) StudyUnitKeysCleared() bool {
	_, ok := m.clearedFields[placementitem.FieldStudyUnitKeys]
	return ok
}

// ResetStudyUnitKeys resets all changes to the "study_unit_keys" field.
func (m *PlacementItemMutation) ResetStudyUnitKeys() {
	m.study_unit_keys = nil
	m.appendstudy_unit_keys = nil
	delete(m.clearedFields, placementitem.FieldStudyUnitKeys)
}

// Where appends a list predicates to the PlacementItemMutation builder.
func (m *PlacementItemMutation) Where(ps ...predicate.PlacementItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlacementItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlacementItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlacementItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlacementItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlacementItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlacementItem).
func (m *PlacementItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlacementItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.position != nil {
		fields = append(fields, placementitem.FieldPosition)
	}
	if m.unit_key != nil {
		fields = append(fields, placementitem.FieldUnitKey)
	}
	if m.prompt != nil {
		fields = append(fields, placementitem.FieldPrompt)
	}
	if m.item_type != nil {
		fields = append(fields, placementitem.FieldItemType)
	}
	if m.canonical != nil {
		fields = append(fields, placementitem.FieldCanonical)
	}
	if m.accepted_variants != nil {
		fields = append(fields, placementitem.FieldAcceptedVariants)
	}
	if m.options != nil {
		fields = append(fields, placementitem.FieldOptions)
	}
	if m.selection_policy != nil {
		fields = append(fields, placementitem.FieldSelectionPolicy)
	}
	if m.correct_options != nil {
		fields = append(fields, placementitem.FieldCorrectOptions)
	}
	if m.instruction != nil {
		fields = append(fields, placementitem.FieldInstruction)
	}
	if m.study_unit_keys != nil {
		fields = append(fields, placementitem.FieldStudyUnitKeys)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlacementItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case placementitem.FieldPosition:
		return m.Position()
	case placementitem.FieldUnitKey:
		return m.UnitKey()
	case placementitem.FieldPrompt:
		return m.Prompt()
	case placementitem.FieldItemType:
		return m.ItemType()
	case placementitem.FieldCanonical:
		return m.Canonical()
	case placementitem.FieldAcceptedVariants:
		return m.AcceptedVariants()
	case placementitem.FieldOptions:
		return m.Options()
	case placementitem.FieldSelectionPolicy:
		return m.SelectionPolicy()
	case placementitem.FieldCorrectOptions:
		return m.CorrectOptions()
	case placementitem.FieldInstruction:
		return m.Instruction()
	case placementitem.FieldStudyUnitKeys:
		return m.StudyUnitKeys()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlacementItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case placementitem.FieldPosition:
		return m.OldPosition(ctx)
	case placementitem.FieldUnitKey:
		return m.OldUnitKey(ctx)
	case placementitem.FieldPrompt:
		return m.OldPrompt(ctx)
	case placementitem.FieldItemType:
		return m.OldItemType(ctx)
	case placementitem.FieldCanonical:
		return m.OldCanonical(ctx)
	case placementitem.FieldAcceptedVariants:
		return m.OldAcceptedVariants(ctx)
	case placementitem.FieldOptions:
		return m.OldOptions(ctx)
	case placementitem.FieldSelectionPolicy:
		return m.OldSelectionPolicy(ctx)
	case placementitem.FieldCorrectOptions:
		return m.OldCorrectOptions(ctx)
	case placementitem.FieldInstruction:
		return m.OldInstruction(ctx)
	case placementitem.FieldStudyUnitKeys:
		return m.OldStudyUnitKeys(ctx)
	}
	return nil, fmt.Errorf("unknown PlacementItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlacementItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case placementitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case placementitem.FieldUnitKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitKey(v)
		return nil
	case placementitem.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case placementitem.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case placementitem.FieldCanonical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonical(v)
		return nil
	case placementitem.FieldAcceptedVariants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedVariants(v)
		return nil
	case placementitem.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case placementitem.FieldSelectionPolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectionPolicy(v)
		return nil
	case placementitem.FieldCorrectOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOptions(v)
		return nil
	case placementitem.FieldInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstruction(v)
		return nil
	case placementitem.FieldStudyUnitKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyUnitKeys(v)
		return nil
	}
	return fmt.Errorf("unknown PlacementItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlacementItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, placementitem.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlacementItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case placementitem.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlacementItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case placementitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown PlacementItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlacementItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(placementitem.FieldAcceptedVariants) {
		fields = append(fields, placementitem.FieldAcceptedVariants)
	}
	if m.FieldCleared(placementitem.FieldOptions) {
		fields = append(fields, placementitem.FieldOptions)
	}
	if m.FieldCleared(placementitem.FieldCorrectOptions) {
		fields = append(fields, placementitem.FieldCorrectOptions)
	}
	if m.FieldCleared(placementitem.FieldStudyUnitKeys) {
		fields = append(fields, placementitem.FieldStudyUnitKeys)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlacementItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlacementItemMutation) ClearField(name string) error {
	switch name {
	case placementitem.FieldAcceptedVariants:
		m.ClearAcceptedVariants()
		return nil
	case placementitem.FieldOptions:
		m.ClearOptions()
		return nil
	case placementitem.FieldCorrectOptions:
		m.ClearCorrectOptions()
		return nil
	case placementitem.FieldStudyUnitKeys:
		m.ClearStudyUnitKeys()
		return nil
	}
	return fmt.Errorf("unknown PlacementItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlacementItemMutation) ResetField(name string) error {
	switch name {
	case placementitem.FieldPosition:
		m.ResetPosition()
		return nil
	case placementitem.FieldUnitKey:
		m.ResetUnitKey()
		return nil
	case placementitem.FieldPrompt:
		m.ResetPrompt()
		return nil
	case placementitem.FieldItemType:
		m.ResetItemType()
		return nil
	case placementitem.FieldCanonical:
		m.ResetCanonical()
		return nil
	case placementitem.FieldAcceptedVariants:
		m.ResetAcceptedVariants()
		return nil
	case placementitem.FieldOptions:
		m.ResetOptions()
		return nil
	case placementitem.FieldSelectionPolicy:
		m.ResetSelectionPolicy()
		return nil
	case placementitem.FieldCorrectOptions:
		m.ResetCorrectOptions()
		return nil
	case placementitem.FieldInstruction:
		m.ResetInstruction()
		return nil
	case placementitem.FieldStudyUnitKeys:
		m.ResetStudyUnitKeys()
		return nil
	}
	return fmt.Errorf("unknown PlacementItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlacementItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlacementItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlacementItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlacementItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlacementItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlacementItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlacementItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlacementItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlacementItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlacementItem edge %s", name)
}

// RuleMutation represents an operation that mutates the Rule nodes in the graph.
type RuleMutation struct {
	config
	op             Op
	typ            string
	id             *int
	rule_key       *string
	unit_key       *string
	section_path   *string
	title          *string
	text           *string
	short_text     *string
	examples       *[]string
	appendexamples []string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Rule, error)
	predicates     []predicate.Rule
}

var _ ent.Mutation = (*RuleMutation)(nil)

// ruleOption allows management of the mutation configuration using functional options.
type ruleOption func(*RuleMutation)

// newRuleMutation creates new mutation for the Rule entity.
func newRuleMutation(c config, op Op, opts ...ruleOption) *RuleMutation {
	m := &RuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleID sets the ID field of the mutation.
func withRuleID(id int) ruleOption {
	return func(m *RuleMutation) {
		var (
			err   error
			once  sync.Once
			value *Rule
		)
		m.oldValue = func(ctx context.Context) (*Rule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRule sets the old Rule of the mutation.
func withRule(node *Rule) ruleOption {
	return func(m *RuleMutation) {
		m.oldValue = func(context.Context) (*Rule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleKey sets the "rule_key" field.
func (m *RuleMutation) SetRuleKey(s string) {
	m.rule_key = &s
}

// RuleKey returns the value of the "rule_key" field in the mutation.
func (m *RuleMutation) RuleKey() (r string, exists bool) {
	v := m.rule_key
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleKey returns the old "rule_key" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldRuleKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleKey: %w", err)
	}
	return oldValue.RuleKey, nil
}

// ResetRuleKey resets all changes to the "rule_key" field.
func (m *RuleMutation) ResetRuleKey() {
	m.rule_key = nil
}

// SetUnitKey sets the "unit_key" field.
func (m *RuleMutation) SetUnitKey(s string) {
	m.unit_key = &s
}

// UnitKey returns the value of the "unit_key" field in the mutation.
func (m *RuleMutation) UnitKey() (r string, exists bool) {
	v := m.unit_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitKey returns the old "unit_key" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldUnitKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitKey: %w", err)
	}
	return oldValue.UnitKey, nil
}

// ResetUnitKey resets all changes to the "unit_key" field.
func (m *RuleMutation) ResetUnitKey() {
	m.unit_key = nil
}

// SetSectionPath sets the "section_path" field.
func (m *RuleMutation) SetSectionPath(s string) {
	m.section_path = &s
}

// SectionPath returns the value of the "section_path" field in the mutation.
func (m *RuleMutation) SectionPath() (r string, exists bool) {
	v := m.section_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionPath returns the old "section_path" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldSectionPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionPath: %w", err)
	}
	return oldValue.SectionPath, nil
}

// ResetSectionPath resets all changes to the "section_path" field.
func (m *RuleMutation) ResetSectionPath() {
	m.section_path = nil
}

// SetTitle sets the "title" field.
func (m *RuleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RuleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RuleMutation) ResetTitle() {
	m.title = nil
}

// SetText sets the "text" field.
func (m *RuleMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *RuleMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *RuleMutation) ResetText() {
	m.text = nil
}

// SetShortText sets the "short_text" field.
func (m *RuleMutation) SetShortText(s string) {
	m.short_text = &s
}

// ShortText returns the value of the "short_text" field in the mutation.
func (m *RuleMutation) ShortText() (r string, exists bool) {
	v := m.short_text
	if v == nil {
		return
	}
	return *v, true
}

// OldShortText returns the old "short_text" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldShortText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortText: %w", err)
	}
	return oldValue.ShortText, nil
}

// ResetShortText resets all changes to the "short_text" field.
func (m *RuleMutation) ResetShortText() {
	m.short_text = nil
}

// SetExamples sets the "examples" field.
func (m *RuleMutation) SetExamples(s []string) {
	m.examples = &s
	m.appendexamples = nil
}

// Examples returns the value of the "examples" field in the mutation.
func (m *RuleMutation) Examples() (r []string, exists bool) {
	v := m.examples
	if v == nil {
		return
	}
	return *v, true
}

// OldExamples returns the old "examples" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldExamples(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamples: %w", err)
	}
	return oldValue.Examples, nil
}

// AppendExamples adds s to the "examples" field.
func (m *RuleMutation) AppendExamples(s []string) {
	m.appendexamples = append(m.appendexamples, s...)
}

// AppendedExamples returns the list of values that were appended to the "examples" field in this mutation.
func (m *RuleMutation) AppendedExamples() ([]string, bool) {
	if len(m.appendexamples) == 0 {
		return nil, false
	}
	return m.appendexamples, true
}

// ClearExamples clears the value of the "examples" field.
func (m *RuleMutation) ClearExamples() {
	m.examples = nil
	m.appendexamples = nil
	m.clearedFields[rule.FieldExamples] = struct{}{}
}

// ExamplesCleared returns if the "examples" field was cleared in this mutation.
func (m *RuleMutation) ExamplesCleared() bool {
	_, ok := m.clearedFields[rule.FieldExamples]
	return ok
}

// ResetExamples resets all changes to the "examples" field.
func (m *RuleMutation) ResetExamples() {
	m.examples = nil
	m.appendexamples = nil
	delete(m.clearedFields, rule.FieldExamples)
}

// Where appends a list predicates to the RuleMutation builder.
func (m *RuleMutation) Where(ps ...predicate.Rule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rule).
func (m *RuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.rule_key != nil {
		fields = append(fields, rule.FieldRuleKey)
	}
	if m.unit_key != nil {
		fields = append(fields, rule.FieldUnitKey)
	}
	if m.section_path != nil {
		fields = append(fields, rule.FieldSectionPath)
	}
	if m.title != nil {
		fields = append(fields, rule.FieldTitle)
	}
	if m.text != nil {
		fields = append(fields, rule.FieldText)
	}
	if m.short_text != nil {
		fields = append(fields, rule.FieldShortText)
	}
	if m.examples != nil {
		fields = append(fields, rule.FieldExamples)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rule.FieldRuleKey:
		return m.RuleKey()
	case rule.FieldUnitKey:
		return m.UnitKey()
	case rule.FieldSectionPath:
		return m.SectionPath()
	case rule.FieldTitle:
		return m.Title()
	case rule.FieldText:
		return m.Text()
	case rule.FieldShortText:
		return m.ShortText()
	case rule.FieldExamples:
		return m.Examples()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rule.FieldRuleKey:
		return m.OldRuleKey(ctx)
	case rule.FieldUnitKey:
		return m.OldUnitKey(ctx)
	case rule.FieldSectionPath:
		return m.OldSectionPath(ctx)
	case rule.FieldTitle:
		return m.OldTitle(ctx)
	case rule.FieldText:
		return m.OldText(ctx)
	case rule.FieldShortText:
		return m.OldShortText(ctx)
	case rule.FieldExamples:
		return m.OldExamples(ctx)
	}
	return nil, fmt.Errorf("unknown Rule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rule.FieldRuleKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleKey(v)
		return nil
	case rule.FieldUnitKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitKey(v)
		return nil
	case rule.FieldSectionPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionPath(v)
		return nil
	case rule.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case rule.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case rule.FieldShortText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortText(v)
		return nil
	case rule.FieldExamples:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamples(v)
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Rule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rule.FieldExamples) {
		fields = append(fields, rule.FieldExamples)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleMutation) ClearField(name string) error {
	switch name {
	case rule.FieldExamples:
		m.ClearExamples()
		return nil
	}
	return fmt.Errorf("unknown Rule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleMutation) ResetField(name string) error {
	switch name {
	case rule.FieldRuleKey:
		m.ResetRuleKey()
		return nil
	case rule.FieldUnitKey:
		m.ResetUnitKey()
		return nil
	case rule.FieldSectionPath:
		m.ResetSectionPath()
		return nil
	case rule.FieldTitle:
		m.ResetTitle()
		return nil
	case rule.FieldText:
		m.ResetText()
		return nil
	case rule.FieldShortText:
		m.ResetShortText()
		return nil
	case rule.FieldExamples:
		m.ResetExamples()
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rule edge %s", name)
}

// UnitExerciseMutation represents an operation that mutates the UnitExercise nodes in the graph.
type UnitExerciseMutation struct {
	config
	op                Op
	typ               string
	id                *int
	unit_key          *string
	exercise_index    *int
	addexercise_index *int
	exercise_type     *string
	instruction       *string
	items             *[]content.Item
	appenditems       []content.Item
	source            *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*UnitExercise, error)
	predicates        []predicate.UnitExercise
}

var _ ent.Mutation = (*UnitExerciseMutation)(nil)

// unitexerciseOption allows management of the mutation configuration using functional options.
type unitexerciseOption func(*UnitExerciseMutation)

// newUnitExerciseMutation creates new mutation for the UnitExercise entity.
func newUnitExerciseMutation(c config, op Op, opts ...unitexerciseOption) *UnitExerciseMutation {
	m := &UnitExerciseMutation{
		config:        c,
		op:            op,
		typ:           TypeUnitExercise,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitExerciseID sets the ID field of the mutation.
func withUnitExerciseID(id int) unitexerciseOption {
	return func(m *UnitExerciseMutation) {
		var (
			err   error
			once  sync.Once
			value *UnitExercise
		)
		m.oldValue = func(ctx context.Context) (*UnitExercise, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnitExercise.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnitExercise sets the old UnitExercise of the mutation.
func withUnitExercise(node *UnitExercise) unitexerciseOption {
	return func(m *UnitExerciseMutation) {
		m.oldValue = func(context.Context) (*UnitExercise, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitExerciseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitExerciseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitExerciseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitExerciseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnitExercise.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitKey sets the "unit_key" field.
func (m *UnitExerciseMutation) SetUnitKey(s string) {
	m.unit_key = &s
}

// UnitKey returns the value of the "unit_key" field in the mutation.
func (m *UnitExerciseMutation) UnitKey() (r string, exists bool) {
	v := m.unit_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitKey returns the old "unit_key" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldUnitKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitKey: %w", err)
	}
	return oldValue.UnitKey, nil
}

// ResetUnitKey resets all changes to the "unit_key" field.
func (m *UnitExerciseMutation) ResetUnitKey() {
	m.unit_key = nil
}

// SetExerciseIndex sets the "exercise_index" field.
func (m *UnitExerciseMutation) SetExerciseIndex(i int) {
	m.exercise_index = &i
	m.addexercise_index = nil
}

// ExerciseIndex returns the value of the "exercise_index" field in the mutation.
func (m *UnitExerciseMutation) ExerciseIndex() (r int, exists bool) {
	v := m.exercise_index
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseIndex returns the old "exercise_index" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldExerciseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseIndex: %w", err)
	}
	return oldValue.ExerciseIndex, nil
}

// AddExerciseIndex adds i to the "exercise_index" field.
func (m *UnitExerciseMutation) AddExerciseIndex(i int) {
	if m.addexercise_index != nil {
		*m.addexercise_index += i
	} else {
		m.addexercise_index = &i
	}
}

// AddedExerciseIndex returns the value that was added to the "exercise_index" field in this mutation.
func (m *UnitExerciseMutation) AddedExerciseIndex() (r int, exists bool) {
	v := m.addexercise_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseIndex resets all changes to the "exercise_index" field.
func (m *UnitExerciseMutation) ResetExerciseIndex() {
	m.exercise_index = nil
	m.addexercise_index = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *UnitExerciseMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *UnitExerciseMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *UnitExerciseMutation) ResetExerciseType() {
	m.exercise_type = nil
}

// SetInstruction sets the "instruction" field.
func (m *UnitExerciseMutation) SetInstruction(s string) {
	m.instruction = &s
}

// Instruction returns the value of the "instruction" field in the mutation.
func (m *UnitExerciseMutation) Instruction() (r string, exists bool) {
	v := m.instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldInstruction returns the old "instruction" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstruction: %w", err)
	}
	return oldValue.Instruction, nil
}

// ResetInstruction resets all changes to the "instruction" field.
func (m *UnitExerciseMutation) ResetInstruction() {
	m.instruction = nil
}

// SetItems sets the "items" field.
func (m *UnitExerciseMutation) SetItems(c []content.Item) {
	m.items = &c
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *UnitExerciseMutation) Items() (r []content.Item, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldItems(ctx context.Context) (v []content.Item, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds c to the "items" field.
func (m *UnitExerciseMutation) AppendItems(c []content.Item) {
	m.appenditems = append(m.appenditems, c...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *UnitExerciseMutation) AppendedItems() ([]content.Item, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *UnitExerciseMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetSource sets the "source" field.
func (m *UnitExerciseMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *UnitExerciseMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *UnitExerciseMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitExerciseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitExerciseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnitExercise entity.
// If the UnitExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitExerciseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitExerciseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UnitExerciseMutation builder.
func (m *UnitExerciseMutation) Where(ps ...predicate.UnitExercise) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitExerciseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitExerciseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnitExercise, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitExerciseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitExerciseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnitExercise).
func (m *UnitExerciseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitExerciseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.unit_key != nil {
		fields = append(fields, unitexercise.FieldUnitKey)
	}
	if m.exercise_index != nil {
		fields = append(fields, unitexercise.FieldExerciseIndex)
	}
	if m.exercise_type != nil {
		fields = append(fields, unitexercise.FieldExerciseType)
	}
	if m.instruction != nil {
		fields = append(fields, unitexercise.FieldInstruction)
	}
	if m.items != nil {
		fields = append(fields, unitexercise.FieldItems)
	}
	if m.source != nil {
		fields = append(fields, unitexercise.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, unitexercise.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitExerciseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unitexercise.FieldUnitKey:
		return m.UnitKey()
	case unitexercise.FieldExerciseIndex:
		return m.ExerciseIndex()
	case unitexercise.FieldExerciseType:
		return m.ExerciseType()
	case unitexercise.FieldInstruction:
		return m.Instruction()
	case unitexercise.FieldItems:
		return m.Items()
	case unitexercise.FieldSource:
		return m.Source()
	case unitexercise.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitExerciseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unitexercise.FieldUnitKey:
		return m.OldUnitKey(ctx)
	case unitexercise.FieldExerciseIndex:
		return m.OldExerciseIndex(ctx)
	case unitexercise.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case unitexercise.FieldInstruction:
		return m.OldInstruction(ctx)
	case unitexercise.FieldItems:
		return m.OldItems(ctx)
	case unitexercise.FieldSource:
		return m.OldSource(ctx)
	case unitexercise.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnitExercise field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitExerciseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unitexercise.FieldUnitKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitKey(v)
		return nil
	case unitexercise.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseIndex(v)
		return nil
	case unitexercise.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case unitexercise.FieldInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstruction(v)
		return nil
	case unitexercise.FieldItems:
		v, ok := value.([]content.Item)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case unitexercise.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case unitexercise.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnitExercise field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitExerciseMutation) AddedFields() []string {
	var fields []string
	if m.addexercise_index != nil {
		fields = append(fields, unitexercise.FieldExerciseIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitExerciseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unitexercise.FieldExerciseIndex:
		return m.AddedExerciseIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitExerciseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unitexercise.FieldExerciseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseIndex(v)
		return nil
	}
	return fmt.Errorf("unknown UnitExercise numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitExerciseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitExerciseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitExerciseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UnitExercise nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitExerciseMutation) ResetField(name string) error {
	switch name {
	case unitexercise.FieldUnitKey:
		m.ResetUnitKey()
		return nil
	case unitexercise.FieldExerciseIndex:
		m.ResetExerciseIndex()
		return nil
	case unitexercise.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case unitexercise.FieldInstruction:
		m.ResetInstruction()
		return nil
	case unitexercise.FieldItems:
		m.ResetItems()
		return nil
	case unitexercise.FieldSource:
		m.ResetSource()
		return nil
	case unitexercise.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UnitExercise field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitExerciseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitExerciseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitExerciseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitExerciseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitExerciseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitExerciseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitExerciseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnitExercise unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitExerciseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnitExercise edge %s", name)
}
