// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLearnerID, v))
}

// DueItemID applies equality check predicate on the "due_item_id" field. It's identical to DueItemIDEQ.
func DueItemID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDueItemID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionID, v))
}

// UnitKey applies equality check predicate on the "unit_key" field. It's identical to UnitKeyEQ.
func UnitKey(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUnitKey, v))
}

// ExerciseIndex applies equality check predicate on the "exercise_index" field. It's identical to ExerciseIndexEQ.
func ExerciseIndex(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldExerciseIndex, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemIndex, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPrompt, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNorm applies equality check predicate on the "answer_norm" field. It's identical to AnswerNormEQ.
func AnswerNorm(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswerNorm, v))
}

// Canonical applies equality check predicate on the "canonical" field. It's identical to CanonicalEQ.
func Canonical(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCanonical, v))
}

// Verdict applies equality check predicate on the "verdict" field. It's identical to VerdictEQ.
func Verdict(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldVerdict, v))
}

// EffectiveCorrect applies equality check predicate on the "effective_correct" field. It's identical to EffectiveCorrectEQ.
func EffectiveCorrect(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldEffectiveCorrect, v))
}

// Flipped applies equality check predicate on the "flipped" field. It's identical to FlippedEQ.
func Flipped(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFlipped, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldLearnerID, v))
}

// DueItemIDEQ applies the EQ predicate on the "due_item_id" field.
func DueItemIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDueItemID, v))
}

// DueItemIDNEQ applies the NEQ predicate on the "due_item_id" field.
func DueItemIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldDueItemID, v))
}

// DueItemIDIn applies the In predicate on the "due_item_id" field.
func DueItemIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldDueItemID, vs...))
}

// DueItemIDNotIn applies the NotIn predicate on the "due_item_id" field.
func DueItemIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldDueItemID, vs...))
}

// DueItemIDGT applies the GT predicate on the "due_item_id" field.
func DueItemIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldDueItemID, v))
}

// DueItemIDGTE applies the GTE predicate on the "due_item_id" field.
func DueItemIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldDueItemID, v))
}

// DueItemIDLT applies the LT predicate on the "due_item_id" field.
func DueItemIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldDueItemID, v))
}

// DueItemIDLTE applies the LTE predicate on the "due_item_id" field.
func DueItemIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldDueItemID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSessionID, v))
}

// UnitKeyEQ applies the EQ predicate on the "unit_key" field.
func UnitKeyEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUnitKey, v))
}

// UnitKeyNEQ applies the NEQ predicate on the "unit_key" field.
func UnitKeyNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUnitKey, v))
}

// UnitKeyIn applies the In predicate on the "unit_key" field.
func UnitKeyIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUnitKey, vs...))
}

// UnitKeyNotIn applies the NotIn predicate on the "unit_key" field.
func UnitKeyNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUnitKey, vs...))
}

// UnitKeyGT applies the GT predicate on the "unit_key" field.
func UnitKeyGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUnitKey, v))
}

// UnitKeyGTE applies the GTE predicate on the "unit_key" field.
func UnitKeyGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUnitKey, v))
}

// UnitKeyLT applies the LT predicate on the "unit_key" field.
func UnitKeyLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUnitKey, v))
}

// UnitKeyLTE applies the LTE predicate on the "unit_key" field.
func UnitKeyLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUnitKey, v))
}

// UnitKeyContains applies the Contains predicate on the "unit_key" field.
func UnitKeyContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldUnitKey, v))
}

// UnitKeyHasPrefix applies the HasPrefix predicate on the "unit_key" field.
func UnitKeyHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldUnitKey, v))
}

// UnitKeyHasSuffix applies the HasSuffix predicate on the "unit_key" field.
func UnitKeyHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldUnitKey, v))
}

// UnitKeyEqualFold applies the EqualFold predicate on the "unit_key" field.
func UnitKeyEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldUnitKey, v))
}

// UnitKeyContainsFold applies the ContainsFold predicate on the "unit_key" field.
func UnitKeyContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldUnitKey, v))
}

// ExerciseIndexEQ applies the EQ predicate on the "exercise_index" field.
func ExerciseIndexEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldExerciseIndex, v))
}

// ExerciseIndexNEQ applies the NEQ predicate on the "exercise_index" field.
func ExerciseIndexNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldExerciseIndex, v))
}

// ExerciseIndexIn applies the In predicate on the "exercise_index" field.
func ExerciseIndexIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexNotIn applies the NotIn predicate on the "exercise_index" field.
func ExerciseIndexNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexGT applies the GT predicate on the "exercise_index" field.
func ExerciseIndexGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldExerciseIndex, v))
}

// ExerciseIndexGTE applies the GTE predicate on the "exercise_index" field.
func ExerciseIndexGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldExerciseIndex, v))
}

// ExerciseIndexLT applies the LT predicate on the "exercise_index" field.
func ExerciseIndexLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldExerciseIndex, v))
}

// ExerciseIndexLTE applies the LTE predicate on the "exercise_index" field.
func ExerciseIndexLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldExerciseIndex, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldItemIndex, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldPrompt, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldAnswer, v))
}

// AnswerNormEQ applies the EQ predicate on the "answer_norm" field.
func AnswerNormEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswerNorm, v))
}

// AnswerNormNEQ applies the NEQ predicate on the "answer_norm" field.
func AnswerNormNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAnswerNorm, v))
}

// AnswerNormIn applies the In predicate on the "answer_norm" field.
func AnswerNormIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAnswerNorm, vs...))
}

// AnswerNormNotIn applies the NotIn predicate on the "answer_norm" field.
func AnswerNormNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAnswerNorm, vs...))
}

// AnswerNormGT applies the GT predicate on the "answer_norm" field.
func AnswerNormGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAnswerNorm, v))
}

// AnswerNormGTE applies the GTE predicate on the "answer_norm" field.
func AnswerNormGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAnswerNorm, v))
}

// AnswerNormLT applies the LT predicate on the "answer_norm" field.
func AnswerNormLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAnswerNorm, v))
}

// AnswerNormLTE applies the LTE predicate on the "answer_norm" field.
func AnswerNormLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAnswerNorm, v))
}

// AnswerNormContains applies the Contains predicate on the "answer_norm" field.
func AnswerNormContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldAnswerNorm, v))
}

// AnswerNormHasPrefix applies the HasPrefix predicate on the "answer_norm" field.
func AnswerNormHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldAnswerNorm, v))
}

// AnswerNormHasSuffix applies the HasSuffix predicate on the "answer_norm" field.
func AnswerNormHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldAnswerNorm, v))
}

// AnswerNormEqualFold applies the EqualFold predicate on the "answer_norm" field.
func AnswerNormEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldAnswerNorm, v))
}

// AnswerNormContainsFold applies the ContainsFold predicate on the "answer_norm" field.
func AnswerNormContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldAnswerNorm, v))
}

// CanonicalEQ applies the EQ predicate on the "canonical" field.
func CanonicalEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCanonical, v))
}

// CanonicalNEQ applies the NEQ predicate on the "canonical" field.
func CanonicalNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCanonical, v))
}

// CanonicalIn applies the In predicate on the "canonical" field.
func CanonicalIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCanonical, vs...))
}

// CanonicalNotIn applies the NotIn predicate on the "canonical" field.
func CanonicalNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCanonical, vs...))
}

// CanonicalGT applies the GT predicate on the "canonical" field.
func CanonicalGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCanonical, v))
}

// CanonicalGTE applies the GTE predicate on the "canonical" field.
func CanonicalGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCanonical, v))
}

// CanonicalLT applies the LT predicate on the "canonical" field.
func CanonicalLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCanonical, v))
}

// CanonicalLTE applies the LTE predicate on the "canonical" field.
func CanonicalLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCanonical, v))
}

// CanonicalContains applies the Contains predicate on the "canonical" field.
func CanonicalContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldCanonical, v))
}

// CanonicalHasPrefix applies the HasPrefix predicate on the "canonical" field.
func CanonicalHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldCanonical, v))
}

// CanonicalHasSuffix applies the HasSuffix predicate on the "canonical" field.
func CanonicalHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldCanonical, v))
}

// CanonicalEqualFold applies the EqualFold predicate on the "canonical" field.
func CanonicalEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldCanonical, v))
}

// CanonicalContainsFold applies the ContainsFold predicate on the "canonical" field.
func CanonicalContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldCanonical, v))
}

// RuleKeysIsNil applies the IsNil predicate on the "rule_keys" field.
func RuleKeysIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldRuleKeys))
}

// RuleKeysNotNil applies the NotNil predicate on the "rule_keys" field.
func RuleKeysNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldRuleKeys))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldVerdict, vs...))
}

// VerdictGT applies the GT predicate on the "verdict" field.
func VerdictGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldVerdict, v))
}

// VerdictGTE applies the GTE predicate on the "verdict" field.
func VerdictGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldVerdict, v))
}

// VerdictLT applies the LT predicate on the "verdict" field.
func VerdictLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldVerdict, v))
}

// VerdictLTE applies the LTE predicate on the "verdict" field.
func VerdictLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldVerdict, v))
}

// VerdictContains applies the Contains predicate on the "verdict" field.
func VerdictContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldVerdict, v))
}

// VerdictHasPrefix applies the HasPrefix predicate on the "verdict" field.
func VerdictHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldVerdict, v))
}

// VerdictHasSuffix applies the HasSuffix predicate on the "verdict" field.
func VerdictHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldVerdict, v))
}

// VerdictEqualFold applies the EqualFold predicate on the "verdict" field.
func VerdictEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldVerdict, v))
}

// VerdictContainsFold applies the ContainsFold predicate on the "verdict" field.
func VerdictContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldVerdict, v))
}

// EffectiveCorrectEQ applies the EQ predicate on the "effective_correct" field.
func EffectiveCorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldEffectiveCorrect, v))
}

// EffectiveCorrectNEQ applies the NEQ predicate on the "effective_correct" field.
func EffectiveCorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldEffectiveCorrect, v))
}

// FlippedEQ applies the EQ predicate on the "flipped" field.
func FlippedEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFlipped, v))
}

// FlippedNEQ applies the NEQ predicate on the "flipped" field.
func FlippedNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFlipped, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
