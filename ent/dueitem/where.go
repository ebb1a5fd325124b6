// Code generated by ent, DO NOT EDIT.

package dueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldLearnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldKind, v))
}

// UnitKey applies equality check predicate on the "unit_key" field. It's identical to UnitKeyEQ.
func UnitKey(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldUnitKey, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldDueAt, v))
}

// ExerciseIndex applies equality check predicate on the "exercise_index" field. It's identical to ExerciseIndexEQ.
func ExerciseIndex(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldExerciseIndex, v))
}

// ItemInExercise applies equality check predicate on the "item_in_exercise" field. It's identical to ItemInExerciseEQ.
func ItemInExercise(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldItemInExercise, v))
}

// CorrectInExercise applies equality check predicate on the "correct_in_exercise" field. It's identical to CorrectInExerciseEQ.
func CorrectInExercise(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldCorrectInExercise, v))
}

// BatchNum applies equality check predicate on the "batch_num" field. It's identical to BatchNumEQ.
func BatchNum(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldBatchNum, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldLearnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldContainsFold(FieldKind, v))
}

// UnitKeyEQ applies the EQ predicate on the "unit_key" field.
func UnitKeyEQ(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldUnitKey, v))
}

// UnitKeyNEQ applies the NEQ predicate on the "unit_key" field.
func UnitKeyNEQ(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldUnitKey, v))
}

// UnitKeyIn applies the In predicate on the "unit_key" field.
func UnitKeyIn(vs ...string) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldUnitKey, vs...))
}

// UnitKeyNotIn applies the NotIn predicate on the "unit_key" field.
func UnitKeyNotIn(vs ...string) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldUnitKey, vs...))
}

// UnitKeyGT applies the GT predicate on the "unit_key" field.
func UnitKeyGT(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldUnitKey, v))
}

// UnitKeyGTE applies the GTE predicate on the "unit_key" field.
func UnitKeyGTE(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldUnitKey, v))
}

// UnitKeyLT applies the LT predicate on the "unit_key" field.
func UnitKeyLT(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldUnitKey, v))
}

// UnitKeyLTE applies the LTE predicate on the "unit_key" field.
func UnitKeyLTE(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldUnitKey, v))
}

// UnitKeyContains applies the Contains predicate on the "unit_key" field.
func UnitKeyContains(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldContains(FieldUnitKey, v))
}

// UnitKeyHasPrefix applies the HasPrefix predicate on the "unit_key" field.
func UnitKeyHasPrefix(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldHasPrefix(FieldUnitKey, v))
}

// UnitKeyHasSuffix applies the HasSuffix predicate on the "unit_key" field.
func UnitKeyHasSuffix(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldHasSuffix(FieldUnitKey, v))
}

// UnitKeyEqualFold applies the EqualFold predicate on the "unit_key" field.
func UnitKeyEqualFold(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldEqualFold(FieldUnitKey, v))
}

// UnitKeyContainsFold applies the ContainsFold predicate on the "unit_key" field.
func UnitKeyContainsFold(v string) predicate.DueItem {
	return predicate.DueItem(sql.FieldContainsFold(FieldUnitKey, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldDueAt, v))
}

// ExerciseIndexEQ applies the EQ predicate on the "exercise_index" field.
func ExerciseIndexEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldExerciseIndex, v))
}

// ExerciseIndexNEQ applies the NEQ predicate on the "exercise_index" field.
func ExerciseIndexNEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldExerciseIndex, v))
}

// ExerciseIndexIn applies the In predicate on the "exercise_index" field.
func ExerciseIndexIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexNotIn applies the NotIn predicate on the "exercise_index" field.
func ExerciseIndexNotIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexGT applies the GT predicate on the "exercise_index" field.
func ExerciseIndexGT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldExerciseIndex, v))
}

// ExerciseIndexGTE applies the GTE predicate on the "exercise_index" field.
func ExerciseIndexGTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldExerciseIndex, v))
}

// ExerciseIndexLT applies the LT predicate on the "exercise_index" field.
func ExerciseIndexLT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldExerciseIndex, v))
}

// ExerciseIndexLTE applies the LTE predicate on the "exercise_index" field.
func ExerciseIndexLTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldExerciseIndex, v))
}

// ItemInExerciseEQ applies the EQ predicate on the "item_in_exercise" field.
func ItemInExerciseEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldItemInExercise, v))
}

// ItemInExerciseNEQ applies the NEQ predicate on the "item_in_exercise" field.
func ItemInExerciseNEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldItemInExercise, v))
}

// ItemInExerciseIn applies the In predicate on the "item_in_exercise" field.
func ItemInExerciseIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldItemInExercise, vs...))
}

// ItemInExerciseNotIn applies the NotIn predicate on the "item_in_exercise" field.
func ItemInExerciseNotIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldItemInExercise, vs...))
}

// ItemInExerciseGT applies the GT predicate on the "item_in_exercise" field.
func ItemInExerciseGT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldItemInExercise, v))
}

// ItemInExerciseGTE applies the GTE predicate on the "item_in_exercise" field.
func ItemInExerciseGTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldItemInExercise, v))
}

// ItemInExerciseLT applies the LT predicate on the "item_in_exercise" field.
func ItemInExerciseLT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldItemInExercise, v))
}

// ItemInExerciseLTE applies the LTE predicate on the "item_in_exercise" field.
func ItemInExerciseLTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldItemInExercise, v))
}

// CorrectInExerciseEQ applies the EQ predicate on the "correct_in_exercise" field.
func CorrectInExerciseEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldCorrectInExercise, v))
}

// CorrectInExerciseNEQ applies the NEQ predicate on the "correct_in_exercise" field.
func CorrectInExerciseNEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldCorrectInExercise, v))
}

// CorrectInExerciseIn applies the In predicate on the "correct_in_exercise" field.
func CorrectInExerciseIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldCorrectInExercise, vs...))
}

// CorrectInExerciseNotIn applies the NotIn predicate on the "correct_in_exercise" field.
func CorrectInExerciseNotIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldCorrectInExercise, vs...))
}

// CorrectInExerciseGT applies the GT predicate on the "correct_in_exercise" field.
func CorrectInExerciseGT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldCorrectInExercise, v))
}

// CorrectInExerciseGTE applies the GTE predicate on the "correct_in_exercise" field.
func CorrectInExerciseGTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldCorrectInExercise, v))
}

// CorrectInExerciseLT applies the LT predicate on the "correct_in_exercise" field.
func CorrectInExerciseLT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldCorrectInExercise, v))
}

// CorrectInExerciseLTE applies the LTE predicate on the "correct_in_exercise" field.
func CorrectInExerciseLTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldCorrectInExercise, v))
}

// BatchNumEQ applies the EQ predicate on the "batch_num" field.
func BatchNumEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldBatchNum, v))
}

// BatchNumNEQ applies the NEQ predicate on the "batch_num" field.
func BatchNumNEQ(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldBatchNum, v))
}

// BatchNumIn applies the In predicate on the "batch_num" field.
func BatchNumIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldBatchNum, vs...))
}

// BatchNumNotIn applies the NotIn predicate on the "batch_num" field.
func BatchNumNotIn(vs ...int) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldBatchNum, vs...))
}

// BatchNumGT applies the GT predicate on the "batch_num" field.
func BatchNumGT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldBatchNum, v))
}

// BatchNumGTE applies the GTE predicate on the "batch_num" field.
func BatchNumGTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldBatchNum, v))
}

// BatchNumLT applies the LT predicate on the "batch_num" field.
func BatchNumLT(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldBatchNum, v))
}

// BatchNumLTE applies the LTE predicate on the "batch_num" field.
func BatchNumLTE(v int) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldBatchNum, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldIsActive, v))
}

// CauseRuleKeysIsNil applies the IsNil predicate on the "cause_rule_keys" field.
func CauseRuleKeysIsNil() predicate.DueItem {
	return predicate.DueItem(sql.FieldIsNull(FieldCauseRuleKeys))
}

// CauseRuleKeysNotNil applies the NotNil predicate on the "cause_rule_keys" field.
func CauseRuleKeysNotNil() predicate.DueItem {
	return predicate.DueItem(sql.FieldNotNull(FieldCauseRuleKeys))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DueItem {
	return predicate.DueItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DueItem) predicate.DueItem {
	return predicate.DueItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DueItem) predicate.DueItem {
	return predicate.DueItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DueItem) predicate.DueItem {
	return predicate.DueItem(sql.NotPredicates(p))
}
