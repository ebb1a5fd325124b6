// Code generated by ent, DO NOT EDIT.

package learnerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLearnerID, v))
}

// PlacementIndex applies equality check predicate on the "placement_index" field. It's identical to PlacementIndexEQ.
func PlacementIndex(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementIndex, v))
}

// PlacementCorrect applies equality check predicate on the "placement_correct" field. It's identical to PlacementCorrectEQ.
func PlacementCorrect(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementCorrect, v))
}

// PlacementDone applies equality check predicate on the "placement_done" field. It's identical to PlacementDoneEQ.
func PlacementDone(v bool) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementDone, v))
}

// BatchNum applies equality check predicate on the "batch_num" field. It's identical to BatchNumEQ.
func BatchNum(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldBatchNum, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldLearnerID, v))
}

// PlacementIndexEQ applies the EQ predicate on the "placement_index" field.
func PlacementIndexEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementIndex, v))
}

// PlacementIndexNEQ applies the NEQ predicate on the "placement_index" field.
func PlacementIndexNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldPlacementIndex, v))
}

// PlacementIndexIn applies the In predicate on the "placement_index" field.
func PlacementIndexIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldPlacementIndex, vs...))
}

// PlacementIndexNotIn applies the NotIn predicate on the "placement_index" field.
func PlacementIndexNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldPlacementIndex, vs...))
}

// PlacementIndexGT applies the GT predicate on the "placement_index" field.
func PlacementIndexGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldPlacementIndex, v))
}

// PlacementIndexGTE applies the GTE predicate on the "placement_index" field.
func PlacementIndexGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldPlacementIndex, v))
}

// PlacementIndexLT applies the LT predicate on the "placement_index" field.
func PlacementIndexLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldPlacementIndex, v))
}

// PlacementIndexLTE applies the LTE predicate on the "placement_index" field.
func PlacementIndexLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldPlacementIndex, v))
}

// PlacementCorrectEQ applies the EQ predicate on the "placement_correct" field.
func PlacementCorrectEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementCorrect, v))
}

// PlacementCorrectNEQ applies the NEQ predicate on the "placement_correct" field.
func PlacementCorrectNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldPlacementCorrect, v))
}

// PlacementCorrectIn applies the In predicate on the "placement_correct" field.
func PlacementCorrectIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldPlacementCorrect, vs...))
}

// PlacementCorrectNotIn applies the NotIn predicate on the "placement_correct" field.
func PlacementCorrectNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldPlacementCorrect, vs...))
}

// PlacementCorrectGT applies the GT predicate on the "placement_correct" field.
func PlacementCorrectGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldPlacementCorrect, v))
}

// PlacementCorrectGTE applies the GTE predicate on the "placement_correct" field.
func PlacementCorrectGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldPlacementCorrect, v))
}

// PlacementCorrectLT applies the LT predicate on the "placement_correct" field.
func PlacementCorrectLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldPlacementCorrect, v))
}

// PlacementCorrectLTE applies the LTE predicate on the "placement_correct" field.
func PlacementCorrectLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldPlacementCorrect, v))
}

// PlacementDoneEQ applies the EQ predicate on the "placement_done" field.
func PlacementDoneEQ(v bool) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPlacementDone, v))
}

// PlacementDoneNEQ applies the NEQ predicate on the "placement_done" field.
func PlacementDoneNEQ(v bool) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldPlacementDone, v))
}

// BatchNumEQ applies the EQ predicate on the "batch_num" field.
func BatchNumEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldBatchNum, v))
}

// BatchNumNEQ applies the NEQ predicate on the "batch_num" field.
func BatchNumNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldBatchNum, v))
}

// BatchNumIn applies the In predicate on the "batch_num" field.
func BatchNumIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldBatchNum, vs...))
}

// BatchNumNotIn applies the NotIn predicate on the "batch_num" field.
func BatchNumNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldBatchNum, vs...))
}

// BatchNumGT applies the GT predicate on the "batch_num" field.
func BatchNumGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldBatchNum, v))
}

// BatchNumGTE applies the GTE predicate on the "batch_num" field.
func BatchNumGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldBatchNum, v))
}

// BatchNumLT applies the LT predicate on the "batch_num" field.
func BatchNumLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldBatchNum, v))
}

// BatchNumLTE applies the LTE predicate on the "batch_num" field.
func BatchNumLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldBatchNum, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.NotPredicates(p))
}
