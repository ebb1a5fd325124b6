// Code generated by ent, DO NOT EDIT.

package unitexercise

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldID, id))
}

// UnitKey applies equality check predicate on the "unit_key" field. It's identical to UnitKeyEQ.
func UnitKey(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldUnitKey, v))
}

// ExerciseIndex applies equality check predicate on the "exercise_index" field. It's identical to ExerciseIndexEQ.
func ExerciseIndex(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldExerciseIndex, v))
}

// ExerciseType applies equality check predicate on the "exercise_type" field. It's identical to ExerciseTypeEQ.
func ExerciseType(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldExerciseType, v))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldInstruction, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldCreatedAt, v))
}

// UnitKeyEQ applies the EQ predicate on the "unit_key" field.
func UnitKeyEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldUnitKey, v))
}

// UnitKeyNEQ applies the NEQ predicate on the "unit_key" field.
func UnitKeyNEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldUnitKey, v))
}

// UnitKeyIn applies the In predicate on the "unit_key" field.
func UnitKeyIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldUnitKey, vs...))
}

// UnitKeyNotIn applies the NotIn predicate on the "unit_key" field.
func UnitKeyNotIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldUnitKey, vs...))
}

// UnitKeyGT applies the GT predicate on the "unit_key" field.
func UnitKeyGT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldUnitKey, v))
}

// UnitKeyGTE applies the GTE predicate on the "unit_key" field.
func UnitKeyGTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldUnitKey, v))
}

// UnitKeyLT applies the LT predicate on the "unit_key" field.
func UnitKeyLT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldUnitKey, v))
}

// UnitKeyLTE applies the LTE predicate on the "unit_key" field.
func UnitKeyLTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldUnitKey, v))
}

// UnitKeyContains applies the Contains predicate on the "unit_key" field.
func UnitKeyContains(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContains(FieldUnitKey, v))
}

// UnitKeyHasPrefix applies the HasPrefix predicate on the "unit_key" field.
func UnitKeyHasPrefix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasPrefix(FieldUnitKey, v))
}

// UnitKeyHasSuffix applies the HasSuffix predicate on the "unit_key" field.
func UnitKeyHasSuffix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasSuffix(FieldUnitKey, v))
}

// UnitKeyEqualFold applies the EqualFold predicate on the "unit_key" field.
func UnitKeyEqualFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEqualFold(FieldUnitKey, v))
}

// UnitKeyContainsFold applies the ContainsFold predicate on the "unit_key" field.
func UnitKeyContainsFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContainsFold(FieldUnitKey, v))
}

// ExerciseIndexEQ applies the EQ predicate on the "exercise_index" field.
func ExerciseIndexEQ(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldExerciseIndex, v))
}

// ExerciseIndexNEQ applies the NEQ predicate on the "exercise_index" field.
func ExerciseIndexNEQ(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldExerciseIndex, v))
}

// ExerciseIndexIn applies the In predicate on the "exercise_index" field.
func ExerciseIndexIn(vs ...int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexNotIn applies the NotIn predicate on the "exercise_index" field.
func ExerciseIndexNotIn(vs ...int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldExerciseIndex, vs...))
}

// ExerciseIndexGT applies the GT predicate on the "exercise_index" field.
func ExerciseIndexGT(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldExerciseIndex, v))
}

// ExerciseIndexGTE applies the GTE predicate on the "exercise_index" field.
func ExerciseIndexGTE(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldExerciseIndex, v))
}

// ExerciseIndexLT applies the LT predicate on the "exercise_index" field.
func ExerciseIndexLT(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldExerciseIndex, v))
}

// ExerciseIndexLTE applies the LTE predicate on the "exercise_index" field.
func ExerciseIndexLTE(v int) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldExerciseIndex, v))
}

// ExerciseTypeEQ applies the EQ predicate on the "exercise_type" field.
func ExerciseTypeEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldExerciseType, v))
}

// ExerciseTypeNEQ applies the NEQ predicate on the "exercise_type" field.
func ExerciseTypeNEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldExerciseType, v))
}

// ExerciseTypeIn applies the In predicate on the "exercise_type" field.
func ExerciseTypeIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldExerciseType, vs...))
}

// ExerciseTypeNotIn applies the NotIn predicate on the "exercise_type" field.
func ExerciseTypeNotIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldExerciseType, vs...))
}

// ExerciseTypeGT applies the GT predicate on the "exercise_type" field.
func ExerciseTypeGT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldExerciseType, v))
}

// ExerciseTypeGTE applies the GTE predicate on the "exercise_type" field.
func ExerciseTypeGTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldExerciseType, v))
}

// ExerciseTypeLT applies the LT predicate on the "exercise_type" field.
func ExerciseTypeLT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldExerciseType, v))
}

// ExerciseTypeLTE applies the LTE predicate on the "exercise_type" field.
func ExerciseTypeLTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldExerciseType, v))
}

// ExerciseTypeContains applies the Contains predicate on the "exercise_type" field.
func ExerciseTypeContains(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContains(FieldExerciseType, v))
}

// ExerciseTypeHasPrefix applies the HasPrefix predicate on the "exercise_type" field.
func ExerciseTypeHasPrefix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasPrefix(FieldExerciseType, v))
}

// ExerciseTypeHasSuffix applies the HasSuffix predicate on the "exercise_type" field.
func ExerciseTypeHasSuffix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasSuffix(FieldExerciseType, v))
}

// ExerciseTypeEqualFold applies the EqualFold predicate on the "exercise_type" field.
func ExerciseTypeEqualFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEqualFold(FieldExerciseType, v))
}

// ExerciseTypeContainsFold applies the ContainsFold predicate on the "exercise_type" field.
func ExerciseTypeContainsFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContainsFold(FieldExerciseType, v))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContainsFold(FieldInstruction, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnitExercise {
	return predicate.UnitExercise(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnitExercise) predicate.UnitExercise {
	return predicate.UnitExercise(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnitExercise) predicate.UnitExercise {
	return predicate.UnitExercise(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnitExercise) predicate.UnitExercise {
	return predicate.UnitExercise(sql.NotPredicates(p))
}
