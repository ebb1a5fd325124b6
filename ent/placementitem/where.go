// Code generated by ent, DO NOT EDIT.

package placementitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldID, id))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldPosition, v))
}

// UnitKey applies equality check predicate on the "unit_key" field. It's identical to UnitKeyEQ.
func UnitKey(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldUnitKey, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldPrompt, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldItemType, v))
}

// Canonical applies equality check predicate on the "canonical" field. It's identical to CanonicalEQ.
func Canonical(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldCanonical, v))
}

// SelectionPolicy applies equality check predicate on the "selection_policy" field. It's identical to SelectionPolicyEQ.
func SelectionPolicy(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldSelectionPolicy, v))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldInstruction, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldPosition, v))
}

// UnitKeyEQ applies the EQ predicate on the "unit_key" field.
func UnitKeyEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldUnitKey, v))
}

// UnitKeyNEQ applies the NEQ predicate on the "unit_key" field.
func UnitKeyNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldUnitKey, v))
}

// UnitKeyIn applies the In predicate on the "unit_key" field.
func UnitKeyIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldUnitKey, vs...))
}

// UnitKeyNotIn applies the NotIn predicate on the "unit_key" field.
func UnitKeyNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldUnitKey, vs...))
}

// UnitKeyGT applies the GT predicate on the "unit_key" field.
func UnitKeyGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldUnitKey, v))
}

// UnitKeyGTE applies the GTE predicate on the "unit_key" field.
func UnitKeyGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldUnitKey, v))
}

// UnitKeyLT applies the LT predicate on the "unit_key" field.
func UnitKeyLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldUnitKey, v))
}

// UnitKeyLTE applies the LTE predicate on the "unit_key" field.
func UnitKeyLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldUnitKey, v))
}

// UnitKeyContains applies the Contains predicate on the "unit_key" field.
func UnitKeyContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldUnitKey, v))
}

// UnitKeyHasPrefix applies the HasPrefix predicate on the "unit_key" field.
func UnitKeyHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldUnitKey, v))
}

// UnitKeyHasSuffix applies the HasSuffix predicate on the "unit_key" field.
func UnitKeyHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldUnitKey, v))
}

// UnitKeyEqualFold applies the EqualFold predicate on the "unit_key" field.
func UnitKeyEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldUnitKey, v))
}

// UnitKeyContainsFold applies the ContainsFold predicate on the "unit_key" field.
func UnitKeyContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldUnitKey, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldPrompt, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldItemType, v))
}

// CanonicalEQ applies the EQ predicate on the "canonical" field.
func CanonicalEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldCanonical, v))
}

// CanonicalNEQ applies the NEQ predicate on the "canonical" field.
func CanonicalNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldCanonical, v))
}

// CanonicalIn applies the In predicate on the "canonical" field.
func CanonicalIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldCanonical, vs...))
}

// CanonicalNotIn applies the NotIn predicate on the "canonical" field.
func CanonicalNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldCanonical, vs...))
}

// CanonicalGT applies the GT predicate on the "canonical" field.
func CanonicalGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldCanonical, v))
}

// CanonicalGTE applies the GTE predicate on the "canonical" field.
func CanonicalGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldCanonical, v))
}

// CanonicalLT applies the LT predicate on the "canonical" field.
func CanonicalLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldCanonical, v))
}

// CanonicalLTE applies the LTE predicate on the "canonical" field.
func CanonicalLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldCanonical, v))
}

// CanonicalContains applies the Contains predicate on the "canonical" field.
func CanonicalContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldCanonical, v))
}

// CanonicalHasPrefix applies the HasPrefix predicate on the "canonical" field.
func CanonicalHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldCanonical, v))
}

// CanonicalHasSuffix applies the HasSuffix predicate on the "canonical" field.
func CanonicalHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldCanonical, v))
}

// CanonicalEqualFold applies the EqualFold predicate on the "canonical" field.
func CanonicalEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldCanonical, v))
}

// CanonicalContainsFold applies the ContainsFold predicate on the "canonical" field.
func CanonicalContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldCanonical, v))
}

// AcceptedVariantsIsNil applies the IsNil predicate on the "accepted_variants" field.
func AcceptedVariantsIsNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIsNull(FieldAcceptedVariants))
}

// AcceptedVariantsNotNil applies the NotNil predicate on the "accepted_variants" field.
func AcceptedVariantsNotNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotNull(FieldAcceptedVariants))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotNull(FieldOptions))
}

// SelectionPolicyEQ applies the EQ predicate on the "selection_policy" field.
func SelectionPolicyEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldSelectionPolicy, v))
}

// SelectionPolicyNEQ applies the NEQ predicate on the "selection_policy" field.
func SelectionPolicyNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldSelectionPolicy, v))
}

// SelectionPolicyIn applies the In predicate on the "selection_policy" field.
func SelectionPolicyIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldSelectionPolicy, vs...))
}

// SelectionPolicyNotIn applies the NotIn predicate on the "selection_policy" field.
func SelectionPolicyNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldSelectionPolicy, vs...))
}

// SelectionPolicyGT applies the GT predicate on the "selection_policy" field.
func SelectionPolicyGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldSelectionPolicy, v))
}

// SelectionPolicyGTE applies the GTE predicate on the "selection_policy" field.
func SelectionPolicyGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldSelectionPolicy, v))
}

// SelectionPolicyLT applies the LT predicate on the "selection_policy" field.
func SelectionPolicyLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldSelectionPolicy, v))
}

// SelectionPolicyLTE applies the LTE predicate on the "selection_policy" field.
func SelectionPolicyLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldSelectionPolicy, v))
}

// SelectionPolicyContains applies the Contains predicate on the "selection_policy" field.
func SelectionPolicyContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldSelectionPolicy, v))
}

// SelectionPolicyHasPrefix applies the HasPrefix predicate on the "selection_policy" field.
func SelectionPolicyHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldSelectionPolicy, v))
}

// SelectionPolicyHasSuffix applies the HasSuffix predicate on the "selection_policy" field.
func SelectionPolicyHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldSelectionPolicy, v))
}

// SelectionPolicyEqualFold applies the EqualFold predicate on the "selection_policy" field.
func SelectionPolicyEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldSelectionPolicy, v))
}

// SelectionPolicyContainsFold applies the ContainsFold predicate on the "selection_policy" field.
func SelectionPolicyContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldSelectionPolicy, v))
}

// CorrectOptionsIsNil applies the IsNil predicate on the "correct_options" field.
func CorrectOptionsIsNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIsNull(FieldCorrectOptions))
}

// CorrectOptionsNotNil applies the NotNil predicate on the "correct_options" field.
func CorrectOptionsNotNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotNull(FieldCorrectOptions))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldContainsFold(FieldInstruction, v))
}

// StudyUnitKeysIsNil applies the IsNil predicate on the "study_unit_keys" field.
func StudyUnitKeysIsNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldIsNull(FieldStudyUnitKeys))
}

// StudyUnitKeysNotNil applies the NotNil predicate on the "study_unit_keys" field.
func StudyUnitKeysNotNil() predicate.PlacementItem {
	return predicate.PlacementItem(sql.FieldNotNull(FieldStudyUnitKeys))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementItem) predicate.PlacementItem {
	return predicate.PlacementItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementItem) predicate.PlacementItem {
	return predicate.PlacementItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementItem) predicate.PlacementItem {
	return predicate.PlacementItem(sql.NotPredicates(p))
}
