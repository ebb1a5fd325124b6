// Code generated by ent, DO NOT EDIT.

package placementitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the placementitem type in the database.
	Label = "placement_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldUnitKey holds the string denoting the unit_key field in the database.
	FieldUnitKey = "unit_key"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldCanonical holds the string denoting the canonical field in the database.
	FieldCanonical = "canonical"
	// FieldAcceptedVariants holds the string denoting the accepted_variants field in the database.
	FieldAcceptedVariants = "accepted_variants"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldSelectionPolicy holds the string denoting the selection_policy field in the database.
	FieldSelectionPolicy = "selection_policy"
	// FieldCorrectOptions holds the string denoting the correct_options field in the database.
	FieldCorrectOptions = "correct_options"
	// FieldInstruction holds the string denoting the instruction field in the database.
	FieldInstruction = "instruction"
	// FieldStudyUnitKeys holds the string denoting the study_unit_keys field in the database.
	FieldStudyUnitKeys = "study_unit_keys"
	// Table holds the table name of the placementitem in the database.
	Table = "placement_items"
)

// Columns holds all SQL columns for placementitem fields.
var Columns = []string{
	FieldID,
	FieldPosition,
	FieldUnitKey,
	FieldPrompt,
	FieldItemType,
	FieldCanonical,
	FieldAcceptedVariants,
	FieldOptions,
	FieldSelectionPolicy,
	FieldCorrectOptions,
	FieldInstruction,
	FieldStudyUnitKeys,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUnitKey holds the default value on creation for the "unit_key" field.
	DefaultUnitKey string
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultItemType holds the default value on creation for the "item_type" field.
	DefaultItemType string
	// CanonicalValidator is a validator for the "canonical" field. It is called by the builders before save.
	CanonicalValidator func(string) error
	// DefaultSelectionPolicy holds the default value on creation for the "selection_policy" field.
	DefaultSelectionPolicy string
	// DefaultInstruction holds the default value on creation for the "instruction" field.
	DefaultInstruction string
)

// OrderOption defines the ordering options for the PlacementItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByUnitKey orders the results by the unit_key field.
func ByUnitKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitKey, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByCanonical orders the results by the canonical field.
func ByCanonical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonical, opts...).ToFunc()
}

// BySelectionPolicy orders the results by the selection_policy field.
func BySelectionPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectionPolicy, opts...).ToFunc()
}

// ByInstruction orders the results by the instruction field.
func ByInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstruction, opts...).ToFunc()
}
