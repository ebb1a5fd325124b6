// Code generated by ent, DO NOT EDIT.

package dueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dueitem type in the database.
	Label = "due_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldUnitKey holds the string denoting the unit_key field in the database.
	FieldUnitKey = "unit_key"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldExerciseIndex holds the string denoting the exercise_index field in the database.
	FieldExerciseIndex = "exercise_index"
	// FieldItemInExercise holds the string denoting the item_in_exercise field in the database.
	FieldItemInExercise = "item_in_exercise"
	// FieldCorrectInExercise holds the string denoting the correct_in_exercise field in the database.
	FieldCorrectInExercise = "correct_in_exercise"
	// FieldBatchNum holds the string denoting the batch_num field in the database.
	FieldBatchNum = "batch_num"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCauseRuleKeys holds the string denoting the cause_rule_keys field in the database.
	FieldCauseRuleKeys = "cause_rule_keys"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dueitem in the database.
	Table = "due_items"
)

// Columns holds all SQL columns for dueitem fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldKind,
	FieldUnitKey,
	FieldDueAt,
	FieldExerciseIndex,
	FieldItemInExercise,
	FieldCorrectInExercise,
	FieldBatchNum,
	FieldIsActive,
	FieldCauseRuleKeys,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	UnitKeyValidator func(string) error
	// DefaultExerciseIndex holds the default value on creation for the "exercise_index" field.
	DefaultExerciseIndex int
	// DefaultItemInExercise holds the default value on creation for the "item_in_exercise" field.
	DefaultItemInExercise int
	// DefaultCorrectInExercise holds the default value on creation for the "correct_in_exercise" field.
	DefaultCorrectInExercise int
	// DefaultBatchNum holds the default value on creation for the "batch_num" field.
	DefaultBatchNum int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DueItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByUnitKey orders the results by the unit_key field.
func ByUnitKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitKey, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByExerciseIndex orders the results by the exercise_index field.
func ByExerciseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseIndex, opts...).ToFunc()
}

// ByItemInExercise orders the results by the item_in_exercise field.
func ByItemInExercise(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemInExercise, opts...).ToFunc()
}

// ByCorrectInExercise orders the results by the correct_in_exercise field.
func ByCorrectInExercise(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectInExercise, opts...).ToFunc()
}

// ByBatchNum orders the results by the batch_num field.
func ByBatchNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNum, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
