// Code generated by ent, DO NOT EDIT.

package unitexercise

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unitexercise type in the database.
	Label = "unit_exercise"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUnitKey holds the string denoting the unit_key field in the database.
	FieldUnitKey = "unit_key"
	// FieldExerciseIndex holds the string denoting the exercise_index field in the database.
	FieldExerciseIndex = "exercise_index"
	// FieldExerciseType holds the string denoting the exercise_type field in the database.
	FieldExerciseType = "exercise_type"
	// FieldInstruction holds the string denoting the instruction field in the database.
	FieldInstruction = "instruction"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the unitexercise in the database.
	Table = "unit_exercises"
)

// Columns holds all SQL columns for unitexercise fields.
var Columns = []string{
	FieldID,
	FieldUnitKey,
	FieldExerciseIndex,
	FieldExerciseType,
	FieldInstruction,
	FieldItems,
	FieldSource,
	FieldCreatedAt,
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
	// UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	UnitKeyValidator func(string) error
	// ExerciseIndexValidator is a validator for the "exercise_index" field. It is called by the builders before save.
	ExerciseIndexValidator func(int) error
	// ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	ExerciseTypeValidator func(string) error
	// InstructionValidator is a validator for the "instruction" field. It is called by the builders before save.
	InstructionValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UnitExercise queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUnitKey orders the results by the unit_key field.
func ByUnitKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitKey, opts...).ToFunc()
}

// ByExerciseIndex orders the results by the exercise_index field.
func ByExerciseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseIndex, opts...).ToFunc()
}

// ByExerciseType orders the results by the exercise_type field.
func ByExerciseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseType, opts...).ToFunc()
}

// ByInstruction orders the results by the instruction field.
func ByInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstruction, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
