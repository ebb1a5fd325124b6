// Code generated by ent, DO NOT EDIT.

package learnerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerstate type in the database.
	Label = "learner_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldPlacementIndex holds the string denoting the placement_index field in the database.
	FieldPlacementIndex = "placement_index"
	// FieldPlacementCorrect holds the string denoting the placement_correct field in the database.
	FieldPlacementCorrect = "placement_correct"
	// FieldPlacementDone holds the string denoting the placement_done field in the database.
	FieldPlacementDone = "placement_done"
	// FieldBatchNum holds the string denoting the batch_num field in the database.
	FieldBatchNum = "batch_num"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerstate in the database.
	Table = "learner_states"
)

// Columns holds all SQL columns for learnerstate fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldPlacementIndex,
	FieldPlacementCorrect,
	FieldPlacementDone,
	FieldBatchNum,
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
	// DefaultPlacementIndex holds the default value on creation for the "placement_index" field.
	DefaultPlacementIndex int
	// DefaultPlacementCorrect holds the default value on creation for the "placement_correct" field.
	DefaultPlacementCorrect int
	// DefaultPlacementDone holds the default value on creation for the "placement_done" field.
	DefaultPlacementDone bool
	// DefaultBatchNum holds the default value on creation for the "batch_num" field.
	DefaultBatchNum int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByPlacementIndex orders the results by the placement_index field.
func ByPlacementIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacementIndex, opts...).ToFunc()
}

// ByPlacementCorrect orders the results by the placement_correct field.
func ByPlacementCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacementCorrect, opts...).ToFunc()
}

// ByPlacementDone orders the results by the placement_done field.
func ByPlacementDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacementDone, opts...).ToFunc()
}

// ByBatchNum orders the results by the batch_num field.
func ByBatchNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNum, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
