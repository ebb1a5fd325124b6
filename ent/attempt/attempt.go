// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldDueItemID holds the string denoting the due_item_id field in the database.
	FieldDueItemID = "due_item_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUnitKey holds the string denoting the unit_key field in the database.
	FieldUnitKey = "unit_key"
	// FieldExerciseIndex holds the string denoting the exercise_index field in the database.
	FieldExerciseIndex = "exercise_index"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldAnswerNorm holds the string denoting the answer_norm field in the database.
	FieldAnswerNorm = "answer_norm"
	// FieldCanonical holds the string denoting the canonical field in the database.
	FieldCanonical = "canonical"
	// FieldRuleKeys holds the string denoting the rule_keys field in the database.
	FieldRuleKeys = "rule_keys"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldEffectiveCorrect holds the string denoting the effective_correct field in the database.
	FieldEffectiveCorrect = "effective_correct"
	// FieldFlipped holds the string denoting the flipped field in the database.
	FieldFlipped = "flipped"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldDueItemID,
	FieldSessionID,
	FieldUnitKey,
	FieldExerciseIndex,
	FieldItemIndex,
	FieldPrompt,
	FieldAnswer,
	FieldAnswerNorm,
	FieldCanonical,
	FieldRuleKeys,
	FieldVerdict,
	FieldEffectiveCorrect,
	FieldFlipped,
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
	// DefaultDueItemID holds the default value on creation for the "due_item_id" field.
	DefaultDueItemID int
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultUnitKey holds the default value on creation for the "unit_key" field.
	DefaultUnitKey string
	// DefaultExerciseIndex holds the default value on creation for the "exercise_index" field.
	DefaultExerciseIndex int
	// DefaultItemIndex holds the default value on creation for the "item_index" field.
	DefaultItemIndex int
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultAnswerNorm holds the default value on creation for the "answer_norm" field.
	DefaultAnswerNorm string
	// DefaultCanonical holds the default value on creation for the "canonical" field.
	DefaultCanonical string
	// VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	VerdictValidator func(string) error
	// DefaultFlipped holds the default value on creation for the "flipped" field.
	DefaultFlipped bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByDueItemID orders the results by the due_item_id field.
func ByDueItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueItemID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUnitKey orders the results by the unit_key field.
func ByUnitKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitKey, opts...).ToFunc()
}

// ByExerciseIndex orders the results by the exercise_index field.
func ByExerciseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseIndex, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByAnswerNorm orders the results by the answer_norm field.
func ByAnswerNorm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerNorm, opts...).ToFunc()
}

// ByCanonical orders the results by the canonical field.
func ByCanonical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonical, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByEffectiveCorrect orders the results by the effective_correct field.
func ByEffectiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveCorrect, opts...).ToFunc()
}

// ByFlipped orders the results by the flipped field.
func ByFlipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlipped, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
