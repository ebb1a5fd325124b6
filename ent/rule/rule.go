// Code generated by ent, DO NOT EDIT.

package rule

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rule type in the database.
	Label = "rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRuleKey holds the string denoting the rule_key field in the database.
	FieldRuleKey = "rule_key"
	// FieldUnitKey holds the string denoting the unit_key field in the database.
	FieldUnitKey = "unit_key"
	// FieldSectionPath holds the string denoting the section_path field in the database.
	FieldSectionPath = "section_path"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldShortText holds the string denoting the short_text field in the database.
	FieldShortText = "short_text"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// Table holds the table name of the rule in the database.
	Table = "rules"
)

// Columns holds all SQL columns for rule fields.
var Columns = []string{
	FieldID,
	FieldRuleKey,
	FieldUnitKey,
	FieldSectionPath,
	FieldTitle,
	FieldText,
	FieldShortText,
	FieldExamples,
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
	// RuleKeyValidator is a validator for the "rule_key" field. It is called by the builders before save.
	RuleKeyValidator func(string) error
	// UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	UnitKeyValidator func(string) error
	// DefaultSectionPath holds the default value on creation for the "section_path" field.
	DefaultSectionPath string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultText holds the default value on creation for the "text" field.
	DefaultText string
	// DefaultShortText holds the default value on creation for the "short_text" field.
	DefaultShortText string
)

// OrderOption defines the ordering options for the Rule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRuleKey orders the results by the rule_key field.
func ByRuleKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleKey, opts...).ToFunc()
}

// ByUnitKey orders the results by the unit_key field.
func ByUnitKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitKey, opts...).ToFunc()
}

// BySectionPath orders the results by the section_path field.
func BySectionPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionPath, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByShortText orders the results by the short_text field.
func ByShortText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortText, opts...).ToFunc()
}
