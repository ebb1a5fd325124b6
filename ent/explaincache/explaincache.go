// Code generated by ent, DO NOT EDIT.

package explaincache

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the explaincache type in the database.
	Label = "explain_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCacheKey holds the string denoting the cache_key field in the database.
	FieldCacheKey = "cache_key"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldVerdictFlip holds the string denoting the verdict_flip field in the database.
	FieldVerdictFlip = "verdict_flip"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the explaincache in the database.
	Table = "explain_caches"
)

// Columns holds all SQL columns for explaincache fields.
var Columns = []string{
	FieldID,
	FieldCacheKey,
	FieldExplanation,
	FieldVerdictFlip,
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
	// CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	CacheKeyValidator func(string) error
	// ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	ExplanationValidator func(string) error
	// DefaultVerdictFlip holds the default value on creation for the "verdict_flip" field.
	DefaultVerdictFlip bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExplainCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCacheKey orders the results by the cache_key field.
func ByCacheKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheKey, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByVerdictFlip orders the results by the verdict_flip field.
func ByVerdictFlip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdictFlip, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
