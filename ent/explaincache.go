// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/explaincache"
)

// ExplainCache is the model entity for the ExplainCache schema.
type ExplainCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SHA-256 hex of unit key, prompt, normalized answer, and verdict
	CacheKey string `json:"cache_key,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// True when the model judged the graded-wrong answer correct
	VerdictFlip bool `json:"verdict_flip,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExplainCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case explaincache.FieldVerdictFlip:
			values[i] = new(sql.NullBool)
		case explaincache.FieldID:
			values[i] = new(sql.NullInt64)
		case explaincache.FieldCacheKey, explaincache.FieldExplanation:
			values[i] = new(sql.NullString)
		case explaincache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExplainCache fields.
func (_m *ExplainCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case explaincache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case explaincache.FieldCacheKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_key", values[i])
			} else if value.Valid {
				_m.CacheKey = value.String
			}
		case explaincache.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case explaincache.FieldVerdictFlip:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verdict_flip", values[i])
			} else if value.Valid {
				_m.VerdictFlip = value.Bool
			}
		case explaincache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExplainCache.
// This includes values selected through modifiers, order, etc.
func (_m *ExplainCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExplainCache.
// Note that you need to call ExplainCache.Unwrap() before calling this method if this ExplainCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExplainCache) Update() *ExplainCacheUpdateOne {
	return NewExplainCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExplainCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExplainCache) Unwrap() *ExplainCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExplainCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExplainCache) String() string {
	var builder strings.Builder
	builder.WriteString("ExplainCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cache_key=")
	builder.WriteString(_m.CacheKey)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("verdict_flip=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerdictFlip))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExplainCaches is a parsable slice of ExplainCache.
type ExplainCaches []*ExplainCache
