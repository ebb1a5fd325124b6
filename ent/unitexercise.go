// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/unitexercise"
	"github.com/verba-app/verba/internal/content"
)

// UnitExercise is the model entity for the UnitExercise schema.
type UnitExercise struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Study unit this exercise belongs to, e.g. past_simple_1
	UnitKey string `json:"unit_key,omitempty"`
	// 1-based position within the unit
	ExerciseIndex int `json:"exercise_index,omitempty"`
	// freetext, mcq, or multiselect
	ExerciseType string `json:"exercise_type,omitempty"`
	// Instruction holds the value of the "instruction" field.
	Instruction string `json:"instruction,omitempty"`
	// Ordered items; at least one
	Items []content.Item `json:"items,omitempty"`
	// authored (imported) or generated (LLM)
	Source string `json:"source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnitExercise) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unitexercise.FieldItems:
			values[i] = new([]byte)
		case unitexercise.FieldID, unitexercise.FieldExerciseIndex:
			values[i] = new(sql.NullInt64)
		case unitexercise.FieldUnitKey, unitexercise.FieldExerciseType, unitexercise.FieldInstruction, unitexercise.FieldSource:
			values[i] = new(sql.NullString)
		case unitexercise.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnitExercise fields.
func (_m *UnitExercise) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unitexercise.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case unitexercise.FieldUnitKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_key", values[i])
			} else if value.Valid {
				_m.UnitKey = value.String
			}
		case unitexercise.FieldExerciseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_index", values[i])
			} else if value.Valid {
				_m.ExerciseIndex = int(value.Int64)
			}
		case unitexercise.FieldExerciseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_type", values[i])
			} else if value.Valid {
				_m.ExerciseType = value.String
			}
		case unitexercise.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = value.String
			}
		case unitexercise.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case unitexercise.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case unitexercise.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UnitExercise.
// This includes values selected through modifiers, order, etc.
func (_m *UnitExercise) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnitExercise.
// Note that you need to call UnitExercise.Unwrap() before calling this method if this UnitExercise
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnitExercise) Update() *UnitExerciseUpdateOne {
	return NewUnitExerciseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnitExercise entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnitExercise) Unwrap() *UnitExercise {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnitExercise is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnitExercise) String() string {
	var builder strings.Builder
	builder.WriteString("UnitExercise(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_key=")
	builder.WriteString(_m.UnitKey)
	builder.WriteString(", ")
	builder.WriteString("exercise_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseIndex))
	builder.WriteString(", ")
	builder.WriteString("exercise_type=")
	builder.WriteString(_m.ExerciseType)
	builder.WriteString(", ")
	builder.WriteString("instruction=")
	builder.WriteString(_m.Instruction)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnitExercises is a parsable slice of UnitExercise.
type UnitExercises []*UnitExercise
