// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/learnerstate"
)

// LearnerState is the model entity for the LearnerState schema.
type LearnerState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 1:1 with Learner
	LearnerID int `json:"learner_id,omitempty"`
	// Next placement item position, 0-based
	PlacementIndex int `json:"placement_index,omitempty"`
	// Correct answers during placement
	PlacementCorrect int `json:"placement_correct,omitempty"`
	// PlacementDone holds the value of the "placement_done" field.
	PlacementDone bool `json:"placement_done,omitempty"`
	// Current study batch, incremented when a batch is seeded
	BatchNum int `json:"batch_num,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerstate.FieldPlacementDone:
			values[i] = new(sql.NullBool)
		case learnerstate.FieldID, learnerstate.FieldLearnerID, learnerstate.FieldPlacementIndex, learnerstate.FieldPlacementCorrect, learnerstate.FieldBatchNum:
			values[i] = new(sql.NullInt64)
		case learnerstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerState fields.
func (_m *LearnerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case learnerstate.FieldPlacementIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field placement_index", values[i])
			} else if value.Valid {
				_m.PlacementIndex = int(value.Int64)
			}
		case learnerstate.FieldPlacementCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field placement_correct", values[i])
			} else if value.Valid {
				_m.PlacementCorrect = int(value.Int64)
			}
		case learnerstate.FieldPlacementDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field placement_done", values[i])
			} else if value.Valid {
				_m.PlacementDone = value.Bool
			}
		case learnerstate.FieldBatchNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_num", values[i])
			} else if value.Valid {
				_m.BatchNum = int(value.Int64)
			}
		case learnerstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerState.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerState.
// Note that you need to call LearnerState.Unwrap() before calling this method if this LearnerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerState) Update() *LearnerStateUpdateOne {
	return NewLearnerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerState) Unwrap() *LearnerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerState) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("placement_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlacementIndex))
	builder.WriteString(", ")
	builder.WriteString("placement_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlacementCorrect))
	builder.WriteString(", ")
	builder.WriteString("placement_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlacementDone))
	builder.WriteString(", ")
	builder.WriteString("batch_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchNum))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerStates is a parsable slice of LearnerState.
type LearnerStates []*LearnerState
