// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/dueitem"
)

// DueItem is the model entity for the DueItem schema.
type DueItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID int `json:"learner_id,omitempty"`
	// detour, revisit, or check
	Kind string `json:"kind,omitempty"`
	// UnitKey holds the value of the "unit_key" field.
	UnitKey string `json:"unit_key,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt time.Time `json:"due_at,omitempty"`
	// 1-based position in the selected exercise sequence
	ExerciseIndex int `json:"exercise_index,omitempty"`
	// 1-based position within the current exercise
	ItemInExercise int `json:"item_in_exercise,omitempty"`
	// Consecutive-progress counter toward advancing
	CorrectInExercise int `json:"correct_in_exercise,omitempty"`
	// Study batch this item was created in
	BatchNum int `json:"batch_num,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Rule keys whose misses caused this item; drives item filtering
	CauseRuleKeys []string `json:"cause_rule_keys,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DueItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dueitem.FieldCauseRuleKeys:
			values[i] = new([]byte)
		case dueitem.FieldIsActive:
			values[i] = new(sql.NullBool)
		case dueitem.FieldID, dueitem.FieldLearnerID, dueitem.FieldExerciseIndex, dueitem.FieldItemInExercise, dueitem.FieldCorrectInExercise, dueitem.FieldBatchNum:
			values[i] = new(sql.NullInt64)
		case dueitem.FieldKind, dueitem.FieldUnitKey:
			values[i] = new(sql.NullString)
		case dueitem.FieldDueAt, dueitem.FieldCreatedAt, dueitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DueItem fields.
func (_m *DueItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dueitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dueitem.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case dueitem.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case dueitem.FieldUnitKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_key", values[i])
			} else if value.Valid {
				_m.UnitKey = value.String
			}
		case dueitem.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		case dueitem.FieldExerciseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_index", values[i])
			} else if value.Valid {
				_m.ExerciseIndex = int(value.Int64)
			}
		case dueitem.FieldItemInExercise:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_in_exercise", values[i])
			} else if value.Valid {
				_m.ItemInExercise = int(value.Int64)
			}
		case dueitem.FieldCorrectInExercise:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_in_exercise", values[i])
			} else if value.Valid {
				_m.CorrectInExercise = int(value.Int64)
			}
		case dueitem.FieldBatchNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_num", values[i])
			} else if value.Valid {
				_m.BatchNum = int(value.Int64)
			}
		case dueitem.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case dueitem.FieldCauseRuleKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cause_rule_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CauseRuleKeys); err != nil {
					return fmt.Errorf("unmarshal field cause_rule_keys: %w", err)
				}
			}
		case dueitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dueitem.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DueItem.
// This includes values selected through modifiers, order, etc.
func (_m *DueItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DueItem.
// Note that you need to call DueItem.Unwrap() before calling this method if this DueItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DueItem) Update() *DueItemUpdateOne {
	return NewDueItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DueItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DueItem) Unwrap() *DueItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DueItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DueItem) String() string {
	var builder strings.Builder
	builder.WriteString("DueItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("unit_key=")
	builder.WriteString(_m.UnitKey)
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exercise_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseIndex))
	builder.WriteString(", ")
	builder.WriteString("item_in_exercise=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemInExercise))
	builder.WriteString(", ")
	builder.WriteString("correct_in_exercise=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectInExercise))
	builder.WriteString(", ")
	builder.WriteString("batch_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchNum))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("cause_rule_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.CauseRuleKeys))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DueItems is a parsable slice of DueItem.
type DueItems []*DueItem
