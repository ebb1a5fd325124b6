// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/attempt"
)

// Attempt is the model entity for the Attempt schema.
type Attempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID int `json:"learner_id,omitempty"`
	// Originating due item; 0 for placement attempts
	DueItemID int `json:"due_item_id,omitempty"`
	// Groups attempts of one drill session
	SessionID string `json:"session_id,omitempty"`
	// Empty for placement attempts
	UnitKey string `json:"unit_key,omitempty"`
	// ExerciseIndex holds the value of the "exercise_index" field.
	ExerciseIndex int `json:"exercise_index,omitempty"`
	// Real item index within the exercise, 1-based
	ItemIndex int `json:"item_index,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Raw learner input before normalization
	Answer string `json:"answer,omitempty"`
	// Learner input in display-normalized form, as graded
	AnswerNorm string `json:"answer_norm,omitempty"`
	// Canonical answer the verdict was graded against
	Canonical string `json:"canonical,omitempty"`
	// Rule keys implicated by the item; drives rule lookups and re-explanation
	RuleKeys []string `json:"rule_keys,omitempty"`
	// correct, almost, or wrong, as graded
	Verdict string `json:"verdict,omitempty"`
	// Verdict after strictness mapping, as counted by the scheduler
	EffectiveCorrect bool `json:"effective_correct,omitempty"`
	// True when a later explanation overturned the verdict
	Flipped bool `json:"flipped,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attempt.FieldRuleKeys:
			values[i] = new([]byte)
		case attempt.FieldEffectiveCorrect, attempt.FieldFlipped:
			values[i] = new(sql.NullBool)
		case attempt.FieldID, attempt.FieldLearnerID, attempt.FieldDueItemID, attempt.FieldExerciseIndex, attempt.FieldItemIndex:
			values[i] = new(sql.NullInt64)
		case attempt.FieldSessionID, attempt.FieldUnitKey, attempt.FieldPrompt, attempt.FieldAnswer, attempt.FieldAnswerNorm, attempt.FieldCanonical, attempt.FieldVerdict:
			values[i] = new(sql.NullString)
		case attempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attempt fields.
func (_m *Attempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attempt.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case attempt.FieldDueItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_item_id", values[i])
			} else if value.Valid {
				_m.DueItemID = int(value.Int64)
			}
		case attempt.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case attempt.FieldUnitKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_key", values[i])
			} else if value.Valid {
				_m.UnitKey = value.String
			}
		case attempt.FieldExerciseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_index", values[i])
			} else if value.Valid {
				_m.ExerciseIndex = int(value.Int64)
			}
		case attempt.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = int(value.Int64)
			}
		case attempt.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case attempt.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case attempt.FieldAnswerNorm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_norm", values[i])
			} else if value.Valid {
				_m.AnswerNorm = value.String
			}
		case attempt.FieldCanonical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical", values[i])
			} else if value.Valid {
				_m.Canonical = value.String
			}
		case attempt.FieldRuleKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rule_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RuleKeys); err != nil {
					return fmt.Errorf("unmarshal field rule_keys: %w", err)
				}
			}
		case attempt.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = value.String
			}
		case attempt.FieldEffectiveCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field effective_correct", values[i])
			} else if value.Valid {
				_m.EffectiveCorrect = value.Bool
			}
		case attempt.FieldFlipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flipped", values[i])
			} else if value.Valid {
				_m.Flipped = value.Bool
			}
		case attempt.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Attempt.
// This includes values selected through modifiers, order, etc.
func (_m *Attempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Attempt.
// Note that you need to call Attempt.Unwrap() before calling this method if this Attempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attempt) Update() *AttemptUpdateOne {
	return NewAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attempt) Unwrap() *Attempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attempt) String() string {
	var builder strings.Builder
	builder.WriteString("Attempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("due_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DueItemID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("unit_key=")
	builder.WriteString(_m.UnitKey)
	builder.WriteString(", ")
	builder.WriteString("exercise_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseIndex))
	builder.WriteString(", ")
	builder.WriteString("item_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIndex))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("answer_norm=")
	builder.WriteString(_m.AnswerNorm)
	builder.WriteString(", ")
	builder.WriteString("canonical=")
	builder.WriteString(_m.Canonical)
	builder.WriteString(", ")
	builder.WriteString("rule_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleKeys))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(_m.Verdict)
	builder.WriteString(", ")
	builder.WriteString("effective_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffectiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("flipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flipped))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Attempts is a parsable slice of Attempt.
type Attempts []*Attempt
