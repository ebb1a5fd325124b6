// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/placementitem"
)

// PlacementItem is the model entity for the PlacementItem schema.
type PlacementItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Presentation order, 0-based
	Position int `json:"position,omitempty"`
	// Unit this item probes; may be empty for general items
	UnitKey string `json:"unit_key,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// freetext, mcq, or multiselect
	ItemType string `json:"item_type,omitempty"`
	// Expected answer
	Canonical string `json:"canonical,omitempty"`
	// AcceptedVariants holds the value of the "accepted_variants" field.
	AcceptedVariants []string `json:"accepted_variants,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// SelectionPolicy holds the value of the "selection_policy" field.
	SelectionPolicy string `json:"selection_policy,omitempty"`
	// CorrectOptions holds the value of the "correct_options" field.
	CorrectOptions []string `json:"correct_options,omitempty"`
	// Instruction holds the value of the "instruction" field.
	Instruction string `json:"instruction,omitempty"`
	// Units a learner who misses this item should study
	StudyUnitKeys []string `json:"study_unit_keys,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlacementItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case placementitem.FieldAcceptedVariants, placementitem.FieldOptions, placementitem.FieldCorrectOptions, placementitem.FieldStudyUnitKeys:
			values[i] = new([]byte)
		case placementitem.FieldID, placementitem.FieldPosition:
			values[i] = new(sql.NullInt64)
		case placementitem.FieldUnitKey, placementitem.FieldPrompt, placementitem.FieldItemType, placementitem.FieldCanonical, placementitem.FieldSelectionPolicy, placementitem.FieldInstruction:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlacementItem fields.
func (_m *PlacementItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case placementitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case placementitem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case placementitem.FieldUnitKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_key", values[i])
			} else if value.Valid {
				_m.UnitKey = value.String
			}
		case placementitem.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case placementitem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = value.String
			}
		case placementitem.FieldCanonical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical", values[i])
			} else if value.Valid {
				_m.Canonical = value.String
			}
		case placementitem.FieldAcceptedVariants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accepted_variants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcceptedVariants); err != nil {
					return fmt.Errorf("unmarshal field accepted_variants: %w", err)
				}
			}
		case placementitem.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case placementitem.FieldSelectionPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selection_policy", values[i])
			} else if value.Valid {
				_m.SelectionPolicy = value.String
			}
		case placementitem.FieldCorrectOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correct_options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectOptions); err != nil {
					return fmt.Errorf("unmarshal field correct_options: %w", err)
				}
			}
		case placementitem.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = value.String
			}
		case placementitem.FieldStudyUnitKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field study_unit_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StudyUnitKeys); err != nil {
					return fmt.Errorf("unmarshal field study_unit_keys: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlacementItem.
// This includes values selected through modifiers, order, etc.
func (_m *PlacementItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlacementItem.
// Note that you need to call PlacementItem.Unwrap() before calling this method if this PlacementItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlacementItem) Update() *PlacementItemUpdateOne {
	return NewPlacementItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlacementItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlacementItem) Unwrap() *PlacementItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlacementItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlacementItem) String() string {
	var builder strings.Builder
	builder.WriteString("PlacementItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("unit_key=")
	builder.WriteString(_m.UnitKey)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(_m.ItemType)
	builder.WriteString(", ")
	builder.WriteString("canonical=")
	builder.WriteString(_m.Canonical)
	builder.WriteString(", ")
	builder.WriteString("accepted_variants=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptedVariants))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("selection_policy=")
	builder.WriteString(_m.SelectionPolicy)
	builder.WriteString(", ")
	builder.WriteString("correct_options=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectOptions))
	builder.WriteString(", ")
	builder.WriteString("instruction=")
	builder.WriteString(_m.Instruction)
	builder.WriteString(", ")
	builder.WriteString("study_unit_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyUnitKeys))
	builder.WriteByte(')')
	return builder.String()
}

// PlacementItems is a parsable slice of PlacementItem.
type PlacementItems []*PlacementItem
