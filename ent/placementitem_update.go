// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/placementitem"
	"github.com/verba-app/verba/ent/predicate"
)

// PlacementItemUpdate is the builder for updating PlacementItem entities.
type PlacementItemUpdate struct {
	config
	hooks    []Hook
	mutation *PlacementItemMutation
}

// Where appends a list predicates to the PlacementItemUpdate builder.
func (_u *PlacementItemUpdate) Where(ps ...predicate.PlacementItem) *PlacementItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *PlacementItemUpdate) SetPosition(v int) *PlacementItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillablePosition(v *int) *PlacementItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *PlacementItemUpdate) AddPosition(v int) *PlacementItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *PlacementItemUpdate) SetUnitKey(v string) *PlacementItemUpdate {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillableUnitKey(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *PlacementItemUpdate) SetPrompt(v string) *PlacementItemUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillablePrompt(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *PlacementItemUpdate) SetItemType(v string) *PlacementItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillableItemType(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *PlacementItemUpdate) SetCanonical(v string) *PlacementItemUpdate {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillableCanonical(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetAcceptedVariants sets the "accepted_variants" field.
func (_u *PlacementItemUpdate) SetAcceptedVariants(v []string) *PlacementItemUpdate {
	_u.mutation.SetAcceptedVariants(v)
	return _u
}

// AppendAcceptedVariants appends value to the "accepted_variants" field.
func (_u *PlacementItemUpdate) AppendAcceptedVariants(v []string) *PlacementItemUpdate {
	_u.mutation.AppendAcceptedVariants(v)
	return _u
}

// ClearAcceptedVariants clears the value of the "accepted_variants" field.
func (_u *PlacementItemUpdate) ClearAcceptedVariants() *PlacementItemUpdate {
	_u.mutation.ClearAcceptedVariants()
	return _u
}

// SetOptions sets the "options" field.
func (_u *PlacementItemUpdate) SetOptions(v []string) *PlacementItemUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *PlacementItemUpdate) AppendOptions(v []string) *PlacementItemUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *PlacementItemUpdate) ClearOptions() *PlacementItemUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetSelectionPolicy sets the "selection_policy" field.
func (_u *PlacementItemUpdate) SetSelectionPolicy(v string) *PlacementItemUpdate {
	_u.mutation.SetSelectionPolicy(v)
	return _u
}

// SetNillableSelectionPolicy sets the "selection_policy" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillableSelectionPolicy(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetSelectionPolicy(*v)
	}
	return _u
}

// SetCorrectOptions sets the "correct_options" field.
func (_u *PlacementItemUpdate) SetCorrectOptions(v []string) *PlacementItemUpdate {
	_u.mutation.SetCorrectOptions(v)
	return _u
}

// AppendCorrectOptions appends value to the "correct_options" field.
func (_u *PlacementItemUpdate) AppendCorrectOptions(v []string) *PlacementItemUpdate {
	_u.mutation.AppendCorrectOptions(v)
	return _u
}

// ClearCorrectOptions clears the value of the "correct_options" field.
func (_u *PlacementItemUpdate) ClearCorrectOptions() *PlacementItemUpdate {
	_u.mutation.ClearCorrectOptions()
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *PlacementItemUpdate) SetInstruction(v string) *PlacementItemUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *PlacementItemUpdate) SetNillableInstruction(v *string) *PlacementItemUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetStudyUnitKeys sets the "study_unit_keys" field.
func (_u *PlacementItemUpdate) SetStudyUnitKeys(v []string) *PlacementItemUpdate {
	_u.mutation.SetStudyUnitKeys(v)
	return _u
}

// AppendStudyUnitKeys appends value to the "study_unit_keys" field.
func (_u *PlacementItemUpdate) AppendStudyUnitKeys(v []string) *PlacementItemUpdate {
	_u.mutation.AppendStudyUnitKeys(v)
	return _u
}

// ClearStudyUnitKeys clears the value of the "study_unit_keys" field.
func (_u *PlacementItemUpdate) ClearStudyUnitKeys() *PlacementItemUpdate {
	_u.mutation.ClearStudyUnitKeys()
	return _u
}

// Mutation returns the PlacementItemMutation object of the builder.
func (_u *PlacementItemUpdate) Mutation() *PlacementItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlacementItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlacementItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementItemUpdate) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := placementitem.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Canonical(); ok {
		if err := placementitem.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.canonical": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementitem.Table, placementitem.Columns, sqlgraph.NewFieldSpec(placementitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(placementitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(placementitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(placementitem.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(placementitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(placementitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(placementitem.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptedVariants(); ok {
		_spec.SetField(placementitem.FieldAcceptedVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldAcceptedVariants, value)
		})
	}
	if _u.mutation.AcceptedVariantsCleared() {
		_spec.ClearField(placementitem.FieldAcceptedVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(placementitem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(placementitem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectionPolicy(); ok {
		_spec.SetField(placementitem.FieldSelectionPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOptions(); ok {
		_spec.SetField(placementitem.FieldCorrectOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldCorrectOptions, value)
		})
	}
	if _u.mutation.CorrectOptionsCleared() {
		_spec.ClearField(placementitem.FieldCorrectOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(placementitem.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyUnitKeys(); ok {
		_spec.SetField(placementitem.FieldStudyUnitKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyUnitKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldStudyUnitKeys, value)
		})
	}
	if _u.mutation.StudyUnitKeysCleared() {
		_spec.ClearField(placementitem.FieldStudyUnitKeys, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlacementItemUpdateOne is the builder for updating a single PlacementItem entity.
type PlacementItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlacementItemMutation
}

// SetPosition sets the "position" field.
func (_u *PlacementItemUpdateOne) SetPosition(v int) *PlacementItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillablePosition(v *int) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *PlacementItemUpdateOne) AddPosition(v int) *PlacementItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *PlacementItemUpdateOne) SetUnitKey(v string) *PlacementItemUpdateOne {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillableUnitKey(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *PlacementItemUpdateOne) SetPrompt(v string) *PlacementItemUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillablePrompt(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *PlacementItemUpdateOne) SetItemType(v string) *PlacementItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillableItemType(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *PlacementItemUpdateOne) SetCanonical(v string) *PlacementItemUpdateOne {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillableCanonical(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetAcceptedVariants sets the "accepted_variants" field.
func (_u *PlacementItemUpdateOne) SetAcceptedVariants(v []string) *PlacementItemUpdateOne {
	_u.mutation.SetAcceptedVariants(v)
	return _u
}

// AppendAcceptedVariants appends value to the "accepted_variants" field.
func (_u *PlacementItemUpdateOne) AppendAcceptedVariants(v []string) *PlacementItemUpdateOne {
	_u.mutation.AppendAcceptedVariants(v)
	return _u
}

// ClearAcceptedVariants clears the value of the "accepted_variants" field.
func (_u *PlacementItemUpdateOne) ClearAcceptedVariants() *PlacementItemUpdateOne {
	_u.mutation.ClearAcceptedVariants()
	return _u
}

// SetOptions sets the "options" field.
func (_u *PlacementItemUpdateOne) SetOptions(v []string) *PlacementItemUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *PlacementItemUpdateOne) AppendOptions(v []string) *PlacementItemUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *PlacementItemUpdateOne) ClearOptions() *PlacementItemUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetSelectionPolicy sets the "selection_policy" field.
func (_u *PlacementItemUpdateOne) SetSelectionPolicy(v string) *PlacementItemUpdateOne {
	_u.mutation.SetSelectionPolicy(v)
	return _u
}

// SetNillableSelectionPolicy sets the "selection_policy" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillableSelectionPolicy(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetSelectionPolicy(*v)
	}
	return _u
}

// SetCorrectOptions sets the "correct_options" field.
func (_u *PlacementItemUpdateOne) SetCorrectOptions(v []string) *PlacementItemUpdateOne {
	_u.mutation.SetCorrectOptions(v)
	return _u
}

// AppendCorrectOptions appends value to the "correct_options" field.
func (_u *PlacementItemUpdateOne) AppendCorrectOptions(v []string) *PlacementItemUpdateOne {
	_u.mutation.AppendCorrectOptions(v)
	return _u
}

// ClearCorrectOptions clears the value of the "correct_options" field.
func (_u *PlacementItemUpdateOne) ClearCorrectOptions() *PlacementItemUpdateOne {
	_u.mutation.ClearCorrectOptions()
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *PlacementItemUpdateOne) SetInstruction(v string) *PlacementItemUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *PlacementItemUpdateOne) SetNillableInstruction(v *string) *PlacementItemUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetStudyUnitKeys sets the "study_unit_keys" field.
func (_u *PlacementItemUpdateOne) SetStudyUnitKeys(v []string) *PlacementItemUpdateOne {
	_u.mutation.SetStudyUnitKeys(v)
	return _u
}

// AppendStudyUnitKeys appends value to the "study_unit_keys" field.
func (_u *PlacementItemUpdateOne) AppendStudyUnitKeys(v []string) *PlacementItemUpdateOne {
	_u.mutation.AppendStudyUnitKeys(v)
	return _u
}

// ClearStudyUnitKeys clears the value of the "study_unit_keys" field.
func (_u *PlacementItemUpdateOne) ClearStudyUnitKeys() *PlacementItemUpdateOne {
	_u.mutation.ClearStudyUnitKeys()
	return _u
}

// Mutation returns the PlacementItemMutation object of the builder.
func (_u *PlacementItemUpdateOne) Mutation() *PlacementItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlacementItemUpdate builder.
func (_u *PlacementItemUpdateOne) Where(ps ...predicate.PlacementItem) *PlacementItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlacementItemUpdateOne) Select(field string, fields ...string) *PlacementItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlacementItem entity.
func (_u *PlacementItemUpdateOne) Save(ctx context.Context) (*PlacementItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementItemUpdateOne) SaveX(ctx context.Context) *PlacementItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlacementItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementItemUpdateOne) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := placementitem.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Canonical(); ok {
		if err := placementitem.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.canonical": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementItemUpdateOne) sqlSave(ctx context.Context) (_node *PlacementItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementitem.Table, placementitem.Columns, sqlgraph.NewFieldSpec(placementitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlacementItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, placementitem.FieldID)
		for _, f := range fields {
			if !placementitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != placementitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(placementitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(placementitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(placementitem.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(placementitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(placementitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(placementitem.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptedVariants(); ok {
		_spec.SetField(placementitem.FieldAcceptedVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldAcceptedVariants, value)
		})
	}
	if _u.mutation.AcceptedVariantsCleared() {
		_spec.ClearField(placementitem.FieldAcceptedVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(placementitem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(placementitem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectionPolicy(); ok {
		_spec.SetField(placementitem.FieldSelectionPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOptions(); ok {
		_spec.SetField(placementitem.FieldCorrectOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldCorrectOptions, value)
		})
	}
	if _u.mutation.CorrectOptionsCleared() {
		_spec.ClearField(placementitem.FieldCorrectOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(placementitem.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyUnitKeys(); ok {
		_spec.SetField(placementitem.FieldStudyUnitKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyUnitKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, placementitem.FieldStudyUnitKeys, value)
		})
	}
	if _u.mutation.StudyUnitKeysCleared() {
		_spec.ClearField(placementitem.FieldStudyUnitKeys, field.TypeJSON)
	}
	_node = &PlacementItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
