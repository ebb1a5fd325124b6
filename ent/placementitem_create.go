// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/placementitem"
)

// PlacementItemCreate is the builder for creating a PlacementItem entity.
type PlacementItemCreate struct {
	config
	mutation *PlacementItemMutation
	hooks    []Hook
}

// SetPosition sets the "position" field.
func (_c *PlacementItemCreate) SetPosition(v int) *PlacementItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetUnitKey sets the "unit_key" field.
func (_c *PlacementItemCreate) SetUnitKey(v string) *PlacementItemCreate {
	_c.mutation.SetUnitKey(v)
	return _c
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_c *PlacementItemCreate) SetNillableUnitKey(v *string) *PlacementItemCreate {
	if v != nil {
		_c.SetUnitKey(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *PlacementItemCreate) SetPrompt(v string) *PlacementItemCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *PlacementItemCreate) SetItemType(v string) *PlacementItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_c *PlacementItemCreate) SetNillableItemType(v *string) *PlacementItemCreate {
	if v != nil {
		_c.SetItemType(*v)
	}
	return _c
}

// SetCanonical sets the "canonical" field.
func (_c *PlacementItemCreate) SetCanonical(v string) *PlacementItemCreate {
	_c.mutation.SetCanonical(v)
	return _c
}

// SetAcceptedVariants sets the "accepted_variants" field.
func (_c *PlacementItemCreate) SetAcceptedVariants(v []string) *PlacementItemCreate {
	_c.mutation.SetAcceptedVariants(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *PlacementItemCreate) SetOptions(v []string) *PlacementItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetSelectionPolicy sets the "selection_policy" field.
func (_c *PlacementItemCreate) SetSelectionPolicy(v string) *PlacementItemCreate {
	_c.mutation.SetSelectionPolicy(v)
	return _c
}

// SetNillableSelectionPolicy sets the "selection_policy" field if the given value is not nil.
func (_c *PlacementItemCreate) SetNillableSelectionPolicy(v *string) *PlacementItemCreate {
	if v != nil {
		_c.SetSelectionPolicy(*v)
	}
	return _c
}

// SetCorrectOptions sets the "correct_options" field.
func (_c *PlacementItemCreate) SetCorrectOptions(v []string) *PlacementItemCreate {
	_c.mutation.SetCorrectOptions(v)
	return _c
}

// SetInstruction sets the "instruction" field.
func (_c *PlacementItemCreate) SetInstruction(v string) *PlacementItemCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_c *PlacementItemCreate) SetNillableInstruction(v *string) *PlacementItemCreate {
	if v != nil {
		_c.SetInstruction(*v)
	}
	return _c
}

// SetStudyUnitKeys sets the "study_unit_keys" field.
func (_c *PlacementItemCreate) SetStudyUnitKeys(v []string) *PlacementItemCreate {
	_c.mutation.SetStudyUnitKeys(v)
	return _c
}

// Mutation returns the PlacementItemMutation object of the builder.
func (_c *PlacementItemCreate) Mutation() *PlacementItemMutation {
	return _c.mutation
}

// Save creates the PlacementItem in the database.
func (_c *PlacementItemCreate) Save(ctx context.Context) (*PlacementItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlacementItemCreate) SaveX(ctx context.Context) *PlacementItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlacementItemCreate) defaults() {
	if _, ok := _c.mutation.UnitKey(); !ok {
		v := placementitem.DefaultUnitKey
		_c.mutation.SetUnitKey(v)
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		v := placementitem.DefaultItemType
		_c.mutation.SetItemType(v)
	}
	if _, ok := _c.mutation.SelectionPolicy(); !ok {
		v := placementitem.DefaultSelectionPolicy
		_c.mutation.SetSelectionPolicy(v)
	}
	if _, ok := _c.mutation.Instruction(); !ok {
		v := placementitem.DefaultInstruction
		_c.mutation.SetInstruction(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlacementItemCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "PlacementItem.position"`)}
	}
	if _, ok := _c.mutation.UnitKey(); !ok {
		return &ValidationError{Name: "unit_key", err: errors.New(`ent: missing required field "PlacementItem.unit_key"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "PlacementItem.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := placementitem.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "PlacementItem.item_type"`)}
	}
	if _, ok := _c.mutation.Canonical(); !ok {
		return &ValidationError{Name: "canonical", err: errors.New(`ent: missing required field "PlacementItem.canonical"`)}
	}
	if v, ok := _c.mutation.Canonical(); ok {
		if err := placementitem.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "PlacementItem.canonical": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectionPolicy(); !ok {
		return &ValidationError{Name: "selection_policy", err: errors.New(`ent: missing required field "PlacementItem.selection_policy"`)}
	}
	if _, ok := _c.mutation.Instruction(); !ok {
		return &ValidationError{Name: "instruction", err: errors.New(`ent: missing required field "PlacementItem.instruction"`)}
	}
	return nil
}

func (_c *PlacementItemCreate) sqlSave(ctx context.Context) (*PlacementItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlacementItemCreate) createSpec() (*PlacementItem, *sqlgraph.CreateSpec) {
	var (
		_node = &PlacementItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(placementitem.Table, sqlgraph.NewFieldSpec(placementitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(placementitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.UnitKey(); ok {
		_spec.SetField(placementitem.FieldUnitKey, field.TypeString, value)
		_node.UnitKey = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(placementitem.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(placementitem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Canonical(); ok {
		_spec.SetField(placementitem.FieldCanonical, field.TypeString, value)
		_node.Canonical = value
	}
	if value, ok := _c.mutation.AcceptedVariants(); ok {
		_spec.SetField(placementitem.FieldAcceptedVariants, field.TypeJSON, value)
		_node.AcceptedVariants = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(placementitem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.SelectionPolicy(); ok {
		_spec.SetField(placementitem.FieldSelectionPolicy, field.TypeString, value)
		_node.SelectionPolicy = value
	}
	if value, ok := _c.mutation.CorrectOptions(); ok {
		_spec.SetField(placementitem.FieldCorrectOptions, field.TypeJSON, value)
		_node.CorrectOptions = value
	}
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(placementitem.FieldInstruction, field.TypeString, value)
		_node.Instruction = value
	}
	if value, ok := _c.mutation.StudyUnitKeys(); ok {
		_spec.SetField(placementitem.FieldStudyUnitKeys, field.TypeJSON, value)
		_node.StudyUnitKeys = value
	}
	return _node, _spec
}

// PlacementItemCreateBulk is the builder for creating many PlacementItem entities in bulk.
type PlacementItemCreateBulk struct {
	config
	err      error
	builders []*PlacementItemCreate
}

// Save creates the PlacementItem entities in the database.
func (_c *PlacementItemCreateBulk) Save(ctx context.Context) ([]*PlacementItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlacementItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlacementItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlacementItemCreateBulk) SaveX(ctx context.Context) []*PlacementItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
