// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verba-app/verba/ent/rule"
)

// RuleCreate is the builder for creating a Rule entity.
type RuleCreate struct {
	config
	mutation *RuleMutation
	hooks    []Hook
}

// SetRuleKey sets the "rule_key" field.
func (_c *RuleCreate) SetRuleKey(v string) *RuleCreate {
	_c.mutation.SetRuleKey(v)
	return _c
}

// SetUnitKey sets the "unit_key" field.
func (_c *RuleCreate) SetUnitKey(v string) *RuleCreate {
	_c.mutation.SetUnitKey(v)
	return _c
}

// SetSectionPath sets the "section_path" field.
func (_c *RuleCreate) SetSectionPath(v string) *RuleCreate {
	_c.mutation.SetSectionPath(v)
	return _c
}

// SetNillableSectionPath sets the "section_path" field if the given value is not nil.
func (_c *RuleCreate) SetNillableSectionPath(v *string) *RuleCreate {
	if v != nil {
		_c.SetSectionPath(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RuleCreate) SetTitle(v string) *RuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetText sets the "text" field.
func (_c *RuleCreate) SetText(v string) *RuleCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *RuleCreate) SetNillableText(v *string) *RuleCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetShortText sets the "short_text" field.
func (_c *RuleCreate) SetShortText(v string) *RuleCreate {
	_c.mutation.SetShortText(v)
	return _c
}

// SetNillableShortText sets the "short_text" field if the given value is not nil.
func (_c *RuleCreate) SetNillableShortText(v *string) *RuleCreate {
	if v != nil {
		_c.SetShortText(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *RuleCreate) SetExamples(v []string) *RuleCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// Mutation returns the RuleMutation object of the builder.
func (_c *RuleCreate) Mutation() *RuleMutation {
	return _c.mutation
}

// Save creates the Rule in the database.
func (_c *RuleCreate) Save(ctx context.Context) (*Rule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleCreate) SaveX(ctx context.Context) *Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleCreate) defaults() {
	if _, ok := _c.mutation.SectionPath(); !ok {
		v := rule.DefaultSectionPath
		_c.mutation.SetSectionPath(v)
	}
	if _, ok := _c.mutation.Text(); !ok {
		v := rule.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.ShortText(); !ok {
		v := rule.DefaultShortText
		_c.mutation.SetShortText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleCreate) check() error {
	if _, ok := _c.mutation.RuleKey(); !ok {
		return &ValidationError{Name: "rule_key", err: errors.New(`ent: missing required field "Rule.rule_key"`)}
	}
	if v, ok := _c.mutation.RuleKey(); ok {
		if err := rule.RuleKeyValidator(v); err != nil {
			return &ValidationError{Name: "rule_key", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitKey(); !ok {
		return &ValidationError{Name: "unit_key", err: errors.New(`ent: missing required field "Rule.unit_key"`)}
	}
	if v, ok := _c.mutation.UnitKey(); ok {
		if err := rule.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "Rule.unit_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionPath(); !ok {
		return &ValidationError{Name: "section_path", err: errors.New(`ent: missing required field "Rule.section_path"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Rule.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Rule.text"`)}
	}
	if _, ok := _c.mutation.ShortText(); !ok {
		return &ValidationError{Name: "short_text", err: errors.New(`ent: missing required field "Rule.short_text"`)}
	}
	return nil
}

func (_c *RuleCreate) sqlSave(ctx context.Context) (*Rule, error) {
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

func (_c *RuleCreate) createSpec() (*Rule, *sqlgraph.CreateSpec) {
	var (
		_node = &Rule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rule.Table, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RuleKey(); ok {
		_spec.SetField(rule.FieldRuleKey, field.TypeString, value)
		_node.RuleKey = value
	}
	if value, ok := _c.mutation.UnitKey(); ok {
		_spec.SetField(rule.FieldUnitKey, field.TypeString, value)
		_node.UnitKey = value
	}
	if value, ok := _c.mutation.SectionPath(); ok {
		_spec.SetField(rule.FieldSectionPath, field.TypeString, value)
		_node.SectionPath = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(rule.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ShortText(); ok {
		_spec.SetField(rule.FieldShortText, field.TypeString, value)
		_node.ShortText = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(rule.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	return _node, _spec
}

// RuleCreateBulk is the builder for creating many Rule entities in bulk.
type RuleCreateBulk struct {
	config
	err      error
	builders []*RuleCreate
}

// Save creates the Rule entities in the database.
func (_c *RuleCreateBulk) Save(ctx context.Context) ([]*Rule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleMutation)
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
func (_c *RuleCreateBulk) SaveX(ctx context.Context) []*Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
