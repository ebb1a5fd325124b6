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
	"github.com/verba-app/verba/ent/predicate"
	"github.com/verba-app/verba/ent/rule"
)

// RuleUpdate is the builder for updating Rule entities.
type RuleUpdate struct {
	config
	hooks    []Hook
	mutation *RuleMutation
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdate) Where(ps ...predicate.Rule) *RuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleKey sets the "rule_key" field.
func (_u *RuleUpdate) SetRuleKey(v string) *RuleUpdate {
	_u.mutation.SetRuleKey(v)
	return _u
}

// SetNillableRuleKey sets the "rule_key" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableRuleKey(v *string) *RuleUpdate {
	if v != nil {
		_u.SetRuleKey(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *RuleUpdate) SetUnitKey(v string) *RuleUpdate {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableUnitKey(v *string) *RuleUpdate {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetSectionPath sets the "section_path" field.
func (_u *RuleUpdate) SetSectionPath(v string) *RuleUpdate {
	_u.mutation.SetSectionPath(v)
	return _u
}

// SetNillableSectionPath sets the "section_path" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableSectionPath(v *string) *RuleUpdate {
	if v != nil {
		_u.SetSectionPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RuleUpdate) SetTitle(v string) *RuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableTitle(v *string) *RuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RuleUpdate) SetText(v string) *RuleUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableText(v *string) *RuleUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetShortText sets the "short_text" field.
func (_u *RuleUpdate) SetShortText(v string) *RuleUpdate {
	_u.mutation.SetShortText(v)
	return _u
}

// SetNillableShortText sets the "short_text" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableShortText(v *string) *RuleUpdate {
	if v != nil {
		_u.SetShortText(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *RuleUpdate) SetExamples(v []string) *RuleUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *RuleUpdate) AppendExamples(v []string) *RuleUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *RuleUpdate) ClearExamples() *RuleUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdate) Mutation() *RuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdate) check() error {
	if v, ok := _u.mutation.RuleKey(); ok {
		if err := rule.RuleKeyValidator(v); err != nil {
			return &ValidationError{Name: "rule_key", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := rule.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "Rule.unit_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleKey(); ok {
		_spec.SetField(rule.FieldRuleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(rule.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionPath(); ok {
		_spec.SetField(rule.FieldSectionPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(rule.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortText(); ok {
		_spec.SetField(rule.FieldShortText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(rule.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(rule.FieldExamples, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleUpdateOne is the builder for updating a single Rule entity.
type RuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleMutation
}

// SetRuleKey sets the "rule_key" field.
func (_u *RuleUpdateOne) SetRuleKey(v string) *RuleUpdateOne {
	_u.mutation.SetRuleKey(v)
	return _u
}

// SetNillableRuleKey sets the "rule_key" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableRuleKey(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetRuleKey(*v)
	}
	return _u
}

// SetUnitKey sets the "unit_key" field.
func (_u *RuleUpdateOne) SetUnitKey(v string) *RuleUpdateOne {
	_u.mutation.SetUnitKey(v)
	return _u
}

// SetNillableUnitKey sets the "unit_key" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableUnitKey(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetUnitKey(*v)
	}
	return _u
}

// SetSectionPath sets the "section_path" field.
func (_u *RuleUpdateOne) SetSectionPath(v string) *RuleUpdateOne {
	_u.mutation.SetSectionPath(v)
	return _u
}

// SetNillableSectionPath sets the "section_path" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableSectionPath(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetSectionPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RuleUpdateOne) SetTitle(v string) *RuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableTitle(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RuleUpdateOne) SetText(v string) *RuleUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableText(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetShortText sets the "short_text" field.
func (_u *RuleUpdateOne) SetShortText(v string) *RuleUpdateOne {
	_u.mutation.SetShortText(v)
	return _u
}

// SetNillableShortText sets the "short_text" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableShortText(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetShortText(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *RuleUpdateOne) SetExamples(v []string) *RuleUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *RuleUpdateOne) AppendExamples(v []string) *RuleUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *RuleUpdateOne) ClearExamples() *RuleUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdateOne) Mutation() *RuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdateOne) Where(ps ...predicate.Rule) *RuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleUpdateOne) Select(field string, fields ...string) *RuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rule entity.
func (_u *RuleUpdateOne) Save(ctx context.Context) (*Rule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdateOne) SaveX(ctx context.Context) *Rule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleKey(); ok {
		if err := rule.RuleKeyValidator(v); err != nil {
			return &ValidationError{Name: "rule_key", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitKey(); ok {
		if err := rule.UnitKeyValidator(v); err != nil {
			return &ValidationError{Name: "unit_key", err: fmt.Errorf(`ent: validator failed for field "Rule.unit_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleUpdateOne) sqlSave(ctx context.Context) (_node *Rule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rule.FieldID)
		for _, f := range fields {
			if !rule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rule.FieldID {
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
	if value, ok := _u.mutation.RuleKey(); ok {
		_spec.SetField(rule.FieldRuleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitKey(); ok {
		_spec.SetField(rule.FieldUnitKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionPath(); ok {
		_spec.SetField(rule.FieldSectionPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(rule.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortText(); ok {
		_spec.SetField(rule.FieldShortText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(rule.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rule.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(rule.FieldExamples, field.TypeJSON)
	}
	_node = &Rule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
