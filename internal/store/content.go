package store

import (
	"context"
	"fmt"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/placementitem"
	"github.com/verba-app/verba/ent/rule"
	"github.com/verba-app/verba/ent/unitexercise"
	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
)

type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) ReplaceExercises(ctx context.Context, exercises []content.Exercise) error {
	units := make(map[string]bool)
	for _, ex := range exercises {
		units[ex.UnitKey] = true
	}
	unitKeys := make([]string, 0, len(units))
	for k := range units {
		unitKeys = append(unitKeys, k)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.UnitExercise.Delete().
		Where(
			unitexercise.UnitKeyIn(unitKeys...),
			unitexercise.Source("authored"),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear authored exercises: %w", err)
	}

	for _, ex := range exercises {
		if _, err := tx.UnitExercise.Create().
			SetUnitKey(ex.UnitKey).
			SetExerciseIndex(ex.ExerciseIndex).
			SetExerciseType(string(ex.Type)).
			SetInstruction(ex.Instruction).
			SetItems(ex.Items).
			SetSource("authored").
			Save(ctx); err != nil {
			return fmt.Errorf("save exercise %s/%d: %w", ex.UnitKey, ex.ExerciseIndex, err)
		}
	}

	return tx.Commit()
}

func (r *contentRepo) SaveGenerated(ctx context.Context, ex content.Exercise) error {
	_, err := r.client.UnitExercise.Create().
		SetUnitKey(ex.UnitKey).
		SetExerciseIndex(ex.ExerciseIndex).
		SetExerciseType(string(ex.Type)).
		SetInstruction(ex.Instruction).
		SetItems(ex.Items).
		SetSource("generated").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generated exercise %s/%d: %w", ex.UnitKey, ex.ExerciseIndex, err)
	}
	return nil
}

func (r *contentRepo) ExercisesByUnit(ctx context.Context, unitKey string) ([]content.Exercise, error) {
	rows, err := r.client.UnitExercise.Query().
		Where(unitexercise.UnitKey(unitKey)).
		Order(ent.Asc(unitexercise.FieldExerciseIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("exercises for %s: %w", unitKey, err)
	}

	out := make([]content.Exercise, len(rows))
	for i, row := range rows {
		out[i] = content.Exercise{
			UnitKey:       row.UnitKey,
			ExerciseIndex: row.ExerciseIndex,
			Type:          grader.ItemType(row.ExerciseType),
			Instruction:   row.Instruction,
			Items:         row.Items,
		}
	}
	return out, nil
}

func (r *contentRepo) UnitKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.client.UnitExercise.Query().
		Unique(true).
		Select(unitexercise.FieldUnitKey).
		Scan(ctx, &keys)
	if err != nil {
		return nil, fmt.Errorf("unit keys: %w", err)
	}
	return keys, nil
}

func (r *contentRepo) ReplacePlacement(ctx context.Context, items []content.PlacementItem) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin placement import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.PlacementItem.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear placement: %w", err)
	}

	for _, it := range items {
		if _, err := tx.PlacementItem.Create().
			SetPosition(it.OrderIndex).
			SetUnitKey(it.UnitKey).
			SetPrompt(it.Prompt).
			SetItemType(string(it.Type)).
			SetCanonical(it.Canonical).
			SetAcceptedVariants(it.AcceptedVariants).
			SetOptions(it.Options).
			SetSelectionPolicy(it.SelectionPolicy).
			SetCorrectOptions(it.CorrectOptions).
			SetInstruction(it.Instruction).
			SetStudyUnitKeys(it.StudyUnits).
			Save(ctx); err != nil {
			return fmt.Errorf("save placement item %d: %w", it.OrderIndex, err)
		}
	}

	return tx.Commit()
}

func (r *contentRepo) PlacementItems(ctx context.Context) ([]content.PlacementItem, error) {
	rows, err := r.client.PlacementItem.Query().
		Order(ent.Asc(placementitem.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("placement items: %w", err)
	}

	out := make([]content.PlacementItem, len(rows))
	for i, row := range rows {
		out[i] = content.PlacementItem{
			ID:               row.ID,
			OrderIndex:       row.Position,
			UnitKey:          row.UnitKey,
			Prompt:           row.Prompt,
			Type:             grader.ItemType(row.ItemType),
			Canonical:        row.Canonical,
			AcceptedVariants: row.AcceptedVariants,
			Options:          row.Options,
			SelectionPolicy:  row.SelectionPolicy,
			CorrectOptions:   row.CorrectOptions,
			Instruction:      row.Instruction,
			StudyUnits:       row.StudyUnitKeys,
		}
	}
	return out, nil
}

func (r *contentRepo) ReplaceRules(ctx context.Context, rules []content.Rule) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin rule import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Rule.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear rules: %w", err)
	}

	for _, ru := range rules {
		if _, err := tx.Rule.Create().
			SetRuleKey(ru.RuleKey).
			SetUnitKey(ru.UnitKey).
			SetSectionPath(ru.SectionPath).
			SetTitle(ru.Title).
			SetText(ru.Text).
			SetShortText(ru.ShortText).
			SetExamples(ru.Examples).
			Save(ctx); err != nil {
			return fmt.Errorf("save rule %s: %w", ru.RuleKey, err)
		}
	}

	return tx.Commit()
}

func (r *contentRepo) RulesByKeys(ctx context.Context, keys []string) ([]content.Rule, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	rows, err := r.client.Rule.Query().
		Where(rule.RuleKeyIn(keys...)).
		Order(ent.Asc(rule.FieldRuleKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("rules by keys: %w", err)
	}
	return mapRules(rows), nil
}

func (r *contentRepo) RulesByUnit(ctx context.Context, unitKey string) ([]content.Rule, error) {
	rows, err := r.client.Rule.Query().
		Where(rule.UnitKey(unitKey)).
		Order(ent.Asc(rule.FieldRuleKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", unitKey, err)
	}
	return mapRules(rows), nil
}

func mapRules(rows []*ent.Rule) []content.Rule {
	out := make([]content.Rule, len(rows))
	for i, row := range rows {
		out[i] = content.Rule{
			RuleKey:     row.RuleKey,
			UnitKey:     row.UnitKey,
			SectionPath: row.SectionPath,
			Title:       row.Title,
			Text:        row.Text,
			ShortText:   row.ShortText,
			Examples:    row.Examples,
		}
	}
	return out
}
