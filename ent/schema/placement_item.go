package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlacementItem is one question of the fixed placement sequence. Items
// are ordered by position and shared across learners.
type PlacementItem struct {
	ent.Schema
}

func (PlacementItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("position").
			Unique().
			Comment("Presentation order, 0-based"),
		field.String("unit_key").
			Default("").
			Comment("Unit this item probes; may be empty for general items"),
		field.String("prompt").
			NotEmpty(),
		field.String("item_type").
			Default("freetext").
			Comment("freetext, mcq, or multiselect"),
		field.String("canonical").
			NotEmpty().
			Comment("Expected answer"),
		field.JSON("accepted_variants", []string{}).
			Optional(),
		field.JSON("options", []string{}).
			Optional(),
		field.String("selection_policy").
			Default(""),
		field.JSON("correct_options", []string{}).
			Optional(),
		field.String("instruction").
			Default(""),
		field.JSON("study_unit_keys", []string{}).
			Optional().
			Comment("Units a learner who misses this item should study"),
	}
}

func (PlacementItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
