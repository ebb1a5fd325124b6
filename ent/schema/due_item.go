package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DueItem is one scheduled unit of practice for a learner: a study unit
// plus a kind (detour, revisit, check) and the in-progress position.
// At most one active row exists per (learner, unit, kind); the repo
// enforces this since it is a partial constraint SQLite indexes can't
// express through ent.
type DueItem struct {
	ent.Schema
}

func (DueItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id"),
		field.String("kind").
			NotEmpty().
			Comment("detour, revisit, or check"),
		field.String("unit_key").
			NotEmpty(),
		field.Time("due_at"),
		field.Int("exercise_index").
			Default(1).
			Comment("1-based position in the selected exercise sequence"),
		field.Int("item_in_exercise").
			Default(1).
			Comment("1-based position within the current exercise"),
		field.Int("correct_in_exercise").
			Default(0).
			Comment("Consecutive-progress counter toward advancing"),
		field.Int("batch_num").
			Default(0).
			Comment("Study batch this item was created in"),
		field.Bool("is_active").
			Default(true),
		field.JSON("cause_rule_keys", []string{}).
			Optional().
			Comment("Rule keys whose misses caused this item; drives item filtering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (DueItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "is_active"),
		index.Fields("learner_id", "unit_key", "kind"),
		index.Fields("due_at"),
	}
}
