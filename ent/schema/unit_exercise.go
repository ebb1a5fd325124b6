package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/verba-app/verba/internal/content"
)

// UnitExercise is one exercise of a study unit: an instruction plus a
// list of items, all graded the same way. Exercises are shared content,
// not per-learner rows.
type UnitExercise struct {
	ent.Schema
}

func (UnitExercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_key").
			NotEmpty().
			Comment("Study unit this exercise belongs to, e.g. past_simple_1"),
		field.Int("exercise_index").
			Positive().
			Comment("1-based position within the unit"),
		field.String("exercise_type").
			NotEmpty().
			Comment("freetext, mcq, or multiselect"),
		field.String("instruction").
			NotEmpty(),
		field.JSON("items", []content.Item{}).
			Comment("Ordered items; at least one"),
		field.String("source").
			Default("authored").
			Comment("authored (imported) or generated (LLM)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UnitExercise) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_key", "exercise_index").Unique(),
		index.Fields("unit_key"),
	}
}
