package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerState tracks per-learner progress that is not a due item:
// placement position and the running batch counter.
type LearnerState struct {
	ent.Schema
}

func (LearnerState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").
			Unique().
			Comment("1:1 with Learner"),
		field.Int("placement_index").
			Default(0).
			Comment("Next placement item position, 0-based"),
		field.Int("placement_correct").
			Default(0).
			Comment("Correct answers during placement"),
		field.Bool("placement_done").
			Default(false),
		field.Int("batch_num").
			Default(0).
			Comment("Current study batch, incremented when a batch is seeded"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearnerState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
