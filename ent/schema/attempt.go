package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is an append-only record of one graded answer. Attempts are
// never updated; an explanation that flips a verdict records the flip
// on a separate field and leaves the original verdict intact.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id"),
		field.Int("due_item_id").
			Default(0).
			Comment("Originating due item; 0 for placement attempts"),
		field.String("session_id").
			NotEmpty().
			Comment("Groups attempts of one drill session"),
		field.String("unit_key").
			Default("").
			Comment("Empty for placement attempts"),
		field.Int("exercise_index").
			Default(0),
		field.Int("item_index").
			Default(0).
			Comment("Real item index within the exercise, 1-based"),
		field.Text("prompt").
			NotEmpty(),
		field.Text("answer").
			Comment("Raw learner input before normalization"),
		field.Text("answer_norm").
			Default("").
			Comment("Learner input in display-normalized form, as graded"),
		field.Text("canonical").
			Default("").
			Comment("Canonical answer the verdict was graded against"),
		field.JSON("rule_keys", []string{}).
			Optional().
			Comment("Rule keys implicated by the item; drives rule lookups and re-explanation"),
		field.String("verdict").
			NotEmpty().
			Comment("correct, almost, or wrong, as graded"),
		field.Bool("effective_correct").
			Comment("Verdict after strictness mapping, as counted by the scheduler"),
		field.Bool("flipped").
			Default(false).
			Comment("True when a later explanation overturned the verdict"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "created_at"),
		index.Fields("session_id"),
		index.Fields("unit_key"),
	}
}
