package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner is a local profile. A single database can hold several
// learners; the CLI selects one by name.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Profile name, unique per database"),
		field.String("strictness").
			Default("normal").
			Comment("Grading strictness: easy, normal, strict"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
