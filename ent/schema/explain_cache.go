package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExplainCache stores LLM answer explanations keyed by the exact
// (prompt, answer, verdict) combination, so repeated "why?" requests
// for the same mistake cost nothing.
type ExplainCache struct {
	ent.Schema
}

func (ExplainCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("cache_key").
			NotEmpty().
			Unique().
			Comment("SHA-256 hex of unit key, prompt, normalized answer, and verdict"),
		field.Text("explanation").
			NotEmpty(),
		field.Bool("verdict_flip").
			Default(false).
			Comment("True when the model judged the graded-wrong answer correct"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExplainCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cache_key"),
	}
}
