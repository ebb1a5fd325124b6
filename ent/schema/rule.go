package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Rule is a grammar rule text shown as remediation material and fed to
// the LLM when generating exercises.
type Rule struct {
	ent.Schema
}

func (Rule) Fields() []ent.Field {
	return []ent.Field{
		field.String("rule_key").
			NotEmpty().
			Unique().
			Comment("Stable key, prefixed with its unit key: past_simple_1_neg"),
		field.String("unit_key").
			NotEmpty(),
		field.String("section_path").
			Default("").
			Comment("Book-style section numbering, e.g. 2.1.3"),
		field.String("title").
			NotEmpty(),
		field.Text("text").
			Default("").
			Comment("Full explanation"),
		field.Text("short_text").
			Default("").
			Comment("Compact one-screen summary"),
		field.JSON("examples", []string{}).
			Optional(),
	}
}

func (Rule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_key"),
	}
}
