// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "due_item_id", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString},
		{Name: "unit_key", Type: field.TypeString, Default: ""},
		{Name: "exercise_index", Type: field.TypeInt, Default: 0},
		{Name: "item_index", Type: field.TypeInt, Default: 0},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "answer_norm", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "canonical", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "rule_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "verdict", Type: field.TypeString},
		{Name: "effective_correct", Type: field.TypeBool},
		{Name: "flipped", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_learner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[15]},
			},
			{
				Name:    "attempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
			{
				Name:    "attempt_unit_key",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
		},
	}
	// DueItemsColumns holds the columns for the "due_items" table.
	DueItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeString},
		{Name: "unit_key", Type: field.TypeString},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "exercise_index", Type: field.TypeInt, Default: 1},
		{Name: "item_in_exercise", Type: field.TypeInt, Default: 1},
		{Name: "correct_in_exercise", Type: field.TypeInt, Default: 0},
		{Name: "batch_num", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "cause_rule_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DueItemsTable holds the schema information for the "due_items" table.
	DueItemsTable = &schema.Table{
		Name:       "due_items",
		Columns:    DueItemsColumns,
		PrimaryKey: []*schema.Column{DueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dueitem_learner_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{DueItemsColumns[1], DueItemsColumns[9]},
			},
			{
				Name:    "dueitem_learner_id_unit_key_kind",
				Unique:  false,
				Columns: []*schema.Column{DueItemsColumns[1], DueItemsColumns[3], DueItemsColumns[2]},
			},
			{
				Name:    "dueitem_due_at",
				Unique:  false,
				Columns: []*schema.Column{DueItemsColumns[4]},
			},
		},
	}
	// ExplainCachesColumns holds the columns for the "explain_caches" table.
	ExplainCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
		{Name: "verdict_flip", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExplainCachesTable holds the schema information for the "explain_caches" table.
	ExplainCachesTable = &schema.Table{
		Name:       "explain_caches",
		Columns:    ExplainCachesColumns,
		PrimaryKey: []*schema.Column{ExplainCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "explaincache_cache_key",
				Unique:  false,
				Columns: []*schema.Column{ExplainCachesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "strictness", Type: field.TypeString, Default: "normal"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_name",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[1]},
			},
		},
	}
	// LearnerStatesColumns holds the columns for the "learner_states" table.
	LearnerStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt, Unique: true},
		{Name: "placement_index", Type: field.TypeInt, Default: 0},
		{Name: "placement_correct", Type: field.TypeInt, Default: 0},
		{Name: "placement_done", Type: field.TypeBool, Default: false},
		{Name: "batch_num", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerStatesTable holds the schema information for the "learner_states" table.
	LearnerStatesTable = &schema.Table{
		Name:       "learner_states",
		Columns:    LearnerStatesColumns,
		PrimaryKey: []*schema.Column{LearnerStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerstate_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LearnerStatesColumns[1]},
			},
		},
	}
	// PlacementItemsColumns holds the columns for the "placement_items" table.
	PlacementItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt, Unique: true},
		{Name: "unit_key", Type: field.TypeString, Default: ""},
		{Name: "prompt", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString, Default: "freetext"},
		{Name: "canonical", Type: field.TypeString},
		{Name: "accepted_variants", Type: field.TypeJSON, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "selection_policy", Type: field.TypeString, Default: ""},
		{Name: "correct_options", Type: field.TypeJSON, Nullable: true},
		{Name: "instruction", Type: field.TypeString, Default: ""},
		{Name: "study_unit_keys", Type: field.TypeJSON, Nullable: true},
	}
	// PlacementItemsTable holds the schema information for the "placement_items" table.
	PlacementItemsTable = &schema.Table{
		Name:       "placement_items",
		Columns:    PlacementItemsColumns,
		PrimaryKey: []*schema.Column{PlacementItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "placementitem_position",
				Unique:  false,
				Columns: []*schema.Column{PlacementItemsColumns[1]},
			},
		},
	}
	// RulesColumns holds the columns for the "rules" table.
	RulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rule_key", Type: field.TypeString, Unique: true},
		{Name: "unit_key", Type: field.TypeString},
		{Name: "section_path", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "short_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
	}
	// RulesTable holds the schema information for the "rules" table.
	RulesTable = &schema.Table{
		Name:       "rules",
		Columns:    RulesColumns,
		PrimaryKey: []*schema.Column{RulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rule_unit_key",
				Unique:  false,
				Columns: []*schema.Column{RulesColumns[2]},
			},
		},
	}
	// UnitExercisesColumns holds the columns for the "unit_exercises" table.
	UnitExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit_key", Type: field.TypeString},
		{Name: "exercise_index", Type: field.TypeInt},
		{Name: "exercise_type", Type: field.TypeString},
		{Name: "instruction", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON},
		{Name: "source", Type: field.TypeString, Default: "authored"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UnitExercisesTable holds the schema information for the "unit_exercises" table.
	UnitExercisesTable = &schema.Table{
		Name:       "unit_exercises",
		Columns:    UnitExercisesColumns,
		PrimaryKey: []*schema.Column{UnitExercisesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unitexercise_unit_key_exercise_index",
				Unique:  true,
				Columns: []*schema.Column{UnitExercisesColumns[1], UnitExercisesColumns[2]},
			},
			{
				Name:    "unitexercise_unit_key",
				Unique:  false,
				Columns: []*schema.Column{UnitExercisesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		DueItemsTable,
		ExplainCachesTable,
		LlmRequestEventsTable,
		LearnersTable,
		LearnerStatesTable,
		PlacementItemsTable,
		RulesTable,
		UnitExercisesTable,
	}
)

func init() {
}
