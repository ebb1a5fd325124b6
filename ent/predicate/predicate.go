// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// DueItem is the predicate function for dueitem builders.
type DueItem func(*sql.Selector)

// ExplainCache is the predicate function for explaincache builders.
type ExplainCache func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// LearnerState is the predicate function for learnerstate builders.
type LearnerState func(*sql.Selector)

// PlacementItem is the predicate function for placementitem builders.
type PlacementItem func(*sql.Selector)

// Rule is the predicate function for rule builders.
type Rule func(*sql.Selector)

// UnitExercise is the predicate function for unitexercise builders.
type UnitExercise func(*sql.Selector)
