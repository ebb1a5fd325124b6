// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/verba-app/verba/ent/attempt"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/ent/explaincache"
	"github.com/verba-app/verba/ent/learner"
	"github.com/verba-app/verba/ent/learnerstate"
	"github.com/verba-app/verba/ent/llmrequestevent"
	"github.com/verba-app/verba/ent/placementitem"
	"github.com/verba-app/verba/ent/rule"
	"github.com/verba-app/verba/ent/schema"
	"github.com/verba-app/verba/ent/unitexercise"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescDueItemID is the schema descriptor for due_item_id field.
	attemptDescDueItemID := attemptFields[1].Descriptor()
	// attempt.DefaultDueItemID holds the default value on creation for the due_item_id field.
	attempt.DefaultDueItemID = attemptDescDueItemID.Default.(int)
	// attemptDescSessionID is the schema descriptor for session_id field.
	attemptDescSessionID := attemptFields[2].Descriptor()
	// attempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attempt.SessionIDValidator = attemptDescSessionID.Validators[0].(func(string) error)
	// attemptDescUnitKey is the schema descriptor for unit_key field.
	attemptDescUnitKey := attemptFields[3].Descriptor()
	// attempt.DefaultUnitKey holds the default value on creation for the unit_key field.
	attempt.DefaultUnitKey = attemptDescUnitKey.Default.(string)
	// attemptDescExerciseIndex is the schema descriptor for exercise_index field.
	attemptDescExerciseIndex := attemptFields[4].Descriptor()
	// attempt.DefaultExerciseIndex holds the default value on creation for the exercise_index field.
	attempt.DefaultExerciseIndex = attemptDescExerciseIndex.Default.(int)
	// attemptDescItemIndex is the schema descriptor for item_index field.
	attemptDescItemIndex := attemptFields[5].Descriptor()
	// attempt.DefaultItemIndex holds the default value on creation for the item_index field.
	attempt.DefaultItemIndex = attemptDescItemIndex.Default.(int)
	// attemptDescPrompt is the schema descriptor for prompt field.
	attemptDescPrompt := attemptFields[6].Descriptor()
	// attempt.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	attempt.PromptValidator = attemptDescPrompt.Validators[0].(func(string) error)
	// attemptDescAnswerNorm is the schema descriptor for answer_norm field.
	attemptDescAnswerNorm := attemptFields[8].Descriptor()
	// attempt.DefaultAnswerNorm holds the default value on creation for the answer_norm field.
	attempt.DefaultAnswerNorm = attemptDescAnswerNorm.Default.(string)
	// attemptDescCanonical is the schema descriptor for canonical field.
	attemptDescCanonical := attemptFields[9].Descriptor()
	// attempt.DefaultCanonical holds the default value on creation for the canonical field.
	attempt.DefaultCanonical = attemptDescCanonical.Default.(string)
	// attemptDescVerdict is the schema descriptor for verdict field.
	attemptDescVerdict := attemptFields[11].Descriptor()
	// attempt.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	attempt.VerdictValidator = attemptDescVerdict.Validators[0].(func(string) error)
	// attemptDescFlipped is the schema descriptor for flipped field.
	attemptDescFlipped := attemptFields[13].Descriptor()
	// attempt.DefaultFlipped holds the default value on creation for the flipped field.
	attempt.DefaultFlipped = attemptDescFlipped.Default.(bool)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[14].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	dueitemFields := schema.DueItem{}.Fields()
	_ = dueitemFields
	// dueitemDescKind is the schema descriptor for kind field.
	dueitemDescKind := dueitemFields[1].Descriptor()
	// dueitem.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	dueitem.KindValidator = dueitemDescKind.Validators[0].(func(string) error)
	// dueitemDescUnitKey is the schema descriptor for unit_key field.
	dueitemDescUnitKey := dueitemFields[2].Descriptor()
	// dueitem.UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	dueitem.UnitKeyValidator = dueitemDescUnitKey.Validators[0].(func(string) error)
	// dueitemDescExerciseIndex is the schema descriptor for exercise_index field.
	dueitemDescExerciseIndex := dueitemFields[4].Descriptor()
	// dueitem.DefaultExerciseIndex holds the default value on creation for the exercise_index field.
	dueitem.DefaultExerciseIndex = dueitemDescExerciseIndex.Default.(int)
	// dueitemDescItemInExercise is the schema descriptor for item_in_exercise field.
	dueitemDescItemInExercise := dueitemFields[5].Descriptor()
	// dueitem.DefaultItemInExercise holds the default value on creation for the item_in_exercise field.
	dueitem.DefaultItemInExercise = dueitemDescItemInExercise.Default.(int)
	// dueitemDescCorrectInExercise is the schema descriptor for correct_in_exercise field.
	dueitemDescCorrectInExercise := dueitemFields[6].Descriptor()
	// dueitem.DefaultCorrectInExercise holds the default value on creation for the correct_in_exercise field.
	dueitem.DefaultCorrectInExercise = dueitemDescCorrectInExercise.Default.(int)
	// dueitemDescBatchNum is the schema descriptor for batch_num field.
	dueitemDescBatchNum := dueitemFields[7].Descriptor()
	// dueitem.DefaultBatchNum holds the default value on creation for the batch_num field.
	dueitem.DefaultBatchNum = dueitemDescBatchNum.Default.(int)
	// dueitemDescIsActive is the schema descriptor for is_active field.
	dueitemDescIsActive := dueitemFields[8].Descriptor()
	// dueitem.DefaultIsActive holds the default value on creation for the is_active field.
	dueitem.DefaultIsActive = dueitemDescIsActive.Default.(bool)
	// dueitemDescCreatedAt is the schema descriptor for created_at field.
	dueitemDescCreatedAt := dueitemFields[10].Descriptor()
	// dueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	dueitem.DefaultCreatedAt = dueitemDescCreatedAt.Default.(func() time.Time)
	// dueitemDescUpdatedAt is the schema descriptor for updated_at field.
	dueitemDescUpdatedAt := dueitemFields[11].Descriptor()
	// dueitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dueitem.DefaultUpdatedAt = dueitemDescUpdatedAt.Default.(func() time.Time)
	// dueitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dueitem.UpdateDefaultUpdatedAt = dueitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	explaincacheFields := schema.ExplainCache{}.Fields()
	_ = explaincacheFields
	// explaincacheDescCacheKey is the schema descriptor for cache_key field.
	explaincacheDescCacheKey := explaincacheFields[0].Descriptor()
	// explaincache.CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	explaincache.CacheKeyValidator = explaincacheDescCacheKey.Validators[0].(func(string) error)
	// explaincacheDescExplanation is the schema descriptor for explanation field.
	explaincacheDescExplanation := explaincacheFields[1].Descriptor()
	// explaincache.ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	explaincache.ExplanationValidator = explaincacheDescExplanation.Validators[0].(func(string) error)
	// explaincacheDescVerdictFlip is the schema descriptor for verdict_flip field.
	explaincacheDescVerdictFlip := explaincacheFields[2].Descriptor()
	// explaincache.DefaultVerdictFlip holds the default value on creation for the verdict_flip field.
	explaincache.DefaultVerdictFlip = explaincacheDescVerdictFlip.Default.(bool)
	// explaincacheDescCreatedAt is the schema descriptor for created_at field.
	explaincacheDescCreatedAt := explaincacheFields[3].Descriptor()
	// explaincache.DefaultCreatedAt holds the default value on creation for the created_at field.
	explaincache.DefaultCreatedAt = explaincacheDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[0].Descriptor()
	// learner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learner.NameValidator = learnerDescName.Validators[0].(func(string) error)
	// learnerDescStrictness is the schema descriptor for strictness field.
	learnerDescStrictness := learnerFields[1].Descriptor()
	// learner.DefaultStrictness holds the default value on creation for the strictness field.
	learner.DefaultStrictness = learnerDescStrictness.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[2].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	learnerstateFields := schema.LearnerState{}.Fields()
	_ = learnerstateFields
	// learnerstateDescPlacementIndex is the schema descriptor for placement_index field.
	learnerstateDescPlacementIndex := learnerstateFields[1].Descriptor()
	// learnerstate.DefaultPlacementIndex holds the default value on creation for the placement_index field.
	learnerstate.DefaultPlacementIndex = learnerstateDescPlacementIndex.Default.(int)
	// learnerstateDescPlacementCorrect is the schema descriptor for placement_correct field.
	learnerstateDescPlacementCorrect := learnerstateFields[2].Descriptor()
	// learnerstate.DefaultPlacementCorrect holds the default value on creation for the placement_correct field.
	learnerstate.DefaultPlacementCorrect = learnerstateDescPlacementCorrect.Default.(int)
	// learnerstateDescPlacementDone is the schema descriptor for placement_done field.
	learnerstateDescPlacementDone := learnerstateFields[3].Descriptor()
	// learnerstate.DefaultPlacementDone holds the default value on creation for the placement_done field.
	learnerstate.DefaultPlacementDone = learnerstateDescPlacementDone.Default.(bool)
	// learnerstateDescBatchNum is the schema descriptor for batch_num field.
	learnerstateDescBatchNum := learnerstateFields[4].Descriptor()
	// learnerstate.DefaultBatchNum holds the default value on creation for the batch_num field.
	learnerstate.DefaultBatchNum = learnerstateDescBatchNum.Default.(int)
	// learnerstateDescUpdatedAt is the schema descriptor for updated_at field.
	learnerstateDescUpdatedAt := learnerstateFields[5].Descriptor()
	// learnerstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerstate.DefaultUpdatedAt = learnerstateDescUpdatedAt.Default.(func() time.Time)
	// learnerstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerstate.UpdateDefaultUpdatedAt = learnerstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	placementitemFields := schema.PlacementItem{}.Fields()
	_ = placementitemFields
	// placementitemDescUnitKey is the schema descriptor for unit_key field.
	placementitemDescUnitKey := placementitemFields[1].Descriptor()
	// placementitem.DefaultUnitKey holds the default value on creation for the unit_key field.
	placementitem.DefaultUnitKey = placementitemDescUnitKey.Default.(string)
	// placementitemDescPrompt is the schema descriptor for prompt field.
	placementitemDescPrompt := placementitemFields[2].Descriptor()
	// placementitem.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	placementitem.PromptValidator = placementitemDescPrompt.Validators[0].(func(string) error)
	// placementitemDescItemType is the schema descriptor for item_type field.
	placementitemDescItemType := placementitemFields[3].Descriptor()
	// placementitem.DefaultItemType holds the default value on creation for the item_type field.
	placementitem.DefaultItemType = placementitemDescItemType.Default.(string)
	// placementitemDescCanonical is the schema descriptor for canonical field.
	placementitemDescCanonical := placementitemFields[4].Descriptor()
	// placementitem.CanonicalValidator is a validator for the "canonical" field. It is called by the builders before save.
	placementitem.CanonicalValidator = placementitemDescCanonical.Validators[0].(func(string) error)
	// placementitemDescSelectionPolicy is the schema descriptor for selection_policy field.
	placementitemDescSelectionPolicy := placementitemFields[7].Descriptor()
	// placementitem.DefaultSelectionPolicy holds the default value on creation for the selection_policy field.
	placementitem.DefaultSelectionPolicy = placementitemDescSelectionPolicy.Default.(string)
	// placementitemDescInstruction is the schema descriptor for instruction field.
	placementitemDescInstruction := placementitemFields[9].Descriptor()
	// placementitem.DefaultInstruction holds the default value on creation for the instruction field.
	placementitem.DefaultInstruction = placementitemDescInstruction.Default.(string)
	ruleFields := schema.Rule{}.Fields()
	_ = ruleFields
	// ruleDescRuleKey is the schema descriptor for rule_key field.
	ruleDescRuleKey := ruleFields[0].Descriptor()
	// rule.RuleKeyValidator is a validator for the "rule_key" field. It is called by the builders before save.
	rule.RuleKeyValidator = ruleDescRuleKey.Validators[0].(func(string) error)
	// ruleDescUnitKey is the schema descriptor for unit_key field.
	ruleDescUnitKey := ruleFields[1].Descriptor()
	// rule.UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	rule.UnitKeyValidator = ruleDescUnitKey.Validators[0].(func(string) error)
	// ruleDescSectionPath is the schema descriptor for section_path field.
	ruleDescSectionPath := ruleFields[2].Descriptor()
	// rule.DefaultSectionPath holds the default value on creation for the section_path field.
	rule.DefaultSectionPath = ruleDescSectionPath.Default.(string)
	// ruleDescTitle is the schema descriptor for title field.
	ruleDescTitle := ruleFields[3].Descriptor()
	// rule.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	rule.TitleValidator = ruleDescTitle.Validators[0].(func(string) error)
	// ruleDescText is the schema descriptor for text field.
	ruleDescText := ruleFields[4].Descriptor()
	// rule.DefaultText holds the default value on creation for the text field.
	rule.DefaultText = ruleDescText.Default.(string)
	// ruleDescShortText is the schema descriptor for short_text field.
	ruleDescShortText := ruleFields[5].Descriptor()
	// rule.DefaultShortText holds the default value on creation for the short_text field.
	rule.DefaultShortText = ruleDescShortText.Default.(string)
	unitexerciseFields := schema.UnitExercise{}.Fields()
	_ = unitexerciseFields
	// unitexerciseDescUnitKey is the schema descriptor for unit_key field.
	unitexerciseDescUnitKey := unitexerciseFields[0].Descriptor()
	// unitexercise.UnitKeyValidator is a validator for the "unit_key" field. It is called by the builders before save.
	unitexercise.UnitKeyValidator = unitexerciseDescUnitKey.Validators[0].(func(string) error)
	// unitexerciseDescExerciseIndex is the schema descriptor for exercise_index field.
	unitexerciseDescExerciseIndex := unitexerciseFields[1].Descriptor()
	// unitexercise.ExerciseIndexValidator is a validator for the "exercise_index" field. It is called by the builders before save.
	unitexercise.ExerciseIndexValidator = unitexerciseDescExerciseIndex.Validators[0].(func(int) error)
	// unitexerciseDescExerciseType is the schema descriptor for exercise_type field.
	unitexerciseDescExerciseType := unitexerciseFields[2].Descriptor()
	// unitexercise.ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	unitexercise.ExerciseTypeValidator = unitexerciseDescExerciseType.Validators[0].(func(string) error)
	// unitexerciseDescInstruction is the schema descriptor for instruction field.
	unitexerciseDescInstruction := unitexerciseFields[3].Descriptor()
	// unitexercise.InstructionValidator is a validator for the "instruction" field. It is called by the builders before save.
	unitexercise.InstructionValidator = unitexerciseDescInstruction.Validators[0].(func(string) error)
	// unitexerciseDescSource is the schema descriptor for source field.
	unitexerciseDescSource := unitexerciseFields[5].Descriptor()
	// unitexercise.DefaultSource holds the default value on creation for the source field.
	unitexercise.DefaultSource = unitexerciseDescSource.Default.(string)
	// unitexerciseDescCreatedAt is the schema descriptor for created_at field.
	unitexerciseDescCreatedAt := unitexerciseFields[6].Descriptor()
	// unitexercise.DefaultCreatedAt holds the default value on creation for the created_at field.
	unitexercise.DefaultCreatedAt = unitexerciseDescCreatedAt.Default.(func() time.Time)
}
