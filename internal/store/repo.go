package store

import (
	"context"
	"time"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/schedule"
)

// Learner is a local profile row.
type Learner struct {
	ID         int
	Name       string
	Strictness string
	CreatedAt  time.Time
}

// LearnerState is the per-learner progress that is not a due item.
type LearnerState struct {
	LearnerID        int
	PlacementIndex   int
	PlacementCorrect int
	PlacementDone    bool
	BatchNum         int
}

// LearnerRepo manages learner profiles and their state rows.
type LearnerRepo interface {
	// GetOrCreate returns the learner with the given name, creating it
	// (with default settings and a fresh state row) on first use.
	GetOrCreate(ctx context.Context, name string) (*Learner, error)

	// Get returns the learner by ID.
	Get(ctx context.Context, learnerID int) (*Learner, error)

	// SetStrictness updates the learner's grading strictness.
	SetStrictness(ctx context.Context, learnerID int, strictness string) error

	// State returns the learner's state row, creating a default one if
	// missing.
	State(ctx context.Context, learnerID int) (*LearnerState, error)

	// UpdateState persists the state row.
	UpdateState(ctx context.Context, st *LearnerState) error

	// Reset deletes the learner's due items, attempts, and state,
	// keeping the profile and shared content.
	Reset(ctx context.Context, learnerID int) error
}

// ContentRepo manages the shared study content: exercises, placement
// items, and rule texts.
type ContentRepo interface {
	// ReplaceExercises swaps all authored exercises for the given units
	// in one transaction. Generated exercises for other units survive.
	ReplaceExercises(ctx context.Context, exercises []content.Exercise) error

	// SaveGenerated stores one LLM-generated exercise at its exercise
	// index, filling the gap the selector asked for.
	SaveGenerated(ctx context.Context, ex content.Exercise) error

	// ExercisesByUnit returns the unit's exercises ordered by index.
	ExercisesByUnit(ctx context.Context, unitKey string) ([]content.Exercise, error)

	// UnitKeys returns all unit keys that have at least one exercise.
	UnitKeys(ctx context.Context) ([]string, error)

	// ReplacePlacement swaps the whole placement test.
	ReplacePlacement(ctx context.Context, items []content.PlacementItem) error

	// PlacementItems returns the placement test ordered by position.
	PlacementItems(ctx context.Context) ([]content.PlacementItem, error)

	// ReplaceRules swaps all rule texts.
	ReplaceRules(ctx context.Context, rules []content.Rule) error

	// RulesByKeys returns the rules with the given keys, skipping
	// unknown keys.
	RulesByKeys(ctx context.Context, keys []string) ([]content.Rule, error)

	// RulesByUnit returns all rules of a unit.
	RulesByUnit(ctx context.Context, unitKey string) ([]content.Rule, error)
}

// DueRepo manages per-learner due items.
type DueRepo interface {
	// Create inserts a new due item and sets its ID.
	Create(ctx context.Context, d *schedule.DueItem) error

	// Update persists all mutable fields of an existing due item.
	Update(ctx context.Context, d *schedule.DueItem) error

	// Deactivate marks a due item inactive.
	Deactivate(ctx context.Context, id int) error

	// Active returns all active due items of a learner.
	Active(ctx context.Context, learnerID int) ([]schedule.DueItem, error)

	// ActiveForUnits returns the learner's active due items restricted
	// to the given unit keys.
	ActiveForUnits(ctx context.Context, learnerID int, unitKeys []string) ([]schedule.DueItem, error)

	// DueNow returns active due items with due_at <= now.
	DueNow(ctx context.Context, learnerID int, now time.Time) ([]schedule.DueItem, error)

	// NextDueAt returns the earliest due_at among active items that are
	// not yet due. ok is false when there are none.
	NextDueAt(ctx context.Context, learnerID int, now time.Time) (t time.Time, ok bool, err error)
}

// AttemptData is one graded answer to append.
type AttemptData struct {
	ID               int
	LearnerID        int
	DueItemID        int
	SessionID        string
	UnitKey          string
	ExerciseIndex    int
	ItemIndex        int
	Prompt           string
	Answer           string
	AnswerNorm       string
	Canonical        string
	RuleKeys         []string
	Verdict          string
	EffectiveCorrect bool
	Flipped          bool
	CreatedAt        time.Time
}

// UnitStat aggregates a learner's attempts for one unit.
type UnitStat struct {
	UnitKey  string
	Total    int
	Correct  int
	LastSeen time.Time
}

// AttemptRepo is the append-only attempt log.
type AttemptRepo interface {
	// Append stores one attempt and returns its ID.
	Append(ctx context.Context, a AttemptData) (int, error)

	// MarkFlipped records that an explanation overturned the verdict.
	// The stored verdict itself is never modified.
	MarkFlipped(ctx context.Context, attemptID int) error

	// UnitStats aggregates per-unit totals for the stats view.
	UnitStats(ctx context.Context, learnerID int) ([]UnitStat, error)

	// Recent returns the learner's latest attempts, newest first.
	Recent(ctx context.Context, learnerID int, limit int) ([]AttemptData, error)
}

// ExplainEntry is one cached explanation.
type ExplainEntry struct {
	CacheKey    string
	Explanation string
	VerdictFlip bool
}

// ExplainRepo caches LLM answer explanations.
type ExplainRepo interface {
	// Get returns the cached entry, or nil when absent.
	Get(ctx context.Context, cacheKey string) (*ExplainEntry, error)

	// Put stores an entry, overwriting any previous one for the key.
	Put(ctx context.Context, e ExplainEntry) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageSummary aggregates LLM events for the usage view.
type LLMUsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMEventView is a stored LLM request event as read back for
// inspection.
type LLMEventView struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM events for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMEventRepo provides append and query access to LLM request events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// UsageSummary aggregates all recorded LLM events, optionally
	// filtered by purpose ("" = all).
	UsageSummary(ctx context.Context, purpose string) (LLMUsageSummary, error)

	// RecentLLMEvents returns the latest events, newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventView, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventView, error)

	// UsageByPurpose aggregates token usage per purpose.
	UsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
}
