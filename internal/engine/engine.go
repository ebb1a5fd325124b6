// Package engine drives a drill session: it decides what to ask next
// (due item, placement item, or nothing), grades answers, and applies
// the scheduling consequences. The UI layer only renders what the
// engine hands it.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/exgen"
	"github.com/verba-app/verba/internal/schedule"
	"github.com/verba-app/verba/internal/store"
)

// Repos bundles the storage interfaces the engine needs.
type Repos struct {
	Learners store.LearnerRepo
	Content  store.ContentRepo
	Due      store.DueRepo
	Attempts store.AttemptRepo
}

// Engine is the drill facade. Safe for concurrent use; operations on
// the same learner serialize on a per-learner lock.
type Engine struct {
	repos Repos
	gen   *exgen.Generator
	now   func() time.Time

	mu       sync.Mutex
	sessions map[int]*session
}

// session is the in-memory drill state of one learner: the question
// currently on screen and the attempt awaiting Advance.
type session struct {
	mu sync.Mutex
	id string

	pending     *Question
	lastAttempt *store.AttemptData
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine. gen may be nil to disable exercise generation.
func New(repos Repos, gen *exgen.Generator, opts ...Option) *Engine {
	e := &Engine{
		repos:    repos,
		gen:      gen,
		now:      time.Now,
		sessions: make(map[int]*session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) session(learnerID int) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[learnerID]
	if !ok {
		s = &session{id: uuid.New().String()}
		e.sessions[learnerID] = s
	}
	return s
}

// QuestionSource says where a question came from.
type QuestionSource string

const (
	SourceDue       QuestionSource = "due"
	SourcePlacement QuestionSource = "placement"
)

// Question is one item ready to render.
type Question struct {
	Source QuestionSource

	// Due session fields; zero for placement.
	Due           schedule.DueItem
	Exercise      *content.Exercise
	RealItemIndex int // 1-based position in the exercise's full item list
	ShownIndex    int // 1-based position in the shown (filtered, capped) list
	ShownTotal    int

	// Placement field; nil for due questions.
	Placement *content.PlacementItem

	// Render fields, filled for both sources.
	Instruction string
	Prompt      string
	Options     []string
	IsChoice    bool
	MultiSelect bool

	// ShowRuleFirst asks the UI to show the unit's rules before the
	// prompt. Set at the start of a detour.
	ShowRuleFirst bool
	RuleKeys      []string
}

// Done reports that nothing is currently askable.
type Done struct {
	// NextDueAt is when the next scheduled item becomes due; zero when
	// nothing is scheduled at all.
	NextDueAt time.Time
}

// CurrentItem returns the next question for the learner, or a Done
// marker when nothing is due and placement is finished. Due items come
// first (revisit, then check, then detour), placement after.
func (e *Engine) CurrentItem(ctx context.Context, learnerID int) (*Question, *Done, error) {
	s := e.session(learnerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.currentItemLocked(ctx, s, learnerID)
}

func (e *Engine) currentItemLocked(ctx context.Context, s *session, learnerID int) (*Question, *Done, error) {
	// A due item whose unit content vanished completes on the spot and
	// its follow-up is scheduled, so the loop moves on rather than
	// wedging the session.
	for {
		due, err := e.pickDue(ctx, learnerID)
		if err != nil {
			return nil, nil, err
		}
		if due == nil {
			break
		}

		q, err := e.buildDueQuestion(ctx, due)
		if err != nil {
			return nil, nil, err
		}
		if q != nil {
			s.pending = q
			s.lastAttempt = nil
			return q, nil, nil
		}

		if err := e.completeWithoutExercise(ctx, due); err != nil {
			return nil, nil, err
		}
	}

	q, err := e.nextPlacement(ctx, learnerID)
	if err != nil {
		return nil, nil, err
	}
	if q != nil {
		s.pending = q
		s.lastAttempt = nil
		return q, nil, nil
	}

	s.pending = nil
	next, ok, err := e.repos.Due.NextDueAt(ctx, learnerID, e.now())
	if err != nil {
		return nil, nil, err
	}
	done := &Done{}
	if ok {
		done.NextDueAt = next
	}
	return nil, done, nil
}

// pickDue returns the learner's next due item: the earliest-due active
// item, revisits before checks before detours.
func (e *Engine) pickDue(ctx context.Context, learnerID int) (*schedule.DueItem, error) {
	dueNow, err := e.repos.Due.DueNow(ctx, learnerID, e.now())
	if err != nil {
		return nil, err
	}
	for _, kind := range []schedule.Kind{schedule.KindRevisit, schedule.KindCheck, schedule.KindDetour} {
		for i := range dueNow {
			if dueNow[i].Kind == kind {
				return &dueNow[i], nil
			}
		}
	}
	return nil, nil
}

// completeWithoutExercise closes a due item whose unit has no
// materializable content, still scheduling its follow-up so the unit
// is not silently dropped from the plan.
func (e *Engine) completeWithoutExercise(ctx context.Context, due *schedule.DueItem) error {
	due.IsActive = false
	if err := e.repos.Due.Update(ctx, due); err != nil {
		return err
	}
	if follow, ok := schedule.FollowUp(*due, e.now()); ok {
		return e.repos.Due.Create(ctx, &follow)
	}
	return nil
}
