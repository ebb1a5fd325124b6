package explain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/llm"
	"github.com/verba-app/verba/internal/store"
)

type fakeExplainRepo struct {
	entries map[string]store.ExplainEntry
}

func newFakeExplainRepo() *fakeExplainRepo {
	return &fakeExplainRepo{entries: make(map[string]store.ExplainEntry)}
}

func (f *fakeExplainRepo) Get(_ context.Context, key string) (*store.ExplainEntry, error) {
	if e, ok := f.entries[key]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeExplainRepo) Put(_ context.Context, e store.ExplainEntry) error {
	f.entries[e.CacheKey] = e
	return nil
}

type fakeAttemptRepo struct {
	store.AttemptRepo
	flipped []int
}

func (f *fakeAttemptRepo) MarkFlipped(_ context.Context, attemptID int) error {
	f.flipped = append(f.flipped, attemptID)
	return nil
}

func wrongAnswerReq() Request {
	return Request{
		UnitKey:   "present_simple_1",
		Prompt:    "She ___ (not/like) coffee.",
		Canonical: "She doesn't like coffee.",
		Answer:    "She don't like coffee.",
		Verdict:   grader.VerdictWrong,
		Mode:      grader.StrictnessNormal,
		AttemptID: 7,
	}
}

func TestExplain_WrongStaysWrong(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("WRONG\nWith third-person singular subjects, use \"doesn't\", not \"don't\"."),
	})
	attempts := &fakeAttemptRepo{}
	svc := NewService(mock, newFakeExplainRepo(), attempts)

	exp, err := svc.Explain(context.Background(), wrongAnswerReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.VerdictFlip {
		t.Fatal("WRONG reply must not flip")
	}
	if exp.Text == "" || exp.Text[:4] == "WRON" {
		t.Fatalf("explanation should drop the protocol line: %q", exp.Text)
	}
	if len(attempts.flipped) != 0 {
		t.Fatal("no flip should be recorded")
	}
}

func TestExplain_FlipToCorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("CORRECT\nThe contracted and expanded forms are both acceptable here."),
	})
	attempts := &fakeAttemptRepo{}
	svc := NewService(mock, newFakeExplainRepo(), attempts)

	exp, err := svc.Explain(context.Background(), wrongAnswerReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exp.VerdictFlip {
		t.Fatal("CORRECT reply on a wrong verdict must flip")
	}
	if len(attempts.flipped) != 1 || attempts.flipped[0] != 7 {
		t.Fatalf("flip should be recorded on attempt 7, got %v", attempts.flipped)
	}
}

func TestExplain_CorrectVerdictNeverFlips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("CORRECT\nWell done."),
	})
	svc := NewService(mock, newFakeExplainRepo(), &fakeAttemptRepo{})

	req := wrongAnswerReq()
	req.Verdict = grader.VerdictCorrect
	exp, err := svc.Explain(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.VerdictFlip {
		t.Fatal("an already-correct answer has nothing to flip")
	}
}

func TestExplain_CacheHitSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("WRONG\nUse doesn't."),
	})
	cache := newFakeExplainRepo()
	svc := NewService(mock, cache, &fakeAttemptRepo{})

	if _, err := svc.Explain(context.Background(), wrongAnswerReq()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	exp, err := svc.Explain(context.Background(), wrongAnswerReq())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !exp.Cached {
		t.Fatal("second call should be served from cache")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestExplain_CacheKeyNormalizesAnswer(t *testing.T) {
	a := wrongAnswerReq()
	b := wrongAnswerReq()
	b.Answer = "  she  DON'T like coffee. "
	if cacheKey(a) != cacheKey(b) {
		t.Fatal("spacing and case variants of the same answer should share a cache entry")
	}

	c := wrongAnswerReq()
	c.Verdict = grader.VerdictAlmost
	if cacheKey(a) == cacheKey(c) {
		t.Fatal("different verdicts must not share a cache entry")
	}
}

func TestExplain_NoProviderNoCache(t *testing.T) {
	svc := NewService(nil, newFakeExplainRepo(), &fakeAttemptRepo{})

	_, err := svc.Explain(context.Background(), wrongAnswerReq())
	if !errors.Is(err, ErrExplainUnavailable) {
		t.Fatalf("expected ErrExplainUnavailable, got %v", err)
	}
}

func TestExplain_NoProviderServesCache(t *testing.T) {
	cache := newFakeExplainRepo()
	warm := NewService(llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("WRONG\nUse doesn't."),
	}), cache, &fakeAttemptRepo{})
	if _, err := warm.Explain(context.Background(), wrongAnswerReq()); err != nil {
		t.Fatalf("warm-up call: %v", err)
	}

	cold := NewService(nil, cache, &fakeAttemptRepo{})
	exp, err := cold.Explain(context.Background(), wrongAnswerReq())
	if err != nil {
		t.Fatalf("cached explanation should survive losing the provider: %v", err)
	}
	if !exp.Cached {
		t.Fatal("expected a cache hit")
	}
}

func TestParseReply_NoProtocolLine(t *testing.T) {
	text, accepted := parseReply("The answer is missing the auxiliary verb.")
	if accepted {
		t.Fatal("free-form reply must not flip")
	}
	if text != "The answer is missing the auxiliary verb." {
		t.Fatalf("free-form reply should pass through: %q", text)
	}
}
