// Package explain produces natural-language answer explanations. The
// model may overturn a wrong verdict; the original grading is never
// edited, the flip is recorded next to it.
package explain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/llm"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/textnorm"
)

// ErrExplainUnavailable is returned when no provider is configured and
// the mistake has no cached explanation.
var ErrExplainUnavailable = errors.New("explanations unavailable")

// Request identifies the graded answer to explain.
type Request struct {
	UnitKey   string
	Prompt    string
	Canonical string
	Answer    string
	Verdict   grader.Verdict
	Mode      grader.Strictness
	AttemptID int
}

// Explanation is what the learner sees.
type Explanation struct {
	Text string

	// VerdictFlip is true when the model judged a graded-wrong answer
	// acceptable. The attempt keeps its verdict; the flip is stored
	// separately and the scheduler counts the answer as correct.
	VerdictFlip bool

	// Cached is true when the explanation came from the cache.
	Cached bool
}

// Service generates and caches explanations.
type Service struct {
	provider llm.Provider
	cache    store.ExplainRepo
	attempts store.AttemptRepo
}

// NewService creates a Service. A nil provider disables generation;
// only cached explanations are served then.
func NewService(provider llm.Provider, cache store.ExplainRepo, attempts store.AttemptRepo) *Service {
	return &Service{provider: provider, cache: cache, attempts: attempts}
}

// Explain returns the explanation for a graded answer, serving from
// cache when the same mistake was explained before.
func (s *Service) Explain(ctx context.Context, req Request) (*Explanation, error) {
	key := cacheKey(req)

	if entry, err := s.cache.Get(ctx, key); err != nil {
		return nil, err
	} else if entry != nil {
		if entry.VerdictFlip {
			s.markFlipped(ctx, req.AttemptID)
		}
		return &Explanation{Text: entry.Explanation, VerdictFlip: entry.VerdictFlip, Cached: true}, nil
	}

	if s.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured: %w", ErrExplainUnavailable)
	}

	ctx = llm.WithPurpose(ctx, "explain")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    "You are a strict English grammar checker.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(req)}},
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("explain answer: %w", err)
	}

	text, accepted := parseReply(string(resp.Content))
	flip := accepted && req.Verdict != grader.VerdictCorrect

	if err := s.cache.Put(ctx, store.ExplainEntry{
		CacheKey:    key,
		Explanation: text,
		VerdictFlip: flip,
	}); err != nil {
		return nil, err
	}

	if flip {
		s.markFlipped(ctx, req.AttemptID)
	}
	return &Explanation{Text: text, VerdictFlip: flip}, nil
}

func (s *Service) markFlipped(ctx context.Context, attemptID int) {
	if attemptID <= 0 || s.attempts == nil {
		return
	}
	// A failed flag write loses the flip on restart but not the shown
	// explanation, so it is not worth failing the request over.
	_ = s.attempts.MarkFlipped(ctx, attemptID)
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(`Task mode: %s
Question: %s
User answer: %s
Canonical correct answer: %s

1) Decide if the user's answer should be accepted as correct. Reply with ONLY one of: CORRECT or WRONG.
2) Then on a new line, provide a short explanation in English (1-4 sentences), do NOT translate examples.
3) If CORRECT but different wording, say why it's acceptable.`,
		req.Mode, req.Prompt, req.Answer, req.Canonical)
}

// parseReply splits the CORRECT/WRONG first line from the explanation
// body. A reply that skips the protocol is shown as-is with no flip.
func parseReply(raw string) (text string, accepted bool) {
	trimmed := strings.TrimSpace(raw)
	first, rest, found := strings.Cut(trimmed, "\n")
	verdict := strings.ToUpper(strings.TrimSpace(first))

	switch verdict {
	case "CORRECT":
		accepted = true
	case "WRONG":
		accepted = false
	default:
		return trimmed, false
	}

	if !found || strings.TrimSpace(rest) == "" {
		return trimmed, accepted
	}
	return strings.TrimSpace(rest), accepted
}

// cacheKey hashes the exact mistake so repeated "why?" requests for it
// are free. The answer is normalized first: trivial spacing variants of
// the same wrong answer share one explanation.
func cacheKey(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", req.UnitKey, req.Prompt, textnorm.ComparisonKey(req.Answer), req.Verdict)
	return hex.EncodeToString(h.Sum(nil))
}
