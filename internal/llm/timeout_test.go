package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// hangingProvider blocks until the context expires, like a backend that
// accepted the connection and never answers.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestTimeout_CancelsHungCall(t *testing.T) {
	p := WithTimeout(hangingProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("deadline took too long to fire")
	}
}

func TestTimeout_PassesResultThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, 1*time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_DisabledLeavesProviderUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("non-positive timeout should return the provider as-is")
	}
}

func TestTimeout_ModelIDDelegates(t *testing.T) {
	p := WithTimeout(NewMockProvider(), 1*time.Second)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
