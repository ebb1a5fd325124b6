package llm

import (
	"context"
	"fmt"

	"github.com/verba-app/verba/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.LLMEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> timeout -> retry -> logging -> base.
	// Every individual attempt is logged, and the deadline bounds the
	// whole call including retry waits.
	logged := WithLogging(base, cfg.Provider, eventRepo)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}

// NewProviderFromEnv builds a Provider from VERBA_* environment
// variables, falling back to probing the standard provider key vars
// when no explicit key is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, eventRepo)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM provider configured: set VERBA_GEMINI_API_KEY, VERBA_OPENAI_API_KEY, or VERBA_ANTHROPIC_API_KEY")
	}
	return NewProvider(ctx, discovered, eventRepo)
}
