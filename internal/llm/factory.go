package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/maturiz/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. eventRepo may be nil when no store is
// attached (e.g. one-shot CLI invocations against a temp session).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
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

	// Wrap with middleware: caller → retry → logging → base
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, eventRepo)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from MATURIZ_* env vars, falling
// back to probing the standard provider key vars (ANTHROPIC_API_KEY,
// OPENAI_API_KEY, GEMINI_API_KEY) when no explicit key is configured.
// The resolved Config is returned alongside the provider so callers can
// pick up settings that apply above the transport, like Timeout.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, Config{}, err
		}
		// Discovery only picks the key; env settings like
		// MATURIZ_LLM_TIMEOUT still apply.
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
