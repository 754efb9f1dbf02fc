package llm

import (
	"context"
	"testing"
	"time"
)

func TestConfigFromEnv_Timeout(t *testing.T) {
	t.Setenv("MATURIZ_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestConfigFromEnv_InvalidTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("MATURIZ_LLM_TIMEOUT", "soon")

	cfg := ConfigFromEnv()
	if cfg.Timeout != DefaultConfig().Timeout {
		t.Errorf("timeout = %v, want default %v", cfg.Timeout, DefaultConfig().Timeout)
	}
}

func TestNewProviderFromEnv_DiscoveryKeepsTimeout(t *testing.T) {
	// No explicit key configured: resolution falls back to probing the
	// standard provider key vars. The timeout still comes from the env.
	t.Setenv("MATURIZ_LLM_PROVIDER", "")
	t.Setenv("MATURIZ_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("MATURIZ_LLM_TIMEOUT", "7s")

	p, cfg, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("timeout = %v, want 7s", cfg.Timeout)
	}
}
