package llm

import (
	"testing"
	"time"
)

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig()

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderGemini)
	}
	if cfg.GetModel(TierLite) == "" || cfg.GetModel(TierStandard) == "" {
		t.Error("both tiers must have a model configured")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "only-standard"}}
	if got := cfg.GetModel(TierLite); got != "only-standard" {
		t.Errorf("GetModel(lite) = %q, want fallback to standard", got)
	}

	empty := &Config{}
	if got := empty.GetModel(TierLite); got != "" {
		t.Errorf("GetModel on empty config = %q, want empty", got)
	}
}

func TestWithModel_PreservesTimeout(t *testing.T) {
	cfg := DefaultGeminiConfig().WithModel(TierLite, "custom-lite")

	if cfg.GetModel(TierLite) != "custom-lite" {
		t.Errorf("GetModel(lite) = %q, want custom-lite", cfg.GetModel(TierLite))
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v preserved", cfg.Timeout, DefaultTimeout)
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := DefaultGeminiConfig().WithTimeout(45 * time.Second)

	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
	if cfg.GetModel(TierStandard) != DefaultGeminiConfig().GetModel(TierStandard) {
		t.Error("WithTimeout must preserve the model map")
	}
}
