package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"email": "ops@example.com", "http_timeout_seconds": 10, "client_id": "42"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Email != "ops@example.com" {
		t.Errorf("Email = %q, want ops@example.com", cfg.Email)
	}
	if cfg.HTTPTimeout() != 10*time.Second {
		t.Errorf("HTTPTimeout() = %v, want 10s", cfg.HTTPTimeout())
	}
	if cfg.ClientIDOrDefault() != "42" {
		t.Errorf("ClientIDOrDefault() = %q, want 42", cfg.ClientIDOrDefault())
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Email: "file@example.com"}
	defaults := Config{
		Email:              "env@example.com",
		Password:           "secret",
		HTTPTimeoutSeconds: 15,
	}

	merged := cfg.MergeWithDefaults(defaults)

	if merged.Email != "file@example.com" {
		t.Errorf("Email = %q, want file value to win", merged.Email)
	}
	if merged.Password != "secret" {
		t.Errorf("Password = %q, want default to fill", merged.Password)
	}
	if merged.HTTPTimeoutSeconds != 15 {
		t.Errorf("HTTPTimeoutSeconds = %d, want 15", merged.HTTPTimeoutSeconds)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.AuthHostOrDefault() != DefaultAuthHost {
		t.Errorf("AuthHostOrDefault() = %q", cfg.AuthHostOrDefault())
	}
	if cfg.APIHostOrDefault() != DefaultAPIHost {
		t.Errorf("APIHostOrDefault() = %q", cfg.APIHostOrDefault())
	}
	if cfg.HTTPTimeout() != DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout() = %v, want %v", cfg.HTTPTimeout(), DefaultHTTPTimeout)
	}
	if cfg.LLMTimeout() != DefaultLLMTimeout {
		t.Errorf("LLMTimeout() = %v, want %v", cfg.LLMTimeout(), DefaultLLMTimeout)
	}
}

func TestLLMTimeout_Configured(t *testing.T) {
	cfg := &Config{LLMTimeoutSeconds: 45}
	if cfg.LLMTimeout() != 45*time.Second {
		t.Errorf("LLMTimeout() = %v, want 45s", cfg.LLMTimeout())
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{HTTPTimeoutSeconds: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
	if err := (&Config{LLMTimeoutSeconds: -1}).Validate(); err == nil {
		t.Error("expected error for negative LLM timeout")
	}
	if err := (&Config{}).Validate(); err != nil {
		t.Errorf("empty config should validate, got %v", err)
	}
}
