package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so tests see a clean slate.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV", "UPLOAD_DIR",
		"AI_PROVIDER",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"CLAUDE_API_KEY", "CLAUDE_MODEL", "CLAUDE_BASE_URL",
		"MAX_CONCURRENT_GENERATIONS",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("addr: got %q, want %q", cfg.Addr(), "0.0.0.0:3000")
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.AIProvider != "openai" {
		t.Errorf("provider: got %q, want %q", cfg.AIProvider, "openai")
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("model: got %q, want %q", cfg.OpenAIModel, "gpt-4o")
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("upload dir: got %q, want %q", cfg.UploadDir, "uploads")
	}
	if cfg.MaxConcurrent != 4 {
		t.Errorf("max concurrent: got %d, want 4", cfg.MaxConcurrent)
	}
	if cfg.RateWindow != 60*time.Second {
		t.Errorf("rate window: got %v, want 60s", cfg.RateWindow)
	}
}

func TestLoadFailsFastWithoutCredential(t *testing.T) {
	clearEnv(t)

	// The upstream credential is read once at startup; its absence must
	// fail the process here, not on the first request.
	_, err := Load()
	if err == nil {
		t.Fatal("Load should fail when the active provider has no API key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestLoadRequiresKeyForSelectedProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-test") // wrong provider's key

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("expected missing GEMINI_API_KEY error, got: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "gm-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AIProvider != "gemini" {
		t.Errorf("provider: got %q, want %q", cfg.AIProvider, "gemini")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "watson")

	if _, err := Load(); err == nil {
		t.Error("unknown AI_PROVIDER should be rejected at startup")
	}
}

func TestLoadClampsMaxConcurrent(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_CONCURRENT_GENERATIONS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxConcurrent != 1 {
		t.Errorf("max concurrent: got %d, want clamp to 1", cfg.MaxConcurrent)
	}
}

func TestLoadIgnoresUnparseableInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RATE_LIMIT_REQUESTS", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("rate limit: got %d, want default 10", cfg.RateLimit)
	}
}
