// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Transient upload staging
	UploadDir string

	// AI provider settings. AIProvider selects the active provider;
	// its API key is the one required secret.
	AIProvider string // "openai", "gemini", "claude"

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	ClaudeKey     string
	ClaudeModel   string
	ClaudeBaseURL string

	// MaxConcurrent caps in-flight upstream generation calls.
	MaxConcurrent int

	// Per-IP rate limiting for the generation endpoint.
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. The active provider's API key is required: a missing
// credential fails here, at startup, never per-request.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "3000"),
		Env:  envOrDefault("APP_ENV", "development"),

		UploadDir: envOrDefault("UPLOAD_DIR", "uploads"),

		AIProvider: envOrDefault("AI_PROVIDER", "openai"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		ClaudeKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:   envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeBaseURL: os.Getenv("CLAUDE_BASE_URL"),

		MaxConcurrent: envOrDefaultInt("MAX_CONCURRENT_GENERATIONS", 4),

		RateLimit:  envOrDefaultInt("RATE_LIMIT_REQUESTS", 10),
		RateWindow: time.Duration(envOrDefaultInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}

	switch cfg.AIProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set when AI_PROVIDER is openai")
		}
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set when AI_PROVIDER is gemini")
		}
	case "claude":
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY must be set when AI_PROVIDER is claude")
		}
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrDefaultInt reads an integer environment variable, returning a
// fallback if unset or unparseable.
func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
