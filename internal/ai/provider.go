// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for multimodal LLM providers
// (OpenAI, Gemini, Claude). Each provider implements the Provider
// interface and handles its own HTTP communication and response parsing;
// the Registry selects the active one by name.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
)

// ErrUpstream marks transport or service failures from the completion
// provider. The wrapped message carries the upstream diagnostic so
// operators can tell an auth failure from a quota failure from an
// outage. Schema-wrong-but-well-formed output is not an upstream error.
var ErrUpstream = errors.New("ai: upstream completion failed")

// Image is an in-memory image attachment for a multimodal request.
type Image struct {
	MimeType string
	Data     []byte
}

// DataURL encodes the image as a data:<mime>;base64,<payload> URI, the
// form OpenAI-style APIs accept for inline images.
func (img Image) DataURL() string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// GenerateFromImage sends one multimodal request carrying the prompt
	// and the image, and returns the model's raw text output. A single
	// request/response call: no retry, no streaming, no partial results.
	// Implementations request structured JSON output where the API
	// supports it; they never judge whether the returned text matches
	// the expected schema.
	GenerateFromImage(ctx context.Context, prompt string, img Image) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every
// config that has a non-empty API key. Providers without keys are
// silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		}
	}

	return r
}

// GenerateFromImage calls the active provider and wraps any failure in
// ErrUpstream so callers can classify it without knowing which provider
// produced it.
func (r *Registry) GenerateFromImage(ctx context.Context, prompt string, img Image) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out, err := p.GenerateFromImage(ctx, prompt, img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return out, nil
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error
// if the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (e.g. stubs in tests).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
