// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubProvider is a programmable Provider used for registry tests.
type stubProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (s *stubProvider) GenerateFromImage(_ context.Context, _ string, _ Image) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) Name() string { return s.name }

func TestNewRegistrySkipsProvidersWithoutKeys(t *testing.T) {
	r := NewRegistry("openai", map[string]ProviderConfig{
		"openai": {APIKey: "sk-test", Model: "gpt-4o"},
		"gemini": {APIKey: ""},
		"claude": {APIKey: ""},
	})

	if !r.HasProvider("openai") {
		t.Error("openai should be available")
	}
	if r.HasProvider("gemini") {
		t.Error("gemini has no key and should be skipped")
	}
	if r.HasProvider("claude") {
		t.Error("claude has no key and should be skipped")
	}
	if len(r.Available()) != 1 {
		t.Errorf("available: got %v, want exactly one provider", r.Available())
	}
}

func TestRegistryActiveSwitching(t *testing.T) {
	r := NewRegistry("openai", map[string]ProviderConfig{
		"openai": {APIKey: "sk-test"},
		"gemini": {APIKey: "gm-test"},
	})

	if r.ActiveName() != "openai" {
		t.Errorf("active: got %q, want %q", r.ActiveName(), "openai")
	}

	if err := r.SetActive("gemini"); err != nil {
		t.Fatalf("SetActive(gemini): %v", err)
	}
	if r.ActiveName() != "gemini" {
		t.Errorf("active after switch: got %q, want %q", r.ActiveName(), "gemini")
	}

	if err := r.SetActive("claude"); err == nil {
		t.Error("SetActive(claude) should fail: no key configured")
	}
}

func TestRegistryGenerateFromImage_WrapsUpstreamError(t *testing.T) {
	r := NewRegistry("stub", nil)
	r.Register("stub", &stubProvider{name: "stub", err: errors.New("service on fire")})

	_, err := r.GenerateFromImage(context.Background(), "p", Image{})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error %v should wrap ErrUpstream", err)
	}
	if !strings.Contains(err.Error(), "service on fire") {
		t.Errorf("error should carry the provider diagnostic, got: %v", err)
	}
}

func TestRegistryGenerateFromImage_NoActiveProvider(t *testing.T) {
	r := NewRegistry("openai", nil)

	_, err := r.GenerateFromImage(context.Background(), "p", Image{})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("missing provider should surface as ErrUpstream, got: %v", err)
	}
}

func TestRegistryGenerateFromImage_Delegates(t *testing.T) {
	stub := &stubProvider{name: "stub", response: "raw output"}
	r := NewRegistry("stub", nil)
	r.Register("stub", stub)

	got, err := r.GenerateFromImage(context.Background(), "p", Image{MimeType: "image/png"})
	if err != nil {
		t.Fatalf("GenerateFromImage: %v", err)
	}
	if got != "raw output" {
		t.Errorf("got %q, want %q", got, "raw output")
	}
	if stub.calls != 1 {
		t.Errorf("provider calls: got %d, want 1", stub.calls)
	}
}

func TestImageDataURL(t *testing.T) {
	img := Image{MimeType: "image/jpeg", Data: []byte("abc")}
	got := img.DataURL()
	want := "data:image/jpeg;base64,YWJj"
	if got != want {
		t.Errorf("DataURL: got %q, want %q", got, want)
	}
}
