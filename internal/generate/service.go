// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate orchestrates one screenshot-to-code cycle: asset
// intake, profile resolution, the upstream multimodal call, and
// normalization of the model's output into a servable bundle.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"snapui/internal/ai"
	"snapui/internal/bundle"
	"snapui/internal/intake"
	"snapui/internal/profile"
)

// Completer is the upstream multimodal client. *ai.Registry satisfies
// it; tests substitute stubs.
type Completer interface {
	GenerateFromImage(ctx context.Context, prompt string, img ai.Image) (string, error)
}

// Service runs generation requests. Requests are independent of each
// other; the only cross-request control is a semaphore bounding how
// many upstream calls run at once.
type Service struct {
	completer Completer
	profiles  *profile.Registry
	store     *intake.Store
	sem       *semaphore.Weighted
}

// NewService wires a generation service. maxConcurrent caps in-flight
// upstream calls; values below 1 are clamped to 1.
func NewService(c Completer, profiles *profile.Registry, store *intake.Store, maxConcurrent int64) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		completer: c,
		profiles:  profiles,
		store:     store,
		sem:       semaphore.NewWeighted(maxConcurrent),
	}
}

// Generate runs one full cycle for the given request and returns the
// normalized bundle. The transient upload is released on every exit
// path — success, upstream failure, or malformed output — and a failed
// release is logged rather than replacing the pipeline error.
func (s *Service) Generate(ctx context.Context, r *http.Request) (*bundle.Bundle, error) {
	asset, err := s.store.FromRequest(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if relErr := asset.Release(); relErr != nil {
			slog.Warn("transient upload release failed", "id", asset.ID, "error", relErr)
		}
	}()

	prof := s.profiles.Resolve(r.FormValue("mode"))
	slog.Info("generation started",
		"mode", prof.Mode,
		"file", asset.OriginalName,
		"size", asset.Size,
	)

	data, err := asset.Bytes()
	if err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("generate: waiting for upstream slot: %w", err)
	}
	start := time.Now()
	raw, genErr := s.completer.GenerateFromImage(ctx, prof.Prompt, ai.Image{
		MimeType: asset.MimeType,
		Data:     data,
	})
	s.sem.Release(1)
	if genErr != nil {
		return nil, genErr
	}

	b, err := bundle.Normalize(raw, prof)
	if err != nil {
		return nil, err
	}

	slog.Info("generation complete",
		"mode", prof.Mode,
		"duration", time.Since(start).String(),
	)
	return b, nil
}
