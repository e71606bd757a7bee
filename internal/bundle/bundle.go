// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package bundle defines the canonical generated-code payload and the
// normalization applied to raw model output before it is served.
package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"snapui/internal/profile"
)

// ErrMalformed reports model output that could not be parsed into the
// expected structured shape. It is terminal: structured-output mode on
// the upstream call is the only mitigation, not retries.
var ErrMalformed = errors.New("bundle: malformed model output")

// Bundle is the four-field code payload produced per generation. It is
// built once by Normalize and consumed read-only by the preview and
// export layers.
type Bundle struct {
	CDNs   string `json:"cdns"`
	Markup string `json:"markup"`
	CSS    string `json:"css"`
	JS     string `json:"js"`
}

// rawBundle mirrors the model's output schema. Older prompt revisions
// emitted a single "html" field instead of "markup"; both are accepted.
type rawBundle struct {
	CDNs   string `json:"cdns"`
	Markup string `json:"markup"`
	HTML   string `json:"html"`
	CSS    string `json:"css"`
	JS     string `json:"js"`
}

// Normalize parses raw model output into a Bundle. The markup/html
// equivalence is applied, and the cdns field is unconditionally
// overwritten with the profile's pinned dependency block — model-proposed
// CDN links are never served. Markup, CSS, and JS content is passed
// through untouched; the sandboxed preview frame is the safety boundary.
func Normalize(raw string, p profile.Profile) (*Bundle, error) {
	var rb rawBundle
	if err := json.Unmarshal([]byte(raw), &rb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	markup := rb.Markup
	if markup == "" {
		markup = rb.HTML
	}

	return &Bundle{
		CDNs:   p.DependencyBlock,
		Markup: markup,
		CSS:    rb.CSS,
		JS:     rb.JS,
	}, nil
}

// Decode reads a client-supplied bundle from a JSON body, accepting the
// legacy "html" alias for markup. Unlike Normalize it keeps the cdns
// field as sent: client bundles already carry the pinned block.
func Decode(r io.Reader) (*Bundle, error) {
	var rb rawBundle
	if err := json.NewDecoder(r).Decode(&rb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	markup := rb.Markup
	if markup == "" {
		markup = rb.HTML
	}

	return &Bundle{
		CDNs:   rb.CDNs,
		Markup: markup,
		CSS:    rb.CSS,
		JS:     rb.JS,
	}, nil
}
