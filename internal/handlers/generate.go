// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"snapui/internal/bundle"
	"snapui/internal/intake"
)

// Generate handles POST /api/generate: multipart body with a required
// "image" file and an optional "mode" field (slider|faq, default
// slider). Success returns the normalized code bundle as JSON.
//
// A missing upload is the client's fault and returns 400 before any
// upstream work. Upstream and parse failures share one 500 shape for
// clients; the details field and distinct log lines keep them apart
// for operators.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	b, err := a.service.Generate(r.Context(), r)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrNoFile):
			writeError(w, http.StatusBadRequest, "No image uploaded", "")
		case errors.Is(err, bundle.ErrMalformed):
			slog.Error("generation output unparseable", "error", err)
			writeError(w, http.StatusInternalServerError, "AI Generation Failed", err.Error())
		default:
			slog.Error("generation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "AI Generation Failed", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, b)
}
