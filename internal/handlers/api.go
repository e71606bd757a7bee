// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP API: screenshot generation,
// preview-document assembly, and bundle export.
package handlers

import (
	"encoding/json"
	"net/http"

	"snapui/internal/generate"
)

// API groups the JSON endpoints and their dependencies.
type API struct {
	service *generate.Service
}

// NewAPI creates the API handler group around a generation service.
func NewAPI(service *generate.Service) *API {
	return &API{service: service}
}

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape of every API error.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorBody{Error: message, Details: details})
}
