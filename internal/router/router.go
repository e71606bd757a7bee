// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains: the
// JSON API under /api, the embedded single-page frontend, and the
// health endpoint.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"snapui/internal/handlers"
	"snapui/internal/middleware"
	"snapui/web"
)

// New creates the configured Chi router. The rate limiter guards only
// /api/generate — preview assembly and export are local computations
// and stay unmetered.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no rate limit.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.With(limiter.Middleware).Post("/generate", api.Generate)
		r.Post("/preview", api.Preview)
		r.Post("/export", api.Export)
	})

	// Frontend — embedded static files, index.html at the root.
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
