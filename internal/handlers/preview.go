package handlers

import (
	"net/http"

	"snapui/internal/bundle"
	"snapui/internal/export"
	"snapui/internal/preview"
)

// Preview handles POST /api/preview: a bundle in the JSON body yields
// the assembled standalone document as text/html. The client loads the
// result into a sandboxed iframe; assembly itself involves no upstream
// call, so re-rendering the last bundle is free and repeatable.
func (a *API) Preview(w http.ResponseWriter, r *http.Request) {
	b, err := bundle.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid bundle", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(preview.Document(b)))
}

// Export handles POST /api/export: a bundle in the JSON body yields
// clipboard-ready text. With no query parameter the labeled
// all-sections block is returned; ?field=cdns|markup|css|js selects a
// single field's raw text.
func (a *API) Export(w http.ResponseWriter, r *http.Request) {
	b, err := bundle.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid bundle", err.Error())
		return
	}

	var out string
	if field := r.URL.Query().Get("field"); field != "" {
		out, err = export.Field(b, field)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown field", err.Error())
			return
		}
	} else {
		out = export.All(b)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}
