package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/store"
)

// ContentHandler serves site content sections: public reads for page
// rendering and admin writes for the content editor.
type ContentHandler struct {
	store *store.Store
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(st *store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

// GetAll returns every section keyed by name, the shape the front end loads
// once at startup.
// GET /api/v1/content
func (h *ContentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sections, err := h.store.ListContentSections(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}

	out := make(map[string]json.RawMessage, len(sections))
	for _, s := range sections {
		out[s.Section] = s.Data
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOne returns a single section payload.
// GET /api/v1/content/{section}
func (h *ContentHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	c, err := h.store.GetContentSection(r.Context(), section)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Content section not found: "+section)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Put stores a section's payload. The body is arbitrary JSON owned by the
// front end; only well-formedness is checked.
// PUT /api/v1/admin/content/{section}
func (h *ContentHandler) Put(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Body must be valid JSON")
		return
	}

	c := &model.ContentSection{
		Section: chi.URLParam(r, "section"),
		Data:    json.RawMessage(body),
	}
	if err := h.store.UpsertContentSection(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store content")
		return
	}
	writeJSON(w, http.StatusOK, c)
}
