package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/404skill/mood-journal/backend/internal/domain"
	"github.com/404skill/mood-journal/backend/internal/validate"
)

// entryRequest is the body of POST /entries and PUT /entries/{id}.
// Text is a pointer so a missing field and an explicit null are both
// distinguishable from an empty string — all three are rejected, but the
// decode itself must not fail.
type entryRequest struct {
	Text *string `json:"text"`
}

// idResponse is the body of a successful create or update: the entry id only.
// The full entry is available via GET /entries/{id}.
type idResponse struct {
	ID uuid.UUID `json:"id"`
}

// CreateEntry handles POST /entries.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON request body")
		return
	}

	created, err := s.entries.Create(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: created.ID})
}

// ListEntries handles GET /entries.
// Supports ?moods= (comma-separated labels), ?startDate= and ?endDate=
// (YYYY-MM-DD, inclusive) query parameters.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := s.entries.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetEntry handles GET /entries/{id}.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := validate.EntryID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := s.entries.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// UpdateEntry handles PUT /entries/{id}.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := validate.EntryID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON request body")
		return
	}

	updated, err := s.entries.Update(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: updated.ID})
}

// DeleteEntry handles DELETE /entries/{id}.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := validate.EntryID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.entries.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// filterFromQuery builds an EntryFilter from the request's query parameters.
// Validation happens before any store access, so a malformed date is rejected
// without touching the repo.
func filterFromQuery(r *http.Request) (domain.EntryFilter, error) {
	q := r.URL.Query()

	filter := domain.EntryFilter{
		Moods: validate.Moods(q.Get("moods")),
	}

	if raw := q.Get("startDate"); raw != "" {
		start, err := validate.DateBound(raw, false)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.Start = &start
	}
	if raw := q.Get("endDate"); raw != "" {
		end, err := validate.DateBound(raw, true)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.End = &end
	}

	return filter, nil
}
