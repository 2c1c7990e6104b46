package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// errorResponse is the JSON envelope for every non-2xx body.
// Clients match on substrings of Error ("empty", "date format"), so the
// messages produced by the validate package are part of the API contract.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v as the response body with the given status.
// Encoding failures at this point cannot be reported to the client; they are
// logged and the connection is left to the server to close.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a domain error to its HTTP status and error envelope:
// ErrValidation → 400, ErrNotFound → 404, anything else → 500 with a
// generic message (internal details never leak to clients).
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: unwrapMessage(err)})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "entry not found"})
	default:
		slog.ErrorContext(r.Context(), "handler error", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// badRequest writes a 400 for requests rejected before reaching the service
// layer (e.g. an unparseable JSON body).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error. e.g. "service.EntryService.Create: validation error: text cannot
// be empty" → "text cannot be empty".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
