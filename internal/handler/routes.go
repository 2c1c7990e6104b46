package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/404skill/mood-journal/backend/spec"
)

// Routes returns the chi router for the full API surface.
// Wire it in main.go after the global middleware stack.
func Routes(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Route("/entries", func(r chi.Router) {
		r.Post("/", s.CreateEntry)
		r.Get("/", s.ListEntries)
		r.Get("/{id}", s.GetEntry)
		r.Put("/{id}", s.UpdateEntry)
		r.Delete("/{id}", s.DeleteEntry)
	})

	r.Get("/mood/summary", s.GetMoodSummary)

	// The OpenAPI document is embedded in the binary so the spec served is
	// always the one the running code was built with.
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(spec.OpenAPI)
	})

	return r
}
