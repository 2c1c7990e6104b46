package handler

import "net/http"

// GetMoodSummary handles GET /mood/summary.
// It returns a JSON object mapping mood label → entry count over the
// filtered entry set. Moods with no matching entries are omitted, so an
// empty store yields {}. The same ?moods=, ?startDate= and ?endDate=
// parameters as GET /entries are honored.
func (s *Server) GetMoodSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.entries.Summary(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
