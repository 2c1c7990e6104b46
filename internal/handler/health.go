package handler

import "net/http"

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"OK"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
