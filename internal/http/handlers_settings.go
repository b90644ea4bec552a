package http

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/core"
)

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		set, err := s.store.Settings(r.Context())
		if err != nil {
			respondCoreError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, set)

	case http.MethodPut:
		var set core.Settings
		if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
			respondError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		// Persist before any recomputation so dashboards never show a
		// stale cap or rate table.
		if err := s.store.SaveSettings(r.Context(), set); err != nil {
			respondCoreError(w, r, err)
			return
		}
		s.invalidateViews()
		saved, err := s.store.Settings(r.Context())
		if err != nil {
			respondCoreError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, saved)

	default:
		w.Header().Set("Allow", "GET, PUT")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
