package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/seed"
)

// handleExport streams the current filtered view as CSV, using the same
// filter parameters as the list endpoint.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	txs, err := s.store.List(r.Context())
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	view := core.Query(txs, parseFilter(r))

	slog.InfoContext(r.Context(), "Exporting transactions",
		"component", "export",
		"records", len(view))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.CSV(view)))
}

// handleReset clears the collection, restores default settings and
// re-seeds from the seed file, mirroring the UI's "reset data" flow.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	if err := s.store.Clear(ctx); err != nil {
		respondCoreError(w, r, err)
		return
	}
	if err := s.store.SaveSettings(ctx, core.DefaultSettings()); err != nil {
		respondCoreError(w, r, err)
		return
	}
	n, err := seed.Reseed(ctx, s.store, s.seedFile)
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	s.invalidateViews()

	slog.InfoContext(ctx, "Data reset",
		"component", "http",
		"operation", "reset",
		"records", n)
	respondJSON(w, http.StatusOK, map[string]any{"seeded": n})
}
