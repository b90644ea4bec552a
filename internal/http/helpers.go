package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "component", "http", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondCoreError maps core/store errors to HTTP statuses: validation
// failures are 422, missing ids 404, everything else is internal.
func respondCoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidationError(err):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"component", "http",
			"path", r.URL.Path,
			"error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		core.ErrMissingFields,
		core.ErrMissingCustomCategory,
		core.ErrInvalidDescription,
		core.ErrInvalidAmount,
		core.ErrInvalidDate,
		core.ErrInvalidCategory,
		core.ErrInvalidType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// parseFilter reads the list-view parameters from the query string.
// Absent category/type default to the "all" sentinel, absent order to
// newest-first, matching the UI's initial state.
func parseFilter(r *http.Request) core.Filter {
	q := r.URL.Query()
	f := core.Filter{
		Search:    strings.TrimSpace(q.Get("search")),
		Category:  strings.TrimSpace(q.Get("category")),
		Type:      strings.TrimSpace(q.Get("type")),
		DateOrder: strings.TrimSpace(q.Get("order")),
	}
	if f.Category == "" {
		f.Category = core.FilterAll
	}
	if f.Type == "" {
		f.Type = core.FilterAll
	}
	if f.DateOrder == "" {
		f.DateOrder = core.OrderNewest
	}
	return f
}

// filterKey is the cache key for one filtered rendering.
func filterKey(prefix string, f core.Filter) string {
	return prefix + "|" + strings.ToLower(f.Search) + "|" + strings.ToLower(f.Category) + "|" + f.Type + "|" + f.DateOrder
}

// pathID extracts the numeric id from /api/transactions/{id}.
func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	return strconv.ParseInt(raw, 10, 64)
}

func encodeView(payload any) ([]byte, error) {
	return json.Marshal(payload)
}

func decodeDraft(r *http.Request) (core.Draft, error) {
	var d core.Draft
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return core.Draft{}, err
	}
	return d, nil
}
