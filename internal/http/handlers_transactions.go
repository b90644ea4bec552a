package http

import (
	"net/http"

	"fintrack/internal/core"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)
	key := filterKey("list", f)
	if cached, ok := s.views.Get(key); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	txs, err := s.store.List(r.Context())
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	view := core.Query(txs, f)

	body, err := encodeView(map[string]any{
		"transactions": view,
		"count":        len(view),
	})
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	s.views.Set(key, body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDraft(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	tx, err := s.store.Create(r.Context(), d)
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	s.invalidateViews()
	respondJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		d, err := decodeDraft(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		tx, err := s.store.Update(r.Context(), id, d)
		if err != nil {
			respondCoreError(w, r, err)
			return
		}
		s.invalidateViews()
		respondJSON(w, http.StatusOK, tx)

	case http.MethodDelete:
		// Deleting an absent id is a no-op, mirroring the store.
		if err := s.store.Delete(r.Context(), id); err != nil {
			respondCoreError(w, r, err)
			return
		}
		s.invalidateViews()
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
