package http

import (
	"net/http"
	"time"

	"fintrack/internal/core"
)

// dashboardResponse carries every aggregate the dashboard renders.
// Monetary values are converted to the display unit; the stored
// base-currency amounts are never altered.
type dashboardResponse struct {
	Currency     string         `json:"currency"`
	Income       float64        `json:"income"`
	Expense      float64        `json:"expense"`
	Balance      float64        `json:"balance"`
	SavingsRatio float64        `json:"savingsRatio"`
	Cap          core.CapStatus `json:"cap"`
	Trend        []int          `json:"trend"`
	TopCategory  string         `json:"topCategory"`
	TotalRecords int            `json:"totalRecords"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if cached, ok := s.views.Get("dashboard"); ok {
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
	set, err := s.store.Settings(r.Context())
	if err != nil {
		respondCoreError(w, r, err)
		return
	}

	// Aggregates always run over the full, unfiltered collection.
	totals := core.ComputeTotals(txs)
	resp := dashboardResponse{
		Currency:     set.DisplayUnit,
		Income:       core.ConvertFallback(totals.Income, set.Rates, set.BaseUnit, set.DisplayUnit),
		Expense:      core.ConvertFallback(totals.Expense, set.Rates, set.BaseUnit, set.DisplayUnit),
		Balance:      core.ConvertFallback(totals.Balance, set.Rates, set.BaseUnit, set.DisplayUnit),
		SavingsRatio: totals.SavingsRatio,
		Cap:          core.ComputeCapStatus(txs, set.Cap, set.Rates, set.BaseUnit, set.DisplayUnit),
		Trend:        core.Trend(txs, time.Now(), core.TrendWindowDays),
		TopCategory:  core.TopCategory(txs),
		TotalRecords: len(txs),
	}

	body, err := encodeView(resp)
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	s.views.Set("dashboard", body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
