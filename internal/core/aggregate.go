package core

import (
	"math"
	"strings"
	"time"
)

const (
	CapOver CapState = "over"
	CapOK   CapState = "ok"
)

// TrendWindowDays is the default statistics window.
const TrendWindowDays = 7

type (
	CapState string

	// Totals are the dashboard aggregates in the base currency.
	Totals struct {
		Income       float64 `json:"income"`
		Expense      float64 `json:"expense"`
		Balance      float64 `json:"balance"`
		SavingsRatio float64 `json:"savingsRatio"`
	}

	// CapStatus compares total expenses against the spending cap, both
	// expressed in the display unit.
	CapStatus struct {
		State CapState `json:"state"`
		Delta float64  `json:"delta"`
	}
)

// ComputeTotals sums the full, unfiltered collection. SavingsRatio is
// balance over income as a percentage, zero when there is no income.
func ComputeTotals(collection []Transaction) Totals {
	var t Totals
	for _, tx := range collection {
		switch tx.Type {
		case TypeIncome:
			t.Income += tx.Amount
		case TypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	if t.Income > 0 {
		t.SavingsRatio = t.Balance / t.Income * 100
	}
	return t
}

// ComputeCapStatus converts total expenses and the cap into the display
// unit and reports whether the cap is exceeded, with the absolute distance
// either way. Unknown units degrade to rate 1.
func ComputeCapStatus(collection []Transaction, cap float64, rates map[string]float64, baseUnit, displayUnit string) CapStatus {
	var expenses float64
	for _, tx := range collection {
		if tx.Type == TypeExpense {
			expenses += tx.Amount
		}
	}
	converted := ConvertFallback(expenses, rates, baseUnit, displayUnit)
	convertedCap := ConvertFallback(cap, rates, baseUnit, displayUnit)

	status := CapStatus{State: CapOK, Delta: math.Abs(converted - convertedCap)}
	if converted > convertedCap {
		status.State = CapOver
	}
	return status
}

// Trend buckets expense transactions by day over the windowDays ending at
// reference (inclusive), most recent day last. Records outside the window
// are excluded. Unparseable dates are skipped.
func Trend(collection []Transaction, reference time.Time, windowDays int) []int {
	counts := make([]int, windowDays)
	ref := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	for _, tx := range collection {
		if tx.Type != TypeExpense {
			continue
		}
		day, err := time.Parse(DateLayout, tx.Date)
		if err != nil {
			continue
		}
		diff := int(ref.Sub(day).Hours() / 24)
		if diff < 0 || diff >= windowDays {
			continue
		}
		counts[windowDays-1-diff]++
	}
	return counts
}

// TopCategory returns the most frequent effective category among expense
// transactions, lowercased, or "N/A" when there are none. Ties go to the
// category encountered first in collection order.
func TopCategory(collection []Transaction) string {
	counts := make(map[string]int)
	first := make(map[string]int)
	for i, tx := range collection {
		if tx.Type != TypeExpense {
			continue
		}
		c := strings.ToLower(tx.EffectiveCategory())
		if c == "" {
			continue
		}
		if _, seen := counts[c]; !seen {
			first[c] = i
		}
		counts[c]++
	}

	top, topCount := "N/A", 0
	for c, n := range counts {
		if n > topCount || (n == topCount && first[c] < first[top]) {
			top, topCount = c, n
		}
	}
	return top
}
