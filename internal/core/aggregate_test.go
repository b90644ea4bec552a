package core

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestComputeTotals(t *testing.T) {
	col := []Transaction{
		{Amount: 50, Type: TypeExpense, Date: "2024-01-01", Category: "food"},
		{Amount: 200, Type: TypeIncome, Date: "2024-01-02", Category: "salary"},
	}
	got := ComputeTotals(col)
	want := Totals{Income: 200, Expense: 50, Balance: 150, SavingsRatio: 75}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeTotalsNoIncome(t *testing.T) {
	col := []Transaction{{Amount: 30, Type: TypeExpense}}
	got := ComputeTotals(col)
	if got.SavingsRatio != 0 {
		t.Fatalf("expected zero savings ratio without income, got %v", got.SavingsRatio)
	}
	if got.Balance != got.Income-got.Expense {
		t.Fatalf("balance invariant broken: %+v", got)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	if got := ComputeTotals(nil); got != (Totals{}) {
		t.Fatalf("expected zero totals for empty collection, got %+v", got)
	}
}

func TestComputeCapStatus(t *testing.T) {
	rates := map[string]float64{"$": 1, "€": 0.5}
	col := []Transaction{
		{Amount: 150, Type: TypeExpense},
		{Amount: 1000, Type: TypeIncome}, // income never counts against the cap
	}

	got := ComputeCapStatus(col, 100, rates, "$", "$")
	if got.State != CapOver || math.Abs(got.Delta-50) > 1e-9 {
		t.Fatalf("expected over by 50, got %+v", got)
	}

	got = ComputeCapStatus(col, 200, rates, "$", "$")
	if got.State != CapOK || math.Abs(got.Delta-50) > 1e-9 {
		t.Fatalf("expected ok with 50 remaining, got %+v", got)
	}

	// Conversion applies to both sides, so the verdict is unit-independent.
	got = ComputeCapStatus(col, 100, rates, "$", "€")
	if got.State != CapOver || math.Abs(got.Delta-25) > 1e-9 {
		t.Fatalf("expected over by 25 in display units, got %+v", got)
	}

	// Unknown display unit degrades to rate 1 rather than failing.
	got = ComputeCapStatus(col, 100, rates, "$", "£")
	if got.State != CapOver || math.Abs(got.Delta-50) > 1e-9 {
		t.Fatalf("expected rate-1 fallback, got %+v", got)
	}
}

func TestTrend(t *testing.T) {
	ref := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	col := []Transaction{
		{Type: TypeExpense, Date: "2024-01-10"}, // today
		{Type: TypeExpense, Date: "2024-01-10"},
		{Type: TypeExpense, Date: "2024-01-04"}, // oldest in window
		{Type: TypeExpense, Date: "2024-01-03"}, // outside window
		{Type: TypeExpense, Date: "2024-01-11"}, // future, excluded
		{Type: TypeIncome, Date: "2024-01-10"},  // income never counted
		{Type: TypeExpense, Date: "not-a-date"},
	}
	got := Trend(col, ref, TrendWindowDays)
	want := []int{1, 0, 0, 0, 0, 0, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTrendEmpty(t *testing.T) {
	got := Trend(nil, time.Now(), TrendWindowDays)
	if len(got) != TrendWindowDays {
		t.Fatalf("expected %d buckets, got %d", TrendWindowDays, len(got))
	}
	for i, n := range got {
		if n != 0 {
			t.Fatalf("bucket %d expected 0, got %d", i, n)
		}
	}
}

func TestTopCategory(t *testing.T) {
	col := []Transaction{
		{Type: TypeExpense, Category: "Food"},
		{Type: TypeExpense, Category: "food"},
		{Type: TypeExpense, Category: "transport"},
		{Type: TypeIncome, Category: "salary"},
		{Type: TypeIncome, Category: "salary"},
		{Type: TypeIncome, Category: "salary"},
	}
	// Case-insensitive counting, expenses only.
	if got := TopCategory(col); got != "food" {
		t.Fatalf("expected food, got %q", got)
	}
}

func TestTopCategoryTieAndEmpty(t *testing.T) {
	col := []Transaction{
		{Type: TypeExpense, Category: "transport"},
		{Type: TypeExpense, Category: "food"},
		{Type: TypeExpense, Category: "food"},
		{Type: TypeExpense, Category: "transport"},
	}
	// Tie broken by first encountered.
	if got := TopCategory(col); got != "transport" {
		t.Fatalf("expected transport, got %q", got)
	}
	if got := TopCategory(nil); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
	if got := TopCategory([]Transaction{{Type: TypeIncome, Category: "salary"}}); got != "N/A" {
		t.Fatalf("expected N/A without expenses, got %q", got)
	}

	// Custom categories count under their effective label.
	col = []Transaction{
		{Type: TypeExpense, Category: "other", CustomCategory: "Pets"},
		{Type: TypeExpense, Category: "other", CustomCategory: "pets"},
		{Type: TypeExpense, Category: "food"},
	}
	if got := TopCategory(col); got != "pets" {
		t.Fatalf("expected pets, got %q", got)
	}
}
