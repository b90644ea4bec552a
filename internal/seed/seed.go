// Package seed bootstraps the transaction store from a JSON seed file the
// first time the app runs against an empty collection.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// record is the permissive seed shape: every field may be missing and
// amounts may arrive as numbers or strings.
type record struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	Amount         any    `json:"amount"`
	Date           string `json:"date"`
	Category       string `json:"category"`
	CustomCategory string `json:"customCategory"`
	Type           string `json:"type"`
}

// Bootstrap seeds the store from path when the collection is empty.
// It must complete before the first query or aggregate runs; both sides
// tolerate an empty collection, so a missing or unreadable seed file only
// logs and leaves the zero state in place.
func Bootstrap(ctx context.Context, st *store.Store, path string) (int, error) {
	existing, err := st.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("check collection: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	return Reseed(ctx, st, path)
}

// Reseed loads the seed file unconditionally and replaces the collection
// with its defaulted records. Used by Bootstrap and by the reset flow.
func Reseed(ctx context.Context, st *store.Store, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "Seed file unavailable, starting empty",
			"component", "seed",
			"path", path,
			"error", err)
		return 0, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "Seed file unparseable, starting empty",
			"component", "seed",
			"path", path,
			"error", err)
		return 0, nil
	}

	now := time.Now().UTC()
	today := now.Format(core.DateLayout)
	base := now.UnixMilli()

	txs := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		tx := core.Transaction{
			ID:             r.ID,
			Description:    r.Description,
			Amount:         coerceAmount(r.Amount),
			Date:           r.Date,
			Category:       r.Category,
			CustomCategory: r.CustomCategory,
			Type:           core.TxType(r.Type),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if tx.ID == 0 {
			tx.ID = base + int64(i)
		}
		if tx.Date == "" {
			tx.Date = today
		}
		if tx.Category == "" {
			tx.Category = core.CategoryOther
		}
		if !tx.Type.IsValid() {
			tx.Type = core.TypeExpense
		}
		txs = append(txs, tx)
	}

	if err := st.Replace(ctx, txs); err != nil {
		return 0, fmt.Errorf("seed collection: %w", err)
	}
	slog.InfoContext(ctx, "Collection seeded",
		"component", "seed",
		"path", path,
		"records", len(txs))
	return len(txs), nil
}

func coerceAmount(v any) float64 {
	switch a := v.(type) {
	case float64:
		return a
	case string:
		if f, err := strconv.ParseFloat(a, 64); err == nil {
			return f
		}
	}
	return 0
}
