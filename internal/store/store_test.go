package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

func newTestStore() (*Store, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	return New(kv), kv
}

func draft() core.Draft {
	return core.Draft{
		Description: "weekly groceries",
		Amount:      "42.50",
		Date:        "2024-01-15",
		Category:    "food",
		Type:        "expense",
	}
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	tx, err := s.Create(ctx, draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if tx.Amount != 42.5 {
		t.Fatalf("expected numeric amount 42.5, got %v", tx.Amount)
	}
	if tx.CreatedAt.IsZero() || !tx.CreatedAt.Equal(tx.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt at creation, got %v / %v", tx.CreatedAt, tx.UpdatedAt)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != tx.ID {
		t.Fatalf("expected persisted record, got %+v", list)
	}
}

func TestCreateIDsAreUnique(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		tx, err := s.Create(ctx, draft())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	d := draft()
	d.Description = "coffee coffee"
	if _, err := s.Create(ctx, d); !errors.Is(err, core.ErrInvalidDescription) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Rejection happens before any mutation.
	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty collection after rejected create, got %d records", len(list))
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	tx, err := s.Create(ctx, draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	d := draft()
	d.Description = "monthly groceries"
	updated, err := s.Update(ctx, tx.ID, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != tx.ID {
		t.Fatalf("id changed on update: %d -> %d", tx.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(tx.CreatedAt) {
		t.Fatalf("createdAt changed on update: %v -> %v", tx.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(tx.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", tx.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Description != "monthly groceries" {
		t.Fatalf("description not merged: %q", updated.Description)
	}
}

func TestUpdateMissingID(t *testing.T) {
	s, _ := newTestStore()
	if _, err := s.Update(context.Background(), 999, draft()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsNoOpWhenAbsent(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	tx, err := s.Create(ctx, draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(ctx, 12345); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if err := s.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(list))
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	if _, err := s.Create(ctx, draft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty collection after clear, got %d", len(list))
	}
}

func TestCorruptCollectionRecoversEmpty(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()

	if err := kv.Save(ctx, transactionsKey, "{not json"); err != nil {
		t.Fatalf("save: %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty collection, got %d", len(list))
	}

	// The store stays usable after recovery.
	if _, err := s.Create(ctx, draft()); err != nil {
		t.Fatalf("create after recovery: %v", err)
	}
}

func TestReplaceSetsIDFloor(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	future := time.Now().Add(time.Hour).UnixMilli()
	seeded := []core.Transaction{{ID: future, Description: "seeded", Type: core.TypeExpense}}
	if err := s.Replace(ctx, seeded); err != nil {
		t.Fatalf("replace: %v", err)
	}

	tx, err := s.Create(ctx, draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID <= future {
		t.Fatalf("expected id above seeded floor %d, got %d", future, tx.ID)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	// Defaults when nothing persisted.
	set, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if set.BaseUnit != "$" || set.Rates["$"] != 1 {
		t.Fatalf("expected defaults, got %+v", set)
	}

	set.DisplayUnit = "€"
	set.Cap = 300
	if err := s.SaveSettings(ctx, set); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if got.DisplayUnit != "€" || got.Cap != 300 {
		t.Fatalf("expected persisted settings back, got %+v", got)
	}
	// Normalize pins the base unit's own rate.
	if got.Rates[got.BaseUnit] != 1 {
		t.Fatalf("base rate not pinned to 1: %+v", got.Rates)
	}
}

func TestEnsureSettingsDoesNotClobber(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	set := core.DefaultSettings()
	set.Cap = 500
	if err := s.SaveSettings(ctx, set); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	def := core.DefaultSettings()
	def.Cap = 100
	if err := s.EnsureSettings(ctx, def); err != nil {
		t.Fatalf("ensure settings: %v", err)
	}
	got, _ := s.Settings(ctx)
	if got.Cap != 500 {
		t.Fatalf("ensure overwrote user settings: %+v", got)
	}
}

func TestCorruptSettingsFallBackToDefaults(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()
	if err := kv.Save(ctx, settingsKey, "]["); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if got.BaseUnit != "$" {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
