package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

const settingsKey = "fintrack:settings"

// Settings loads the persisted display settings. Absent or corrupt
// settings fall back to the defaults; they never fail the caller.
func (s *Store) Settings(ctx context.Context) (core.Settings, error) {
	raw, err := s.kv.Load(ctx, settingsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return core.DefaultSettings(), nil
	}
	if err != nil {
		return core.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	var set core.Settings
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		slog.WarnContext(ctx, "Persisted settings are corrupt, using defaults",
			"component", "store",
			"error", err)
		return core.DefaultSettings(), nil
	}
	return set.Normalize(), nil
}

// SaveSettings persists the settings immediately so aggregates computed
// afterwards never see a stale cap or rate table.
func (s *Store) SaveSettings(ctx context.Context, set core.Settings) error {
	data, err := json.Marshal(set.Normalize())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Save(ctx, settingsKey, string(data)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	slog.InfoContext(ctx, "Settings saved",
		"component", "store",
		"display_unit", set.DisplayUnit,
		"cap", set.Cap)
	return nil
}

// EnsureSettings writes the given defaults only when no settings document
// exists yet, so a configured default never clobbers user changes.
func (s *Store) EnsureSettings(ctx context.Context, def core.Settings) error {
	_, err := s.kv.Load(ctx, settingsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return s.SaveSettings(ctx, def)
	}
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}
