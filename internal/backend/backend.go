// Package backend selects and opens the persistence backend from config.
package backend

import (
	"fmt"
	"log/slog"

	"fintrack/internal/storage"
)

const (
	SQLiteBackend Type = "sqlite"
	FileBackend   Type = "file"
	MemoryBackend Type = "memory"
)

type (
	// Type names a persistence backend.
	Type string

	// Config holds what each backend needs to open.
	Config struct {
		Type         Type
		SQLiteDBPath string
		DataDir      string
	}

	// Result is an opened backend plus its cleanup function (nil when the
	// backend holds no resources).
	Result struct {
		KV      storage.KV
		Cleanup func() error
	}
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Open creates the KV store for the configured backend type.
func Open(config Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "backend", config.Type, "db_path", config.SQLiteDBPath)
		return &Result{KV: kv, Cleanup: kv.Close}, nil

	case FileBackend:
		kv, err := storage.NewFileKV(config.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "backend", config.Type, "data_dir", config.DataDir)
		return &Result{KV: kv}, nil

	default:
		logger.Info("Initialized memory backend", "backend", config.Type)
		return &Result{KV: storage.NewMemoryKV()}, nil
	}
}
