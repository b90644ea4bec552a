// Package store owns the persisted transaction collection: id assignment,
// timestamping and whole-collection persistence through the storage KV.
// Only this package mutates; the query and aggregate projections in core
// read what List returns.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

const transactionsKey = "fintrack:transactions"

// ErrNotFound reports an update or lookup on an id that is not in the
// collection. Deletes of missing ids are a no-op instead.
var ErrNotFound = errors.New("transaction not found")

// Store serializes the collection as a JSON array under a single KV key.
// Every mutating call runs its load-modify-save sequence under the mutex,
// so two mutations can never interleave.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	lastID int64
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// List returns the full collection. A missing document is a valid empty
// state; a document that no longer parses is logged and treated as empty
// rather than crashing the caller.
func (s *Store) List(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Create validates the draft and admits it with a fresh id and both
// timestamps set to now. Nothing is persisted when validation fails.
func (s *Store) Create(ctx context.Context, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}
	amount, err := core.ParseAmount(d.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	now := time.Now().UTC()
	tx := core.Transaction{
		ID:             s.nextID(now),
		Description:    d.Description,
		Amount:         amount,
		Date:           d.Date,
		Category:       d.Category,
		CustomCategory: d.CustomCategory,
		Type:           core.TxType(d.Type),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	txs = append(txs, tx)
	if err := s.persist(ctx, txs); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction created",
		"component", "store",
		"operation", "create",
		"transaction_id", tx.ID,
		"tx_type", tx.Type,
		"category", tx.EffectiveCategory(),
		"amount", tx.Amount)
	return tx, nil
}

// Update merges the draft into the record with the given id, keeping the
// original id and createdAt and refreshing updatedAt. Returns ErrNotFound
// when no such record exists.
func (s *Store) Update(ctx context.Context, id int64, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}
	amount, err := core.ParseAmount(d.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	for i, tx := range txs {
		if tx.ID != id {
			continue
		}
		tx.Description = d.Description
		tx.Amount = amount
		tx.Date = d.Date
		tx.Category = d.Category
		tx.CustomCategory = d.CustomCategory
		tx.Type = core.TxType(d.Type)
		tx.UpdatedAt = time.Now().UTC()
		txs[i] = tx
		if err := s.persist(ctx, txs); err != nil {
			return core.Transaction{}, err
		}
		slog.InfoContext(ctx, "Transaction updated",
			"component", "store",
			"operation", "update",
			"transaction_id", id)
		return tx, nil
	}
	return core.Transaction{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) == len(txs) {
		return nil
	}
	if err := s.persist(ctx, kept); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction deleted",
		"component", "store",
		"operation", "delete",
		"transaction_id", id)
	return nil
}

// Clear empties the whole collection and persists the empty state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, []core.Transaction{}); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Collection cleared", "component", "store", "operation", "clear")
	return nil
}

// Replace swaps in an externally prepared collection, used by the seed
// bootstrap. Ids in the new collection become the floor for future ids.
func (s *Store) Replace(ctx context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}
	return s.persist(ctx, txs)
}

// nextID hands out epoch-millisecond ids, bumping by one when two creates
// land in the same tick so ids never collide within a session.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) load(ctx context.Context) ([]core.Transaction, error) {
	raw, err := s.kv.Load(ctx, transactionsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []core.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	var txs []core.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		slog.WarnContext(ctx, "Persisted collection is corrupt, starting empty",
			"component", "store",
			"error", err)
		return []core.Transaction{}, nil
	}
	for _, tx := range txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}
	return txs, nil
}

func (s *Store) persist(ctx context.Context, txs []core.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := s.kv.Save(ctx, transactionsKey, string(data)); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	return nil
}
