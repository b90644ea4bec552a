package cache

import (
	"log/slog"
	"sync"
	"time"
)

// Cleaner is any cache that can drop its expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Manager owns the periodic expiry sweep for a set of caches.
type Manager struct {
	caches      []Cleaner
	stopCleanup chan struct{}
	once        sync.Once
}

func NewManager() *Manager {
	return &Manager{stopCleanup: make(chan struct{})}
}

// Register adds a cache to the cleanup sweep.
func (m *Manager) Register(c Cleaner) {
	m.caches = append(m.caches, c)
}

// StartCleanup begins periodic cleanup of all registered caches.
func (m *Manager) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				total := 0
				for _, c := range m.caches {
					total += c.CleanExpired()
				}
				if total > 0 {
					slog.Debug("Cache cleanup completed", "component", "cache", "entries_removed", total)
				}
			case <-m.stopCleanup:
				return
			}
		}
	}()
}

// Stop ends the cleanup sweep. Safe to call more than once.
func (m *Manager) Stop() {
	m.once.Do(func() { close(m.stopCleanup) })
}
