// Package http exposes the transaction core to rendering clients as a
// JSON API. Handlers only orchestrate: the store mutates, the core
// projects, and every response is recomputed (or served from the view
// cache) from the full persisted collection.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/store"
)

type Server struct {
	http.Server
	store    *store.Store
	seedFile string

	// Rendered-view cache, cleared on every mutation so derived views
	// always reflect the current collection.
	views        *cache.LRU[[]byte]
	cacheManager *cache.Manager

	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, st *store.Store, seedFile string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server:       http.Server{Addr: addr},
		store:        st,
		seedFile:     seedFile,
		views:        cache.NewLRU[[]byte](200, 5*time.Minute),
		cacheManager: cache.NewManager(),
		rateLimiter:  newRateLimiter(),
	}
	s.cacheManager.Register(s.views)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/api/transactions", s.withRateLimit(s.handleTransactions))
	mux.HandleFunc("/api/transactions/", s.withRateLimit(s.handleTransactionByID))
	mux.HandleFunc("/api/dashboard", s.withRateLimit(s.handleDashboard))
	mux.HandleFunc("/api/settings", s.withRateLimit(s.handleSettings))
	mux.HandleFunc("/api/export", s.withRateLimit(s.handleExport))
	mux.HandleFunc("/api/reset", s.withRateLimit(s.handleReset))
	mux.HandleFunc("/healthz", s.handleHealth)

	tracer := trace.NewMiddleware(clientIP)
	s.Handler = tracer.Middleware(security.Headers(security.DefaultHeadersConfig(), mux))

	return s
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.allow(clientIP(r)) {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

// invalidateViews drops every cached rendering after a mutation or a
// settings change.
func (s *Server) invalidateViews() {
	s.views.Clear()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
