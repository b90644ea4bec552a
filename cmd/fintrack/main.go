package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/core"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/seed"
	"fintrack/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Optional installation defaults: display settings and seed location.
	defaults := core.DefaultSettings()
	seedFile := cfg.SeedFile
	if cfg.DefaultsFile != "" {
		d, err := config.LoadDefaults(cfg.DefaultsFile)
		if err != nil {
			logger.Error("Failed to load defaults file", "error", err, "path", cfg.DefaultsFile)
			os.Exit(1)
		}
		defaults = d.Settings
		if d.SeedFile != "" {
			seedFile = d.SeedFile
		}
	}

	res, err := backend.Open(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
		DataDir:      cfg.DataDir,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	st := store.New(res.KV)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seeding must finish before the first query or aggregate runs.
	if err := st.EnsureSettings(ctx, defaults); err != nil {
		logger.Error("Failed to apply default settings", "error", err)
		os.Exit(1)
	}
	if n, err := seed.Bootstrap(ctx, st, seedFile); err != nil {
		logger.Error("Seed bootstrap failed", "error", err)
		os.Exit(1)
	} else if n > 0 {
		logger.Info("Seeded empty collection", "records", n)
	}

	srv := apphttp.NewServer(":"+cfg.Port, st, seedFile)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting fintrack server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
