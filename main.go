// backend/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/aTrapDeer/portfolio-backend/internal/api"
	"github.com/aTrapDeer/portfolio-backend/internal/config"
	"github.com/aTrapDeer/portfolio-backend/internal/revalidate"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	store, err := storage.Open(storage.Options{Driver: cfg.DatabaseType, DSN: cfg.DatabaseURL})
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.SeedDefaultContent {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		seedContent(ctx, store, revalidate.New(cfg.RevalidationURL, cfg.RevalidationSecret))
		cancel()
	}

	handler := api.NewHandler(store, api.NewCache(cfg.CacheTTL, cfg.CacheCleanupInterval))

	// CORS; no origins configured means any origin
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.FrontendURLs,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	server := http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           c.Handler(api.NewRouter(handler)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Golang backend running", "port", cfg.Port, "database", cfg.DatabaseType)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// seedContent never stops startup: the site runs with whatever content the
// store holds.
func seedContent(ctx context.Context, store *storage.Store, notifier *revalidate.Notifier) {
	state, err := store.Seed(ctx)
	if err != nil {
		slog.Error("Seeding default content failed", "state", state.String(), "error", err)
		return
	}
	slog.Info("Content seeding finished", "state", state.String())

	if state != storage.Seeded {
		return
	}
	if err := notifier.Trigger(ctx, "seeded"); err != nil {
		slog.Warn("Error triggering revalidation", "error", err)
	}
}
