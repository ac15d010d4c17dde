// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the local library catalog server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env).
//  3. Open the store: PostgreSQL (pgxpool + migrations) or memory.
//  4. Parse the page templates.
//  5. Wire services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/locallibrary/data"
	"github.com/taibuivan/locallibrary/internal/api"
	"github.com/taibuivan/locallibrary/internal/catalog/author"
	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/catalog/genre"
	"github.com/taibuivan/locallibrary/internal/catalog/memstore"
	"github.com/taibuivan/locallibrary/internal/platform/config"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/migration"
	pgstore "github.com/taibuivan/locallibrary/internal/platform/postgres"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

// stores is the set of repositories selected by STORE_DRIVER.
type stores struct {
	authors author.Repository
	genres  genre.Repository
	books   book.Repository

	// ping is nil when the driver has nothing to check.
	ping  func(context.Context) error
	close func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Store ──────────────────────────────────────────────────────────
	store, err := openStores(startupCtx, cfg, log)
	must(log, err, "open store")
	defer store.close()

	// ── 4. Views ──────────────────────────────────────────────────────────
	views, err := view.New()
	must(log, err, "parse templates")
	responder := respond.New(views)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckDatabase: store.ping}, log)

	authorService := author.NewService(store.authors, store.books, log)
	genreService := genre.NewService(store.genres, store.books, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Author:    author.NewHandler(authorService, responder),
		Genre:     genre.NewHandler(genreService, responder),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// openStores connects the configured store driver.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case constants.StoreDriverMemory:
		log.Warn("memory_store_selected", slog.String("note", "records are lost on restart"))

		memory := memstore.New()
		return &stores{
			authors: memory.Authors(),
			genres:  memory.Genres(),
			books:   memory.Books(),
			close:   func() {},
		}, nil

	case constants.StoreDriverPostgres:
		if cfg.RunMigrations {
			source := migration.Source{Path: cfg.MigrationPath, Embedded: data.Migrations, EmbeddedDir: data.MigrationsDir}
			if err := migration.RunUp(cfg.DatabaseURL, source, log); err != nil {
				return nil, err
			}
		}

		options := pgstore.DefaultOptions
		options.MaxConns, options.MinConns = cfg.DatabaseMaxConns, cfg.DatabaseMinConns

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, options, log)
		if err != nil {
			return nil, err
		}

		return &stores{
			authors: author.NewPostgresRepository(pool),
			genres:  genre.NewPostgresRepository(pool),
			books:   book.NewPostgresRepository(pool),
			ping:    func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
			close: func() {
				log.Info("closing_postgres_pool")
				pool.Close()
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
