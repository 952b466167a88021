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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pocket/internal/config"
	"github.com/MrJamesThe3rd/pocket/internal/database"
	"github.com/MrJamesThe3rd/pocket/internal/export"
	pocketHttp "github.com/MrJamesThe3rd/pocket/internal/http"
	exportHandler "github.com/MrJamesThe3rd/pocket/internal/http/export"
	"github.com/MrJamesThe3rd/pocket/internal/http/health"
	txHandler "github.com/MrJamesThe3rd/pocket/internal/http/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/importer"
	"github.com/MrJamesThe3rd/pocket/internal/session"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	txStore "github.com/MrJamesThe3rd/pocket/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	sessions, err := session.New(cfg.SessionOptions())
	if err != nil {
		slog.Error("failed to configure sessions", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService, importService, sessions)
		exportH      = exportHandler.NewHandler(exportService, sessions)
		healthH      = health.NewHandler(db)
	)

	router := pocketHttp.New(transactionH, exportH, healthH, pocketHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "session_mode", cfg.Session.Mode)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
