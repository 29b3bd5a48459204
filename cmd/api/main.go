// Package main is the entry point for the Quinzena ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quinzena/backend/config"
	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/infra/db"
	"github.com/quinzena/backend/internal/infra/dependency"
	"github.com/quinzena/backend/internal/infra/server/router"
	"github.com/quinzena/backend/internal/integration/entrypoint/controller"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Quinzena ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)

	var r *router.Router
	if err != nil {
		slog.Warn("Database connection failed, serving health endpoint only",
			"error", err,
		)
		healthController := controller.NewHealthController(func() bool { return false })
		r = router.NewRouter(healthController, nil, nil, nil, nil)
	} else {
		if err := database.AutoMigrate(
			&model.MonthModel{},
			&model.PeriodModel{},
			&model.RevenueModel{},
			&model.ExpenseModel{},
			&model.InstallmentModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		injector := dependency.NewInjector(cfg, database.DB(), database.HealthCheck, adapter.SystemClock{})
		r = injector.Router
	}

	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
