// Package main is the entry point for the OrderDash API server.
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
	"github.com/redis/go-redis/v9"

	"github.com/orderdash/backend/config"
	"github.com/orderdash/backend/internal/infra/db"
	"github.com/orderdash/backend/internal/infra/dependency"
	"github.com/orderdash/backend/internal/integration/persistence"
	"github.com/orderdash/backend/internal/integration/persistence/model"
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

	slog.Info("Starting OrderDash API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Database connection. Without one the server still runs, on in-memory
	// repositories seeded with demo data.
	var database *db.Database
	conn, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running with in-memory repositories",
			"error", err,
		)
	} else {
		if err := conn.AutoMigrate(
			&model.OrderModel{},
			&model.OrderItemModel{},
			&model.ExpenseModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		database = conn
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Redis backs the login rate limiter. Optional: without it the limiter
	// is disabled.
	var redisClient *redis.Client
	if opts, err := redis.ParseURL(cfg.Redis.URL); err == nil {
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("Redis connection failed, login rate limiting disabled", "error", err)
		} else {
			redisClient = client
		}
		cancel()
	} else {
		slog.Warn("Invalid Redis URL, login rate limiting disabled", "error", err)
	}

	var injector *dependency.Injector
	if database != nil {
		injector = dependency.NewInjector(cfg, database.DB(), redisClient)
	} else {
		injector = dependency.NewInjector(cfg, nil, redisClient)

		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := persistence.SeedDemoData(seedCtx, injector.OrderRepo, injector.ExpenseRepo); err != nil {
			slog.Error("Failed to seed demo data", "error", err)
		} else {
			slog.Info("In-memory repositories seeded with demo data")
		}
		cancel()
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

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
