// Command server runs the task management API.
//
// Configuration is environment-driven; see internal/config for the full
// variable list. The process connects to the document store, wires the
// stores, services, and HTTP handlers together, and serves until SIGINT or
// SIGTERM, then shuts down gracefully.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskward/taskward-api/internal/api"
	"github.com/taskward/taskward-api/internal/api/middleware"
	"github.com/taskward/taskward-api/internal/config"
	"github.com/taskward/taskward-api/internal/platform/logger"
	"github.com/taskward/taskward-api/internal/platform/mongodb"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("starting server",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
		"log_level", cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from document store", "error", err)
		}
	}()
	log.Info("connected to document store", "database", cfg.Database.Name)

	userStore, err := store.NewMongoUserStore(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to initialize user store: %w", err)
	}
	taskStore, err := store.NewMongoTaskStore(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to initialize task store: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	userService := service.NewUserService(userStore, log)
	taskService := service.NewTaskService(taskStore, log)
	statsService := service.NewStatsService(taskStore, log)

	router := api.NewRouter(api.RouterDeps{
		AuthHandler:    api.NewAuthHandler(jwtService, cfg.Server, cfg.Auth),
		UserHandler:    api.NewUserHandler(userService),
		TaskHandler:    api.NewTaskHandler(taskService),
		StatsHandler:   api.NewStatsHandler(statsService),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, cfg.Auth.CookieName),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		HealthCheck: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
