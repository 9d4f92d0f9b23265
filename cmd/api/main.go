package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"users-backend/internal/config"
	"users-backend/internal/database"
	"users-backend/internal/handlers"
	"users-backend/internal/logger"
	"users-backend/internal/repository"
	"users-backend/internal/services"
	"users-backend/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DatabaseURL(), cfg.Database.Name)
	if err != nil {
		log.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	log.Info("connected to mongo", "database", cfg.Database.Name)

	repo := repository.NewMongoUserRepository(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	service := services.NewUserService(repo, tokens, log)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.NewRouter(service, tokens, log),
	}

	go func() {
		log.Info("server starting", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("mongo disconnect failed", "error", err)
	}

	log.Info("server stopped")
}
