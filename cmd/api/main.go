package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadumair512/movieweb/internal/config"
	"github.com/muhammadumair512/movieweb/internal/handler"
	"github.com/muhammadumair512/movieweb/internal/middleware"
	"github.com/muhammadumair512/movieweb/internal/repository"
	"github.com/muhammadumair512/movieweb/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo), cfg.CookieTTLDays)
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	movieHandler := handler.NewMovieHandler(service.NewMovieService(movieRepo))

	r := handler.Router(authHandler, userHandler, movieHandler, middleware.RateLimit(5, 10))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.Logger(r),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
