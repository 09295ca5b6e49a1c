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

	"github.com/stayscape/stayscape/internal/api"
	"github.com/stayscape/stayscape/internal/booking"
	"github.com/stayscape/stayscape/internal/config"
	"github.com/stayscape/stayscape/internal/database"
	"github.com/stayscape/stayscape/internal/gallery"
	"github.com/stayscape/stayscape/internal/payment"
	"github.com/stayscape/stayscape/internal/place"
	"github.com/stayscape/stayscape/internal/reservation"
	"github.com/stayscape/stayscape/internal/review"
	"github.com/stayscape/stayscape/internal/stats"
	"github.com/stayscape/stayscape/internal/token"
	"github.com/stayscape/stayscape/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	tokens, err := token.NewService([]byte(cfg.AccessTokenSecret), cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to initialize token service", "error", err)
		os.Exit(1)
	}

	userRepo := user.NewRepository(db.Pool())

	var gateway payment.Gateway
	if cfg.EnablePayments {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)
	}

	router := api.NewRouter(api.RouterDeps{
		Tokens:             tokens,
		Users:              user.NewService(userRepo),
		UserRepo:           userRepo,
		Places:             place.NewRepository(db.Pool()),
		Reviews:            review.NewRepository(db.Pool()),
		Gallery:            gallery.NewRepository(db.Pool()),
		Bookings:           booking.NewRepository(db.Pool()),
		Reservations:       reservation.NewRepository(db.Pool()),
		Payments:           payment.NewRepository(db.Pool()),
		PaymentGateway:     gateway,
		Stats:              stats.NewRepository(db.Pool()),
		DBPinger:           db,
		Version:            cfg.Version,
		GatePlaceWrites:    cfg.GatePlaceWrites,
		EnableReservations: cfg.EnableReservations,
		EnablePayments:     cfg.EnablePayments,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting stayscape server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
