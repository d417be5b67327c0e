// Package main is the entry point for the booking engine service.
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

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	bookinghttp "github.com/skytrip/booking-engine/internal/adapter/http"
	"github.com/skytrip/booking-engine/internal/adapter/http/middleware"
	"github.com/skytrip/booking-engine/internal/config"
	"github.com/skytrip/booking-engine/internal/currency"
	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/infrastructure/logger"
	"github.com/skytrip/booking-engine/internal/session"
	"github.com/skytrip/booking-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("session_store", cfg.Session.Store).
		Msg("Configuration loaded")

	store := newStore(cfg)
	defer store.Close()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	setupRoutes(e, cfg, store)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newStore builds the session store selected by config.
func newStore(cfg *config.Config) session.Store {
	if cfg.Session.Store == "redis" {
		store, err := session.NewRedis(session.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Session.TTL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis session store")
		return store
	}

	log.Info().Dur("ttl", cfg.Session.TTL).Msg("Using in-memory session store")
	return session.NewMemory(cfg.Session.TTL, nil)
}

// setupRoutes wires the application layers and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, store session.Store) {
	addOns := domain.DefaultAddOns()
	insurance := domain.DefaultInsurance()
	rates := currency.DefaultTable()

	appLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "booking-engine",
	})

	gateway := usecase.NewLogGateway(appLogger)

	bookingUseCase := usecase.NewBookingUseCase(store, gateway, &usecase.Config{
		AddOns:    addOns,
		Insurance: insurance,
		Rates:     rates,
		Logger:    appLogger,
	})

	handler := bookinghttp.NewBookingHandler(bookingUseCase, addOns, insurance, rates)
	bookinghttp.RegisterRoutes(e, handler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
