package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spice-palace/internal/config"
	"spice-palace/internal/handler"
	"spice-palace/internal/middleware"
	"spice-palace/internal/notify"
	"spice-palace/internal/payment"
	"spice-palace/internal/repository"
	"spice-palace/internal/router"
	"spice-palace/internal/seed"
	"spice-palace/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("restaurant", cfg.Restaurant.Name).Msg("starting table ordering API server")

	// Seed the in-memory state for this session
	menuRepo := repository.NewMenuRepository(seed.Menu(), logger)
	tableRepo := repository.NewTableRepository(seed.Tables(), logger)

	// Initialize collaborators
	payments := payment.NewGenerator(payment.Config{
		UPIID:     cfg.Payment.UPIID,
		PayeeName: cfg.Payment.PayeeName,
		Currency:  cfg.Payment.Currency,
	})
	notifier := notify.NewLogNotifier(logger)

	// Initialize services
	authService := service.NewAuthService(seed.Users(), logger)
	catalogService := service.NewCatalogService(menuRepo, logger)
	cartService := service.NewCartService(menuRepo, logger)
	reviewService := service.NewReviewService(menuRepo, logger)
	orderService := service.NewOrderService(tableRepo, cartService, payments, notifier, logger)
	tableService := service.NewTableService(tableRepo, logger)

	// Initialize HTTP handlers and router
	handlers := router.Handlers{
		Auth:  handler.NewAuthHandler(authService, logger),
		Menu:  handler.NewMenuHandler(catalogService, reviewService, logger),
		Cart:  handler.NewCartHandler(cartService, logger),
		Order: handler.NewOrderHandler(orderService, logger),
		Table: handler.NewTableHandler(tableService, logger),
	}
	var resolver middleware.TokenResolver = authService
	routes := router.New(handlers, resolver, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      routes,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
