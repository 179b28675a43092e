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

	"go.uber.org/zap"

	"trade-journal/internal/config"
	"trade-journal/internal/database"
	"trade-journal/internal/logger"
	"trade-journal/internal/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.NewDatabase(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open trade store", zap.Error(err))
	}
	defer store.Close()
	log.Info("Trade store ready", zap.String("dsn", cfg.Database.DSN))

	m := metrics.NewMetrics()
	apiHandler := NewAPIHandler(log.Named("api"), store, m, cfg.Analytics.StartingEquity)
	router := newRouter(log, apiHandler, m, routerOptions{
		CORSOrigin:         cfg.Server.CORSOrigin,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Journal API listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Web server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
