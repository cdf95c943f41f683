package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esyang202423/tripboard/pkg/config"
	"github.com/esyang202423/tripboard/pkg/log"
	"github.com/esyang202423/tripboard/pkg/queue"
	"github.com/esyang202423/tripboard/pkg/store"
	"github.com/esyang202423/tripboard/pkg/webserver"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	logger.Info("Starting TripBoard API Server")
	logger.WithField("version", "1.0.0").Info("Server initialization")

	// Seed the itinerary store; the trip lives in memory for the lifetime
	// of the process and is discarded on exit
	logger.Info("Seeding itinerary store...")
	st := store.New()

	// Initialize ingest manager
	logger.Info("Initializing ingest manager...")
	ingestManager := queue.NewManager(cfg, st, logger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start ingest manager
	logger.Info("Starting ingest manager...")
	if err := ingestManager.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to start ingest manager")
	}

	// Initialize web server
	logger.Info("Initializing web server...")
	server, err := webserver.New(cfg, st, ingestManager, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize web server")
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithField("address", cfg.Server.GetServerAddr()).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Cancel context to stop ingest workers
	cancel()

	// Create a context with timeout for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.GracefulStop)*time.Second)
	defer shutdownCancel()

	// Gracefully stop the web server
	if err := server.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Web server exited gracefully")
	}

	// Stop ingest manager
	ingestManager.Stop()

	logger.Info("Application exited gracefully")
}
