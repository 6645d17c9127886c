// Package main is the entry point for the beacon site server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oszuidwest/zwfm-beacon/internal/api"
	"github.com/oszuidwest/zwfm-beacon/internal/clock"
	"github.com/oszuidwest/zwfm-beacon/internal/config"
	"github.com/oszuidwest/zwfm-beacon/internal/scheduler"
	"github.com/oszuidwest/zwfm-beacon/internal/store"
	"github.com/oszuidwest/zwfm-beacon/internal/transmission"
	"github.com/oszuidwest/zwfm-beacon/pkg/logger"
	"github.com/oszuidwest/zwfm-beacon/pkg/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel, !cfg.Environment.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Beacon %s", version.String())
	logger.Info("Store config: Path=%s, RefreshTick=%s", cfg.Store.Path, cfg.Store.RefreshTick)

	// Load the transmission log, repairing the store if needed
	manager := transmission.NewManager(store.NewFileStore(cfg.Store.Path), clock.RealClock{})

	// One refresh pass runs inside Start, before traffic is served
	refreshService := scheduler.NewTransmissionRefreshService(manager, cfg.Store.RefreshTick)
	refreshService.Start()
	defer refreshService.Stop()

	router, err := api.SetupRouter(manager, cfg)
	if err != nil {
		logger.Fatal("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Listening on http://%s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	refreshService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
