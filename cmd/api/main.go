package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sanayi_portal_backend/internal/events"
	apphttp "sanayi_portal_backend/internal/http"
	"sanayi_portal_backend/internal/http/router"
	"sanayi_portal_backend/internal/inventory"
	"sanayi_portal_backend/internal/locations"
	"sanayi_portal_backend/internal/payments"
	"sanayi_portal_backend/internal/units"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"
	"sanayi_portal_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Units module first: it subscribes to dataset events published by the
	// inventory load below.
	unitsModule := units.NewModule(cfg, cfg, log)
	unitsModule.RegisterHandlers(eventBus)

	inventoryModule := inventory.NewModule(cfg, eventBus, val, log)
	if err := inventoryModule.LoadData(ctx); err != nil {
		// Source failures already degrade to empty datasets; anything else
		// still should not take the site down.
		log.Error("inventory load failed", "error", err)
	}

	paymentsModule := payments.NewModule(cfg, val, log)
	locationsModule := locations.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			inventoryModule,
			unitsModule,
			paymentsModule,
			locationsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
