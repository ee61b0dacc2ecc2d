package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomadCrew/tripboard/config"
	"github.com/NomadCrew/tripboard/handlers"
	"github.com/NomadCrew/tripboard/internal/bootstrap"
	"github.com/NomadCrew/tripboard/logger"
	tripservice "github.com/NomadCrew/tripboard/models/trip/service"
	"github.com/NomadCrew/tripboard/router"
	"github.com/NomadCrew/tripboard/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Tripboard API
// @version 1.0
// @description Filtered trip list, trip statistics and saved view preferences.
// @BasePath /v1
func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize components: %v", err)
	}
	defer components.Close()

	// Services
	boardService := tripservice.NewTripBoardService(components.Loader)
	preferenceService := services.NewPreferenceService(components.Preferences)
	healthService := services.NewHealthService(components.Remote, components.Redis, cfg.Server.Version)

	var rateLimiter services.RateLimiterInterface
	if components.Redis != nil {
		rateLimiter = services.NewRateLimitService(components.Redis)
	}

	// Handlers
	deps := router.Dependencies{
		Config:            cfg,
		HealthHandler:     handlers.NewHealthHandler(healthService),
		TripBoardHandler:  handlers.NewTripBoardHandler(boardService, preferenceService),
		PreferenceHandler: handlers.NewPreferenceHandler(preferenceService),
		RateLimiter:       rateLimiter,
		Logger:            log,
	}
	r := router.SetupRouter(deps)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-errCh:
		log.Errorf("Server failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
