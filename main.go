// File: studyspace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"studyspace/api"
	"studyspace/config"
	"studyspace/cron"
	"studyspace/handlers"
	"studyspace/middleware"
	"studyspace/routes"
	"studyspace/services/booking"
	"studyspace/services/spaces"
	"studyspace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Remote API client and session store.
	apiClient := api.NewClient(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSeconds)*time.Second,
		logger,
	)
	sessionStore := utils.NewSessionStore(utils.GetSessionClient())

	// services.
	spaceService := &spaces.DefaultSpaceService{
		API:    apiClient,
		Cache:  utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.SpaceCacheTTLSeconds) * time.Second,
		Logger: logger,
	}
	slotService := &booking.DefaultSlotService{
		Fetcher: apiClient,
		Logger:  logger,
	}
	submitter := &booking.Submitter{
		Creator: apiClient,
		Logger:  logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(apiClient, sessionStore, logger),
		Spaces:   handlers.NewSpaceHandler(spaceService, logger),
		Bookings: handlers.NewBookingHandler(apiClient, spaceService, slotService, submitter, sessionStore, logger),
		Profile:  handlers.NewProfileHandler(apiClient, sessionStore, logger),
		Admin:    handlers.NewAdminHandler(apiClient, spaceService, logger),
		Sessions: sessionStore,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background spaces-cache refresher.
	refresher := cron.StartSpaceCacheRefresher(spaceService, time.Duration(config.AppConfig.SpaceCacheTTLSeconds)*time.Second, logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	refresher.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
