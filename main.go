package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karigarstop/config"
	"karigarstop/handlers"
	"karigarstop/middleware"
	"karigarstop/routes"
	"karigarstop/services/booking"
	"karigarstop/services/catalog"
	"karigarstop/services/notification"
	"karigarstop/services/user"
	"karigarstop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	catalogService := &catalog.DefaultCatalogService{}

	feed := notification.NewSeededFeed()

	userService := &user.DefaultUserService{
		Store: &user.RedisProfileStore{Client: utils.GetProfileCacheClient()},
	}

	bookingService := &booking.DefaultWorkflowService{
		Catalog:      catalogService,
		Store:        &booking.RedisDraftStore{Client: utils.GetCacheClient()},
		Sink:         feed,
		StrictVerify: config.AppConfig.OTPStrictVerify,
		ConfirmDelay: time.Duration(config.AppConfig.ConfirmDelayMS) * time.Millisecond,
		OnConfirm: func(sessionID string) {
			logger.Info("Booking finalized", zap.String("sessionId", sessionID))
		},
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(userService),
		Profile:      handlers.NewProfileHandler(userService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Notification: handlers.NewNotificationHandler(feed),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
