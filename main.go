package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krharsh17/alexa-flight-booking/config"
	"github.com/krharsh17/alexa-flight-booking/database"
	sessionRepo "github.com/krharsh17/alexa-flight-booking/database/repository/session"
	travelerRepo "github.com/krharsh17/alexa-flight-booking/database/repository/traveler"
	"github.com/krharsh17/alexa-flight-booking/handlers"
	"github.com/krharsh17/alexa-flight-booking/middleware"
	"github.com/krharsh17/alexa-flight-booking/routes"
	"github.com/krharsh17/alexa-flight-booking/services/flights"
	"github.com/krharsh17/alexa-flight-booking/services/skill"
	"github.com/krharsh17/alexa-flight-booking/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessions := sessionRepo.NewMongoSessionRepo()
	travelers := travelerRepo.NewMongoTravelerRepo()

	// flight-data provider.
	tokenCache := flights.NewRedisTokenCache(utils.GetCacheClient())
	provider := flights.NewAmadeusClient(
		config.AppConfig.AmadeusBaseURL,
		config.AppConfig.AmadeusAPIKey,
		config.AppConfig.AmadeusAPISecret,
		tokenCache,
		logger,
	)

	// The dispatcher is built once here and injected into the webhook
	// handler; handler order is the matching priority.
	dispatcher := skill.NewDispatcher(logger,
		skill.LaunchHandler{},
		&skill.SearchHandler{Flights: provider, Sessions: sessions, Logger: logger},
		&skill.BookingHandler{Flights: provider, Sessions: sessions, Travelers: travelers, Logger: logger},
		skill.HelpHandler{},
		skill.StopHandler{},
		&skill.SessionEndedHandler{Logger: logger},
	)

	skillHandler := handlers.NewSkillHandler(dispatcher)

	handlerBundle := &handlers.HandlerBundle{
		SkillRequestHandler: skillHandler.HandleRequest,
		HealthHandler:       handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
