package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adrianlim83/person-finder/internal/ai"
	"github.com/adrianlim83/person-finder/internal/handlers"
	"github.com/adrianlim83/person-finder/internal/middleware"
	"github.com/adrianlim83/person-finder/internal/repositories"
	"github.com/adrianlim83/person-finder/internal/services"
	"github.com/adrianlim83/person-finder/pkg/config"
	"github.com/adrianlim83/person-finder/pkg/database"
	"github.com/adrianlim83/person-finder/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init()

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	personRepo := repositories.NewPersonRepository(database.DB)
	counterRepo := repositories.NewCounterRepository(database.DB)
	sequenceService := services.NewSequenceService(counterRepo)
	sanitizerService := services.NewSanitizerService(config.AppConfig.Sanitizer.MaxLength)
	bioProvider := ai.NewBioProvider(config.AppConfig.AI)
	personService := services.NewPersonService(personRepo, sequenceService, sanitizerService, bioProvider)
	locationService := services.NewLocationService(personRepo, config.AppConfig.Location.NearbyDefaultLimit)

	// Initialize router
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// Setup routes
	setupRoutes(router, personService, locationService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, personService *services.PersonService, locationService *services.LocationService) {
	// Initialize handlers
	personHandler := handlers.NewPersonHandler(personService, locationService)
	healthHandler := handlers.NewHealthHandler()

	// Person routes
	persons := router.Group("/api/v1/persons")
	{
		persons.POST("", personHandler.SavePerson)
		persons.GET("/nearby", personHandler.FindNearby)
		persons.GET("/:id", personHandler.GetPerson)
		persons.PUT("/:id/location", personHandler.UpdateLocation)
		persons.DELETE("/:id/location", personHandler.RemoveLocation)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
