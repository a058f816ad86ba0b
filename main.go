package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/awheeler/frontier/config"
	_ "github.com/awheeler/frontier/docs"
	"github.com/awheeler/frontier/internal/cache"
	"github.com/awheeler/frontier/internal/catalog"
	"github.com/awheeler/frontier/internal/database"
	"github.com/awheeler/frontier/internal/handlers"
	"github.com/awheeler/frontier/internal/middleware"
	"github.com/awheeler/frontier/internal/repository"
	"github.com/awheeler/frontier/internal/services"
)

// @title Frontier Optimization API
// @version 1.0
// @description Mean-variance portfolio optimization service
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Create context for initialization
	ctx := context.Background()

	// Pick the catalog source: Postgres, CSV directory, or built-in defaults
	var source catalog.Source
	switch {
	case cfg.PGURL != "":
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		source = repository.NewAssetRepository(db.Pool)
		log.Info("Catalog source: postgres")
	case cfg.DataDir != "":
		source = catalog.NewFileSource(cfg.DataDir)
		log.Infof("Catalog source: csv files in %s", cfg.DataDir)
	default:
		source = catalog.NewStaticSource()
		log.Info("Catalog source: built-in defaults")
	}

	// Initialize caches
	memCache := cache.NewMemoryCache(5 * time.Minute)
	cat := catalog.New(source, memCache)

	// Initialize services
	optimizationSvc := services.NewOptimizationService(cat)

	// Initialize handlers
	optimizationHandler := handlers.NewOptimizationHandler(optimizationSvc)
	dataHandler := handlers.NewDataHandler(optimizationSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Optimization routes
	router.POST("/frontier", optimizationHandler.ComputeFrontier)
	router.POST("/frontier/resample", optimizationHandler.Resample)
	router.POST("/frontier/optimal", optimizationHandler.OptimalPortfolio)
	router.POST("/metrics", optimizationHandler.ComputeMetrics)
	router.POST("/benchmark", optimizationHandler.BlendedBenchmark)
	router.POST("/inefficiencies", optimizationHandler.Inefficiencies)

	// Data routes
	router.GET("/assets", dataHandler.ListAssets)
	router.GET("/cma", dataHandler.GetCMAData)
	router.GET("/correlations", dataHandler.GetCorrelations)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
