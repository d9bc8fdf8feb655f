package main

import (
	_ "dashboard/api/swagger" // swagger docs
	"dashboard/internal/config"
	"dashboard/internal/database"
	"dashboard/internal/handler"
	"dashboard/internal/middleware"
	"dashboard/internal/repository"
	"dashboard/internal/service"
	"dashboard/internal/websocket"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Policy Trends API
// @version         1.0
// @description     Monthly policy sales, reinstatements and lapses aggregated onto a single period axis.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	trendRepo := repository.NewTrendRepository(db, repository.LapseFilter{
		Statuses:                  cfg.Report.LapseStatuses,
		ExcludedProductCategories: cfg.Report.ExcludedProductCategories,
	})
	trendService := service.NewTrendService(trendRepo, wsHub, cfg.Report)
	trendHandler := handler.NewTrendHandler(trendService)

	if cfg.Report.TolerateSourceFailure {
		log.Println("Trend reports zero-fill unavailable sources")
	}

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// API Routing
	trendHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
