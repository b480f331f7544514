package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/riley-tran/rileys-diner-api/config"
	"github.com/riley-tran/rileys-diner-api/controllers"
	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Riley's Diner dashboard API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the order set from the configured source. The static source
	// stands in for the restaurant's POS feed.
	if err := services.SeedOrders(db, services.NewStaticOrderSource()); err != nil {
		log.Fatalf("Failed to seed orders: %v", err)
	}
	services.SeedNotifications(services.GetNotificationStore(), time.Now())

	// Wire up the export pipeline
	sink, err := buildExportSink(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize export sink: %v", err)
	}
	services.InitExportService(sink)

	// Initialize Gin router
	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter creates and configures the router with all dashboard routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The dashboard frontend runs on its own origin during development
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Order views
		v1.GET("/orders/active", controllers.ListActiveOrders)
		v1.GET("/orders/history", controllers.ListOrderHistory)
		v1.GET("/orders/history/export", controllers.ExportOrderHistory)

		// Detail view selection (order matters: register the static
		// selection routes before the :id parameter routes)
		v1.GET("/orders/selection", controllers.GetOrderDetail)
		v1.DELETE("/orders/selection", controllers.DismissOrderDetail)
		v1.GET("/orders/:id", controllers.GetOrder)
		v1.POST("/orders/:id/select", controllers.OpenOrderDetail)
		v1.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)

		// Notifications panel
		v1.GET("/notifications", controllers.ListNotifications)
		v1.PUT("/notifications/read", controllers.MarkAllNotificationsRead)
		v1.DELETE("/notifications/:id", controllers.DismissNotification)

		// Dashboard stat cards
		v1.GET("/dashboard/stats", controllers.GetDashboardStats)
	}

	return router
}

// buildExportSink selects the export delivery mechanism from configuration
func buildExportSink(cfg *config.Config) (services.ExportSink, error) {
	if cfg.ExportSink == "s3" {
		return services.NewS3ExportSink(cfg)
	}
	return services.NewLocalExportSink(cfg.ExportDir), nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Riley's Diner dashboard API is running",
	})
}
