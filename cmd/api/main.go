package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/taniteam/catatan/internal/config"
	"github.com/taniteam/catatan/internal/handlers"
	"github.com/taniteam/catatan/internal/logger"
	"github.com/taniteam/catatan/internal/middleware"
	"github.com/taniteam/catatan/internal/services"
	"github.com/taniteam/catatan/internal/store"
	"github.com/taniteam/catatan/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the persistent store and load the four collections
	st, err := store.Open(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Register custom request validators
	validator.Register()

	// Initialize services
	auditService := services.NewAuditService(st)
	staffService := services.NewStaffService(st)
	transactionService := services.NewTransactionService(st)
	accountService := services.NewAccountService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(staffService, auditService)
	staffHandler := handlers.NewStaffHandler(staffService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	auditHandler := handlers.NewAuditHandler(auditService)
	reportHandler := handlers.NewReportHandler(transactionService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Derived views
	protected.GET("/summary", transactionHandler.Summary)
	protected.GET("/logs", auditHandler.List)
	protected.GET("/reports/transactions.csv", reportHandler.ExportTransactionsCSV)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.GET("", accountHandler.List)
	accounts.POST("", accountHandler.Create)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)

	// Staff routes
	staff := protected.Group("/staff")
	staff.GET("", staffHandler.List)
	staff.POST("", staffHandler.Create)
	staff.PUT("/:id/role", staffHandler.UpdateRole)
	staff.DELETE("/:id", staffHandler.Delete)

	log.Infof("Starting Catatan backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
