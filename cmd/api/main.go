package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sorryduck/budget-manager-backend/internal/config"
	"github.com/sorryduck/budget-manager-backend/internal/database"
	"github.com/sorryduck/budget-manager-backend/internal/handlers"
	"github.com/sorryduck/budget-manager-backend/internal/logger"
	"github.com/sorryduck/budget-manager-backend/internal/middleware"
	"github.com/sorryduck/budget-manager-backend/internal/services"
	"github.com/sorryduck/budget-manager-backend/internal/validator"

	_ "github.com/sorryduck/budget-manager-backend/internal/docs" // Import swagger docs
)

// @title           Budget Manager API
// @version         1.0
// @description     Personal budget tracking backend: expense entries, a running budget balance, and chart-ready spending statistics.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	statsService := services.NewStatsService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	tableHandler := handlers.NewTableHandler(expenseService, userService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Token issuance (kept at the root for client compatibility)
	router.POST("/api-token-auth/", authHandler.TokenAuth)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Expense table
	protected.GET("/table-data/", tableHandler.GetTableData)
	protected.POST("/table-data/", tableHandler.CreateExpense)
	protected.PUT("/table-data/", tableHandler.UpdateExpense)
	protected.PATCH("/table-data/", tableHandler.PatchBudget)
	protected.DELETE("/table-data/", tableHandler.DeleteExpense)

	// User data
	protected.GET("/user-data/", userHandler.GetUserData)

	// Statistics
	protected.GET("/stats-data/", statsHandler.GetStatsData)

	log.Infof("Starting budget manager backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
