// Package server assembles the HTTP router from the configured services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"budgetly/internal/config"
	_ "budgetly/internal/docs"
	"budgetly/internal/handlers"
	"budgetly/internal/metrics"
	"budgetly/internal/middleware"
	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// NewRouter wires services, handlers and middleware into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	validator.Register()

	// Initialize services
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	analyticsService := services.NewAnalyticsService(db, cfg.Location)
	auditService := services.NewAuditService(db)
	tokens := middleware.NewTokenIssuer(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService, cfg.Location)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	categoryHandler := handlers.NewCategoryHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/metrics", middleware.APIKeyMiddleware(cfg.MetricsAPIKey), gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/categories", categoryHandler.GetCategories)

	// Expense routes; static paths before /:id
	expenses := protected.Group("/expenses")
	expenses.GET("/export", expenseHandler.ExportExpenses)
	expenses.GET("/analytics/summary", analyticsHandler.GetSummary)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("/overview", analyticsHandler.GetBudgetOverview)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
