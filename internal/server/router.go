// Package server assembles the HTTP API around the ledger services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "walletmate/internal/docs" // Import swagger docs
	"walletmate/internal/handlers"
	"walletmate/internal/middleware"
	"walletmate/internal/services"
	"walletmate/internal/validator"
)

// NewRouter builds the Gin engine serving the ledger under /api/v1. When
// apiKey is empty the versioned routes are open.
func NewRouter(ledger *services.Ledger, apiKey string) *gin.Engine {
	validator.Register()

	budgetHandler := handlers.NewBudgetHandler(ledger.Budgets, ledger.Recurrence)
	expenseHandler := handlers.NewExpenseHandler(ledger.Expenses)
	recurringExpenseHandler := handlers.NewRecurringExpenseHandler(ledger.RecurringExpenses)
	dashboardHandler := handlers.NewDashboardHandler(ledger.Summary)
	categoryHandler := handlers.NewCategoryHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(apiKey))

	v1.GET("/categories", categoryHandler.GetCategories)
	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.SetBudget)
	budgets.POST("/rollover", budgetHandler.Rollover)
	budgets.POST("/rebuild", budgetHandler.RebuildSpentAmounts)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/total", expenseHandler.GetTotal)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	recurring := v1.Group("/recurring-expenses")
	recurring.GET("", recurringExpenseHandler.GetRecurringExpenses)
	recurring.POST("", recurringExpenseHandler.SaveRecurringExpense)
	recurring.PUT("/:id", recurringExpenseHandler.UpdateRecurringExpense)
	recurring.DELETE("/:id", recurringExpenseHandler.DeleteRecurringExpense)

	return router
}
