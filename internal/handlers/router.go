package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zkoymen/Dime-Darling/internal/middleware"
	"github.com/zkoymen/Dime-Darling/internal/store"
	"github.com/zkoymen/Dime-Darling/internal/suggest"
)

// NewRouter assembles the Gin engine with middleware and all API routes.
func NewRouter(st *store.Store, suggester suggest.Suggester) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogging(), middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "loaded": st.Loaded()})
	})

	transactionHandler := NewTransactionHandler(st)
	categoryHandler := NewCategoryHandler(st)
	budgetHandler := NewBudgetHandler(st)
	reportHandler := NewReportHandler(st)
	dashboardHandler := NewDashboardHandler(st)
	suggestHandler := NewSuggestHandler(st, suggester)

	api := r.Group("/api/v1")
	{
		api.POST("/transactions", transactionHandler.CreateTransaction)
		api.GET("/transactions", transactionHandler.GetTransactions)
		api.GET("/transactions/:id", transactionHandler.GetTransaction)
		api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
		api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories", categoryHandler.GetCategories)
		api.PUT("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.POST("/budgets", budgetHandler.CreateBudget)
		api.GET("/budgets", budgetHandler.GetBudgets)
		api.PUT("/budgets/:id", budgetHandler.UpdateBudget)
		api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

		api.GET("/reports/flows", reportHandler.GetFlows)
		api.GET("/reports/breakdown", reportHandler.GetBreakdown)
		api.GET("/reports/trends", reportHandler.GetTrends)

		api.GET("/dashboard", dashboardHandler.GetDashboard)

		api.POST("/suggest-category", suggestHandler.SuggestCategory)
	}

	return r
}
