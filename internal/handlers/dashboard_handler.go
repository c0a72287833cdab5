package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zkoymen/Dime-Darling/internal/reports"
	"github.com/zkoymen/Dime-Darling/internal/store"
)

// recentTransactionCount is how many latest transactions the dashboard shows.
const recentTransactionCount = 5

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st, now: time.Now}
}

// GetDashboard returns the current month overview, the latest transactions,
// and budget progress in a single response.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	txs := h.store.Transactions()

	recent := txs
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	budgets := h.store.Budgets()
	statuses := make([]reports.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, reports.StatusForBudget(b, txs))
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":            reports.MonthOverview(txs, h.now()),
		"recent_transactions": recent,
		"budgets":             statuses,
	})
}
