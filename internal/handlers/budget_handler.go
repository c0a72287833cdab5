package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/models"
	"github.com/zkoymen/Dime-Darling/internal/reports"
	"github.com/zkoymen/Dime-Darling/internal/store"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	store *store.Store
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(st *store.Store) *BudgetHandler {
	return &BudgetHandler{store: st}
}

// BudgetRequest represents the payload for creating or updating a budget.
// Limit is in cents. Custom-period budgets must carry an end date.
type BudgetRequest struct {
	CategoryID string              `json:"category_id" binding:"required"`
	Limit      int64               `json:"limit" binding:"required,gt=0"`
	Period     models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	StartDate  time.Time           `json:"start_date" binding:"required"`
	EndDate    *time.Time          `json:"end_date"`
}

// CreateBudget handles the creation of a new budget.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.store.AddBudget(models.Budget{
		CategoryID: req.CategoryID,
		Limit:      req.Limit,
		Period:     req.Period,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets with spending derived from the
// current transaction set on every read.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	txs := h.store.Transactions()
	budgets := h.store.Budgets()

	statuses := make([]reports.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, reports.StatusForBudget(b, txs))
	}

	c.JSON(http.StatusOK, gin.H{"budgets": statuses})
}

// UpdateBudget handles replacing a budget by ID.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.store.UpdateBudget(models.Budget{
		ID:         c.Param("id"),
		CategoryID: req.CategoryID,
		Limit:      req.Limit,
		Period:     req.Period,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles removing a budget by ID.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.store.DeleteBudget(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
