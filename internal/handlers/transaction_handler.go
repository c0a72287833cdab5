package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/models"
	"github.com/zkoymen/Dime-Darling/internal/pagination"
	"github.com/zkoymen/Dime-Darling/internal/store"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(st *store.Store) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// TransactionRequest represents the payload for creating or updating a
// transaction. Amount is a positive magnitude in cents; the store derives
// the sign from the type.
type TransactionRequest struct {
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required,min=1,max=200"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	CategoryID  string                 `json:"category_id" binding:"required"`
	Notes       string                 `json:"notes" binding:"omitempty,max=500"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.store.AddTransaction(models.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles listing transactions, most recent first, with
// optional filters.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var txType *models.TransactionType
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		txType = &t
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be a YYYY-MM-DD date"))
			return
		}
		from = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be a YYYY-MM-DD date"))
			return
		}
		to = &d
	}
	categoryID := c.Query("category_id")

	var filtered []models.Transaction
	for _, t := range h.store.Transactions() {
		if txType != nil && t.Type != *txType {
			continue
		}
		if categoryID != "" && t.CategoryID != categoryID {
			continue
		}
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && !t.Date.Before(to.AddDate(0, 0, 1)) {
			continue
		}
		filtered = append(filtered, t)
	}

	c.JSON(http.StatusOK, pagination.Slice(filtered, page))
}

// GetTransaction handles retrieving a single transaction by ID.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.store.TransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction handles replacing a transaction by ID.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.store.UpdateTransaction(models.Transaction{
		ID:          c.Param("id"),
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction handles removing a transaction by ID.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
