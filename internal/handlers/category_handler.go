package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/models"
	"github.com/zkoymen/Dime-Darling/internal/store"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(st *store.Store) *CategoryHandler {
	return &CategoryHandler{store: st}
}

// CategoryRequest represents the payload for creating or updating a
// category. Icon must be a known icon name or inline SVG markup; unknown
// names are a validation error rather than a silent fallback.
type CategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Icon  string `json:"icon" binding:"required,category_icon"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

// CreateCategory handles the creation of a new user-defined category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.store.AddCategory(models.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles listing the merged category view: the predefined
// set followed by user-defined categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.store.Categories()})
}

// UpdateCategory handles replacing a user-defined category by ID.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.store.UpdateCategory(models.Category{
		ID:    c.Param("id"),
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles removing a user-defined category. Transactions
// referencing it are reassigned to the fallback category by the store.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
