package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/store"
	"github.com/zkoymen/Dime-Darling/internal/suggest"
)

// SuggestHandler proxies category suggestions from the external
// categorization collaborator.
type SuggestHandler struct {
	store     *store.Store
	suggester suggest.Suggester
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(st *store.Store, suggester suggest.Suggester) *SuggestHandler {
	return &SuggestHandler{store: st, suggester: suggester}
}

// SuggestCategoryRequest represents the payload for a suggestion request.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// SuggestCategory asks the collaborator for a category proposal based on
// the description and the user's recent spending. A failed call surfaces
// as an error response and has no effect on stored state.
func (h *SuggestHandler) SuggestCategory(c *gin.Context) {
	var req SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	categories := h.store.Categories()
	candidates := make([]string, 0, len(categories))
	for _, cat := range categories {
		candidates = append(candidates, cat.Name)
	}

	suggestion, err := h.suggester.Suggest(c.Request.Context(), suggest.Request{
		Description:            req.Description,
		PastSpendingSummary:    h.store.PastSpendingSummary(),
		CandidateCategoryNames: candidates,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
