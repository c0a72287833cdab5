package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zkoymen/Dime-Darling/internal/reports"
	"github.com/zkoymen/Dime-Darling/internal/store"
)

// ReportHandler serves the derived report views. The clock is a field so
// tests can pin "now".
type ReportHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{store: st, now: time.Now}
}

// GetFlows handles the monthly income vs. expense report.
func (h *ReportHandler) GetFlows(c *gin.Context) {
	r, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	flows, err := reports.MonthlyFlows(h.store.Transactions(), r, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": r, "flows": flows})
}

// GetBreakdown handles the spending-by-category report.
func (h *ReportHandler) GetBreakdown(c *gin.Context) {
	r, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := reports.CategoryBreakdown(h.store.Transactions(), h.store.Categories(), r, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": r, "breakdown": breakdown})
}

// GetTrends handles the top-category spending trend report.
func (h *ReportHandler) GetTrends(c *gin.Context) {
	r, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := reports.CategoryTrends(h.store.Transactions(), h.store.Categories(), r, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": r, "trends": trends})
}
