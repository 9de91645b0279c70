package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/services"
)

type LoansHandler struct {
	aggregator *services.AggregatorService
}

func NewLoansHandler(aggregator *services.AggregatorService) *LoansHandler {
	return &LoansHandler{aggregator: aggregator}
}

// ActiveLoans returns the customer's active loan agreements from the
// core-banking ledger, enriched with account balances.
func (h *LoansHandler) ActiveLoans(c *gin.Context) {
	loans, err := h.aggregator.InternalObligations(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	if loans == nil {
		loans = []models.Loan{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": loans,
		"meta": gin.H{"total": len(loans)},
	})
}

func respondError(c *gin.Context, err *models.APIError) {
	body := gin.H{"error": err.Message}
	if err.Details != nil {
		body["details"] = err.Details
	}
	c.JSON(err.Status, body)
}
