package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/services"
)

type RefinanceHandler struct {
	suggestions  *services.SuggestionService
	applications *services.ApplicationService
	health       *services.HealthService
	useMock      bool
	forceReal    bool
}

func NewRefinanceHandler(suggestions *services.SuggestionService, applications *services.ApplicationService, health *services.HealthService, useMock, forceReal bool) *RefinanceHandler {
	return &RefinanceHandler{
		suggestions:  suggestions,
		applications: applications,
		health:       health,
		useMock:      useMock,
		forceReal:    forceReal,
	}
}

// Suggestions returns every obligation with its best refinancing offer (or
// an explicit null for ineligible ones).
func (h *RefinanceHandler) Suggestions(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !h.useMock && authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	result, err := h.suggestions.Suggestions(c.Request.Context(), authHeader)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to build refinance suggestions: %v", err)
		respondError(c, err)
		return
	}

	meta := gin.H{
		"total":                    len(result.Loans),
		"bank_products_considered": result.BankProductsConsidered,
		"external_sources":         result.ExternalSources,
	}
	if h.useMock {
		meta["source"] = "mock"
	}

	c.JSON(http.StatusOK, gin.H{"data": result.Loans, "meta": meta})
}

// CreateApplication resolves ambiguous user input into one concrete
// application payload and forwards it to the core-banking API.
func (h *RefinanceHandler) CreateApplication(c *gin.Context) {
	var req models.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agreement_id is required"})
		return
	}

	forceReal := h.forceReal ||
		req.ForceReal ||
		c.Query("force_real") == "true" ||
		c.Query("forceReal") == "true" ||
		c.GetHeader("x-force-real") == "true"

	if h.useMock && !forceReal {
		h.mockApplication(c, req)
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	result, err := h.applications.Resolve(c.Request.Context(), authHeader, req)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to submit refinance application: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": result.Status,
		"data":   gin.H{"agreement": result.Agreement},
		"meta": gin.H{
			"agreement_id":  result.AgreementID,
			"product_id":    result.ProductID,
			"amount":        result.Amount,
			"term_months":   result.TermMonths,
			"comment":       result.Comment,
			"offer":         result.Offer,
			"loan_snapshot": result.LoanSnapshot,
		},
	})
}

// mockApplication answers with a deterministic submitted agreement without
// touching any upstream.
func (h *RefinanceHandler) mockApplication(c *gin.Context, req models.ApplicationRequest) {
	amount := 500000.0
	if req.Amount != nil && *req.Amount > 0 {
		amount = *req.Amount
	}

	productID := req.ProductID
	if productID == "" {
		productID = "prod-mock-refinance"
	}

	termMonths := 24.0
	if req.OfferTermMonths != nil {
		termMonths = *req.OfferTermMonths
	} else if req.DesiredTermMonths != nil {
		termMonths = *req.DesiredTermMonths
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "mock-submitted",
		"data": gin.H{
			"agreement": gin.H{
				"agreement_id": "agr-mock-" + req.AgreementID,
				"product_id":   productID,
				"product_name": "Mock refinancing credit",
				"product_type": "loan",
				"amount":       amount,
				"status":       "pending",
				"start_date":   time.Now().UTC().Format(time.RFC3339),
			},
		},
		"meta": gin.H{
			"agreement_id": req.AgreementID,
			"product_id":   productID,
			"amount":       amount,
			"term_months":  termMonths,
			"comment":      req.Comment,
			"mock":         true,
		},
	})
}

// Status reports per-bank reachability for authenticated clients.
func (h *RefinanceHandler) Status(c *gin.Context) {
	banks := h.health.BanksHealth(c.Request.Context())

	data := gin.H{
		"banks":        banks,
		"last_checked": time.Now().UTC().Format(time.RFC3339),
	}
	if h.useMock {
		data["source"] = "mock"
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// BanksHealth is the unauthenticated reachability probe used by dashboards.
func (h *RefinanceHandler) BanksHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.BanksHealth(c.Request.Context()))
}
