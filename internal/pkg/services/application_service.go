package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/consts"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/finance"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/utils/worker"
)

// AuditPublisher emits application-created events. May be nil when no broker
// is configured.
type AuditPublisher interface {
	PublishApplicationCreated(ctx context.Context, event models.ApplicationAuditEvent) error
}

// ApplicationService resolves a refinance application request into one valid
// creation payload and issues exactly one downstream creation call.
type ApplicationService struct {
	suggestions *SuggestionService
	creator     AgreementCreator
	publisher   AuditPublisher
	pool        *worker.Pool
}

func NewApplicationService(suggestions *SuggestionService, creator AgreementCreator, publisher AuditPublisher, pool *worker.Pool) *ApplicationService {
	return &ApplicationService{
		suggestions: suggestions,
		creator:     creator,
		publisher:   publisher,
		pool:        pool,
	}
}

func (s *ApplicationService) Resolve(ctx context.Context, authHeader string, req models.ApplicationRequest) (*models.ApplicationResult, *models.APIError) {
	enrichedLoans, products, err := s.suggestions.EnrichedLoans(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	var sourceLoan *models.Loan
	for i := range enrichedLoans {
		if enrichedLoans[i].AgreementID == req.AgreementID || enrichedLoans[i].ID == req.AgreementID {
			sourceLoan = &enrichedLoans[i]
			break
		}
	}
	if sourceLoan == nil {
		return nil, models.NotFound("Loan agreement not found for refinance application")
	}

	selectedOffer := sourceLoan.RefinanceOffer

	targetProductID := req.ProductID
	if targetProductID == "" && selectedOffer != nil && selectedOffer.ProductID != nil {
		targetProductID = *selectedOffer.ProductID
	}
	if targetProductID == "" && len(products) > 0 {
		targetProductID = products[0].ProductID
	}
	if targetProductID == "" {
		return nil, models.Conflict("No refinance offer available to create a product")
	}

	var targetProduct *models.CatalogProduct
	for i := range products {
		if products[i].ProductID == targetProductID {
			targetProduct = &products[i]
			break
		}
	}
	if targetProduct == nil {
		return nil, models.NotFound(fmt.Sprintf("Product %s not found in bank catalogue", targetProductID))
	}

	termMonths := s.resolveTermMonths(req, selectedOffer, sourceLoan, targetProduct)

	amount, candidates := s.resolveAmount(req, selectedOffer, sourceLoan, targetProduct)
	if amount == nil {
		logger.Warn(ctx, "unable to resolve refinance amount for agreement %s", req.AgreementID)
		return nil, models.ValidationError(
			"Unable to determine refinance amount for product creation",
			map[string]interface{}{
				"candidateAmounts": candidates,
				"providedAmount":   req.Amount,
				"sourceLoanAmount": sourceLoan.Amount,
				"offer":            selectedOffer,
			},
		)
	}

	resolvedAmount := clampToBounds(*amount, targetProduct)

	payload := models.AgreementPayload{
		ProductID:  targetProductID,
		Amount:     finance.RoundTo2(resolvedAmount),
		TermMonths: termMonths,
	}

	logger.Info(ctx, "creating product agreement for %s: product=%s amount=%.2f term=%d",
		req.AgreementID, payload.ProductID, payload.Amount, payload.TermMonths)

	agreement, statusMessage, createErr := s.creator.CreateAgreement(ctx, authHeader, payload)
	if createErr != nil {
		return nil, createErr
	}

	s.publishAudit(ctx, req.AgreementID, payload)

	return &models.ApplicationResult{
		Status:       statusMessage,
		Agreement:    agreement,
		AgreementID:  req.AgreementID,
		ProductID:    payload.ProductID,
		Amount:       payload.Amount,
		TermMonths:   payload.TermMonths,
		Comment:      req.Comment,
		Offer:        selectedOffer,
		LoanSnapshot: sourceLoan,
	}, nil
}

// resolveTermMonths walks the term precedence chain; the first finite
// positive candidate wins.
func (s *ApplicationService) resolveTermMonths(req models.ApplicationRequest, offer *models.Offer, loan *models.Loan, product *models.CatalogProduct) int {
	var candidates []float64
	if req.DesiredTermMonths != nil {
		candidates = append(candidates, *req.DesiredTermMonths)
	}
	if req.OfferTermMonths != nil {
		candidates = append(candidates, *req.OfferTermMonths)
	}
	if offer != nil {
		if offer.ProductTermMonths != nil {
			candidates = append(candidates, float64(*offer.ProductTermMonths))
		}
		candidates = append(candidates, float64(offer.Assumptions.TermMonths))
	}
	if loan.RemainingTermMonths != nil {
		candidates = append(candidates, float64(*loan.RemainingTermMonths))
	}
	if product.TermMonths != nil {
		candidates = append(candidates, float64(*product.TermMonths))
	}

	for _, candidate := range candidates {
		if candidate > 0 && !math.IsInf(candidate, 0) && !math.IsNaN(candidate) {
			return int(math.Round(candidate))
		}
	}
	return consts.DefaultFallbackTermMonths
}

// resolveAmount walks the amount precedence chain. Returns nil when no
// finite positive candidate exists, alongside the inspected candidates for
// the validation error details.
func (s *ApplicationService) resolveAmount(req models.ApplicationRequest, offer *models.Offer, loan *models.Loan, product *models.CatalogProduct) (*float64, []float64) {
	var candidates []float64
	if req.Amount != nil {
		candidates = append(candidates, *req.Amount)
	}
	if offer != nil {
		candidates = append(candidates, offer.Assumptions.Principal)
	}
	candidates = append(candidates, loan.Amount)
	if product.MinAmount != nil {
		candidates = append(candidates, *product.MinAmount)
	}

	for _, candidate := range candidates {
		if candidate > 0 && !math.IsInf(candidate, 0) && !math.IsNaN(candidate) {
			value := candidate
			return &value, candidates
		}
	}
	return nil, candidates
}

func clampToBounds(amount float64, product *models.CatalogProduct) float64 {
	if product.MinAmount != nil && amount < *product.MinAmount {
		amount = *product.MinAmount
	}
	if product.MaxAmount != nil && amount > *product.MaxAmount {
		amount = *product.MaxAmount
	}
	return amount
}

// publishAudit hands the audit event to the worker pool so broker latency
// never extends the request.
func (s *ApplicationService) publishAudit(ctx context.Context, agreementID string, payload models.AgreementPayload) {
	if s.publisher == nil {
		return
	}

	event := models.ApplicationAuditEvent{
		EventID:     uuid.New().String(),
		AgreementID: agreementID,
		ProductID:   payload.ProductID,
		Amount:      payload.Amount,
		TermMonths:  payload.TermMonths,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	publish := func() {
		if err := s.publisher.PublishApplicationCreated(context.Background(), event); err != nil {
			logger.Error("failed to publish audit event for agreement %s: %v", agreementID, err)
		}
	}

	if s.pool != nil {
		s.pool.Submit(publish)
		return
	}
	go publish()
}
