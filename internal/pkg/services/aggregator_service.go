package services

import (
	"context"
	"sync"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// AggregatorService merges internal and partner-bank obligations into one
// list with stable internal-then-external grouping. Both branches run
// concurrently; only the internal branch can fail the aggregate.
type AggregatorService struct {
	loans LoanSource
}

func NewAggregatorService(loans LoanSource) *AggregatorService {
	return &AggregatorService{loans: loans}
}

func (s *AggregatorService) CollectObligations(ctx context.Context, authHeader string) ([]models.Loan, *models.APIError) {
	var (
		wg          sync.WaitGroup
		internal    []models.Loan
		internalErr *models.APIError
		external    []models.Loan
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		internal, internalErr = s.loans.InternalLoans(ctx, authHeader)
	}()
	go func() {
		defer wg.Done()
		external = s.loans.ExternalLoans(ctx)
	}()
	wg.Wait()

	if internalErr != nil {
		return nil, internalErr
	}

	combined := make([]models.Loan, 0, len(internal)+len(external))
	combined = append(combined, internal...)
	combined = append(combined, external...)
	return combined, nil
}

// InternalObligations serves the active-loans view: core-banking loan
// agreements with balance enrichment, no partner banks involved.
func (s *AggregatorService) InternalObligations(ctx context.Context, authHeader string) ([]models.Loan, *models.APIError) {
	return s.loans.InternalLoans(ctx, authHeader)
}
