package services

import (
	"context"
	"sync"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// SuggestionService runs the obligation aggregation and the catalog
// resolution concurrently, then enriches every obligation with its best
// refinancing offer.
type SuggestionService struct {
	aggregator *AggregatorService
	catalog    CatalogSource
	offers     *OfferService
}

func NewSuggestionService(aggregator *AggregatorService, catalog CatalogSource, offers *OfferService) *SuggestionService {
	return &SuggestionService{aggregator: aggregator, catalog: catalog, offers: offers}
}

// SuggestionsResult carries the enriched obligations plus the counters the
// suggestions endpoint reports.
type SuggestionsResult struct {
	Loans                  []models.Loan
	BankProductsConsidered int
	ExternalSources        int
}

func (s *SuggestionService) Suggestions(ctx context.Context, authHeader string) (*SuggestionsResult, *models.APIError) {
	loans, products, err := s.collect(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	enriched := s.offers.EnrichLoansWithOffers(loans, products)

	externalCount := 0
	for _, loan := range enriched {
		if loan.IsExternal() {
			externalCount++
		}
	}

	return &SuggestionsResult{
		Loans:                  enriched,
		BankProductsConsidered: len(products),
		ExternalSources:        externalCount,
	}, nil
}

// EnrichedLoans exposes the same pipeline to the application resolver, which
// needs the catalog alongside the enriched obligations.
func (s *SuggestionService) EnrichedLoans(ctx context.Context, authHeader string) ([]models.Loan, []models.CatalogProduct, *models.APIError) {
	loans, products, err := s.collect(ctx, authHeader)
	if err != nil {
		return nil, nil, err
	}
	return s.offers.EnrichLoansWithOffers(loans, products), products, nil
}

func (s *SuggestionService) collect(ctx context.Context, authHeader string) ([]models.Loan, []models.CatalogProduct, *models.APIError) {
	var (
		wg       sync.WaitGroup
		loans    []models.Loan
		loansErr *models.APIError
		products []models.CatalogProduct
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		loans, loansErr = s.aggregator.CollectObligations(ctx, authHeader)
	}()
	go func() {
		defer wg.Done()
		products = s.catalog.Catalog(ctx)
	}()
	wg.Wait()

	if loansErr != nil {
		return nil, nil, loansErr
	}
	return loans, products, nil
}
