package services

import (
	"sort"
	"strings"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/consts"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/finance"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// OfferService computes refinancing offers. Only externally-held obligations
// are eligible; internal ones map to nil by definition. When no catalog
// product survives selection, no offer is produced — a synthetic rate is
// never invented.
type OfferService struct {
	promoKeyword string
}

func NewOfferService(promoKeyword string) *OfferService {
	return &OfferService{promoKeyword: strings.ToLower(promoKeyword)}
}

// EnrichLoansWithOffers attaches the best offer to each external loan and an
// explicit nil to every other, preserving input order.
func (s *OfferService) EnrichLoansWithOffers(loans []models.Loan, products []models.CatalogProduct) []models.Loan {
	enriched := make([]models.Loan, len(loans))
	for i, loan := range loans {
		if loan.IsExternal() {
			loan.RefinanceOffer = s.SelectBestProductOffer(loan, products)
		} else {
			loan.RefinanceOffer = nil
		}
		enriched[i] = loan
	}
	return enriched
}

// SelectBestProductOffer filters, ranks, and builds the offer for one loan.
func (s *OfferService) SelectBestProductOffer(loan models.Loan, products []models.CatalogProduct) *models.Offer {
	candidates := filterEligibleProducts(loan, products)
	if len(candidates) == 0 {
		// Degradation rule: a filter that empties the candidate set is
		// ignored rather than leaving the obligation without options.
		candidates = products
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]models.CatalogProduct, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.rankLess(ranked[i], ranked[j])
	})

	return s.buildOffer(loan, ranked[0])
}

// rankLess orders candidates by rate, then promotional-keyword preference,
// then shorter term.
func (s *OfferService) rankLess(a, b models.CatalogProduct) bool {
	if a.InterestRate != b.InterestRate {
		return a.InterestRate < b.InterestRate
	}

	aPromo := s.promoKeyword != "" && strings.Contains(strings.ToLower(a.ProductName), s.promoKeyword)
	bPromo := s.promoKeyword != "" && strings.Contains(strings.ToLower(b.ProductName), s.promoKeyword)
	if aPromo != bPromo {
		return aPromo
	}

	return termOrDefault(a.TermMonths) < termOrDefault(b.TermMonths)
}

func termOrDefault(term *int) int {
	if term != nil && *term > 0 {
		return *term
	}
	return consts.DefaultFallbackTermMonths
}

// filterEligibleProducts drops products whose maximum amount cannot cover
// the obligation's principal. Unknown principal keeps everything.
func filterEligibleProducts(loan models.Loan, products []models.CatalogProduct) []models.CatalogProduct {
	if loan.Amount <= 0 {
		return products
	}

	eligible := make([]models.CatalogProduct, 0, len(products))
	for _, product := range products {
		if product.MaxAmount != nil && loan.Amount > *product.MaxAmount {
			continue
		}
		eligible = append(eligible, product)
	}
	return eligible
}

func (s *OfferService) buildOffer(loan models.Loan, product models.CatalogProduct) *models.Offer {
	principal := loan.Amount
	if principal <= 0 {
		return nil
	}

	remainingMonths := remainingTermMonths(loan, product)
	rate := product.InterestRate
	monthlyPayment := finance.MonthlyPayment(principal, rate, remainingMonths)

	var originalRate *float64
	if loan.InterestRate != nil && *loan.InterestRate > 0 {
		originalRate = loan.InterestRate
	}

	baselineRate := consts.DefaultAssumedOriginalRate
	if originalRate != nil {
		baselineRate = *originalRate
	}

	savings := 0.0
	if baselineRate > rate {
		savings = finance.RoundTo2((baselineRate - rate) * principal * float64(remainingMonths) / 1200)
	}

	productID := product.ProductID
	return &models.Offer{
		LoanID:            loan.AgreementID,
		OriginalRate:      originalRate,
		SuggestedRate:     finance.RoundTo2(rate),
		MonthlyPayment:    finance.RoundTo2(monthlyPayment),
		TotalCost:         finance.TotalCost(monthlyPayment, remainingMonths),
		Savings:           savings,
		Source:            models.OfferSourceBankProduct,
		ProductID:         &productID,
		ProductName:       product.ProductName,
		ProductTermMonths: product.TermMonths,
		Assumptions: models.OfferAssumptions{
			TermMonths: remainingMonths,
			Principal:  principal,
		},
	}
}

// remainingTermMonths prefers the loan's own term, then the product's, then
// the default constant.
func remainingTermMonths(loan models.Loan, product models.CatalogProduct) int {
	if loan.TermMonths != nil && *loan.TermMonths > 0 {
		return *loan.TermMonths
	}
	if product.TermMonths != nil && *product.TermMonths > 0 {
		return *product.TermMonths
	}
	return consts.DefaultFallbackTermMonths
}
