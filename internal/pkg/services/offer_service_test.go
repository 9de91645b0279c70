package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func externalLoan(amount, rate float64, termMonths int) models.Loan {
	return models.Loan{
		AgreementID:  "agr-ext-1",
		Source:       models.SourceExternal,
		ProductType:  "loan",
		Amount:       amount,
		InterestRate: floatPtr(rate),
		TermMonths:   intPtr(termMonths),
		OriginBank:   "vbank",
	}
}

func TestSelectBestProductOffer_LowestRateWins(t *testing.T) {
	offers := NewOfferService("")
	loan := externalLoan(900000, 9.2, 96)

	products := []models.CatalogProduct{
		{ProductID: "prod-a", ProductName: "Refi A", InterestRate: 9.5, MaxAmount: floatPtr(2000000), TermMonths: intPtr(84)},
		{ProductID: "prod-b", ProductName: "Refi B", InterestRate: 10.0, MaxAmount: floatPtr(1500000), TermMonths: intPtr(84)},
	}

	offer := offers.SelectBestProductOffer(loan, products)
	require.NotNil(t, offer)
	assert.Equal(t, "prod-a", *offer.ProductID)
	assert.Equal(t, 9.5, offer.SuggestedRate)
	require.NotNil(t, offer.OriginalRate)
	assert.Equal(t, 9.2, *offer.OriginalRate)
	assert.Equal(t, 0.0, offer.Savings, "a worse suggested rate never reports negative savings")
	assert.Equal(t, 96, offer.Assumptions.TermMonths, "the loan's own term is preferred")
	assert.Equal(t, 900000.0, offer.Assumptions.Principal)
	assert.Greater(t, offer.MonthlyPayment, 0.0)
}

func TestSelectBestProductOffer_SavingsFormula(t *testing.T) {
	offers := NewOfferService("")
	loan := externalLoan(450000, 13.5, 40)

	products := []models.CatalogProduct{
		{ProductID: "prod-cheap", InterestRate: 9.0, TermMonths: intPtr(60)},
	}

	offer := offers.SelectBestProductOffer(loan, products)
	require.NotNil(t, offer)
	// (13.5 - 9.0) * 450000 * 40 / 1200
	assert.Equal(t, 67500.0, offer.Savings)
}

func TestSelectBestProductOffer_MaxAmountFilter(t *testing.T) {
	offers := NewOfferService("")
	loan := externalLoan(1800000, 11.0, 60)

	products := []models.CatalogProduct{
		{ProductID: "prod-small", InterestRate: 8.0, MaxAmount: floatPtr(1500000)},
		{ProductID: "prod-big", InterestRate: 9.5, MaxAmount: floatPtr(2000000)},
	}

	offer := offers.SelectBestProductOffer(loan, products)
	require.NotNil(t, offer)
	assert.Equal(t, "prod-big", *offer.ProductID, "products that cannot cover the principal are dropped")
}

func TestSelectBestProductOffer_FilterDegradesWhenNothingFits(t *testing.T) {
	offers := NewOfferService("")
	loan := externalLoan(5000000, 11.0, 60)

	products := []models.CatalogProduct{
		{ProductID: "prod-only", InterestRate: 9.0, MaxAmount: floatPtr(1500000)},
	}

	offer := offers.SelectBestProductOffer(loan, products)
	require.NotNil(t, offer, "an emptying filter is ignored rather than producing no offer")
	assert.Equal(t, "prod-only", *offer.ProductID)
}

func TestSelectBestProductOffer_PromoBreaksRateTies(t *testing.T) {
	offers := NewOfferService("айтишная ипотека")
	loan := externalLoan(900000, 12.0, 60)

	products := []models.CatalogProduct{
		{ProductID: "prod-plain", ProductName: "Обычный кредит", InterestRate: 9.0, TermMonths: intPtr(36)},
		{ProductID: "prod-promo", ProductName: "Айтишная ипотека 9%", InterestRate: 9.0, TermMonths: intPtr(84)},
	}

	offer := offers.SelectBestProductOffer(loan, products)
	require.NotNil(t, offer)
	assert.Equal(t, "prod-promo", *offer.ProductID)
}

func TestSelectBestProductOffer_EmptyCatalog(t *testing.T) {
	offers := NewOfferService("")
	assert.Nil(t, offers.SelectBestProductOffer(externalLoan(900000, 9.2, 96), nil))
}

func TestEnrichLoansWithOffers_InternalLoansGetExplicitNil(t *testing.T) {
	offers := NewOfferService("")

	internal := models.Loan{
		AgreementID:  "agr-int-1",
		Source:       models.SourceInternal,
		Amount:       450000,
		InterestRate: floatPtr(13.5),
		OriginBank:   models.OriginSelf,
	}
	external := externalLoan(900000, 9.2, 96)

	products := []models.CatalogProduct{
		{ProductID: "prod-a", InterestRate: 9.5, MaxAmount: floatPtr(2000000)},
	}

	enriched := offers.EnrichLoansWithOffers([]models.Loan{internal, external}, products)
	require.Len(t, enriched, 2)
	assert.Nil(t, enriched[0].RefinanceOffer)
	require.NotNil(t, enriched[1].RefinanceOffer)
	assert.Equal(t, "agr-ext-1", enriched[1].RefinanceOffer.LoanID)
}

func TestEnrichLoansWithOffers_UntaggedOriginBankCountsAsExternal(t *testing.T) {
	offers := NewOfferService("")

	loan := models.Loan{
		AgreementID:  "agr-partner-1",
		Amount:       300000,
		InterestRate: floatPtr(14.0),
		OriginBank:   "abank",
	}

	enriched := offers.EnrichLoansWithOffers([]models.Loan{loan}, []models.CatalogProduct{
		{ProductID: "prod-a", InterestRate: 9.5},
	})
	require.Len(t, enriched, 1)
	assert.NotNil(t, enriched[0].RefinanceOffer)
}
