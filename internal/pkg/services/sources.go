package services

import (
	"context"
	"sync"
	"time"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/catalog"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/consts"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/downstreams"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/mockdata"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// LoanSource supplies the customer's obligations. Two implementations exist:
// the live upstream clients and the static sample provider used in mock
// mode. The choice is made once at startup and injected.
type LoanSource interface {
	// InternalLoans returns loan agreements from the core-banking API,
	// enriched with account balances. Failures here are required-chain
	// failures and propagate.
	InternalLoans(ctx context.Context, authHeader string) ([]models.Loan, *models.APIError)
	// ExternalLoans returns obligations held at partner banks. A down
	// partner degrades to zero loans for that bank, never an error.
	ExternalLoans(ctx context.Context) []models.Loan
}

// CatalogSource supplies the refinancing product catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) []models.CatalogProduct
}

// AgreementCreator issues the downstream application-creation call.
type AgreementCreator interface {
	CreateAgreement(ctx context.Context, authHeader string, payload models.AgreementPayload) (map[string]interface{}, string, *models.APIError)
}

// LiveLoanSource talks to the real core-banking API and partner banks.
type LiveLoanSource struct {
	banks           []configs.ExternalBank
	externalTimeout time.Duration
	newBankAPI      func(authHeader string) *downstreams.BankAPI
}

func NewLiveLoanSource(banks []configs.ExternalBank, externalTimeout time.Duration, newBankAPI func(string) *downstreams.BankAPI) *LiveLoanSource {
	if newBankAPI == nil {
		newBankAPI = downstreams.NewBankAPI
	}
	return &LiveLoanSource{banks: banks, externalTimeout: externalTimeout, newBankAPI: newBankAPI}
}

func (s *LiveLoanSource) InternalLoans(ctx context.Context, authHeader string) ([]models.Loan, *models.APIError) {
	client := s.newBankAPI(authHeader)

	var (
		wg            sync.WaitGroup
		agreements    []models.Loan
		agreementsErr *models.APIError
		accountIndex  map[string]string
		accountsErr   *models.APIError
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		agreements, agreementsErr = client.GetProductAgreements(ctx)
	}()
	go func() {
		defer wg.Done()
		accountIndex, accountsErr = client.GetAccountIndex(ctx)
	}()
	wg.Wait()

	if agreementsErr != nil {
		return nil, agreementsErr
	}
	if accountsErr != nil {
		return nil, accountsErr
	}

	var loans []models.Loan
	for _, agreement := range agreements {
		if agreement.ProductType != consts.LoanProductType {
			continue
		}
		if agreement.Source == "" {
			agreement.Source = models.SourceInternal
		}
		loans = append(loans, agreement)
	}

	s.attachBalances(ctx, client, loans, accountIndex)
	return loans, nil
}

// attachBalances resolves each loan's balance through the account index. A
// loan whose account cannot be resolved still surfaces, with a diagnostic
// descriptor instead of a balance.
func (s *LiveLoanSource) attachBalances(ctx context.Context, client *downstreams.BankAPI, loans []models.Loan, accountIndex map[string]string) {
	var wg sync.WaitGroup
	for i := range loans {
		accountNumber := loans[i].AccountNumber
		accountID, found := accountIndex[accountNumber]
		if !found {
			if accountNumber != "" {
				loans[i].BalanceError = models.NotFound("Account ID not found for provided account number")
			}
			continue
		}

		loans[i].AccountID = &accountID
		wg.Add(1)
		go func(loan *models.Loan, accountID string) {
			defer wg.Done()
			balances, err := client.GetAccountBalances(ctx, accountID)
			if err != nil {
				loan.BalanceError = err
				return
			}
			loan.Balance = balances
		}(&loans[i], accountID)
	}
	wg.Wait()
}

func (s *LiveLoanSource) ExternalLoans(ctx context.Context) []models.Loan {
	if len(s.banks) == 0 {
		return nil
	}

	results := make([][]models.Loan, len(s.banks))
	var wg sync.WaitGroup
	for i, bank := range s.banks {
		wg.Add(1)
		go func(i int, bank configs.ExternalBank) {
			defer wg.Done()
			results[i] = downstreams.FetchBankLoans(ctx, bank, s.externalTimeout)
		}(i, bank)
	}
	wg.Wait()

	var loans []models.Loan
	for _, bankLoans := range results {
		loans = append(loans, bankLoans...)
	}
	return loans
}

// MockLoanSource serves the deterministic sample data set.
type MockLoanSource struct{}

func (MockLoanSource) InternalLoans(ctx context.Context, authHeader string) ([]models.Loan, *models.APIError) {
	return mockdata.GetMockLoanDetails(), nil
}

func (MockLoanSource) ExternalLoans(ctx context.Context) []models.Loan {
	return nil
}

// MockExternalLoanSource keeps the live internal path but substitutes the
// partner-bank fan-out with samples (USE_MOCK_EXTERNAL_BANKS).
type MockExternalLoanSource struct {
	*LiveLoanSource
}

func (s MockExternalLoanSource) ExternalLoans(ctx context.Context) []models.Loan {
	logger.Debug(ctx, "serving mock external loans")
	return mockdata.GetMockLoanDetails()
}

// LiveCatalogSource wraps the multi-source catalog resolver.
type LiveCatalogSource struct {
	resolver *catalog.Resolver
}

func NewLiveCatalogSource(resolver *catalog.Resolver) *LiveCatalogSource {
	return &LiveCatalogSource{resolver: resolver}
}

func (s *LiveCatalogSource) Catalog(ctx context.Context) []models.CatalogProduct {
	return s.resolver.Resolve(ctx)
}

// MockCatalogSource serves the normalized sample catalog.
type MockCatalogSource struct{}

func (MockCatalogSource) Catalog(ctx context.Context) []models.CatalogProduct {
	return catalog.SampleCatalog()
}

// LiveAgreementCreator issues the creation call against the core-banking API.
type LiveAgreementCreator struct {
	newBankAPI func(authHeader string) *downstreams.BankAPI
}

func NewLiveAgreementCreator(newBankAPI func(string) *downstreams.BankAPI) *LiveAgreementCreator {
	if newBankAPI == nil {
		newBankAPI = downstreams.NewBankAPI
	}
	return &LiveAgreementCreator{newBankAPI: newBankAPI}
}

func (c *LiveAgreementCreator) CreateAgreement(ctx context.Context, authHeader string, payload models.AgreementPayload) (map[string]interface{}, string, *models.APIError) {
	return c.newBankAPI(authHeader).CreateProductAgreement(ctx, payload)
}
