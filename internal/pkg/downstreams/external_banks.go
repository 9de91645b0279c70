package downstreams

import (
	"context"
	"strings"
	"time"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

type externalLoansResponse struct {
	Data struct {
		Loans []models.Loan `json:"loans"`
	} `json:"data"`
}

// FetchBankLoans pulls the customer's obligations held at one partner bank.
// Every record is tagged with its provenance and originating bank code. Any
// failure degrades to an empty list for that bank only.
func FetchBankLoans(ctx context.Context, bank configs.ExternalBank, timeout time.Duration) []models.Loan {
	endpoint := strings.TrimRight(bank.BaseURL, "/") + "/loans"

	headers := map[string]string{}
	if bank.Token != "" {
		headers["Authorization"] = "Bearer " + bank.Token
	}

	var resp externalLoansResponse
	if _, err := GetJSON(ctx, endpoint, headers, timeout, &resp); err != nil {
		logger.Warn(ctx, "failed to fetch loans from bank %s (%s): %v", bank.Code, endpoint, err)
		return nil
	}

	loans := make([]models.Loan, 0, len(resp.Data.Loans))
	for _, loan := range resp.Data.Loans {
		if loan.Source == "" {
			loan.Source = models.SourceExternal
		}
		if loan.OriginBank == "" {
			loan.OriginBank = bank.Code
		}
		loans = append(loans, loan)
	}
	return loans
}

// ProbeBankHealth checks one partner bank's health endpoint and normalizes
// the outcome into a reachability summary.
func ProbeBankHealth(ctx context.Context, bank configs.ExternalBank, timeout time.Duration) models.BankHealth {
	base := strings.TrimRight(bank.BaseURL, "/")
	healthURL := base + "/health"

	health := models.BankHealth{
		Code:      bank.Code,
		Name:      bank.DisplayName,
		BaseURL:   bank.BaseURL,
		HealthURL: healthURL,
	}
	if health.Name == "" {
		health.Name = bank.Code
	}

	_, status, err := makeAPICall(ctx, healthURL, "GET", map[string]string{"Accept": "application/json"}, nil, timeout)
	if err != nil {
		message := err.Error()
		health.Status = models.BankStatusDown
		health.Message = &message
		return health
	}

	health.HTTPStatus = &status
	if status >= 200 && status < 300 {
		health.Status = models.BankStatusUp
		return health
	}

	message := "Unreachable"
	health.Status = models.BankStatusDown
	health.Message = &message
	return health
}
