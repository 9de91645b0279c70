package mockdata

import "github.com/jsenjoyer123/OptiFi/internal/pkg/models"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// GetMockLoanDetails returns the deterministic loan set served in mock mode:
// one internal consumer loan and one external partner-bank mortgage.
func GetMockLoanDetails() []models.Loan {
	return []models.Loan{
		{
			ID:                  "mock-loan-internal-1",
			AgreementID:         "mock-loan-internal-1",
			Source:              models.SourceInternal,
			ProductType:         "loan",
			Amount:              450000,
			Currency:            "RUB",
			InterestRate:        floatPtr(13.5),
			TermMonths:          intPtr(40),
			RemainingTermMonths: intPtr(40),
			OriginBank:          models.OriginSelf,
			AccountNumber:       "40817810099910004312",
			Balance:             []models.Balance{{Amount: 450000, Currency: "RUB"}},
		},
		{
			ID:                  "mock-loan-external-1",
			AgreementID:         "mock-loan-external-1",
			Source:              models.SourceExternal,
			ProductType:         "loan",
			Amount:              900000,
			Currency:            "RUB",
			InterestRate:        floatPtr(9.2),
			TermMonths:          intPtr(96),
			RemainingTermMonths: intPtr(96),
			OriginBank:          "vbank",
			AccountNumber:       "40817810099910001234",
			Balance:             []models.Balance{{Amount: 900000, Currency: "RUB"}},
		},
	}
}

// GetMockBankProducts returns raw (pre-normalization) catalog records in the
// shapes partner catalogs actually emit, so mock mode exercises the same
// normalization path as live traffic.
func GetMockBankProducts() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":             "mock-refi-9",
			"bank_code":      "self",
			"name":           "Wow Credit 9% (mock)",
			"min_rate":       9.0,
			"max_rate":       9.0,
			"term_months":    map[string]interface{}{"min": 12.0, "max": 60.0},
			"max_amount":     1500000.0,
			"processing_fee": 0.0,
		},
		{
			"id":             "mock-refi-1",
			"bank_code":      "vbank",
			"name":           "VBank Refinancing 9.5%",
			"min_rate":       9.5,
			"max_rate":       11.0,
			"term_months":    map[string]interface{}{"min": 12.0, "max": 84.0},
			"max_amount":     2000000.0,
			"processing_fee": 0.5,
		},
		{
			"id":             "mock-refi-2",
			"bank_code":      "abank",
			"name":           "ABank Cashback Loan",
			"min_rate":       10.0,
			"max_rate":       12.0,
			"term_months":    map[string]interface{}{"min": 6.0, "max": 84.0},
			"max_amount":     1500000.0,
			"processing_fee": 1.5,
		},
	}
}

// GetMockBankStatus returns static partner-bank health entries for mock mode.
func GetMockBankStatus() []models.BankHealth {
	up := 200
	degraded := 200
	downMsg := "Unreachable"
	return []models.BankHealth{
		{Code: "vbank", Name: "Virtual Bank", Status: models.BankStatusUp, HTTPStatus: &up},
		{Code: "abank", Name: "Awesome Bank", Status: models.BankStatusUp, HTTPStatus: &degraded},
		{Code: "sbank", Name: "Smart Bank", Status: models.BankStatusDown, Message: &downMsg},
	}
}
