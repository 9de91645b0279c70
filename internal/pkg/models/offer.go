package models

// Offer is a computed refinancing recommendation tying one loan to one
// catalog product. Offers are recomputed on every request.
type Offer struct {
	LoanID            string           `json:"loan_id"`
	OriginalRate      *float64         `json:"original_rate"`
	SuggestedRate     float64          `json:"suggested_rate"`
	MonthlyPayment    float64          `json:"monthly_payment"`
	TotalCost         float64          `json:"total_cost"`
	Savings           float64          `json:"savings"`
	Source            string           `json:"source"`
	ProductID         *string          `json:"product_id"`
	ProductName       string           `json:"product_name"`
	ProductTermMonths *int             `json:"product_term_months"`
	Assumptions       OfferAssumptions `json:"assumptions"`
}

// OfferAssumptions records the inputs the offer computation settled on, so a
// later application call can reuse exactly what the customer was shown.
type OfferAssumptions struct {
	TermMonths int     `json:"term_months"`
	Principal  float64 `json:"principal"`
}

const OfferSourceBankProduct = "bank-product"
