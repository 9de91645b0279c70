package models

// Loan is an existing debt obligation held by the customer, sourced either
// from the core-banking API (source "internal") or from a partner bank
// (source "external"). Loans are built per request and never persisted.
type Loan struct {
	ID                  string    `json:"id,omitempty"`
	AgreementID         string    `json:"agreement_id"`
	Source              string    `json:"source,omitempty"`
	ProductType         string    `json:"product_type,omitempty"`
	Amount              float64   `json:"amount"`
	Currency            string    `json:"currency,omitempty"`
	InterestRate        *float64  `json:"interest_rate,omitempty"`
	TermMonths          *int      `json:"term_months,omitempty"`
	RemainingTermMonths *int      `json:"remaining_term_months,omitempty"`
	OriginBank          string    `json:"origin_bank,omitempty"`
	AccountNumber       string    `json:"account_number,omitempty"`
	AccountID           *string   `json:"account_id,omitempty"`
	Balance             []Balance `json:"balance,omitempty"`
	BalanceError        *APIError `json:"balance_error,omitempty"`
	RefinanceOffer      *Offer    `json:"refinance_offer"`
}

type Balance struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

const (
	SourceInternal = "internal"
	SourceExternal = "external"
	OriginSelf     = "self"
)

// IsExternal reports whether the loan originates at a partner bank. When the
// upstream record carries no explicit source tag, any origin bank other than
// "self" counts as external.
func (l Loan) IsExternal() bool {
	if l.Source != "" {
		return l.Source == SourceExternal
	}
	return l.OriginBank != "" && l.OriginBank != OriginSelf
}
