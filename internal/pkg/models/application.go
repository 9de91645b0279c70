package models

// ApplicationRequest is the body of POST /api/refinance/applications.
// Everything beyond the agreement id is an optional override; the resolver
// reconciles overrides with the computed offer and the product bounds.
type ApplicationRequest struct {
	AgreementID       string   `json:"agreement_id" binding:"required"`
	DesiredTermMonths *float64 `json:"desired_term_months"`
	ProductID         string   `json:"product_id"`
	Amount            *float64 `json:"amount"`
	OfferTermMonths   *float64 `json:"offer_term_months"`
	Comment           string   `json:"comment"`
	ForceReal         bool     `json:"force_real"`
}

// AgreementPayload is the creation call issued to the core-banking API.
type AgreementPayload struct {
	ProductID  string  `json:"product_id"`
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"term_months"`
}

// ApplicationResult is the resolved outcome returned to the caller,
// augmented with a snapshot of the loan and offer the decision was based on.
type ApplicationResult struct {
	Status       string                 `json:"status"`
	Agreement    map[string]interface{} `json:"agreement"`
	AgreementID  string                 `json:"agreement_id"`
	ProductID    string                 `json:"product_id"`
	Amount       float64                `json:"amount"`
	TermMonths   int                    `json:"term_months"`
	Comment      string                 `json:"comment,omitempty"`
	Offer        *Offer                 `json:"offer"`
	LoanSnapshot *Loan                  `json:"loan_snapshot"`
}

// ApplicationAuditEvent is published to Kafka after a successful creation
// call, keyed by the originating agreement id.
type ApplicationAuditEvent struct {
	EventID     string  `json:"event_id"`
	AgreementID string  `json:"agreement_id"`
	ProductID   string  `json:"product_id"`
	Amount      float64 `json:"amount"`
	TermMonths  int     `json:"term_months"`
	CreatedAt   string  `json:"created_at"`
}
