package models

// BankHealth summarizes the reachability of one partner bank.
type BankHealth struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	BaseURL    string  `json:"baseUrl"`
	Status     string  `json:"status"`
	HealthURL  string  `json:"healthUrl"`
	HTTPStatus *int    `json:"httpStatus"`
	Message    *string `json:"message"`
}

const (
	BankStatusUp   = "up"
	BankStatusDown = "down"
)
