package downstreams

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// BankAPI is the client for the internal core-banking API. The caller's
// bearer token is forwarded verbatim on every call; the engine never mints
// or validates tokens itself.
type BankAPI struct {
	baseURL    string
	authHeader string
	timeout    time.Duration
}

func NewBankAPI(authHeader string) *BankAPI {
	return NewBankAPIWithBase(configs.BANK_API_BASE_URL, authHeader, configs.BankAPITimeout())
}

func NewBankAPIWithBase(baseURL, authHeader string, timeout time.Duration) *BankAPI {
	return &BankAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: authHeader,
		timeout:    timeout,
	}
}

func (c *BankAPI) headers() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	if c.authHeader != "" {
		h["Authorization"] = c.authHeader
	}
	return h
}

// asAPIError maps a transport failure to the UpstreamUnavailable taxonomy;
// rejected (non-2xx) calls already arrive shaped by GetJSON.
func asAPIError(err error) *models.APIError {
	if apiErr, ok := err.(*models.APIError); ok {
		return apiErr
	}
	return models.UpstreamUnavailable("Bank API is unavailable. No response received.")
}

type agreementsResponse struct {
	Data []models.Loan `json:"data"`
}

// GetProductAgreements fetches all product agreements held by the customer.
func (c *BankAPI) GetProductAgreements(ctx context.Context) ([]models.Loan, *models.APIError) {
	var resp agreementsResponse
	if _, err := GetJSON(ctx, c.baseURL+"/product-agreements", c.headers(), c.timeout, &resp); err != nil {
		return nil, asAPIError(err)
	}
	return resp.Data, nil
}

type accountsResponse struct {
	Data struct {
		Account []struct {
			AccountID string `json:"accountId"`
			Account   []struct {
				Identification string `json:"identification"`
			} `json:"account"`
		} `json:"account"`
	} `json:"data"`
}

// GetAccountIndex returns the account-number to account-id index used to
// resolve balances for loan agreements.
func (c *BankAPI) GetAccountIndex(ctx context.Context) (map[string]string, *models.APIError) {
	var resp accountsResponse
	if _, err := GetJSON(ctx, c.baseURL+"/accounts", c.headers(), c.timeout, &resp); err != nil {
		return nil, asAPIError(err)
	}

	index := make(map[string]string)
	for _, entry := range resp.Data.Account {
		if entry.AccountID == "" || len(entry.Account) == 0 {
			continue
		}
		if number := entry.Account[0].Identification; number != "" {
			index[number] = entry.AccountID
		}
	}
	return index, nil
}

type balancesResponse struct {
	Data struct {
		Balance []models.Balance `json:"balance"`
	} `json:"data"`
}

// GetAccountBalances fetches the balances for one account.
func (c *BankAPI) GetAccountBalances(ctx context.Context, accountID string) ([]models.Balance, *models.APIError) {
	var resp balancesResponse
	if _, err := GetJSON(ctx, c.baseURL+"/accounts/"+accountID+"/balances", c.headers(), c.timeout, &resp); err != nil {
		return nil, asAPIError(err)
	}
	if resp.Data.Balance == nil {
		return []models.Balance{}, nil
	}
	return resp.Data.Balance, nil
}

type createAgreementResponse struct {
	Data map[string]interface{} `json:"data"`
	Meta struct {
		Message string `json:"message"`
	} `json:"meta"`
}

// CreateProductAgreement issues the single downstream creation call for a
// resolved refinance application.
func (c *BankAPI) CreateProductAgreement(ctx context.Context, payload models.AgreementPayload) (map[string]interface{}, string, *models.APIError) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", models.AsAPIError(err)
	}

	body, status, callErr := makeAPICall(ctx, c.baseURL+"/product-agreements", http.MethodPost, c.headers(), bytes.NewReader(encoded), c.timeout)
	if callErr != nil {
		return nil, "", asAPIError(callErr)
	}
	if status < 200 || status >= 300 {
		return nil, "", upstreamRejected(status, body)
	}

	var resp createAgreementResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", models.AsAPIError(err)
	}

	message := resp.Meta.Message
	if message == "" {
		message = "created"
	}
	return resp.Data, message, nil
}
