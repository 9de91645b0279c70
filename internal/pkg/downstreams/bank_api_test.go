package downstreams

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

func TestGetProductAgreements_ForwardsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-agreements", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"agreement_id":"agr-1","product_type":"loan","amount":450000}]}`))
	}))
	defer server.Close()

	client := NewBankAPIWithBase(server.URL, "Bearer token", time.Second)
	loans, err := client.GetProductAgreements(context.Background())
	require.Nil(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "agr-1", loans[0].AgreementID)
	assert.Equal(t, 450000.0, loans[0].Amount)
}

func TestGetProductAgreements_RejectionCarriesUpstreamMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"token expired"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewBankAPIWithBase(server.URL, "Bearer stale", time.Second)
	_, err := client.GetProductAgreements(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "token expired", err.Message)
}

func TestGetProductAgreements_TransportFailureMapsTo503(t *testing.T) {
	client := NewBankAPIWithBase("http://192.0.2.1:1", "Bearer token", 200*time.Millisecond)
	_, err := client.GetProductAgreements(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.Equal(t, "Bank API is unavailable. No response received.", err.Message)
}

func TestCreateProductAgreement(t *testing.T) {
	var received models.AgreementPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"agreement_id":"agr-new-1"},"meta":{}}`))
	}))
	defer server.Close()

	client := NewBankAPIWithBase(server.URL, "Bearer token", time.Second)
	payload := models.AgreementPayload{ProductID: "prod-a", Amount: 900000, TermMonths: 84}

	agreement, message, err := client.CreateProductAgreement(context.Background(), payload)
	require.Nil(t, err)
	assert.Equal(t, payload, received)
	assert.Equal(t, "agr-new-1", agreement["agreement_id"])
	assert.Equal(t, "created", message, "a missing meta message defaults to created")
}

func TestGetAccountIndex_SkipsIncompleteEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"account":[
			{"accountId":"id-1","account":[{"identification":"acc-1"}]},
			{"accountId":"","account":[{"identification":"acc-2"}]},
			{"accountId":"id-3","account":[]}
		]}}`))
	}))
	defer server.Close()

	client := NewBankAPIWithBase(server.URL, "Bearer token", time.Second)
	index, err := client.GetAccountIndex(context.Background())
	require.Nil(t, err)
	assert.Equal(t, map[string]string{"acc-1": "id-1"}, index)
}
