package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/utils/worker"
)

func newMockRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	configs.LoadEnvValues()
	configs.USE_MOCK_DATA = true

	pool := worker.NewPool(1)
	t.Cleanup(pool.Stop)

	return SetupRouter(pool, nil, nil)
}

func perform(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "ok", body["status"])
}

func TestActiveLoansRequiresAuth(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodGet, "/api/loans/active", "", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "Authorization header is required", body["error"])
}

func TestStatusRequiresAuth(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodGet, "/api/refinance/status", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = perform(r, http.MethodGet, "/api/refinance/status", "", map[string]string{"Authorization": "Bearer token"})
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mock", data["source"])
	assert.Len(t, data["banks"], 3)
}

func TestSuggestionsInMockMode(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodGet, "/api/refinance/suggestions", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)

	internal := data[0].(map[string]interface{})
	assert.Nil(t, internal["refinance_offer"])

	external := data[1].(map[string]interface{})
	offer, ok := external["refinance_offer"].(map[string]interface{})
	require.True(t, ok, "the external obligation carries an offer")
	assert.Equal(t, 9.0, offer["suggested_rate"])
	assert.Equal(t, "bank-product", offer["source"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "mock", meta["source"])
	assert.Equal(t, 2.0, meta["total"])
	assert.Equal(t, 3.0, meta["bank_products_considered"])
}

func TestCreateApplicationInMockMode(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodPost, "/api/refinance/applications",
		`{"agreement_id":"agr-1","amount":750000}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "mock-submitted", body["status"])

	agreement := body["data"].(map[string]interface{})["agreement"].(map[string]interface{})
	assert.Equal(t, "agr-mock-agr-1", agreement["agreement_id"])
	assert.Equal(t, 750000.0, agreement["amount"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, true, meta["mock"])
}

func TestCreateApplicationRejectsMissingAgreementID(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodPost, "/api/refinance/applications", `{"amount":750000}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "agreement_id is required", body["error"])
}

func TestBanksHealthIsUnauthenticated(t *testing.T) {
	r := newMockRouter(t)

	recorder := perform(r, http.MethodGet, "/api/refinance/banks/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var banks []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &banks))
	assert.Len(t, banks, 3)
}
