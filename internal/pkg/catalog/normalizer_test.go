package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AliasResolution(t *testing.T) {
	raw := RawProduct{
		"product_id":  "prod-1",
		"name":        "Refi Loan",
		"min_rate":    8.5,
		"max_rate":    10.0,
		"term_months": map[string]interface{}{"min": 12.0, "max": 84.0},
		"max_amount":  2000000.0,
	}

	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, "prod-1", got.ProductID)
	assert.Equal(t, "Refi Loan", got.ProductName)
	assert.Equal(t, 8.5, got.InterestRate, "rate range resolves to the lower bound")
	require.NotNil(t, got.TermMonths)
	assert.Equal(t, 84, *got.TermMonths, "term range resolves to the upper bound")
	assert.Nil(t, got.MinAmount)
	require.NotNil(t, got.MaxAmount)
	assert.Equal(t, 2000000.0, *got.MaxAmount)
}

func TestNormalize_ExplicitFieldsWinOverRanges(t *testing.T) {
	raw := RawProduct{
		"productId":    "prod-2",
		"productName":  "Direct Rate",
		"interestRate": 7.25,
		"min_rate":     9.0,
		"termMonths":   36.0,
	}

	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, 7.25, got.InterestRate)
	require.NotNil(t, got.TermMonths)
	assert.Equal(t, 36, *got.TermMonths)
}

func TestNormalize_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
	}{
		{
			name: "missing id",
			raw:  RawProduct{"interest_rate": 9.0},
		},
		{
			name: "missing rate",
			raw:  RawProduct{"id": "prod-3", "name": "No Rate"},
		},
		{
			name: "non-loan type",
			raw:  RawProduct{"id": "prod-4", "type": "deposit", "interest_rate": 5.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Normalize(tt.raw))
		})
	}
}

func TestNormalize_InfersLoanTypeFromRangeFields(t *testing.T) {
	raw := RawProduct{
		"id":       "prod-5",
		"min_rate": 9.0,
	}
	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, 9.0, got.InterestRate)
}

func TestNormalize_NumericIDIsStringified(t *testing.T) {
	raw := RawProduct{
		"id":            42.0,
		"interest_rate": 11.0,
	}
	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, "42", got.ProductID)
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize(RawProduct{
		"product_id":  "prod-6",
		"name":        "Stable",
		"min_rate":    9.5,
		"term_months": map[string]interface{}{"max": 60.0},
		"max_amount":  1500000.0,
	})
	require.NotNil(t, first)

	// Round-trip the normalized record through its canonical field names.
	payload, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped RawProduct
	require.NoError(t, json.Unmarshal(payload, &roundTripped))

	second := Normalize(roundTripped)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}
