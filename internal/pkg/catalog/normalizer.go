package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/consts"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// RawProduct is an unnormalized catalog record as decoded from an upstream
// response. Different providers name the same attributes differently, so the
// record stays schemaless until Normalize maps it onto models.CatalogProduct.
type RawProduct map[string]interface{}

// Ordered alias lists per logical attribute, first present wins.
var (
	idAliases        = []string{"productId", "product_id", "id"}
	typeAliases      = []string{"productType", "product_type", "type"}
	nameAliases      = []string{"productName", "name"}
	rateAliases      = []string{"interestRate", "interest_rate"}
	termAliases      = []string{"termMonths", "term_months"}
	minAmountAliases = []string{"minAmount", "min_amount"}
	maxAmountAliases = []string{"maxAmount", "max_amount"}
)

// Normalize maps a raw record onto the canonical product schema. It returns
// nil when the record has no resolvable id, no resolvable rate, or is
// explicitly typed as something other than a loan.
func Normalize(raw RawProduct) *models.CatalogProduct {
	productID := resolveString(raw, idAliases)
	if productID == "" {
		return nil
	}

	productType := strings.ToLower(resolveString(raw, typeAliases))
	if productType == "" && looksLikeLoan(raw) {
		productType = consts.LoanProductType
	}
	if productType != "" && productType != consts.LoanProductType {
		return nil
	}

	rate, ok := resolveNumber(raw, rateAliases)
	if !ok {
		if minRate, found := toNumber(raw["min_rate"]); found {
			rate, ok = minRate, true
		} else if maxRate, found := toNumber(raw["max_rate"]); found {
			rate, ok = maxRate, true
		}
	}
	if !ok {
		return nil
	}

	name := resolveString(raw, nameAliases)
	if name == "" {
		name = consts.DefaultProductName
	}

	return &models.CatalogProduct{
		ProductID:    productID,
		ProductName:  name,
		InterestRate: rate,
		MinAmount:    resolveOptionalNumber(raw, minAmountAliases),
		MaxAmount:    resolveOptionalNumber(raw, maxAmountAliases),
		TermMonths:   resolveTermMonths(raw),
	}
}

// looksLikeLoan infers the loan type for records that omit an explicit type
// but carry rate-range or term fields only loan products have.
func looksLikeLoan(raw RawProduct) bool {
	if _, ok := raw["min_rate"]; ok {
		return true
	}
	if _, ok := raw["max_rate"]; ok {
		return true
	}
	if _, ok := raw["term_months"]; ok {
		return true
	}
	return false
}

// resolveTermMonths accepts either a scalar term or a {min,max} range object,
// preferring the range's upper bound.
func resolveTermMonths(raw RawProduct) *int {
	if value, ok := resolveNumber(raw, termAliases); ok {
		term := int(math.Round(value))
		return &term
	}

	for _, alias := range termAliases {
		rangeObj, ok := raw[alias].(map[string]interface{})
		if !ok {
			continue
		}
		if value, found := toNumber(rangeObj["max"]); found {
			term := int(math.Round(value))
			return &term
		}
		if value, found := toNumber(rangeObj["min"]); found {
			term := int(math.Round(value))
			return &term
		}
	}
	return nil
}

func resolveString(raw RawProduct, aliases []string) string {
	for _, alias := range aliases {
		switch value := raw[alias].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
	return ""
}

func resolveNumber(raw RawProduct, aliases []string) (float64, bool) {
	for _, alias := range aliases {
		if value, ok := toNumber(raw[alias]); ok {
			return value, true
		}
	}
	return 0, false
}

func resolveOptionalNumber(raw RawProduct, aliases []string) *float64 {
	if value, ok := resolveNumber(raw, aliases); ok {
		return &value
	}
	return nil
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case fmt.Stringer:
		parsed, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
