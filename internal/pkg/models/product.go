package models

// CatalogProduct is a refinancing product after normalization. Upstream
// catalogs disagree on field names; the normalizer in internal/pkg/catalog
// maps every known shape onto this one.
type CatalogProduct struct {
	ProductID    string   `json:"productId"`
	ProductName  string   `json:"productName"`
	InterestRate float64  `json:"interestRate"`
	MinAmount    *float64 `json:"minAmount"`
	MaxAmount    *float64 `json:"maxAmount"`
	TermMonths   *int     `json:"termMonths"`
}
