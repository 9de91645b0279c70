package catalog

import (
	"github.com/jsenjoyer123/OptiFi/internal/pkg/mockdata"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// SampleCatalog is the built-in fallback served when every catalog source
// came back empty, so the offer engine always has candidates. The samples go
// through the same normalization path as live records.
func SampleCatalog() []models.CatalogProduct {
	raw := mockdata.GetMockBankProducts()
	products := make([]models.CatalogProduct, 0, len(raw))
	for _, record := range raw {
		if normalized := Normalize(record); normalized != nil {
			products = append(products, *normalized)
		}
	}
	return products
}
