package catalog

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/downstreams"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// Resolver collects refinancing products from the configured catalog sources
// in priority order. It never fails: unreachable sources contribute nothing,
// and an entirely empty pass falls back to the built-in sample catalog.
type Resolver struct {
	sources []string
	cache   Cache
	timeout time.Duration
}

// NewResolver builds a resolver over base URLs in priority order; empty
// entries are skipped. cache may be nil.
func NewResolver(sources []string, cache Cache, timeout time.Duration) *Resolver {
	cleaned := make([]string, 0, len(sources))
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source != "" {
			cleaned = append(cleaned, source)
		}
	}
	return &Resolver{sources: cleaned, cache: cache, timeout: timeout}
}

type productsResponse struct {
	Data struct {
		Product []RawProduct `json:"product"`
	} `json:"data"`
}

type bankerProductsResponse struct {
	Products []RawProduct `json:"products"`
}

// Resolve returns the deduplicated catalog. Earlier sources win on productId
// conflicts. The result is never empty.
func (r *Resolver) Resolve(ctx context.Context) []models.CatalogProduct {
	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx); ok && len(cached) > 0 {
			return cached
		}
	}

	var products []models.CatalogProduct
	seen := make(map[string]struct{})

	var expanded []string
	for _, source := range r.sources {
		expanded = append(expanded, expandSourceVariants(source)...)
	}

	for _, source := range expanded {
		for _, product := range r.fetchFromSource(ctx, source) {
			if _, exists := seen[product.ProductID]; exists {
				continue
			}
			seen[product.ProductID] = struct{}{}
			products = append(products, product)
		}
	}

	if len(products) == 0 {
		logger.Warn(ctx, "no catalog products resolved from %d sources, serving sample catalog", len(expanded))
		return SampleCatalog()
	}

	logger.Info(ctx, "loaded %d loan products from %d catalog sources", len(products), len(expanded))
	if r.cache != nil {
		r.cache.Set(ctx, products)
	}
	return products
}

// fetchFromSource tries the OpenBanking catalog endpoint first, then the
// legacy banker endpoint at the same base. Failures degrade to zero products.
func (r *Resolver) fetchFromSource(ctx context.Context, baseURL string) []models.CatalogProduct {
	trimmedBase := strings.TrimRight(baseURL, "/")

	var raw []RawProduct

	var catalogResp productsResponse
	catalogURL := trimmedBase + "/products"
	if _, err := downstreams.GetJSON(ctx, catalogURL, nil, r.timeout, &catalogResp); err != nil {
		logger.Warn(ctx, "failed to load loan products from %s: %v", catalogURL, err)
	} else {
		raw = catalogResp.Data.Product
	}

	if len(raw) == 0 {
		var bankerResp bankerProductsResponse
		bankerURL := trimmedBase + "/banker/products"
		if _, err := downstreams.GetJSON(ctx, bankerURL, nil, r.timeout, &bankerResp); err != nil {
			logger.Warn(ctx, "failed to load banker products from %s: %v", bankerURL, err)
		} else {
			raw = bankerResp.Products
		}
	}

	products := make([]models.CatalogProduct, 0, len(raw))
	for _, record := range raw {
		if normalized := Normalize(record); normalized != nil {
			products = append(products, *normalized)
		}
	}
	return products
}

// expandSourceVariants adds loopback aliases for same-machine and
// containerized deployments. Public hostnames pass through untouched.
func expandSourceVariants(source string) []string {
	parsed, err := url.Parse(source)
	if err != nil || parsed.Hostname() == "" {
		logger.Warn("unable to parse product catalog url %s", source)
		return []string{source}
	}

	variants := []string{parsed.String()}
	hostname := parsed.Hostname()
	if hostname != "localhost" && hostname != "127.0.0.1" {
		return variants
	}

	for _, host := range []string{"127.0.0.1", "host.docker.internal"} {
		if host == hostname {
			continue
		}
		alt := *parsed
		if port := parsed.Port(); port != "" {
			alt.Host = host + ":" + port
		} else {
			alt.Host = host
		}
		variants = append(variants, alt.String())
	}
	return variants
}
