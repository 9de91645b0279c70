package consts

const (
	// DefaultFallbackTermMonths is assumed when neither the loan nor the
	// selected product carries a usable term.
	DefaultFallbackTermMonths = 24

	// DefaultAssumedOriginalRate is the baseline annual rate used for the
	// savings comparison when the obligation does not report its own rate.
	DefaultAssumedOriginalRate = 15.0

	// DefaultProductName labels normalized products that arrive without one.
	DefaultProductName = "Bank credit offer"

	LoanProductType = "loan"

	CatalogCacheKey = "refinance:catalog"
)
