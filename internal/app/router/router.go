package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/app/handlers"
	"github.com/jsenjoyer123/OptiFi/internal/app/middleware"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/catalog"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/consts"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/services"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/utils/worker"
)

// SetupRouter wires the strategy implementations selected by configuration
// into the HTTP surface. redisClient and auditPublisher may be nil.
func SetupRouter(workerPool *worker.Pool, redisClient *redis.Client, auditPublisher services.AuditPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	var loanSource services.LoanSource
	var catalogSource services.CatalogSource
	var creator services.AgreementCreator

	if configs.USE_MOCK_DATA {
		loanSource = services.MockLoanSource{}
		catalogSource = services.MockCatalogSource{}
		creator = services.NewLiveAgreementCreator(nil)
	} else {
		live := services.NewLiveLoanSource(configs.EXTERNAL_BANKS, configs.ExternalBankTimeout(), nil)
		if configs.USE_MOCK_EXTERNAL_BANKS {
			loanSource = services.MockExternalLoanSource{LiveLoanSource: live}
		} else {
			loanSource = live
		}

		var cache catalog.Cache
		if redisClient != nil {
			cache = catalog.NewRedisCache(redisClient, consts.CatalogCacheKey, time.Duration(configs.CATALOG_CACHE_TTL_SECONDS)*time.Second)
		}
		resolver := catalog.NewResolver([]string{
			configs.LOCAL_PRODUCT_CATALOG_BASE_URL,
			configs.BANK_API_BASE_URL,
			configs.ADDITIONAL_PRODUCT_CATALOG_URL,
		}, cache, configs.BankAPITimeout())
		catalogSource = services.NewLiveCatalogSource(resolver)
		creator = services.NewLiveAgreementCreator(nil)
	}

	aggregator := services.NewAggregatorService(loanSource)
	offers := services.NewOfferService(configs.PROMO_PRODUCT_KEYWORD)
	suggestions := services.NewSuggestionService(aggregator, catalogSource, offers)
	applications := services.NewApplicationService(suggestions, creator, auditPublisher, workerPool)
	health := services.NewHealthService(configs.EXTERNAL_BANKS, configs.ExternalBankTimeout(), configs.USE_MOCK_DATA)

	loansHandler := handlers.NewLoansHandler(aggregator)
	refinanceHandler := handlers.NewRefinanceHandler(suggestions, applications, health, configs.USE_MOCK_DATA, configs.FORCE_REAL_REFINANCE_APPLICATIONS)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   configs.SERVICE_NAME,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.GET("/loans/active", middleware.RequireAuth(), loansHandler.ActiveLoans)

	refinance := api.Group("/refinance")
	refinance.GET("/suggestions", refinanceHandler.Suggestions)
	refinance.POST("/applications", refinanceHandler.CreateApplication)
	refinance.GET("/status", middleware.RequireAuth(), refinanceHandler.Status)
	refinance.GET("/banks/health", refinanceHandler.BanksHealth)

	return r
}
