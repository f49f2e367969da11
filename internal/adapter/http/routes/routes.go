package routes

import (
	"net/http"

	_ "certifica_condo/docs"
	"certifica_condo/internal/adapter/http/handlers"
	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPing    = "/ping"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Tender       *handlers.TenderHandler
	Candidacy    *handlers.CandidacyHandler
	Rating       *handlers.RatingHandler
	Ledger       *handlers.LedgerHandler
	Webhook      *handlers.WebhookHandler
	Checkout     *handlers.CheckoutHandler
	Registration *handlers.RegistrationHandler
}

// Dependencies are built by cmd/api and handed to NewRouter.
type Dependencies struct {
	Handlers      Handlers
	Authenticator *middleware.Authenticator
	WebhookLimit  *middleware.RateLimiter
	Metrics       *observability.Metrics
	Logger        *zap.Logger
}

// NewRouter builds the gin engine with all public and authenticated routes.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	router.GET(PathPing, handlers.Ping)
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET(PathMetrics, gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas publicas
	addPublicRoutes(v1, deps.Handlers)
	addPaymentRoutes(v1, deps.Handlers, deps.WebhookLimit)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(deps.Authenticator.Authenticate())
	addTenderRoutes(authed, deps.Handlers)
	addAccountRoutes(authed, deps.Handlers)
	addCheckoutRoutes(authed, deps.Handlers)
	addAdminRoutes(authed, deps.Handlers)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(observability.GinLogger(logger))
	router.Use(observability.GinTracing())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
