package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"certifica_condo/internal/adapter/http/handlers"
	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/adapter/http/routes"
	"certifica_condo/internal/adapter/persistence/memory"
	"certifica_condo/internal/adapter/persistence/postgres"
	"certifica_condo/internal/adapter/persistence/repository"
	"certifica_condo/internal/config"
	"certifica_condo/internal/infrastructure/database"
	"certifica_condo/internal/infrastructure/notification"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/infrastructure/payments"
	"certifica_condo/internal/infrastructure/resilience"
	"certifica_condo/internal/migrate"
	"certifica_condo/internal/usecase"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Certifica Condo API
// @version         1.0
// @description     Condo service tenders, coin ledger and Mercado Pago reconciliation.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const serviceName = "certifica-condo"

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.OTLPEndpoint, serviceName)
	if err != nil {
		logger.Fatal("[app][main] failed to init tracer", zap.Error(err))
	}

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("[app][main] failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	store, db := openStore(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	metrics := observability.NewMetrics()

	gateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken: cfg.MercadoPagoAccessToken,
		MockMode:    cfg.PaymentGatewayMock,
		Guard:       resilience.NewGuard(resilience.NewCircuitBreaker("mercadopago"), cfg.PaymentLookupTimeout),
		Metrics:     metrics,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("[app][main] mercado pago gateway not configured", zap.Error(err))
	}

	notifier := usecase.NewNotifier(notification.NewLogSender(logger, cfg.NotifyFrom), logger, metrics, cfg.NotifyConcurrency)

	tenderUC := usecase.NewTenderUseCase(store, notifier, logger, metrics, cfg.TenderDefaultCost)
	candidacyUC := usecase.NewCandidacyUseCase(store, logger, metrics)
	ratingUC := usecase.NewRatingUseCase(store, logger)
	ledgerUC := usecase.NewCoinLedgerUseCase(store, logger, metrics)
	webhookUC := usecase.NewPaymentWebhookUseCase(store, gateway, openPaymentAudit(ctx, cfg, logger), catalog, cfg.PlanDuration, logger, metrics)
	checkoutUC := usecase.NewCheckoutUseCase(store, gateway, catalog, cfg.PublicBaseURL, logger)
	registrationUC := usecase.NewRegistrationUseCase(store, logger)

	router := routes.NewRouter(routes.Dependencies{
		Handlers: routes.Handlers{
			Tender:       handlers.NewTenderHandler(tenderUC),
			Candidacy:    handlers.NewCandidacyHandler(candidacyUC),
			Rating:       handlers.NewRatingHandler(ratingUC),
			Ledger:       handlers.NewLedgerHandler(ledgerUC),
			Webhook:      handlers.NewWebhookHandler(webhookUC, logger),
			Checkout:     handlers.NewCheckoutHandler(checkoutUC),
			Registration: handlers.NewRegistrationHandler(registrationUC),
		},
		Authenticator: middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer),
		WebhookLimit:  middleware.NewRateLimiter(cfg.WebhookRatePerSecond, cfg.WebhookRateBurst),
		Metrics:       metrics,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[app][main] server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("[app][main] server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("[app][main] server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[app][main] forced shutdown", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("[app][main] tracer shutdown failed", zap.Error(err))
	}
	logger.Info("[app][main] server stopped")
}

// openStore returns the Postgres store when DATABASE_URL is set and the
// in-process store otherwise.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IStore, *sql.DB) {
	if cfg.DatabaseURL == "" {
		logger.Warn("[app][main] DATABASE_URL not set, using in-memory store")
		return memory.NewStore(), nil
	}

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("[app][main] failed to connect to postgres", zap.Error(err))
	}
	if cfg.AutoMigrate {
		applied, err := migrate.NewManager(db).Up(ctx)
		if err != nil {
			logger.Fatal("[app][main] migrations failed", zap.Error(err))
		}
		logger.Info("[app][main] migrations applied", zap.Strings("files", applied))
	}
	return postgres.NewStore(db), db
}

// openPaymentAudit returns nil when PAYMENT_AUDIT_TABLE is empty; reconciliation
// then runs without an audit trail.
func openPaymentAudit(ctx context.Context, cfg *config.Config, logger *zap.Logger) interfaces.IPaymentAuditRepository {
	if cfg.PaymentAuditTable == "" {
		logger.Info("[app][main] payment audit disabled")
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	if err != nil {
		logger.Warn("[app][main] dynamodb unavailable, payment audit disabled", zap.Error(err))
		return nil
	}
	return repository.NewPaymentAuditDynamoRepository(ddb, cfg.PaymentAuditTable)
}
