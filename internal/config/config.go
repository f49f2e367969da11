package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
)

// Config holds all application configuration.
// Values are loaded from environment variables with defaults; a .env file is
// picked up by godotenv/autoload in main before Load runs.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Storage
	DatabaseURL string
	AutoMigrate bool

	// Identity
	JWTSecret string
	JWTIssuer string

	// Payment provider
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	PaymentLookupTimeout   time.Duration
	PublicBaseURL          string

	// Payment audit (DynamoDB)
	AWSRegion         string
	DynamoDBEndpoint  string
	PaymentAuditTable string

	// Marketplace rules
	TenderDefaultCost int64
	PlanDuration      time.Duration
	CatalogPath       string

	// Webhook protection
	WebhookRatePerSecond int
	WebhookRateBurst     int

	// Notifications
	NotifyConcurrency int
	NotifyFrom        string

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", false),

		JWTSecret: getEnv("JWT_SECRET", "certifica-condo-dev-secret-change-me"),
		JWTIssuer: getEnv("JWT_ISSUER", "certifica-condo"),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		PaymentGatewayMock:     getEnvBool("PAYMENT_GATEWAY_MOCK", false) || getEnvBool("MERCADOPAGO_MOCK", false),
		PaymentLookupTimeout:   getEnvDuration("PAYMENT_LOOKUP_TIMEOUT", 8*time.Second),
		PublicBaseURL:          strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),

		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		PaymentAuditTable: getEnv("PAYMENT_AUDIT_TABLE", "payment_audit"),

		TenderDefaultCost: int64(getEnvInt("TENDER_DEFAULT_COST", int(entities.DefaultTenderCost))),
		PlanDuration:      getEnvDuration("PLAN_DURATION", 30*24*time.Hour),
		CatalogPath:       getEnv("CATALOG_PATH", ""),

		WebhookRatePerSecond: getEnvInt("WEBHOOK_RATE_PER_SECOND", 20),
		WebhookRateBurst:     getEnvInt("WEBHOOK_RATE_BURST", 40),

		NotifyConcurrency: getEnvInt("NOTIFY_CONCURRENCY", 4),
		NotifyFrom:        getEnv("NOTIFY_FROM", "nao-responda@certificacondo.com.br"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
