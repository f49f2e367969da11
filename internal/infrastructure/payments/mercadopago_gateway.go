package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/ids"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/infrastructure/resilience"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderID               = errors.New("invalid provider id")
)

// Options configure the gateway. Guard and Metrics may be nil.
type Options struct {
	AccessToken string
	MockMode    bool
	Guard       *resilience.Guard
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

type MercadoPagoGateway struct {
	payments    payment.Client
	orders      merchantorder.Client
	preferences preference.Client

	guard   *resilience.Guard
	metrics *observability.Metrics
	logger  *zap.Logger

	mockMode bool
	mu       sync.Mutex
	// payment id -> metadata of checkouts opened in mock mode
	mockCheckouts map[string]entities.CheckoutRequest
}

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &MercadoPagoGateway{guard: opts.Guard, metrics: opts.Metrics, logger: logger}

	if opts.MockMode {
		logger.Info("[payment][gateway] mock mode enabled")
		g.mockMode = true
		g.mockCheckouts = make(map[string]entities.CheckoutRequest)
		return g, nil
	}

	if opts.AccessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	g.payments = payment.NewClient(cfg)
	g.orders = merchantorder.NewClient(cfg)
	g.preferences = preference.NewClient(cfg)
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return g, nil
}

// providerPayment is the subset of the provider payment we rely on.
type providerPayment struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	TransactionAmount float64        `json:"transaction_amount"`
	ExternalReference string         `json:"external_reference"`
	Metadata          map[string]any `json:"metadata"`
}

type providerOrder struct {
	Payments []struct {
		ID int64 `json:"id"`
	} `json:"payments"`
}

// GetPayment fetches the authoritative payment from the provider.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.PaymentDetail, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(paymentID), nil
	}
	if g == nil || g.payments == nil {
		return entities.PaymentDetail{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := parseProviderID(paymentID)
	if err != nil {
		return entities.PaymentDetail{}, err
	}

	var (
		raw     []byte
		missing bool
	)
	err = g.call(ctx, "get_payment", func(ctx context.Context) error {
		resp, err := g.payments.Get(ctx, id)
		if isNotFound(err) {
			missing = true
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = json.Marshal(resp)
		return err
	})
	if err == nil && missing {
		g.logger.Info("[payment][gateway] payment not found", zap.String("payment_id", paymentID))
		return entities.PaymentDetail{}, fmt.Errorf("%w: payment %s", interfaces.ErrProviderResourceNotFound, paymentID)
	}
	if err != nil {
		g.logger.Warn("[payment][gateway] get payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.PaymentDetail{}, err
	}

	var p providerPayment
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.PaymentDetail{}, fmt.Errorf("decode provider payment: %w", err)
	}
	g.logger.Debug("[payment][gateway] get payment success", zap.String("payment_id", paymentID), zap.String("status", p.Status))

	return entities.PaymentDetail{
		ID:                strconv.FormatInt(p.ID, 10),
		Status:            entities.PaymentStatus(p.Status),
		StatusDetail:      p.StatusDetail,
		Amount:            p.TransactionAmount,
		ExternalReference: p.ExternalReference,
		Metadata:          p.Metadata,
		Raw:               raw,
	}, nil
}

// GetMerchantOrderPayments lists the payment ids wrapped by an order.
func (g *MercadoPagoGateway) GetMerchantOrderPayments(ctx context.Context, orderID string) ([]string, error) {
	if g != nil && g.mockMode {
		return []string{orderID}, nil
	}
	if g == nil || g.orders == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := parseProviderID(orderID)
	if err != nil {
		return nil, err
	}

	var (
		raw     []byte
		missing bool
	)
	err = g.call(ctx, "get_merchant_order", func(ctx context.Context) error {
		resp, err := g.orders.Get(ctx, id)
		if isNotFound(err) {
			missing = true
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = json.Marshal(resp)
		return err
	})
	if err == nil && missing {
		g.logger.Info("[payment][gateway] merchant order not found", zap.String("order_id", orderID))
		return nil, fmt.Errorf("%w: merchant order %s", interfaces.ErrProviderResourceNotFound, orderID)
	}
	if err != nil {
		g.logger.Warn("[payment][gateway] get merchant order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	var order providerOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode merchant order: %w", err)
	}
	out := make([]string, 0, len(order.Payments))
	for _, p := range order.Payments {
		if p.ID > 0 {
			out = append(out, strconv.FormatInt(p.ID, 10))
		}
	}
	return out, nil
}

// CreateCheckout opens a checkout preference carrying the purchase metadata.
func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		return g.mockCheckout(req), nil
	}
	if g == nil || g.preferences == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	body, err := json.Marshal(preferencePayload(req))
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	var prefReq preference.Request
	if err := json.Unmarshal(body, &prefReq); err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("build preference request: %w", err)
	}

	var session entities.CheckoutSession
	err = g.call(ctx, "create_checkout", func(ctx context.Context) error {
		resp, err := g.preferences.Create(ctx, prefReq)
		if err != nil {
			return err
		}
		session = entities.CheckoutSession{ID: resp.ID, CheckoutURL: resp.InitPoint}
		return nil
	})
	if err != nil {
		g.logger.Warn("[payment][gateway] create checkout failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Info("[payment][gateway] checkout created", zap.String("preference_id", session.ID), zap.String("external_reference", req.ExternalReference))
	return session, nil
}

func (g *MercadoPagoGateway) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()
	defer func() { g.metrics.ObserveProvider(op, time.Since(start).Seconds()) }()
	return g.guard.Do(ctx, fn)
}

func preferencePayload(req entities.CheckoutRequest) map[string]any {
	payload := map[string]any{
		"items": []map[string]any{{
			"title":       req.Title,
			"quantity":    req.Quantity,
			"unit_price":  req.UnitPrice,
			"currency_id": "BRL",
		}},
		"external_reference": req.ExternalReference,
		"metadata":           req.Metadata,
	}
	if req.PayerEmail != "" {
		payload["payer"] = map[string]any{"email": req.PayerEmail}
	}
	if req.SuccessURL != "" || req.FailureURL != "" || req.PendingURL != "" {
		payload["back_urls"] = map[string]any{
			"success": req.SuccessURL,
			"failure": req.FailureURL,
			"pending": req.PendingURL,
		}
		payload["auto_return"] = "approved"
	}
	if req.NotificationURL != "" {
		payload["notification_url"] = req.NotificationURL
	}
	return payload
}

// parseProviderID rejects ids the provider cannot hold. The error also
// matches interfaces.ErrProviderResourceNotFound.
func parseProviderID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %w: %q", interfaces.ErrProviderResourceNotFound, ErrInvalidProviderID, id)
	}
	return n, nil
}

// isNotFound reports a provider answer that no redelivery will change. The
// breaker does not count it as a failure.
func isNotFound(err error) bool {
	var re *mperror.ResponseError
	if !errors.As(err, &re) {
		return false
	}
	return re.StatusCode == http.StatusNotFound || re.StatusCode == http.StatusBadRequest
}

// In mock mode the checkout id doubles as the payment id so a test webhook
// for it resolves to an approved payment with the original metadata.
func (g *MercadoPagoGateway) mockCheckout(req entities.CheckoutRequest) entities.CheckoutSession {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	g.mu.Lock()
	g.mockCheckouts[id] = req
	g.mu.Unlock()
	g.logger.Info("[payment][gateway] mock checkout created", zap.String("payment_id", id))
	return entities.CheckoutSession{ID: id, CheckoutURL: "https://mock.mercadopago.local/checkout/" + id + "?ref=" + ids.New()}
}

func (g *MercadoPagoGateway) mockPayment(paymentID string) entities.PaymentDetail {
	g.mu.Lock()
	req, ok := g.mockCheckouts[paymentID]
	g.mu.Unlock()

	detail := entities.PaymentDetail{
		ID:           paymentID,
		Status:       entities.PaymentStatusApproved,
		StatusDetail: "accredited",
	}
	if ok {
		detail.Amount = req.UnitPrice * float64(req.Quantity)
		detail.ExternalReference = req.ExternalReference
		detail.Metadata = req.Metadata
	}
	detail.Raw, _ = json.Marshal(detail)
	return detail
}
