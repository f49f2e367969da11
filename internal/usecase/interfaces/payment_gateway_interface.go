package interfaces

import (
	"context"
	"errors"

	"certifica_condo/internal/domain/entities"
)

// ErrProviderResourceNotFound marks a payment or order id the provider can
// never resolve (malformed or unknown). Webhooks acknowledge it without retry.
var ErrProviderResourceNotFound = errors.New("payment resource not found at provider")

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// It is the only source of truth for payment status and metadata; webhook
// bodies only tell the core which ids to look up.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (entities.PaymentDetail, error)
	GetMerchantOrderPayments(ctx context.Context, orderID string) ([]string, error)
	CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
}
