package response

import (
	"time"

	"certifica_condo/internal/domain/entities"
)

type BalanceResponse struct {
	CompanyID string `json:"company_id"`
	Balance   int64  `json:"balance"`
}

type CoinTransactionResponse struct {
	ID          string    `json:"id"`
	Quantity    int64     `json:"quantity"`
	Description string    `json:"description"`
	PaymentID   string    `json:"payment_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCoinTransactions(txs []entities.CoinTransaction) []CoinTransactionResponse {
	out := make([]CoinTransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, CoinTransactionResponse{
			ID:          t.ID,
			Quantity:    t.Quantity,
			Description: t.Description,
			PaymentID:   t.PaymentID,
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}

type CheckoutResponse struct {
	CheckoutID  string `json:"checkout_id"`
	CheckoutURL string `json:"checkout_url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{CheckoutID: s.ID, CheckoutURL: s.CheckoutURL}
}

// WebhookResponse acknowledges a provider notification. Outcomes lists what
// happened to each payment id; Ignored is set when nothing could be looked up.
type WebhookResponse struct {
	Received bool                      `json:"received"`
	Ignored  bool                      `json:"ignored,omitempty"`
	Outcomes []entities.PaymentOutcome `json:"outcomes"`
}

func NewWebhookResponse(outcomes []entities.PaymentOutcome) WebhookResponse {
	if outcomes == nil {
		outcomes = []entities.PaymentOutcome{}
	}
	return WebhookResponse{Received: true, Outcomes: outcomes}
}
