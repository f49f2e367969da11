package entities

import "time"

// TransactionStatus of an append-only ledger row.
type TransactionStatus string

const (
	TransactionStatusConcluida TransactionStatus = "concluida"
)

// CoinTransaction is one append-only ledger row. Quantity is signed:
// positive credits, negative debits. PaymentID is the provider payment id used
// as the global idempotency key; empty when the row is not payment driven.
type CoinTransaction struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	Quantity    int64             `json:"quantity"`
	Description string            `json:"description"`
	PaymentID   string            `json:"payment_id,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PlanTransaction records a paid subscription activation.
type PlanTransaction struct {
	ID        string            `json:"id"`
	CondoID   string            `json:"condo_id"`
	PlanID    string            `json:"plan_id"`
	Amount    float64           `json:"amount"`
	PaymentID string            `json:"payment_id,omitempty"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ReceiptKind names which ledger consumed a payment id.
type ReceiptKind string

const (
	ReceiptKindCoins ReceiptKind = "coins"
	ReceiptKindPlan  ReceiptKind = "plan"
)

// SumQuantities returns the balance implied by a set of coin transactions.
func SumQuantities(txs []CoinTransaction) int64 {
	var total int64
	for _, tx := range txs {
		total += tx.Quantity
	}
	return total
}
