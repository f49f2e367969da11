package interfaces

import (
	"context"

	"certifica_condo/internal/domain/entities"
)

// ICoinTransactionRepository is the append-only coin ledger.
// Append returns ErrDuplicateKey when the payment id was already used.

type ICoinTransactionRepository interface {
	Append(ctx context.Context, t entities.CoinTransaction) error
	GetByPaymentID(ctx context.Context, paymentID string) (entities.CoinTransaction, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.CoinTransaction, error)
	SumByCompany(ctx context.Context, companyID string) (int64, error)
}

// IPlanTransactionRepository is the append-only record of plan purchases.

type IPlanTransactionRepository interface {
	Append(ctx context.Context, t entities.PlanTransaction) error
	GetByPaymentID(ctx context.Context, paymentID string) (entities.PlanTransaction, error)
	ListByCondo(ctx context.Context, condoID string) ([]entities.PlanTransaction, error)
}

// IPaymentReceiptRepository holds the global payment-id idempotency key.
//
// Claim inserts the key and returns ErrDuplicateKey if any ledger already
// consumed it. The uniqueness is enforced by storage, not by a prior read.

type IPaymentReceiptRepository interface {
	Claim(ctx context.Context, paymentID string, kind entities.ReceiptKind) error
	Exists(ctx context.Context, paymentID string) (bool, error)
}
