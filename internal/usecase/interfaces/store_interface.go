package interfaces

import (
	"context"
	"errors"
)

// ErrDuplicateKey is returned by repositories when a uniqueness constraint
// rejects a write (candidacy per tender/company, rating per tender, payment id).
var ErrDuplicateKey = errors.New("duplicate key")

// IStore is the unit of work over every repository used by the core.
//
// WithinTx runs fn in a single read-write transaction: either every write made
// through tx commits, or none does. Rows read with the ForUpdate variants stay
// locked until fn returns. View runs fn in a read-only transaction.

type IStore interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx IStoreTx) error) error
	View(ctx context.Context, fn func(ctx context.Context, tx IStoreTx) error) error
}

// IStoreTx exposes the repositories bound to one transaction.
type IStoreTx interface {
	Companies() ICompanyRepository
	Condos() ICondoRepository
	Tenders() ITenderRepository
	Candidacies() ICandidacyRepository
	CoinTransactions() ICoinTransactionRepository
	PlanTransactions() IPlanTransactionRepository
	Ratings() IRatingRepository
	PaymentReceipts() IPaymentReceiptRepository
}
