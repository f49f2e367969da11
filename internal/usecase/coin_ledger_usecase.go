package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/ids"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICoinLedgerUseCase is the append-only coin ledger behind a company balance.
//
// The cached balance on the company row only changes through Credit and Debit,
// always in the same transaction as the ledger row.
type ICoinLedgerUseCase interface {
	Credit(ctx context.Context, companyID string, amount int64, description, paymentRef string) (entities.CoinTransaction, error)
	Debit(ctx context.Context, companyID string, amount int64, description string) (entities.CoinTransaction, error)
	Balance(ctx context.Context, actor entities.Actor, companyID string) (int64, error)
	ListTransactions(ctx context.Context, actor entities.Actor, companyID string) ([]entities.CoinTransaction, error)
	VerifyBalance(ctx context.Context, actor entities.Actor, companyID string) (LedgerAudit, error)
}

// LedgerAudit compares the cached balance with the sum of ledger rows.
type LedgerAudit struct {
	CompanyID     string `json:"company_id"`
	CachedBalance int64  `json:"cached_balance"`
	LedgerSum     int64  `json:"ledger_sum"`
	Consistent    bool   `json:"consistent"`
}

type CoinLedgerUseCase struct {
	store   interfaces.IStore
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

var _ ICoinLedgerUseCase = (*CoinLedgerUseCase)(nil)

func NewCoinLedgerUseCase(store interfaces.IStore, logger *zap.Logger, metrics *observability.Metrics) *CoinLedgerUseCase {
	return &CoinLedgerUseCase{store: store, logger: orNop(logger), metrics: metrics, now: utcNow}
}

// Credit adds coins. A paymentRef already credited makes the call a no-op
// returning the existing transaction; one consumed by a plan purchase fails
// with ErrPaymentRefConsumed.
func (u *CoinLedgerUseCase) Credit(ctx context.Context, companyID string, amount int64, description, paymentRef string) (entities.CoinTransaction, error) {
	var created entities.CoinTransaction
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetForUpdate(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		created, err = creditLocked(ctx, tx, company, amount, description, paymentRef, u.now())
		return err
	})
	if errors.Is(err, errPaymentAlreadyApplied) {
		u.metrics.RecordLedger("credit", "replay")
		u.logger.Info("[ledger][usecase] credit replay ignored", zap.String("company_id", companyID), zap.String("payment_id", paymentRef))
		existing, err := u.transactionByPayment(ctx, paymentRef)
		if err != nil {
			return entities.CoinTransaction{}, err
		}
		if existing.ID == "" {
			return entities.CoinTransaction{}, fmt.Errorf("%w: %s", ErrPaymentRefConsumed, paymentRef)
		}
		return existing, nil
	}
	if err != nil {
		u.metrics.RecordLedger("credit", "error")
		return entities.CoinTransaction{}, err
	}
	u.metrics.RecordLedger("credit", "ok")
	u.logger.Info("[ledger][usecase] credit applied", zap.String("company_id", companyID), zap.Int64("amount", amount), zap.String("tx_id", created.ID))
	return created, nil
}

func (u *CoinLedgerUseCase) Debit(ctx context.Context, companyID string, amount int64, description string) (entities.CoinTransaction, error) {
	var created entities.CoinTransaction
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetForUpdate(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		created, err = debitLocked(ctx, tx, company, amount, description, u.now())
		return err
	})
	if err != nil {
		u.metrics.RecordLedger("debit", "error")
		return entities.CoinTransaction{}, err
	}
	u.metrics.RecordLedger("debit", "ok")
	u.logger.Info("[ledger][usecase] debit applied", zap.String("company_id", companyID), zap.Int64("amount", amount), zap.String("tx_id", created.ID))
	return created, nil
}

func (u *CoinLedgerUseCase) Balance(ctx context.Context, actor entities.Actor, companyID string) (int64, error) {
	if !actor.IsAdmin() && !actor.IsEmpresa(companyID) {
		return 0, ErrForbidden
	}
	var balance int64
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		balance = company.Balance
		return nil
	})
	return balance, err
}

func (u *CoinLedgerUseCase) ListTransactions(ctx context.Context, actor entities.Actor, companyID string) ([]entities.CoinTransaction, error) {
	if !actor.IsAdmin() && !actor.IsEmpresa(companyID) {
		return nil, ErrForbidden
	}
	var out []entities.CoinTransaction
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		out, err = tx.CoinTransactions().ListByCompany(ctx, companyID)
		return err
	})
	return out, err
}

// VerifyBalance is an admin audit of the balance == sum(ledger) invariant.
func (u *CoinLedgerUseCase) VerifyBalance(ctx context.Context, actor entities.Actor, companyID string) (LedgerAudit, error) {
	if !actor.IsAdmin() {
		return LedgerAudit{}, ErrForbidden
	}
	audit := LedgerAudit{CompanyID: companyID}
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		audit.CachedBalance = company.Balance
		audit.LedgerSum, err = tx.CoinTransactions().SumByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return LedgerAudit{}, err
	}
	audit.Consistent = audit.CachedBalance == audit.LedgerSum
	if !audit.Consistent {
		u.logger.Error("[ledger][usecase] balance drift detected",
			zap.String("company_id", companyID),
			zap.Int64("cached", audit.CachedBalance),
			zap.Int64("sum", audit.LedgerSum))
	}
	return audit, nil
}

func (u *CoinLedgerUseCase) transactionByPayment(ctx context.Context, paymentRef string) (entities.CoinTransaction, error) {
	var existing entities.CoinTransaction
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		existing, err = tx.CoinTransactions().GetByPaymentID(ctx, paymentRef)
		return err
	})
	return existing, err
}

// creditLocked appends a credit for a company row already locked by tx.
// It returns errPaymentAlreadyApplied when paymentRef was consumed before.
func creditLocked(ctx context.Context, tx interfaces.IStoreTx, company entities.Company, amount int64, description, paymentRef string, now time.Time) (entities.CoinTransaction, error) {
	if amount <= 0 {
		return entities.CoinTransaction{}, ErrInvalidAmount
	}
	if paymentRef != "" {
		existing, err := tx.CoinTransactions().GetByPaymentID(ctx, paymentRef)
		if err != nil {
			return entities.CoinTransaction{}, err
		}
		if existing.ID != "" {
			return existing, errPaymentAlreadyApplied
		}
		if err := claimReceipt(ctx, tx, paymentRef, entities.ReceiptKindCoins); err != nil {
			return entities.CoinTransaction{}, err
		}
	}

	t := entities.CoinTransaction{
		ID:          ids.NewLedgerID(),
		CompanyID:   company.ID,
		Quantity:    amount,
		Description: description,
		PaymentID:   paymentRef,
		Status:      entities.TransactionStatusConcluida,
		CreatedAt:   now,
	}
	if err := appendCoinTx(ctx, tx, t); err != nil {
		return entities.CoinTransaction{}, err
	}
	if err := tx.Companies().UpdateBalance(ctx, company.ID, company.Balance+amount); err != nil {
		return entities.CoinTransaction{}, err
	}
	return t, nil
}

// debitLocked appends a debit for a company row already locked by tx.
func debitLocked(ctx context.Context, tx interfaces.IStoreTx, company entities.Company, amount int64, description string, now time.Time) (entities.CoinTransaction, error) {
	if amount <= 0 {
		return entities.CoinTransaction{}, ErrInvalidAmount
	}
	if company.Balance < amount {
		return entities.CoinTransaction{}, fmt.Errorf("%w: balance %d, required %d", ErrInsufficientBalance, company.Balance, amount)
	}

	t := entities.CoinTransaction{
		ID:          ids.NewLedgerID(),
		CompanyID:   company.ID,
		Quantity:    -amount,
		Description: description,
		Status:      entities.TransactionStatusConcluida,
		CreatedAt:   now,
	}
	if err := appendCoinTx(ctx, tx, t); err != nil {
		return entities.CoinTransaction{}, err
	}
	if err := tx.Companies().UpdateBalance(ctx, company.ID, company.Balance-amount); err != nil {
		return entities.CoinTransaction{}, err
	}
	return t, nil
}

func appendCoinTx(ctx context.Context, tx interfaces.IStoreTx, t entities.CoinTransaction) error {
	err := tx.CoinTransactions().Append(ctx, t)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return errPaymentAlreadyApplied
	}
	return err
}

// claimReceipt inserts the global payment-id key. The storage uniqueness
// constraint closes the race between concurrent redeliveries.
func claimReceipt(ctx context.Context, tx interfaces.IStoreTx, paymentID string, kind entities.ReceiptKind) error {
	err := tx.PaymentReceipts().Claim(ctx, paymentID, kind)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return errPaymentAlreadyApplied
	}
	return err
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func utcNow() time.Time { return time.Now().UTC() }
