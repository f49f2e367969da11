package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

func TestCoinLedger_CreditAndDebit(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 0)
	uc := NewCoinLedgerUseCase(store, nil, nil)
	ctx := context.Background()

	credit, err := uc.Credit(ctx, "emp-1", 30, "compra", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credit.Quantity != 30 {
		t.Fatalf("expected +30, got %d", credit.Quantity)
	}
	debit, err := uc.Debit(ctx, "emp-1", 12, "candidatura")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if debit.Quantity != -12 {
		t.Fatalf("expected -12, got %d", debit.Quantity)
	}
	if got := assertBalanceMatchesLedger(t, store, "emp-1"); got != 18 {
		t.Fatalf("expected balance 18, got %d", got)
	}
}

func TestCoinLedger_Validation(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 5)
	uc := NewCoinLedgerUseCase(store, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"zero credit", func() error { _, err := uc.Credit(ctx, "emp-1", 0, "x", ""); return err }, ErrInvalidAmount},
		{"negative debit", func() error { _, err := uc.Debit(ctx, "emp-1", -3, "x"); return err }, ErrInvalidAmount},
		{"unknown company", func() error { _, err := uc.Credit(ctx, "nope", 3, "x", ""); return err }, ErrCompanyNotFound},
		{"overdraft", func() error { _, err := uc.Debit(ctx, "emp-1", 6, "x"); return err }, ErrInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
	if got := assertBalanceMatchesLedger(t, store, "emp-1"); got != 5 {
		t.Fatalf("failed operations must leave balance at 5, got %d", got)
	}
}

func TestCoinLedger_CreditReplayReturnsExisting(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 0)
	uc := NewCoinLedgerUseCase(store, nil, nil)
	ctx := context.Background()

	first, err := uc.Credit(ctx, "emp-1", 50, "compra", "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Credit(ctx, "emp-1", 50, "compra", "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected replay to return %s, got %s", first.ID, second.ID)
	}
	if got := assertBalanceMatchesLedger(t, store, "emp-1"); got != 50 {
		t.Fatalf("expected balance 50, got %d", got)
	}
}

func TestCoinLedger_CreditWithPlanPaymentRef(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 0)
	ctx := context.Background()
	if err := store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.PaymentReceipts().Claim(ctx, "pay-plan", entities.ReceiptKindPlan)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewCoinLedgerUseCase(store, nil, nil)

	got, err := uc.Credit(ctx, "emp-1", 50, "compra", "pay-plan")
	if !errors.Is(err, ErrPaymentRefConsumed) {
		t.Fatalf("expected ErrPaymentRefConsumed, got %+v (%v)", got, err)
	}
	if got.ID != "" {
		t.Fatalf("expected no transaction, got %+v", got)
	}
	if bal := assertBalanceMatchesLedger(t, store, "emp-1"); bal != 0 {
		t.Fatalf("balance must stay 0, got %d", bal)
	}
}

func TestCoinLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 50)
	uc := NewCoinLedgerUseCase(store, nil, nil)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Debit(context.Background(), "emp-1", 10, "candidatura"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, ErrInsufficientBalance) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 5 {
		t.Fatalf("expected exactly 5 debits to succeed, got %d", succeeded)
	}
	if got := assertBalanceMatchesLedger(t, store, "emp-1"); got != 0 {
		t.Fatalf("expected balance 0, got %d", got)
	}
}

func TestCoinLedger_Accessors(t *testing.T) {
	store := newStore()
	seedCompany(t, store, "emp-1", 20)
	uc := NewCoinLedgerUseCase(store, nil, nil)
	ctx := context.Background()

	if _, err := uc.Balance(ctx, empresa("emp-2"), "emp-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	balance, err := uc.Balance(ctx, empresa("emp-1"), "emp-1")
	if err != nil || balance != 20 {
		t.Fatalf("expected 20, got %d (%v)", balance, err)
	}
	txs, err := uc.ListTransactions(ctx, admin, "emp-1")
	if err != nil || len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d (%v)", len(txs), err)
	}

	if _, err := uc.VerifyBalance(ctx, empresa("emp-1"), "emp-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	audit, err := uc.VerifyBalance(ctx, admin, "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !audit.Consistent || audit.LedgerSum != 20 {
		t.Fatalf("unexpected audit: %+v", audit)
	}
}
