package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

func TestCandidacy_SubmitDebitsExactCost(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	uc := NewCandidacyUseCase(store, nil, nil)

	price := 1200.0
	c, err := uc.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID, Message: "Temos experiência", ProposedPrice: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != entities.CandidacyStatusPendente {
		t.Fatalf("expected pendente, got %s", c.Status)
	}

	company, txs := companyState(t, store, "emp-1")
	if company.Balance != 0 {
		t.Fatalf("expected balance 0, got %d", company.Balance)
	}
	var debits int
	for _, tx := range txs {
		if tx.Quantity == -10 {
			debits++
		}
	}
	if debits != 1 {
		t.Fatalf("expected exactly one -10 transaction, got %d", debits)
	}
	list, err := uc.ListByCompany(context.Background(), empresa("emp-1"), "emp-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one candidacy, got %d (%v)", len(list), err)
	}
}

func TestCandidacy_SubmitRejections(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "rich", 100)
	seedCompany(t, store, "poor", 5)
	open := seedTender(t, store, 10)
	closed := seedTender(t, store, 10)
	if _, err := NewTenderUseCase(store, nil, nil, nil, 10).Close(context.Background(), condo, closed.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	uc := NewCandidacyUseCase(store, nil, nil)
	ctx := context.Background()
	if _, err := uc.Submit(ctx, empresa("rich"), SubmitCandidacyInput{TenderID: open.ID}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	tests := []struct {
		name  string
		actor entities.Actor
		in    SubmitCandidacyInput
		want  error
	}{
		{"second candidacy", empresa("rich"), SubmitCandidacyInput{TenderID: open.ID}, ErrAlreadyApplied},
		{"tender closed", empresa("rich"), SubmitCandidacyInput{TenderID: closed.ID}, ErrTenderNotOpen},
		{"insufficient balance", empresa("poor"), SubmitCandidacyInput{TenderID: open.ID}, ErrInsufficientBalance},
		{"unknown tender", empresa("rich"), SubmitCandidacyInput{TenderID: "nope"}, ErrTenderNotFound},
		{"condo cannot bid", condo, SubmitCandidacyInput{TenderID: open.ID}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Submit(ctx, tt.actor, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if got := assertBalanceMatchesLedger(t, store, "rich"); got != 90 {
		t.Fatalf("rejected submits must not debit, balance %d", got)
	}
	if got := assertBalanceMatchesLedger(t, store, "poor"); got != 5 {
		t.Fatalf("rejected submits must not debit, balance %d", got)
	}
}

func TestCandidacy_AlreadyAppliedRegardlessOfBalance(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	uc := NewCandidacyUseCase(store, nil, nil)

	if _, err := uc.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// balance is now 0; the duplicate must still be reported as such
	if _, err := uc.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID}); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestCandidacy_InactiveCompany(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	if _, err := NewRegistrationUseCase(store, nil).ReviewCompany(context.Background(), admin, "emp-1", ReviewSuspender); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	_, err := NewCandidacyUseCase(store, nil, nil).Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID})
	if !errors.Is(err, ErrCompanyInactive) {
		t.Fatalf("expected ErrCompanyInactive, got %v", err)
	}
}

func TestCandidacy_ConcurrentDuplicateSubmitsDebitOnce(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 100)
	tender := seedTender(t, store, 10)
	uc := NewCandidacyUseCase(store, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID})
		}()
	}
	wg.Wait()

	if got := assertBalanceMatchesLedger(t, store, "emp-1"); got != 90 {
		t.Fatalf("expected a single debit, balance %d", got)
	}
	var n int
	_ = store.View(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
		list, err := tx.Candidacies().ListByTender(ctx, tender.ID)
		n = len(list)
		return err
	})
	if n != 1 {
		t.Fatalf("expected one candidacy, got %d", n)
	}
}

func TestCandidacy_ListByTenderVisibility(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	uc := NewCandidacyUseCase(store, nil, nil)
	if _, err := uc.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := uc.ListByTender(context.Background(), empresa("emp-1"), tender.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	list, err := uc.ListByTender(context.Background(), condo, tender.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one candidacy, got %d (%v)", len(list), err)
	}
}
