package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		if err := tx.Companies().Create(ctx, entities.Company{ID: "emp-1"}); err != nil {
			return err
		}
		if err := tx.CoinTransactions().Append(ctx, entities.CoinTransaction{ID: "tx-1", CompanyID: "emp-1", Quantity: 10}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	_ = s.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		c, _ := tx.Companies().GetByID(ctx, "emp-1")
		if c.ID != "" {
			t.Fatalf("company must not survive a failed transaction")
		}
		txs, _ := tx.CoinTransactions().ListByCompany(ctx, "emp-1")
		if len(txs) != 0 {
			t.Fatalf("ledger rows must not survive a failed transaction")
		}
		return nil
	})
}

func TestStore_ViewIsReadOnly(t *testing.T) {
	s := NewStore()
	err := s.View(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.Companies().Create(ctx, entities.Company{ID: "emp-1"})
	})
	if !errors.Is(err, errReadOnly) {
		t.Fatalf("expected errReadOnly, got %v", err)
	}
}

func TestStore_UniqueConstraints(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	cases := []struct {
		name  string
		write func(ctx context.Context, tx interfaces.IStoreTx) error
	}{
		{"candidacy per tender and company", func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.Candidacies().Create(ctx, entities.Candidacy{ID: "c-2", TenderID: "t-1", CompanyID: "emp-1"})
		}},
		{"rating per tender", func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.Ratings().Create(ctx, entities.Rating{ID: "r-2", TenderID: "t-1"})
		}},
		{"coin payment id", func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.CoinTransactions().Append(ctx, entities.CoinTransaction{ID: "tx-2", CompanyID: "emp-2", PaymentID: "pay-1"})
		}},
		{"plan payment id", func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.PlanTransactions().Append(ctx, entities.PlanTransaction{ID: "pt-2", CondoID: "con-2", PaymentID: "pay-2"})
		}},
		{"payment receipt", func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.PaymentReceipts().Claim(ctx, "pay-1", entities.ReceiptKindPlan)
		}},
	}

	err := s.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		if err := tx.Candidacies().Create(ctx, entities.Candidacy{ID: "c-1", TenderID: "t-1", CompanyID: "emp-1"}); err != nil {
			return err
		}
		if err := tx.Ratings().Create(ctx, entities.Rating{ID: "r-1", TenderID: "t-1"}); err != nil {
			return err
		}
		if err := tx.CoinTransactions().Append(ctx, entities.CoinTransaction{ID: "tx-1", CompanyID: "emp-1", PaymentID: "pay-1"}); err != nil {
			return err
		}
		if err := tx.PlanTransactions().Append(ctx, entities.PlanTransaction{ID: "pt-1", CondoID: "con-1", PaymentID: "pay-2"}); err != nil {
			return err
		}
		return tx.PaymentReceipts().Claim(ctx, "pay-1", entities.ReceiptKindCoins)
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.WithinTx(ctx, tc.write)
			if !errors.Is(err, interfaces.ErrDuplicateKey) {
				t.Fatalf("expected ErrDuplicateKey, got %v", err)
			}
		})
	}
}

func TestStore_TenderListsNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	_ = s.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		_ = tx.Tenders().Create(ctx, entities.Tender{ID: "old", CondoID: "con-1", Status: entities.TenderStatusAberta, CreatedAt: now.Add(-time.Hour)})
		_ = tx.Tenders().Create(ctx, entities.Tender{ID: "new", CondoID: "con-1", Status: entities.TenderStatusAberta, CreatedAt: now})
		_ = tx.Tenders().Create(ctx, entities.Tender{ID: "closed", CondoID: "con-2", Status: entities.TenderStatusFechada, CreatedAt: now})
		return nil
	})

	_ = s.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		open, _ := tx.Tenders().ListByStatus(ctx, entities.TenderStatusAberta)
		if len(open) != 2 || open[0].ID != "new" || open[1].ID != "old" {
			t.Fatalf("unexpected open tenders: %+v", open)
		}
		mine, _ := tx.Tenders().ListByCondo(ctx, "con-2")
		if len(mine) != 1 || mine[0].ID != "closed" {
			t.Fatalf("unexpected condo tenders: %+v", mine)
		}
		return nil
	})
}
