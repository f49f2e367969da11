package usecase

import (
	"context"
	"testing"
	"time"

	"certifica_condo/internal/adapter/persistence/memory"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

var (
	admin = entities.Actor{Role: entities.RoleAdmin, ID: "adm-1"}
	condo = entities.Actor{Role: entities.RoleCondominio, ID: "cond-1"}
)

func empresa(id string) entities.Actor {
	return entities.Actor{Role: entities.RoleEmpresa, ID: id}
}

func testCatalog() entities.Catalog {
	return entities.Catalog{
		CoinPackages: []entities.CoinPackage{{ID: "moedas-50", Title: "50 moedas", Coins: 50, Price: 49.9}},
		Plans:        []entities.Plan{{ID: "ouro", Title: "Plano Ouro", Price: 199}},
	}
}

func seedCompany(t *testing.T, store interfaces.IStore, id string, balance int64) {
	t.Helper()
	ctx := context.Background()
	err := store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.Companies().Create(ctx, entities.Company{
			ID:        id,
			Name:      "Empresa " + id,
			CNPJ:      "cnpj-" + id,
			Email:     id + "@empresa.com",
			Active:    true,
			Status:    entities.ApprovalStatusAprovado,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	if balance > 0 {
		ledger := NewCoinLedgerUseCase(store, nil, nil)
		if _, err := ledger.Credit(ctx, id, balance, "saldo inicial", ""); err != nil {
			t.Fatalf("seed balance: %v", err)
		}
	}
}

func seedCondo(t *testing.T, store interfaces.IStore, id string) {
	t.Helper()
	err := store.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.Condos().Create(ctx, entities.Condo{
			ID:        id,
			Name:      "Condomínio " + id,
			CNPJ:      "cnpj-" + id,
			Email:     id + "@condo.com",
			Active:    true,
			Status:    entities.ApprovalStatusAprovado,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("seed condo: %v", err)
	}
}

func seedTender(t *testing.T, store interfaces.IStore, cost int64) entities.Tender {
	t.Helper()
	uc := NewTenderUseCase(store, nil, nil, nil, cost)
	tender, err := uc.Create(context.Background(), condo, CreateTenderInput{
		Title:       "Manutenção do portão",
		Description: "Troca do motor do portão da garagem",
		ServiceType: "manutencao",
	})
	if err != nil {
		t.Fatalf("seed tender: %v", err)
	}
	return tender
}

func newStore() *memory.Store {
	return memory.NewStore()
}

func companyState(t *testing.T, store interfaces.IStore, id string) (entities.Company, []entities.CoinTransaction) {
	t.Helper()
	var (
		c   entities.Company
		txs []entities.CoinTransaction
	)
	err := store.View(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		if c, err = tx.Companies().GetByID(ctx, id); err != nil {
			return err
		}
		txs, err = tx.CoinTransactions().ListByCompany(ctx, id)
		return err
	})
	if err != nil {
		t.Fatalf("load company: %v", err)
	}
	return c, txs
}

func assertBalanceMatchesLedger(t *testing.T, store interfaces.IStore, id string) int64 {
	t.Helper()
	c, txs := companyState(t, store, id)
	if sum := entities.SumQuantities(txs); sum != c.Balance {
		t.Fatalf("balance %d does not match ledger sum %d", c.Balance, sum)
	}
	return c.Balance
}
