package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

func TestRegistration_RegisterCompany(t *testing.T) {
	store := newStore()
	uc := NewRegistrationUseCase(store, nil)

	c, err := uc.RegisterCompany(context.Background(), RegisterInput{Name: " Limpa Tudo ", CNPJ: "12.345.678/0001-90", Email: "Contato@LimpaTudo.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != entities.ApprovalStatusPendente || c.Active || c.Balance != 0 {
		t.Fatalf("new company must be pending and inactive: %+v", c)
	}
	if c.Email != "contato@limpatudo.com" || c.Name != "Limpa Tudo" {
		t.Fatalf("expected normalized fields, got %+v", c)
	}

	if _, err := uc.RegisterCompany(context.Background(), RegisterInput{Name: "Outra", CNPJ: "12.345.678/0001-90", Email: "x@y.com"}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if _, err := uc.RegisterCompany(context.Background(), RegisterInput{Name: "Sem email", CNPJ: "1"}); !errors.Is(err, ErrInvalidRegistration) {
		t.Fatalf("expected ErrInvalidRegistration, got %v", err)
	}
}

func TestRegistration_ReviewFlow(t *testing.T) {
	store := newStore()
	uc := NewRegistrationUseCase(store, nil)
	ctx := context.Background()
	c, err := uc.RegisterCompany(ctx, RegisterInput{Name: "Empresa", CNPJ: "1", Email: "e@e.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.ReviewCompany(ctx, empresa(c.ID), c.ID, ReviewAprovar); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	steps := []struct {
		action     ReviewAction
		wantStatus entities.ApprovalStatus
		wantActive bool
		wantErr    error
	}{
		{ReviewSuspender, "", false, entities.ErrInvalidTransition},
		{ReviewVerificar, entities.ApprovalStatusVerificado, false, nil},
		{ReviewAprovar, entities.ApprovalStatusAprovado, true, nil},
		{ReviewReativar, "", false, entities.ErrInvalidTransition},
		{ReviewSuspender, entities.ApprovalStatusAprovado, false, nil},
		{ReviewReativar, entities.ApprovalStatusAprovado, true, nil},
		{ReviewRejeitar, entities.ApprovalStatusRejeitado, false, nil},
		{ReviewAction("apagar"), "", false, ErrInvalidReviewAction},
	}
	for _, s := range steps {
		got, err := uc.ReviewCompany(ctx, admin, c.ID, s.action)
		if s.wantErr != nil {
			if !errors.Is(err, s.wantErr) {
				t.Fatalf("%s: expected %v, got %v", s.action, s.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.action, err)
		}
		if got.Status != s.wantStatus || got.Active != s.wantActive {
			t.Fatalf("%s: expected (%s, %v), got (%s, %v)", s.action, s.wantStatus, s.wantActive, got.Status, got.Active)
		}
	}

	if _, err := uc.ReviewCompany(ctx, admin, "ghost", ReviewAprovar); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestRegistration_ListAndGet(t *testing.T) {
	store := newStore()
	uc := NewRegistrationUseCase(store, nil)
	ctx := context.Background()
	pending, err := uc.RegisterCondo(ctx, RegisterInput{Name: "Cond A", CNPJ: "a", Email: "a@a.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	approved, err := uc.RegisterCondo(ctx, RegisterInput{Name: "Cond B", CNPJ: "b", Email: "b@b.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.ReviewCondo(ctx, admin, approved.ID, ReviewAprovar, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	list, err := uc.ListCondos(ctx, admin, entities.ApprovalStatusPendente)
	if err != nil || len(list) != 1 || list[0].ID != pending.ID {
		t.Fatalf("expected only the pending condo, got %+v (%v)", list, err)
	}
	all, err := uc.ListCondos(ctx, admin, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected both condos, got %d (%v)", len(all), err)
	}
	if _, err := uc.ListCondos(ctx, condo, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	self := entities.Actor{Role: entities.RoleCondominio, ID: approved.ID}
	got, err := uc.GetCondo(ctx, self, approved.ID)
	if err != nil || !got.Active {
		t.Fatalf("expected active condo, got %+v (%v)", got, err)
	}
	if _, err := uc.GetCondo(ctx, self, pending.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.GetCompany(ctx, admin, "ghost"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestRegistration_Subscription(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	uc := NewRegistrationUseCase(store, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	setExpiry := func(at time.Time) {
		t.Helper()
		err := store.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
			return tx.Condos().UpdateSubscription(ctx, "cond-1", "ouro", at)
		})
		if err != nil {
			t.Fatalf("update subscription: %v", err)
		}
	}

	status, err := uc.Subscription(context.Background(), condo, "cond-1")
	if err != nil || status.Active {
		t.Fatalf("no plan means inactive, got %+v (%v)", status, err)
	}

	setExpiry(now.Add(-24 * time.Hour))
	if status, _ := uc.Subscription(context.Background(), condo, "cond-1"); status.Active {
		t.Fatalf("plan expired yesterday must be inactive")
	}

	setExpiry(now.Add(24 * time.Hour))
	status, err = uc.Subscription(context.Background(), condo, "cond-1")
	if err != nil || !status.Active || status.PlanID != "ouro" {
		t.Fatalf("plan expiring tomorrow must be active, got %+v (%v)", status, err)
	}
}

func TestRegistration_CondoRankOnApproval(t *testing.T) {
	store := newStore()
	uc := NewRegistrationUseCase(store, nil)
	ctx := context.Background()
	c, err := uc.RegisterCondo(ctx, RegisterInput{Name: "Cond", CNPJ: "c", Email: "c@c.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.ReviewCondo(ctx, admin, c.ID, ReviewAprovar, entities.CondoRank("diamante")); !errors.Is(err, entities.ErrInvalidCondoRank) {
		t.Fatalf("expected ErrInvalidCondoRank, got %v", err)
	}
	if _, err := uc.ReviewCondo(ctx, admin, c.ID, ReviewVerificar, entities.CondoRankOuro); !errors.Is(err, entities.ErrInvalidCondoRank) {
		t.Fatalf("rank outside approval: expected ErrInvalidCondoRank, got %v", err)
	}

	got, err := uc.ReviewCondo(ctx, admin, c.ID, ReviewAprovar, entities.CondoRank("Prata"))
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Rank != entities.CondoRankPrata || got.Status != entities.ApprovalStatusAprovado {
		t.Fatalf("expected approved prata condo, got %+v", got)
	}

	if _, err := uc.ReviewCondo(ctx, admin, c.ID, ReviewRejeitar, ""); err != nil {
		t.Fatalf("reject: %v", err)
	}
	again, err := uc.ReviewCondo(ctx, admin, c.ID, ReviewAprovar, "")
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if again.Rank != entities.CondoRankPrata {
		t.Fatalf("approval without rank must keep the previous one, got %q", again.Rank)
	}
	stored, _ := uc.GetCondo(ctx, admin, c.ID)
	if stored.Rank != entities.CondoRankPrata {
		t.Fatalf("rank not persisted: %+v", stored)
	}
}

func TestRegistration_PublicDirectory(t *testing.T) {
	store := newStore()
	uc := NewRegistrationUseCase(store, nil)
	ctx := context.Background()

	seedCompany(t, store, "emp-b", 0)
	seedCompany(t, store, "emp-a", 0)
	seedCondo(t, store, "cond-z")
	seedCondo(t, store, "cond-y")
	pending, err := uc.RegisterCondo(ctx, RegisterInput{Name: "Aguardando", CNPJ: "p", Email: "p@p.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.RegisterCompany(ctx, RegisterInput{Name: "AAA Pendente", CNPJ: "q", Email: "q@q.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.ReviewCompany(ctx, admin, "emp-b", ReviewSuspender); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	err = store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		for _, r := range []entities.Rating{
			{ID: "rt-1", TenderID: "t-1", CompanyID: "emp-a", CondoID: "cond-y", Score: 5},
			{ID: "rt-2", TenderID: "t-2", CompanyID: "emp-a", CondoID: "cond-y", Score: 4},
		} {
			if err := tx.Ratings().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed ratings: %v", err)
	}

	condos, err := uc.ListCertifiedCondos(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(condos) != 2 || condos[0].ID != "cond-y" || condos[1].ID != "cond-z" {
		t.Fatalf("expected approved condos ordered by name, got %+v", condos)
	}
	for _, c := range condos {
		if c.ID == pending.ID {
			t.Fatalf("pending condo listed")
		}
	}

	partners, err := uc.ListPartnerCompanies(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(partners) != 1 || partners[0].Company.ID != "emp-a" {
		t.Fatalf("expected only the active approved company, got %+v", partners)
	}
	if partners[0].RatingAverage != 4.5 || partners[0].RatingCount != 2 {
		t.Fatalf("unexpected rating summary: %+v", partners[0])
	}
}
