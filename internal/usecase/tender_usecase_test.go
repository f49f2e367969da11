package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
	mock_interfaces "certifica_condo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func loadCandidacies(t *testing.T, store interfaces.IStore, tenderID string) map[string]entities.Candidacy {
	t.Helper()
	out := make(map[string]entities.Candidacy)
	err := store.View(context.Background(), func(ctx context.Context, tx interfaces.IStoreTx) error {
		list, err := tx.Candidacies().ListByTender(ctx, tenderID)
		for _, c := range list {
			out[c.CompanyID] = c
		}
		return err
	})
	if err != nil {
		t.Fatalf("load candidacies: %v", err)
	}
	return out
}

func TestTender_CreateValidation(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	uc := NewTenderUseCase(store, nil, nil, nil, 0)
	negative := -1.0

	tests := []struct {
		name  string
		actor entities.Actor
		in    CreateTenderInput
		want  error
	}{
		{"missing title", condo, CreateTenderInput{Description: "d", ServiceType: "s"}, ErrInvalidTenderInput},
		{"blank description", condo, CreateTenderInput{Title: "t", Description: "  ", ServiceType: "s"}, ErrInvalidTenderInput},
		{"negative budget", condo, CreateTenderInput{Title: "t", Description: "d", ServiceType: "s", Budget: &negative}, ErrInvalidTenderInput},
		{"company cannot post", empresa("emp-1"), CreateTenderInput{Title: "t", Description: "d", ServiceType: "s"}, ErrForbidden},
		{"unknown condo", entities.Actor{Role: entities.RoleCondominio, ID: "ghost"}, CreateTenderInput{Title: "t", Description: "d", ServiceType: "s"}, ErrCondoNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tt.actor, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	tender, err := uc.Create(context.Background(), condo, CreateTenderInput{Title: " Pintura ", Description: "Fachada", ServiceType: "pintura"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tender.Status != entities.TenderStatusAberta || tender.Cost != entities.DefaultTenderCost || tender.Title != "Pintura" {
		t.Fatalf("unexpected tender: %+v", tender)
	}
	if tender.WinnerCompanyID != "" {
		t.Fatalf("new tender must not have a winner")
	}
}

func TestTender_CreateRequiresApprovedCondo(t *testing.T) {
	store := newStore()
	reg := NewRegistrationUseCase(store, nil)
	c, err := reg.RegisterCondo(context.Background(), RegisterInput{Name: "Cond", CNPJ: "123", Email: "c@c.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	actor := entities.Actor{Role: entities.RoleCondominio, ID: c.ID}
	_, err = NewTenderUseCase(store, nil, nil, nil, 10).Create(context.Background(), actor, CreateTenderInput{Title: "t", Description: "d", ServiceType: "s"})
	if !errors.Is(err, ErrCondoInactive) {
		t.Fatalf("expected ErrCondoInactive, got %v", err)
	}
}

func TestTender_Close(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCondo(t, store, "cond-2")
	tender := seedTender(t, store, 10)
	uc := NewTenderUseCase(store, nil, nil, nil, 10)

	other := entities.Actor{Role: entities.RoleCondominio, ID: "cond-2"}
	if _, err := uc.Close(context.Background(), other, tender.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	closed, err := uc.Close(context.Background(), condo, tender.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.Status != entities.TenderStatusFechada {
		t.Fatalf("expected fechada, got %s", closed.Status)
	}
	if _, err := uc.Close(context.Background(), condo, tender.ID); !errors.Is(err, ErrTenderNotOpen) {
		t.Fatalf("expected ErrTenderNotOpen, got %v", err)
	}
	if _, err := uc.Close(context.Background(), condo, "missing"); !errors.Is(err, ErrTenderNotFound) {
		t.Fatalf("expected ErrTenderNotFound, got %v", err)
	}
}

func TestTender_SelectWinnerNotifiesEveryBidder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore()
	seedCondo(t, store, "cond-1")
	for _, id := range []string{"emp-a", "emp-b", "emp-c"} {
		seedCompany(t, store, id, 10)
	}
	tender := seedTender(t, store, 10)
	candidacies := NewCandidacyUseCase(store, nil, nil)
	var winnerID string
	for _, id := range []string{"emp-a", "emp-b", "emp-c"} {
		c, err := candidacies.Submit(context.Background(), empresa(id), SubmitCandidacyInput{TenderID: tender.ID})
		if err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
		if id == "emp-b" {
			winnerID = c.ID
		}
	}
	uc := NewTenderUseCase(store, nil, nil, nil, 10)
	if _, err := uc.Close(context.Background(), condo, tender.ID); err != nil {
		t.Fatalf("close: %v", err)
	}

	sender := mock_interfaces.NewMockINotificationSender(ctrl)
	var (
		mu   sync.Mutex
		sent = map[string]string{}
	)
	record := func(_ context.Context, recipient, subject, _ string) error {
		mu.Lock()
		defer mu.Unlock()
		sent[recipient] = subject
		return nil
	}
	sender.EXPECT().Send(gomock.Any(), "emp-a@empresa.com", gomock.Any(), gomock.Any()).DoAndReturn(record)
	sender.EXPECT().Send(gomock.Any(), "emp-c@empresa.com", gomock.Any(), gomock.Any()).DoAndReturn(record)
	// a failed delivery must not undo the selection
	sender.EXPECT().Send(gomock.Any(), "emp-b@empresa.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, recipient, subject, body string) error {
			_ = record(ctx, recipient, subject, body)
			return errors.New("smtp down")
		})

	uc.notifier = NewNotifier(sender, nil, nil, 2)

	done, err := uc.SelectWinner(context.Background(), condo, tender.ID, winnerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != entities.TenderStatusConcluida || done.WinnerCompanyID != "emp-b" {
		t.Fatalf("unexpected tender: %+v", done)
	}
	if !done.Consistent() {
		t.Fatalf("winner and status disagree: %+v", done)
	}

	got := loadCandidacies(t, store, tender.ID)
	if got["emp-b"].Status != entities.CandidacyStatusAceita {
		t.Fatalf("winner should be aceita, got %s", got["emp-b"].Status)
	}
	for _, id := range []string{"emp-a", "emp-c"} {
		if got[id].Status != entities.CandidacyStatusRejeitada {
			t.Fatalf("%s should be rejeitada, got %s", id, got[id].Status)
		}
	}
	if len(sent) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(sent))
	}
}

func TestTender_SelectWinnerFromAberta(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	c, err := NewCandidacyUseCase(store, nil, nil).Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	done, err := NewTenderUseCase(store, nil, nil, nil, 10).SelectWinner(context.Background(), condo, tender.ID, c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != entities.TenderStatusConcluida || done.WinnerCompanyID != "emp-1" {
		t.Fatalf("unexpected tender: %+v", done)
	}
}

func TestTender_SelectWinnerMismatchLeavesStateUntouched(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 20)
	first := seedTender(t, store, 10)
	second := seedTender(t, store, 10)
	candidacies := NewCandidacyUseCase(store, nil, nil)
	foreign, err := candidacies.Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: second.ID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	uc := NewTenderUseCase(store, nil, nil, nil, 10)

	if _, err := uc.SelectWinner(context.Background(), condo, first.ID, foreign.ID); !errors.Is(err, ErrCandidacyMismatch) {
		t.Fatalf("expected ErrCandidacyMismatch, got %v", err)
	}
	if _, err := uc.SelectWinner(context.Background(), condo, first.ID, "missing"); !errors.Is(err, ErrCandidacyNotFound) {
		t.Fatalf("expected ErrCandidacyNotFound, got %v", err)
	}

	reloaded, err := uc.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Status != entities.TenderStatusAberta || reloaded.WinnerCompanyID != "" {
		t.Fatalf("tender must be unchanged, got %+v", reloaded)
	}
	if got := loadCandidacies(t, store, second.ID)["emp-1"].Status; got != entities.CandidacyStatusPendente {
		t.Fatalf("candidacy must stay pendente, got %s", got)
	}
}

func TestTender_SelectWinnerTwiceFails(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := seedTender(t, store, 10)
	c, err := NewCandidacyUseCase(store, nil, nil).Submit(context.Background(), empresa("emp-1"), SubmitCandidacyInput{TenderID: tender.ID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	uc := NewTenderUseCase(store, nil, nil, nil, 10)
	if _, err := uc.SelectWinner(context.Background(), condo, tender.ID, c.ID); err != nil {
		t.Fatalf("first selection: %v", err)
	}
	if _, err := uc.SelectWinner(context.Background(), condo, tender.ID, c.ID); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTender_Embargo(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	tender := seedTender(t, store, 10)
	uc := NewTenderUseCase(store, nil, nil, nil, 10)

	if _, err := uc.Embargo(context.Background(), condo, tender.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	embargoed, err := uc.Embargo(context.Background(), admin, tender.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embargoed.Status != entities.TenderStatusEmbargada {
		t.Fatalf("expected embargada, got %s", embargoed.Status)
	}
	if _, err := uc.Embargo(context.Background(), admin, tender.ID); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("terminal tender must not transition again, got %v", err)
	}
	if _, err := uc.Close(context.Background(), condo, tender.ID); !errors.Is(err, ErrTenderNotOpen) {
		t.Fatalf("expected ErrTenderNotOpen, got %v", err)
	}
	open, err := uc.ListOpen(context.Background())
	if err != nil || len(open) != 0 {
		t.Fatalf("embargoed tender must not be listed as open, got %d (%v)", len(open), err)
	}
}

func TestTender_ListByCondo(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedTender(t, store, 10)
	seedTender(t, store, 10)
	uc := NewTenderUseCase(store, nil, nil, nil, 10)

	list, err := uc.ListByCondo(context.Background(), condo, "cond-1")
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 tenders, got %d (%v)", len(list), err)
	}
	if _, err := uc.ListByCondo(context.Background(), empresa("emp-1"), "cond-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, ErrTenderNotFound) {
		t.Fatalf("expected ErrTenderNotFound, got %v", err)
	}
}
