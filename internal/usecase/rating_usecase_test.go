package usecase

import (
	"context"
	"errors"
	"testing"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

// completedTender runs a fresh tender to concluida with companyID as winner.
func completedTender(t *testing.T, store interfaces.IStore, companyID string) entities.Tender {
	t.Helper()
	tender := seedTender(t, store, 10)
	c, err := NewCandidacyUseCase(store, nil, nil).Submit(context.Background(), empresa(companyID), SubmitCandidacyInput{TenderID: tender.ID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	done, err := NewTenderUseCase(store, nil, nil, nil, 10).SelectWinner(context.Background(), condo, tender.ID, c.ID)
	if err != nil {
		t.Fatalf("select winner: %v", err)
	}
	return done
}

func TestRating_RateCompletedTender(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 10)
	tender := completedTender(t, store, "emp-1")
	uc := NewRatingUseCase(store, nil)

	r, err := uc.Rate(context.Background(), condo, tender.ID, 5, " Excelente ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CompanyID != "emp-1" || r.CondoID != "cond-1" || r.Comment != "Excelente" {
		t.Fatalf("unexpected rating: %+v", r)
	}

	// a second attempt is rejected and the first rating survives
	if _, err := uc.Rate(context.Background(), condo, tender.ID, 1, "mudei de ideia"); !errors.Is(err, ErrDuplicateRating) {
		t.Fatalf("expected ErrDuplicateRating, got %v", err)
	}
	stored, err := uc.GetByTender(context.Background(), tender.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ID != r.ID || stored.Score != 5 {
		t.Fatalf("first rating must be kept, got %+v", stored)
	}
}

func TestRating_Rejections(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCondo(t, store, "cond-2")
	seedCompany(t, store, "emp-1", 10)
	done := completedTender(t, store, "emp-1")
	open := seedTender(t, store, 10)
	uc := NewRatingUseCase(store, nil)

	tests := []struct {
		name     string
		actor    entities.Actor
		tenderID string
		score    int
		want     error
	}{
		{"score too high", condo, done.ID, 6, ErrInvalidScore},
		{"score zero", condo, done.ID, 0, ErrInvalidScore},
		{"tender still open", condo, open.ID, 4, ErrTenderNotCompleted},
		{"not the owner", entities.Actor{Role: entities.RoleCondominio, ID: "cond-2"}, done.ID, 4, ErrForbidden},
		{"company cannot rate", empresa("emp-1"), done.ID, 4, ErrForbidden},
		{"unknown tender", condo, "missing", 4, ErrTenderNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Rate(context.Background(), tt.actor, tt.tenderID, tt.score, ""); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRating_CompanySummary(t *testing.T) {
	store := newStore()
	seedCondo(t, store, "cond-1")
	seedCompany(t, store, "emp-1", 30)
	seedCompany(t, store, "emp-2", 0)
	uc := NewRatingUseCase(store, nil)

	empty, err := uc.CompanySummary(context.Background(), "emp-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Average != 0 || empty.Count != 0 {
		t.Fatalf("expected empty summary, got %+v", empty)
	}

	for _, score := range []int{5, 4, 3} {
		tender := completedTender(t, store, "emp-1")
		if _, err := uc.Rate(context.Background(), condo, tender.ID, score, ""); err != nil {
			t.Fatalf("rate: %v", err)
		}
	}
	summary, err := uc.CompanySummary(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Average != 4 || summary.Count != 3 {
		t.Fatalf("expected average 4 over 3, got %+v", summary)
	}
	if _, err := uc.CompanySummary(context.Background(), "ghost"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
