package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"certifica_condo/internal/adapter/http/handlers/mocks"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestCandidacyHandler_Submit(t *testing.T) {
	price := 1500.0
	cases := []struct {
		name     string
		body     string
		want     usecase.SubmitCandidacyInput
		err      error
		wantCode int
	}{
		{"empty body", "", usecase.SubmitCandidacyInput{TenderID: "t-1"}, nil, http.StatusCreated},
		{"with proposal", `{"message":"oi","proposed_price":1500}`, usecase.SubmitCandidacyInput{TenderID: "t-1", Message: "oi", ProposedPrice: &price}, nil, http.StatusCreated},
		{"insufficient balance", "", usecase.SubmitCandidacyInput{TenderID: "t-1"}, fmt.Errorf("%w: balance 5, required 10", usecase.ErrInsufficientBalance), http.StatusPaymentRequired},
		{"already applied", "", usecase.SubmitCandidacyInput{TenderID: "t-1"}, usecase.ErrAlreadyApplied, http.StatusConflict},
		{"tender closed", "", usecase.SubmitCandidacyInput{TenderID: "t-1"}, usecase.ErrTenderNotOpen, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICandidacyUseCase(ctrl)
			h := NewCandidacyHandler(uc)

			uc.EXPECT().Submit(gomock.Any(), empActor, tc.want).
				Return(entities.Candidacy{ID: "c-1", TenderID: "t-1", CompanyID: "emp-1", Status: entities.CandidacyStatusPendente}, tc.err)

			r := route(http.MethodPost, "/v1/licitacoes/:id/candidaturas", &empActor, h.Submit)
			w := serve(r, http.MethodPost, "/v1/licitacoes/t-1/candidaturas", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestCandidacyHandler_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICandidacyUseCase(ctrl)
	h := NewCandidacyHandler(uc)

	uc.EXPECT().ListByTender(gomock.Any(), empActor, "t-1").Return(nil, usecase.ErrForbidden)
	w := serve(route(http.MethodGet, "/v1/licitacoes/:id/candidaturas", &empActor, h.ListByTender), http.MethodGet, "/v1/licitacoes/t-1/candidaturas", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	uc.EXPECT().ListByCompany(gomock.Any(), empActor, "emp-1").Return([]entities.Candidacy{{ID: "c-1"}}, nil)
	w = serve(route(http.MethodGet, "/v1/empresas/:id/candidaturas", &empActor, h.ListByCompany), http.MethodGet, "/v1/empresas/emp-1/candidaturas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
