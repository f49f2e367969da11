package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"certifica_condo/internal/adapter/http/handlers/mocks"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestRatingHandler_Rate(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid score", usecase.ErrInvalidScore, http.StatusBadRequest},
		{"not completed", usecase.ErrTenderNotCompleted, http.StatusConflict},
		{"duplicate", usecase.ErrDuplicateRating, http.StatusConflict},
		{"not the owner", usecase.ErrForbidden, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIRatingUseCase(ctrl)
			h := NewRatingHandler(uc)

			uc.EXPECT().Rate(gomock.Any(), condoActor, "t-1", 5, "ótimo").
				Return(entities.Rating{ID: "r-1", TenderID: "t-1"}, tc.err)

			r := route(http.MethodPost, "/v1/licitacoes/:id/avaliacao", &condoActor, h.Rate)
			w := serve(r, http.MethodPost, "/v1/licitacoes/t-1/avaliacao", `{"score":5,"comment":"ótimo"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
		})
	}
}

func TestRatingHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRatingUseCase(ctrl)
	h := NewRatingHandler(uc)

	uc.EXPECT().GetByTender(gomock.Any(), "t-1").Return(entities.Rating{}, nil)
	w := serve(route(http.MethodGet, "/v1/licitacoes/:id/avaliacao", nil, h.GetByTender), http.MethodGet, "/v1/licitacoes/t-1/avaliacao", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "RATING_NOT_FOUND" {
		t.Fatalf("unexpected code %q", code)
	}

	uc.EXPECT().CompanySummary(gomock.Any(), "emp-1").Return(usecase.RatingSummary{CompanyID: "emp-1", Average: 4.5, Count: 2}, nil)
	w = serve(route(http.MethodGet, "/v1/empresas/:id/avaliacao", nil, h.CompanySummary), http.MethodGet, "/v1/empresas/emp-1/avaliacao", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var summary usecase.RatingSummary
	_ = json.Unmarshal(w.Body.Bytes(), &summary)
	if summary.Average != 4.5 || summary.Count != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
