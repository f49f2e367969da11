package response

import (
	"time"

	"certifica_condo/internal/domain/entities"
)

type TenderResponse struct {
	ID              string    `json:"id"`
	CondoID         string    `json:"condo_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ServiceType     string    `json:"service_type"`
	Status          string    `json:"status"`
	Cost            int64     `json:"cost"`
	Budget          *float64  `json:"budget,omitempty"`
	WinnerCompanyID string    `json:"winner_company_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromTender(t entities.Tender) TenderResponse {
	return TenderResponse{
		ID:              t.ID,
		CondoID:         t.CondoID,
		Title:           t.Title,
		Description:     t.Description,
		ServiceType:     t.ServiceType,
		Status:          string(t.Status),
		Cost:            t.Cost,
		Budget:          t.Budget,
		WinnerCompanyID: t.WinnerCompanyID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// FromTenders never returns nil so empty lists encode as [].
func FromTenders(ts []entities.Tender) []TenderResponse {
	out := make([]TenderResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTender(t))
	}
	return out
}

type CandidacyResponse struct {
	ID            string    `json:"id"`
	TenderID      string    `json:"tender_id"`
	CompanyID     string    `json:"company_id"`
	Message       string    `json:"message,omitempty"`
	ProposedPrice *float64  `json:"proposed_price,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCandidacy(c entities.Candidacy) CandidacyResponse {
	return CandidacyResponse{
		ID:            c.ID,
		TenderID:      c.TenderID,
		CompanyID:     c.CompanyID,
		Message:       c.Message,
		ProposedPrice: c.ProposedPrice,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

func FromCandidacies(cs []entities.Candidacy) []CandidacyResponse {
	out := make([]CandidacyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCandidacy(c))
	}
	return out
}
