package response

import (
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Balance   int64     `json:"balance"`
	Active    bool      `json:"active"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		Email:     c.Email,
		Balance:   c.Balance,
		Active:    c.Active,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func FromCompanies(cs []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCompany(c))
	}
	return out
}

type CondoResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	CNPJ               string     `json:"cnpj"`
	Email              string     `json:"email"`
	Active             bool       `json:"active"`
	Status             string     `json:"status"`
	Rank               string     `json:"rank,omitempty"`
	PlanID             string     `json:"plan_id,omitempty"`
	PlanExpiresAt      *time.Time `json:"plan_expires_at,omitempty"`
	SubscriptionActive bool       `json:"subscription_active"`
	CreatedAt          time.Time  `json:"created_at"`
}

// FromCondo computes subscription_active against now.
func FromCondo(c entities.Condo, now time.Time) CondoResponse {
	return CondoResponse{
		ID:                 c.ID,
		Name:               c.Name,
		CNPJ:               c.CNPJ,
		Email:              c.Email,
		Active:             c.Active,
		Status:             string(c.Status),
		Rank:               string(c.Rank),
		PlanID:             c.PlanID,
		PlanExpiresAt:      c.PlanExpiresAt,
		SubscriptionActive: c.SubscriptionActive(now),
		CreatedAt:          c.CreatedAt,
	}
}

func FromCondos(cs []entities.Condo, now time.Time) []CondoResponse {
	out := make([]CondoResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCondo(c, now))
	}
	return out
}

// CertifiedCondoResponse is the public view of a condo: no contact data.
type CertifiedCondoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank string `json:"rank,omitempty"`
}

func FromCertifiedCondos(cs []entities.Condo) []CertifiedCondoResponse {
	out := make([]CertifiedCondoResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CertifiedCondoResponse{ID: c.ID, Name: c.Name, Rank: string(c.Rank)})
	}
	return out
}

type PartnerCompanyResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
}

func FromPartnerCompanies(ps []usecase.PartnerCompany) []PartnerCompanyResponse {
	out := make([]PartnerCompanyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PartnerCompanyResponse{
			ID:            p.Company.ID,
			Name:          p.Company.Name,
			RatingAverage: p.RatingAverage,
			RatingCount:   p.RatingCount,
		})
	}
	return out
}
