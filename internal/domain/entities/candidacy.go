package entities

import (
	"fmt"
	"time"
)

// CandidacyStatus is the state of a company's bid. Terminal once decided.
type CandidacyStatus string

const (
	CandidacyStatusPendente  CandidacyStatus = "pendente"
	CandidacyStatusAceita    CandidacyStatus = "aceita"
	CandidacyStatusRejeitada CandidacyStatus = "rejeitada"
)

var candidacyTransitions = map[CandidacyStatus][]CandidacyStatus{
	CandidacyStatusPendente: {CandidacyStatusAceita, CandidacyStatusRejeitada},
}

func (s CandidacyStatus) CanTransitionTo(next CandidacyStatus) bool {
	return allowed(candidacyTransitions, s, next)
}

// Candidacy (candidatura) is a company's bid on a tender. One per (tender, company).
type Candidacy struct {
	ID            string          `json:"id"`
	TenderID      string          `json:"tender_id"`
	CompanyID     string          `json:"company_id"`
	Message       string          `json:"message"`
	ProposedPrice *float64        `json:"proposed_price,omitempty"`
	Status        CandidacyStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (c *Candidacy) TransitionTo(next CandidacyStatus) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: candidacy %s %s -> %s", ErrInvalidTransition, c.ID, c.Status, next)
	}
	c.Status = next
	return nil
}
