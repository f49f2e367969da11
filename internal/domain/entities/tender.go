package entities

import (
	"errors"
	"fmt"
	"time"
)

// TenderStatus is the lifecycle of a tender (licitacao).
//
//	aberta -> fechada -> concluida
//	aberta|fechada -> embargada
//
// concluida and embargada are terminal.
type TenderStatus string

const (
	TenderStatusAberta    TenderStatus = "aberta"
	TenderStatusFechada   TenderStatus = "fechada"
	TenderStatusConcluida TenderStatus = "concluida"
	TenderStatusEmbargada TenderStatus = "embargada"
)

// DefaultTenderCost is the candidacy price in coins when none is configured.
const DefaultTenderCost int64 = 10

var ErrInvalidTransition = errors.New("invalid status transition")

var tenderTransitions = map[TenderStatus][]TenderStatus{
	TenderStatusAberta:  {TenderStatusFechada, TenderStatusEmbargada},
	TenderStatusFechada: {TenderStatusConcluida, TenderStatusEmbargada},
}

func (s TenderStatus) Valid() bool {
	switch s {
	case TenderStatusAberta, TenderStatusFechada, TenderStatusConcluida, TenderStatusEmbargada:
		return true
	}
	return false
}

func (s TenderStatus) Terminal() bool {
	return s == TenderStatusConcluida || s == TenderStatusEmbargada
}

func (s TenderStatus) CanTransitionTo(next TenderStatus) bool {
	return allowed(tenderTransitions, s, next)
}

// Tender is a service request posted by a condo.
type Tender struct {
	ID              string       `json:"id"`
	CondoID         string       `json:"condo_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ServiceType     string       `json:"service_type"`
	Status          TenderStatus `json:"status"`
	Cost            int64        `json:"cost"`
	Budget          *float64     `json:"budget,omitempty"`
	WinnerCompanyID string       `json:"winner_company_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TransitionTo moves the tender to next, enforcing the transition table.
func (t *Tender) TransitionTo(next TenderStatus, now time.Time) error {
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: tender %s %s -> %s", ErrInvalidTransition, t.ID, t.Status, next)
	}
	t.Status = next
	t.UpdatedAt = now
	return nil
}

// Complete records the winner. The tender must be fechada.
func (t *Tender) Complete(winnerCompanyID string, now time.Time) error {
	if winnerCompanyID == "" {
		return fmt.Errorf("%w: tender %s has no winner", ErrInvalidTransition, t.ID)
	}
	if err := t.TransitionTo(TenderStatusConcluida, now); err != nil {
		return err
	}
	t.WinnerCompanyID = winnerCompanyID
	return nil
}

// Consistent checks that a winner exists if and only if the tender is concluida.
func (t Tender) Consistent() bool {
	return (t.WinnerCompanyID != "") == (t.Status == TenderStatusConcluida)
}
