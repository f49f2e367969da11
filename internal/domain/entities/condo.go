package entities

import (
	"errors"
	"strings"
	"time"
)

// CondoRank is the certification tier granted when a condo is approved.
type CondoRank string

const (
	CondoRankBronze CondoRank = "bronze"
	CondoRankPrata  CondoRank = "prata"
	CondoRankOuro   CondoRank = "ouro"
)

var ErrInvalidCondoRank = errors.New("rank must be bronze, prata or ouro")

// ParseCondoRank accepts the three tiers case-insensitively. An empty string
// parses to the empty rank.
func ParseCondoRank(s string) (CondoRank, error) {
	r := CondoRank(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case "", CondoRankBronze, CondoRankPrata, CondoRankOuro:
		return r, nil
	}
	return "", ErrInvalidCondoRank
}

// Condo (condominio) posts tenders and may hold a paid subscription plan.
type Condo struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	CNPJ          string         `json:"cnpj"`
	Email         string         `json:"email"`
	Active        bool           `json:"active"`
	Status        ApprovalStatus `json:"status"`
	Rank          CondoRank      `json:"rank,omitempty"`
	PlanID        string         `json:"plan_id,omitempty"`
	PlanExpiresAt *time.Time     `json:"plan_expires_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// SubscriptionActive is computed from plan and expiry; it is never stored.
func (c Condo) SubscriptionActive(now time.Time) bool {
	return c.PlanID != "" && c.PlanExpiresAt != nil && c.PlanExpiresAt.After(now)
}

// Certified reports whether the condo belongs in the public directory.
func (c Condo) Certified() bool {
	return c.Active && c.Status == ApprovalStatusAprovado
}
