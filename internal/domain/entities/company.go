package entities

import "time"

// Company (empresa) is a vetted service provider that bids on tenders.
//
// Balance is a cache of the sum of the company's coin transactions. It is only
// written by the coin ledger, never directly.
type Company struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CNPJ      string         `json:"cnpj"`
	Email     string         `json:"email"`
	Balance   int64          `json:"balance"`
	Active    bool           `json:"active"`
	Status    ApprovalStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// CanBid reports whether the company may spend coins on candidacies.
func (c Company) CanBid() bool {
	return c.Active && c.Status == ApprovalStatusAprovado
}
