package request

// CreateTenderRequest is the body a condo posts to open a tender (licitação).
type CreateTenderRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ServiceType string   `json:"service_type" binding:"required"`
	Budget      *float64 `json:"budget"`
}

type SelectWinnerRequest struct {
	CandidacyID string `json:"candidacy_id" binding:"required"`
}

type SubmitCandidacyRequest struct {
	Message       string   `json:"message"`
	ProposedPrice *float64 `json:"proposed_price"`
}

// RateTenderRequest leaves range checks to the use case so out-of-range
// scores map to INVALID_SCORE instead of a generic binding error.
type RateTenderRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}
