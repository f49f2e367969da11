package entities

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating (avaliacao) is the single review a condo leaves on a completed tender.
type Rating struct {
	ID        string    `json:"id"`
	TenderID  string    `json:"tender_id"`
	CompanyID string    `json:"company_id"`
	CondoID   string    `json:"condo_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}

// AverageScore is the arithmetic mean of the scores, 0 when there are none.
func AverageScore(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r.Score
	}
	return float64(total) / float64(len(ratings))
}
