package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingSummary is a company's aggregate score; Average is 0 with no ratings.
type RatingSummary struct {
	CompanyID string  `json:"company_id"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

type IRatingUseCase interface {
	Rate(ctx context.Context, actor entities.Actor, tenderID string, score int, comment string) (entities.Rating, error)
	GetByTender(ctx context.Context, tenderID string) (entities.Rating, error)
	CompanySummary(ctx context.Context, companyID string) (RatingSummary, error)
}

type RatingUseCase struct {
	store  interfaces.IStore
	logger *zap.Logger
	now    func() time.Time
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(store interfaces.IStore, logger *zap.Logger) *RatingUseCase {
	return &RatingUseCase{store: store, logger: orNop(logger), now: utcNow}
}

// Rate creates the single rating of a completed tender, attributed to its
// winner. Checks run owner, completion, duplicate, then score.
func (u *RatingUseCase) Rate(ctx context.Context, actor entities.Actor, tenderID string, score int, comment string) (entities.Rating, error) {
	var created entities.Rating
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		tender, err := tx.Tenders().GetForShare(ctx, tenderID)
		if err != nil {
			return err
		}
		if tender.ID == "" {
			return ErrTenderNotFound
		}
		if !actor.IsCondominio(tender.CondoID) {
			return ErrForbidden
		}
		if tender.Status != entities.TenderStatusConcluida || tender.WinnerCompanyID == "" {
			return ErrTenderNotCompleted
		}
		existing, err := tx.Ratings().GetByTender(ctx, tender.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrDuplicateRating
		}
		if !entities.ValidScore(score) {
			return ErrInvalidScore
		}

		created = entities.Rating{
			ID:        uuid.NewString(),
			TenderID:  tender.ID,
			CompanyID: tender.WinnerCompanyID,
			CondoID:   tender.CondoID,
			Score:     score,
			Comment:   strings.TrimSpace(comment),
			CreatedAt: u.now(),
		}
		if err := tx.Ratings().Create(ctx, created); err != nil {
			if errors.Is(err, interfaces.ErrDuplicateKey) {
				return ErrDuplicateRating
			}
			return err
		}
		return nil
	})
	if err != nil {
		return entities.Rating{}, err
	}
	u.logger.Info("[rating][usecase] created",
		zap.String("tender_id", created.TenderID),
		zap.String("company_id", created.CompanyID),
		zap.Int("score", created.Score))
	return created, nil
}

func (u *RatingUseCase) GetByTender(ctx context.Context, tenderID string) (entities.Rating, error) {
	var out entities.Rating
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Ratings().GetByTender(ctx, tenderID)
		return err
	})
	return out, err
}

func (u *RatingUseCase) CompanySummary(ctx context.Context, companyID string) (RatingSummary, error) {
	var ratings []entities.Rating
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		company, err := tx.Companies().GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}
		ratings, err = tx.Ratings().ListByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return RatingSummary{}, err
	}
	return RatingSummary{CompanyID: companyID, Average: entities.AverageScore(ratings), Count: len(ratings)}, nil
}
