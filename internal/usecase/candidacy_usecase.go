package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitCandidacyInput struct {
	TenderID      string
	Message       string
	ProposedPrice *float64
}

// ICandidacyUseCase manages company bids. Submit debits the tender cost and
// creates the candidacy in one transaction.
type ICandidacyUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, in SubmitCandidacyInput) (entities.Candidacy, error)
	ListByTender(ctx context.Context, actor entities.Actor, tenderID string) ([]entities.Candidacy, error)
	ListByCompany(ctx context.Context, actor entities.Actor, companyID string) ([]entities.Candidacy, error)
}

type CandidacyUseCase struct {
	store   interfaces.IStore
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

var _ ICandidacyUseCase = (*CandidacyUseCase)(nil)

func NewCandidacyUseCase(store interfaces.IStore, logger *zap.Logger, metrics *observability.Metrics) *CandidacyUseCase {
	return &CandidacyUseCase{store: store, logger: orNop(logger), metrics: metrics, now: utcNow}
}

// Submit checks, in order: existing candidacy (ErrAlreadyApplied), tender
// status (ErrTenderNotOpen), balance (ErrInsufficientBalance).
func (u *CandidacyUseCase) Submit(ctx context.Context, actor entities.Actor, in SubmitCandidacyInput) (entities.Candidacy, error) {
	if actor.Role != entities.RoleEmpresa || actor.ID == "" {
		return entities.Candidacy{}, ErrForbidden
	}
	if in.ProposedPrice != nil && *in.ProposedPrice < 0 {
		return entities.Candidacy{}, ErrInvalidAmount
	}

	var created entities.Candidacy
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		// Share lock: concurrent bids on one tender proceed, a close or
		// winner selection waits.
		tender, err := tx.Tenders().GetForShare(ctx, in.TenderID)
		if err != nil {
			return err
		}
		if tender.ID == "" {
			return ErrTenderNotFound
		}
		company, err := tx.Companies().GetForUpdate(ctx, actor.ID)
		if err != nil {
			return err
		}
		if company.ID == "" {
			return ErrCompanyNotFound
		}

		existing, err := tx.Candidacies().GetByTenderAndCompany(ctx, tender.ID, company.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrAlreadyApplied
		}
		if tender.Status != entities.TenderStatusAberta {
			return ErrTenderNotOpen
		}
		if !company.CanBid() {
			return ErrCompanyInactive
		}

		now := u.now()
		if _, err := debitLocked(ctx, tx, company, tender.Cost, "Candidatura na licitação "+tender.ID, now); err != nil {
			return err
		}
		created = entities.Candidacy{
			ID:            uuid.NewString(),
			TenderID:      tender.ID,
			CompanyID:     company.ID,
			Message:       strings.TrimSpace(in.Message),
			ProposedPrice: in.ProposedPrice,
			Status:        entities.CandidacyStatusPendente,
			CreatedAt:     now,
		}
		if err := tx.Candidacies().Create(ctx, created); err != nil {
			if errors.Is(err, interfaces.ErrDuplicateKey) {
				return ErrAlreadyApplied
			}
			return fmt.Errorf("create candidacy: %w", err)
		}
		return nil
	})
	if err != nil {
		u.logger.Info("[candidacy][usecase] submit rejected",
			zap.String("tender_id", in.TenderID),
			zap.String("company_id", actor.ID),
			zap.Error(err))
		return entities.Candidacy{}, err
	}
	u.metrics.RecordLedger("debit", "ok")
	u.logger.Info("[candidacy][usecase] submitted",
		zap.String("candidacy_id", created.ID),
		zap.String("tender_id", created.TenderID),
		zap.String("company_id", created.CompanyID))
	return created, nil
}

// ListByTender is visible to the owning condo and admins.
func (u *CandidacyUseCase) ListByTender(ctx context.Context, actor entities.Actor, tenderID string) ([]entities.Candidacy, error) {
	var out []entities.Candidacy
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		tender, err := tx.Tenders().GetByID(ctx, tenderID)
		if err != nil {
			return err
		}
		if tender.ID == "" {
			return ErrTenderNotFound
		}
		if !actor.IsAdmin() && !actor.IsCondominio(tender.CondoID) {
			return ErrForbidden
		}
		out, err = tx.Candidacies().ListByTender(ctx, tenderID)
		return err
	})
	return out, err
}

func (u *CandidacyUseCase) ListByCompany(ctx context.Context, actor entities.Actor, companyID string) ([]entities.Candidacy, error) {
	if !actor.IsAdmin() && !actor.IsEmpresa(companyID) {
		return nil, ErrForbidden
	}
	var out []entities.Candidacy
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Candidacies().ListByCompany(ctx, companyID)
		return err
	})
	return out, err
}
