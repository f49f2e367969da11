package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewAction is an admin decision on a registration.
type ReviewAction string

const (
	ReviewVerificar ReviewAction = "verificar"
	ReviewAprovar   ReviewAction = "aprovar"
	ReviewRejeitar  ReviewAction = "rejeitar"
	ReviewSuspender ReviewAction = "suspender"
	ReviewReativar  ReviewAction = "reativar"
)

type RegisterInput struct {
	Name  string
	CNPJ  string
	Email string
}

// SubscriptionStatus is computed on read; nothing stores an "active" flag.
type SubscriptionStatus struct {
	CondoID   string     `json:"condo_id"`
	PlanID    string     `json:"plan_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
}

// PartnerCompany is a public directory entry with the company's rating.
type PartnerCompany struct {
	Company       entities.Company
	RatingAverage float64
	RatingCount   int
}

type IRegistrationUseCase interface {
	RegisterCompany(ctx context.Context, in RegisterInput) (entities.Company, error)
	RegisterCondo(ctx context.Context, in RegisterInput) (entities.Condo, error)
	ReviewCompany(ctx context.Context, actor entities.Actor, companyID string, action ReviewAction) (entities.Company, error)
	ReviewCondo(ctx context.Context, actor entities.Actor, condoID string, action ReviewAction, rank entities.CondoRank) (entities.Condo, error)
	ListCompanies(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Company, error)
	ListCondos(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Condo, error)
	GetCompany(ctx context.Context, actor entities.Actor, companyID string) (entities.Company, error)
	GetCondo(ctx context.Context, actor entities.Actor, condoID string) (entities.Condo, error)
	Subscription(ctx context.Context, actor entities.Actor, condoID string) (SubscriptionStatus, error)
	ListCertifiedCondos(ctx context.Context) ([]entities.Condo, error)
	ListPartnerCompanies(ctx context.Context) ([]PartnerCompany, error)
}

type RegistrationUseCase struct {
	store  interfaces.IStore
	logger *zap.Logger
	now    func() time.Time
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(store interfaces.IStore, logger *zap.Logger) *RegistrationUseCase {
	return &RegistrationUseCase{store: store, logger: orNop(logger), now: utcNow}
}

func normalizeRegistration(in RegisterInput) (RegisterInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.CNPJ = strings.TrimSpace(in.CNPJ)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.CNPJ == "" || !strings.Contains(in.Email, "@") {
		return RegisterInput{}, ErrInvalidRegistration
	}
	return in, nil
}

// RegisterCompany creates a pending, inactive company with a zero balance.
func (u *RegistrationUseCase) RegisterCompany(ctx context.Context, in RegisterInput) (entities.Company, error) {
	in, err := normalizeRegistration(in)
	if err != nil {
		return entities.Company{}, err
	}
	c := entities.Company{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Status:    entities.ApprovalStatusPendente,
		CreatedAt: u.now(),
	}
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.Companies().Create(ctx, c)
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Company{}, ErrAlreadyRegistered
	}
	if err != nil {
		return entities.Company{}, err
	}
	u.logger.Info("[registration][usecase] company registered", zap.String("company_id", c.ID))
	return c, nil
}

func (u *RegistrationUseCase) RegisterCondo(ctx context.Context, in RegisterInput) (entities.Condo, error) {
	in, err := normalizeRegistration(in)
	if err != nil {
		return entities.Condo{}, err
	}
	c := entities.Condo{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Status:    entities.ApprovalStatusPendente,
		CreatedAt: u.now(),
	}
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		return tx.Condos().Create(ctx, c)
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Condo{}, ErrAlreadyRegistered
	}
	if err != nil {
		return entities.Condo{}, err
	}
	u.logger.Info("[registration][usecase] condo registered", zap.String("condo_id", c.ID))
	return c, nil
}

// applyReview maps an admin action to the next (status, active) pair.
// Approval activates; rejection deactivates; suspend/reactivate only toggle
// the active flag of an approved registration.
func applyReview(status entities.ApprovalStatus, active bool, action ReviewAction) (entities.ApprovalStatus, bool, error) {
	switch action {
	case ReviewVerificar:
		if !status.CanTransitionTo(entities.ApprovalStatusVerificado) {
			return "", false, entities.ErrInvalidTransition
		}
		return entities.ApprovalStatusVerificado, active, nil
	case ReviewAprovar:
		if !status.CanTransitionTo(entities.ApprovalStatusAprovado) {
			return "", false, entities.ErrInvalidTransition
		}
		return entities.ApprovalStatusAprovado, true, nil
	case ReviewRejeitar:
		if !status.CanTransitionTo(entities.ApprovalStatusRejeitado) {
			return "", false, entities.ErrInvalidTransition
		}
		return entities.ApprovalStatusRejeitado, false, nil
	case ReviewSuspender:
		if status != entities.ApprovalStatusAprovado || !active {
			return "", false, entities.ErrInvalidTransition
		}
		return status, false, nil
	case ReviewReativar:
		if status != entities.ApprovalStatusAprovado || active {
			return "", false, entities.ErrInvalidTransition
		}
		return status, true, nil
	}
	return "", false, ErrInvalidReviewAction
}

func (u *RegistrationUseCase) ReviewCompany(ctx context.Context, actor entities.Actor, companyID string, action ReviewAction) (entities.Company, error) {
	if !actor.IsAdmin() {
		return entities.Company{}, ErrForbidden
	}
	var out entities.Company
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		c, err := tx.Companies().GetForUpdate(ctx, companyID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrCompanyNotFound
		}
		status, active, err := applyReview(c.Status, c.Active, action)
		if err != nil {
			return err
		}
		c.Status, c.Active = status, active
		out = c
		return tx.Companies().UpdateRegistration(ctx, c.ID, status, active)
	})
	if err != nil {
		return entities.Company{}, err
	}
	u.logger.Info("[registration][usecase] company reviewed",
		zap.String("company_id", out.ID), zap.String("action", string(action)), zap.String("admin_id", actor.ID))
	return out, nil
}

// ReviewCondo applies an admin action. A rank may only accompany aprovar; an
// approval without one keeps the previous rank.
func (u *RegistrationUseCase) ReviewCondo(ctx context.Context, actor entities.Actor, condoID string, action ReviewAction, rank entities.CondoRank) (entities.Condo, error) {
	if !actor.IsAdmin() {
		return entities.Condo{}, ErrForbidden
	}
	rank, err := entities.ParseCondoRank(string(rank))
	if err != nil {
		return entities.Condo{}, err
	}
	if rank != "" && action != ReviewAprovar {
		return entities.Condo{}, fmt.Errorf("%w: only set when approving", entities.ErrInvalidCondoRank)
	}
	var out entities.Condo
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		c, err := tx.Condos().GetForUpdate(ctx, condoID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrCondoNotFound
		}
		status, active, err := applyReview(c.Status, c.Active, action)
		if err != nil {
			return err
		}
		c.Status, c.Active = status, active
		if err := tx.Condos().UpdateRegistration(ctx, c.ID, status, active); err != nil {
			return err
		}
		if rank != "" {
			c.Rank = rank
			if err := tx.Condos().UpdateRank(ctx, c.ID, rank); err != nil {
				return err
			}
		}
		out = c
		return nil
	})
	if err != nil {
		return entities.Condo{}, err
	}
	u.logger.Info("[registration][usecase] condo reviewed",
		zap.String("condo_id", out.ID), zap.String("action", string(action)),
		zap.String("rank", string(out.Rank)), zap.String("admin_id", actor.ID))
	return out, nil
}

func (u *RegistrationUseCase) ListCompanies(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Company, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var out []entities.Company
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Companies().List(ctx, status)
		return err
	})
	return out, err
}

func (u *RegistrationUseCase) ListCondos(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Condo, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var out []entities.Condo
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Condos().List(ctx, status)
		return err
	})
	return out, err
}

func (u *RegistrationUseCase) GetCompany(ctx context.Context, actor entities.Actor, companyID string) (entities.Company, error) {
	if !actor.IsAdmin() && !actor.IsEmpresa(companyID) {
		return entities.Company{}, ErrForbidden
	}
	var out entities.Company
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Companies().GetByID(ctx, companyID)
		return err
	})
	if err != nil {
		return entities.Company{}, err
	}
	if out.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return out, nil
}

func (u *RegistrationUseCase) GetCondo(ctx context.Context, actor entities.Actor, condoID string) (entities.Condo, error) {
	if !actor.IsAdmin() && !actor.IsCondominio(condoID) {
		return entities.Condo{}, ErrForbidden
	}
	var out entities.Condo
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Condos().GetByID(ctx, condoID)
		return err
	})
	if err != nil {
		return entities.Condo{}, err
	}
	if out.ID == "" {
		return entities.Condo{}, ErrCondoNotFound
	}
	return out, nil
}

func (u *RegistrationUseCase) Subscription(ctx context.Context, actor entities.Actor, condoID string) (SubscriptionStatus, error) {
	condo, err := u.GetCondo(ctx, actor, condoID)
	if err != nil {
		return SubscriptionStatus{}, err
	}
	return SubscriptionStatus{
		CondoID:   condo.ID,
		PlanID:    condo.PlanID,
		ExpiresAt: condo.PlanExpiresAt,
		Active:    condo.SubscriptionActive(u.now()),
	}, nil
}

// ListCertifiedCondos is the public directory of approved, active condos.
func (u *RegistrationUseCase) ListCertifiedCondos(ctx context.Context) ([]entities.Condo, error) {
	var out []entities.Condo
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Condos().ListDirectory(ctx)
		return err
	})
	return out, err
}

// ListPartnerCompanies is the public directory of approved, active companies
// with their rating averages.
func (u *RegistrationUseCase) ListPartnerCompanies(ctx context.Context) ([]PartnerCompany, error) {
	var out []PartnerCompany
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		companies, err := tx.Companies().ListDirectory(ctx)
		if err != nil {
			return err
		}
		out = make([]PartnerCompany, 0, len(companies))
		for _, c := range companies {
			ratings, err := tx.Ratings().ListByCompany(ctx, c.ID)
			if err != nil {
				return err
			}
			out = append(out, PartnerCompany{Company: c, RatingAverage: entities.AverageScore(ratings), RatingCount: len(ratings)})
		}
		return nil
	})
	return out, err
}
