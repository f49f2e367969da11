package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("certifica_condo/usecase")

const (
	NotifyKindWinner = "tender_won"
	NotifyKindLoser  = "tender_lost"
)

// CreateTenderInput carries the fields a condo fills in.
type CreateTenderInput struct {
	Title       string
	Description string
	ServiceType string
	Budget      *float64
}

// ITenderUseCase drives the tender state machine:
//
//	aberta -> fechada -> concluida
//	aberta | fechada -> embargada (admin)
type ITenderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateTenderInput) (entities.Tender, error)
	Close(ctx context.Context, actor entities.Actor, tenderID string) (entities.Tender, error)
	SelectWinner(ctx context.Context, actor entities.Actor, tenderID, candidacyID string) (entities.Tender, error)
	Embargo(ctx context.Context, actor entities.Actor, tenderID string) (entities.Tender, error)
	Get(ctx context.Context, tenderID string) (entities.Tender, error)
	ListOpen(ctx context.Context) ([]entities.Tender, error)
	ListByCondo(ctx context.Context, actor entities.Actor, condoID string) ([]entities.Tender, error)
}

type TenderUseCase struct {
	store       interfaces.IStore
	notifier    *Notifier
	logger      *zap.Logger
	metrics     *observability.Metrics
	defaultCost int64
	now         func() time.Time
}

var _ ITenderUseCase = (*TenderUseCase)(nil)

func NewTenderUseCase(store interfaces.IStore, notifier *Notifier, logger *zap.Logger, metrics *observability.Metrics, defaultCost int64) *TenderUseCase {
	if defaultCost <= 0 {
		defaultCost = entities.DefaultTenderCost
	}
	return &TenderUseCase{store: store, notifier: notifier, logger: orNop(logger), metrics: metrics, defaultCost: defaultCost, now: utcNow}
}

func (u *TenderUseCase) Create(ctx context.Context, actor entities.Actor, in CreateTenderInput) (entities.Tender, error) {
	if actor.Role != entities.RoleCondominio || actor.ID == "" {
		return entities.Tender{}, ErrForbidden
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	if in.Title == "" || in.Description == "" || in.ServiceType == "" {
		return entities.Tender{}, ErrInvalidTenderInput
	}
	if in.Budget != nil && *in.Budget < 0 {
		return entities.Tender{}, ErrInvalidTenderInput
	}

	now := u.now()
	t := entities.Tender{
		ID:          uuid.NewString(),
		CondoID:     actor.ID,
		Title:       in.Title,
		Description: in.Description,
		ServiceType: in.ServiceType,
		Status:      entities.TenderStatusAberta,
		Cost:        u.defaultCost,
		Budget:      in.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		condo, err := tx.Condos().GetByID(ctx, actor.ID)
		if err != nil {
			return err
		}
		if condo.ID == "" {
			return ErrCondoNotFound
		}
		if !condo.Active || condo.Status != entities.ApprovalStatusAprovado {
			return ErrCondoInactive
		}
		return tx.Tenders().Create(ctx, t)
	})
	if err != nil {
		return entities.Tender{}, err
	}
	u.metrics.RecordTenderTransition(string(t.Status))
	u.logger.Info("[tender][usecase] created", zap.String("tender_id", t.ID), zap.String("condo_id", t.CondoID))
	return t, nil
}

// Close stops accepting candidacies; only the owning condo, only from aberta.
func (u *TenderUseCase) Close(ctx context.Context, actor entities.Actor, tenderID string) (entities.Tender, error) {
	var out entities.Tender
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		t, err := lockOwnedTender(ctx, tx, actor, tenderID)
		if err != nil {
			return err
		}
		if t.Status != entities.TenderStatusAberta {
			return ErrTenderNotOpen
		}
		if err := t.TransitionTo(entities.TenderStatusFechada, u.now()); err != nil {
			return err
		}
		out = t
		return tx.Tenders().Update(ctx, t)
	})
	if err != nil {
		return entities.Tender{}, err
	}
	u.metrics.RecordTenderTransition(string(out.Status))
	u.logger.Info("[tender][usecase] closed", zap.String("tender_id", out.ID))
	return out, nil
}

// SelectWinner accepts one candidacy and rejects every other pending one in
// the same transaction. From aberta the tender passes through fechada inside
// that transaction.
func (u *TenderUseCase) SelectWinner(ctx context.Context, actor entities.Actor, tenderID, candidacyID string) (entities.Tender, error) {
	ctx, span := tracer.Start(ctx, "tender.select_winner")
	defer span.End()
	span.SetAttributes(attribute.String("tender_id", tenderID), attribute.String("candidacy_id", candidacyID))

	var (
		out  entities.Tender
		msgs []Message
	)
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		t, err := lockOwnedTender(ctx, tx, actor, tenderID)
		if err != nil {
			return err
		}
		winner, err := tx.Candidacies().GetByID(ctx, candidacyID)
		if err != nil {
			return err
		}
		if winner.ID == "" {
			return ErrCandidacyNotFound
		}
		if winner.TenderID != t.ID {
			return ErrCandidacyMismatch
		}

		now := u.now()
		if t.Status == entities.TenderStatusAberta {
			if err := t.TransitionTo(entities.TenderStatusFechada, now); err != nil {
				return err
			}
		}
		if err := t.Complete(winner.CompanyID, now); err != nil {
			return err
		}

		all, err := tx.Candidacies().ListByTender(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, c := range all {
			next := entities.CandidacyStatusRejeitada
			if c.ID == winner.ID {
				next = entities.CandidacyStatusAceita
			}
			if c.Status == next {
				continue
			}
			if err := c.TransitionTo(next); err != nil {
				return err
			}
			if err := tx.Candidacies().UpdateStatus(ctx, c.ID, c.Status); err != nil {
				return err
			}
			msg, err := resultMessage(ctx, tx, t, c)
			if err != nil {
				return err
			}
			if msg.Recipient != "" {
				msgs = append(msgs, msg)
			}
		}
		if err := tx.Tenders().Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return entities.Tender{}, err
	}

	u.metrics.RecordTenderTransition(string(out.Status))
	u.logger.Info("[tender][usecase] winner selected",
		zap.String("tender_id", out.ID),
		zap.String("company_id", out.WinnerCompanyID),
		zap.Int("notifications", len(msgs)))
	u.notifier.Dispatch(ctx, msgs)
	return out, nil
}

// Embargo halts a non-terminal tender; admin only.
func (u *TenderUseCase) Embargo(ctx context.Context, actor entities.Actor, tenderID string) (entities.Tender, error) {
	if !actor.IsAdmin() {
		return entities.Tender{}, ErrForbidden
	}
	var out entities.Tender
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		t, err := tx.Tenders().GetForUpdate(ctx, tenderID)
		if err != nil {
			return err
		}
		if t.ID == "" {
			return ErrTenderNotFound
		}
		if err := t.TransitionTo(entities.TenderStatusEmbargada, u.now()); err != nil {
			return err
		}
		out = t
		return tx.Tenders().Update(ctx, t)
	})
	if err != nil {
		return entities.Tender{}, err
	}
	u.metrics.RecordTenderTransition(string(out.Status))
	u.logger.Warn("[tender][usecase] embargoed", zap.String("tender_id", out.ID), zap.String("admin_id", actor.ID))
	return out, nil
}

func (u *TenderUseCase) Get(ctx context.Context, tenderID string) (entities.Tender, error) {
	var out entities.Tender
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Tenders().GetByID(ctx, tenderID)
		return err
	})
	if err != nil {
		return entities.Tender{}, err
	}
	if out.ID == "" {
		return entities.Tender{}, ErrTenderNotFound
	}
	return out, nil
}

func (u *TenderUseCase) ListOpen(ctx context.Context) ([]entities.Tender, error) {
	var out []entities.Tender
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Tenders().ListByStatus(ctx, entities.TenderStatusAberta)
		return err
	})
	return out, err
}

func (u *TenderUseCase) ListByCondo(ctx context.Context, actor entities.Actor, condoID string) ([]entities.Tender, error) {
	if !actor.IsAdmin() && !actor.IsCondominio(condoID) {
		return nil, ErrForbidden
	}
	var out []entities.Tender
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		out, err = tx.Tenders().ListByCondo(ctx, condoID)
		return err
	})
	return out, err
}

// lockOwnedTender loads the tender for update and checks the actor owns it.
func lockOwnedTender(ctx context.Context, tx interfaces.IStoreTx, actor entities.Actor, tenderID string) (entities.Tender, error) {
	t, err := tx.Tenders().GetForUpdate(ctx, tenderID)
	if err != nil {
		return entities.Tender{}, err
	}
	if t.ID == "" {
		return entities.Tender{}, ErrTenderNotFound
	}
	if !actor.IsCondominio(t.CondoID) {
		return entities.Tender{}, ErrForbidden
	}
	return t, nil
}

func resultMessage(ctx context.Context, tx interfaces.IStoreTx, t entities.Tender, c entities.Candidacy) (Message, error) {
	company, err := tx.Companies().GetByID(ctx, c.CompanyID)
	if err != nil {
		return Message{}, err
	}
	if company.ID == "" {
		return Message{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, c.CompanyID)
	}
	if c.Status == entities.CandidacyStatusAceita {
		return Message{
			Kind:      NotifyKindWinner,
			Recipient: company.Email,
			Subject:   "Sua empresa venceu a licitação: " + t.Title,
			Body:      fmt.Sprintf("Olá %s, sua candidatura para a licitação %q foi aceita.", company.Name, t.Title),
		}, nil
	}
	return Message{
		Kind:      NotifyKindLoser,
		Recipient: company.Email,
		Subject:   "Licitação encerrada: " + t.Title,
		Body:      fmt.Sprintf("Olá %s, a licitação %q foi concluída e sua candidatura não foi selecionada.", company.Name, t.Title),
	}, nil
}
