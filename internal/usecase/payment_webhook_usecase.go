package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/ids"
	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// IPaymentWebhookUseCase reconciles provider notifications with the ledgers.
//
// HandleNotification returns an error only for transient faults (provider
// lookup, storage); every business outcome, including unrecognized payments,
// is reported in the outcome list and acknowledged.
type IPaymentWebhookUseCase interface {
	HandleNotification(ctx context.Context, n entities.PaymentNotification) ([]entities.PaymentOutcome, error)
	PaymentAudit(ctx context.Context, actor entities.Actor, paymentID string) (entities.PaymentAuditRecord, error)
	OwnerPaymentAudit(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.PaymentAuditRecord, error)
}

type PaymentWebhookUseCase struct {
	store        interfaces.IStore
	gateway      interfaces.IPaymentGateway
	audit        interfaces.IPaymentAuditRepository
	catalog      entities.Catalog
	planDuration time.Duration
	logger       *zap.Logger
	metrics      *observability.Metrics
	now          func() time.Time
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

// DefaultPlanDuration is how long a paid plan stays active.
const DefaultPlanDuration = 30 * 24 * time.Hour

func NewPaymentWebhookUseCase(store interfaces.IStore, gateway interfaces.IPaymentGateway, audit interfaces.IPaymentAuditRepository, catalog entities.Catalog, planDuration time.Duration, logger *zap.Logger, metrics *observability.Metrics) *PaymentWebhookUseCase {
	if planDuration <= 0 {
		planDuration = DefaultPlanDuration
	}
	return &PaymentWebhookUseCase{
		store:        store,
		gateway:      gateway,
		audit:        audit,
		catalog:      catalog,
		planDuration: planDuration,
		logger:       orNop(logger),
		metrics:      metrics,
		now:          utcNow,
	}
}

func (u *PaymentWebhookUseCase) HandleNotification(ctx context.Context, n entities.PaymentNotification) ([]entities.PaymentOutcome, error) {
	ctx, span := tracer.Start(ctx, "payment.reconcile")
	defer span.End()
	span.SetAttributes(attribute.String("event_type", string(n.Kind)), attribute.String("resource_id", n.ResourceID))

	n.ResourceID = strings.TrimSpace(n.ResourceID)
	if n.ResourceID == "" || (n.Kind != entities.NotificationKindPayment && n.Kind != entities.NotificationKindMerchantOrder) {
		u.metrics.RecordWebhook(string(n.Kind), "invalid")
		u.logger.Info("[payment][webhook] ignoring notification without usable id",
			zap.String("event_type", string(n.Kind)), zap.String("resource_id", n.ResourceID))
		return nil, ErrInvalidNotification
	}

	paymentIDs, err := u.resolvePaymentIDs(ctx, n)
	if errors.Is(err, interfaces.ErrProviderResourceNotFound) {
		u.metrics.RecordWebhook(string(n.Kind), "invalid")
		u.logger.Info("[payment][webhook] merchant order unknown to provider, ignoring",
			zap.String("order_id", n.ResourceID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotification, err)
	}
	if err != nil {
		u.metrics.RecordWebhook(string(n.Kind), "lookup_failed")
		span.RecordError(err)
		return nil, err
	}

	outcomes := make([]entities.PaymentOutcome, 0, len(paymentIDs))
	var firstErr error
	for _, id := range paymentIDs {
		outcome, err := u.reconcile(ctx, n.Kind, id)
		outcomes = append(outcomes, outcome)
		u.metrics.RecordReconciliation(string(outcome.Outcome))
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if n.Kind == entities.NotificationKindPayment && len(outcomes) == 1 && outcomes[0].Outcome == entities.OutcomeNotFound && firstErr == nil {
		u.metrics.RecordWebhook(string(n.Kind), "invalid")
		return outcomes, fmt.Errorf("%w: payment %s unknown to provider", ErrInvalidNotification, n.ResourceID)
	}

	result := "ok"
	if firstErr != nil {
		result = "retry"
		span.RecordError(firstErr)
	}
	u.metrics.RecordWebhook(string(n.Kind), result)
	return outcomes, firstErr
}

// resolvePaymentIDs flattens both event shapes into distinct payment ids.
func (u *PaymentWebhookUseCase) resolvePaymentIDs(ctx context.Context, n entities.PaymentNotification) ([]string, error) {
	if n.Kind == entities.NotificationKindPayment {
		return []string{n.ResourceID}, nil
	}
	nested, err := u.gateway.GetMerchantOrderPayments(ctx, n.ResourceID)
	if err != nil {
		u.logger.Warn("[payment][webhook] merchant order lookup failed",
			zap.String("event_type", string(n.Kind)), zap.String("order_id", n.ResourceID), zap.Error(err))
		return nil, fmt.Errorf("%w: merchant order %s: %w", ErrPaymentLookupFailed, n.ResourceID, err)
	}
	seen := make(map[string]bool, len(nested))
	out := make([]string, 0, len(nested))
	for _, id := range nested {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		u.logger.Info("[payment][webhook] merchant order has no payments yet", zap.String("order_id", n.ResourceID))
	}
	return out, nil
}

func (u *PaymentWebhookUseCase) reconcile(ctx context.Context, kind entities.NotificationKind, paymentID string) (entities.PaymentOutcome, error) {
	log := u.logger.With(zap.String("payment_id", paymentID), zap.String("event_type", string(kind)))
	outcome := entities.PaymentOutcome{PaymentID: paymentID}

	detail, err := u.gateway.GetPayment(ctx, paymentID)
	if errors.Is(err, interfaces.ErrProviderResourceNotFound) {
		log.Info("[payment][webhook] payment unknown to provider, skipping", zap.Error(err))
		outcome.Outcome = entities.OutcomeNotFound
		return outcome, nil
	}
	if err != nil {
		log.Warn("[payment][webhook] payment lookup failed", zap.Error(err))
		outcome.Outcome = entities.OutcomeLookupFailed
		return outcome, fmt.Errorf("%w: payment %s: %w", ErrPaymentLookupFailed, paymentID, err)
	}
	if detail.ID == "" {
		detail.ID = paymentID
	}

	p, perr := parsePurchase(detail.Metadata)

	if detail.Status != entities.PaymentStatusApproved {
		log.Info("[payment][webhook] payment not approved, skipping", zap.String("status", string(detail.Status)))
		outcome.Outcome = entities.OutcomeNotApproved
		outcome.Detail = string(detail.Status)
		u.saveAudit(ctx, kind, detail, p.ownerID, outcome.Outcome)
		return outcome, nil
	}

	if perr != nil {
		log.Warn("[payment][webhook] unrecognized metadata, skipping", zap.Any("metadata", detail.Metadata), zap.Error(perr))
		outcome.Outcome = entities.OutcomeUnrecognized
		outcome.Detail = perr.Error()
		u.saveAudit(ctx, kind, detail, "", outcome.Outcome)
		return outcome, nil
	}

	err = u.store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		switch p.kind {
		case entities.ReceiptKindCoins:
			return u.creditCoins(ctx, tx, detail, p)
		default:
			return u.activatePlan(ctx, tx, detail, p)
		}
	})
	switch {
	case err == nil:
		if p.kind == entities.ReceiptKindCoins {
			outcome.Outcome = entities.OutcomeCredited
			log.Info("[payment][webhook] coins credited", zap.String("company_id", p.ownerID), zap.Int64("coins", p.coins))
		} else {
			outcome.Outcome = entities.OutcomePlanActivated
			log.Info("[payment][webhook] plan activated", zap.String("condo_id", p.ownerID), zap.String("plan_id", p.planID))
		}
	case errors.Is(err, errPaymentAlreadyApplied):
		outcome.Outcome = entities.OutcomeDuplicate
		log.Info("[payment][webhook] payment already processed, skipping")
	case errors.Is(err, ErrUnrecognizedPaymentMetadata):
		outcome.Outcome = entities.OutcomeUnrecognized
		outcome.Detail = err.Error()
		log.Warn("[payment][webhook] payment references unknown owner or plan, skipping", zap.Error(err))
	default:
		outcome.Outcome = entities.OutcomeFailed
		log.Error("[payment][webhook] reconciliation failed", zap.Error(err))
		return outcome, err
	}
	u.saveAudit(ctx, kind, detail, p.ownerID, outcome.Outcome)
	return outcome, nil
}

func (u *PaymentWebhookUseCase) creditCoins(ctx context.Context, tx interfaces.IStoreTx, detail entities.PaymentDetail, p purchase) error {
	company, err := tx.Companies().GetForUpdate(ctx, p.ownerID)
	if err != nil {
		return err
	}
	if company.ID == "" {
		return fmt.Errorf("%w: company %s", ErrUnrecognizedPaymentMetadata, p.ownerID)
	}
	_, err = creditLocked(ctx, tx, company, p.coins, fmt.Sprintf("Compra de %d moedas", p.coins), detail.ID, u.now())
	return err
}

// activatePlan sets the plan and expiry (now + plan duration) and appends the
// plan transaction in the caller's transaction.
func (u *PaymentWebhookUseCase) activatePlan(ctx context.Context, tx interfaces.IStoreTx, detail entities.PaymentDetail, p purchase) error {
	condo, err := tx.Condos().GetForUpdate(ctx, p.ownerID)
	if err != nil {
		return err
	}
	if condo.ID == "" {
		return fmt.Errorf("%w: condo %s", ErrUnrecognizedPaymentMetadata, p.ownerID)
	}
	if _, ok := u.catalog.Plan(p.planID); !ok {
		return fmt.Errorf("%w: plan %s", ErrUnrecognizedPaymentMetadata, p.planID)
	}
	existing, err := tx.PlanTransactions().GetByPaymentID(ctx, detail.ID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return errPaymentAlreadyApplied
	}
	if err := claimReceipt(ctx, tx, detail.ID, entities.ReceiptKindPlan); err != nil {
		return err
	}

	now := u.now()
	err = tx.PlanTransactions().Append(ctx, entities.PlanTransaction{
		ID:        ids.NewLedgerID(),
		CondoID:   condo.ID,
		PlanID:    p.planID,
		Amount:    detail.Amount,
		PaymentID: detail.ID,
		Status:    entities.TransactionStatusConcluida,
		CreatedAt: now,
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return errPaymentAlreadyApplied
	}
	if err != nil {
		return err
	}
	return tx.Condos().UpdateSubscription(ctx, condo.ID, p.planID, now.Add(u.planDuration))
}

func (u *PaymentWebhookUseCase) saveAudit(ctx context.Context, kind entities.NotificationKind, detail entities.PaymentDetail, ownerID string, outcome entities.ReconciliationOutcome) {
	if u.audit == nil {
		return
	}
	rec := entities.PaymentAuditRecord{
		ID:           detail.ID,
		EventType:    kind,
		OwnerID:      ownerID,
		Status:       detail.Status,
		Outcome:      outcome,
		Date:         u.now(),
		MPPayloadRaw: detail.Raw,
	}
	if err := u.audit.Save(ctx, rec); err != nil {
		u.logger.Warn("[payment][webhook] audit save failed", zap.String("payment_id", detail.ID), zap.Error(err))
	}
}

// PaymentAudit returns the provider view recorded for one payment; admin only.
func (u *PaymentWebhookUseCase) PaymentAudit(ctx context.Context, actor entities.Actor, paymentID string) (entities.PaymentAuditRecord, error) {
	if !actor.IsAdmin() {
		return entities.PaymentAuditRecord{}, ErrForbidden
	}
	if u.audit == nil {
		return entities.PaymentAuditRecord{}, ErrPaymentAuditUnavailable
	}
	rec, err := u.audit.GetByID(ctx, strings.TrimSpace(paymentID))
	if err != nil {
		return entities.PaymentAuditRecord{}, fmt.Errorf("read payment audit: %w", err)
	}
	if rec.ID == "" {
		return entities.PaymentAuditRecord{}, ErrPaymentAuditNotFound
	}
	return rec, nil
}

// OwnerPaymentAudit lists the audited payments of a company or condo.
func (u *PaymentWebhookUseCase) OwnerPaymentAudit(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.PaymentAuditRecord, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if u.audit == nil {
		return nil, ErrPaymentAuditUnavailable
	}
	list, err := u.audit.ListByOwner(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list payment audit: %w", err)
	}
	return list, nil
}

// purchase is what a payment's metadata asks the core to apply.
type purchase struct {
	kind    entities.ReceiptKind
	ownerID string
	coins   int64
	planID  string
}

// parsePurchase accepts empresa_id+moedas or condominio_id+plano_id. Values
// may arrive as strings or JSON numbers.
func parsePurchase(meta map[string]any) (purchase, error) {
	companyID := metaString(meta, entities.MetadataCompanyID)
	condoID := metaString(meta, entities.MetadataCondoID)

	switch {
	case companyID != "" && condoID == "":
		coins, ok := metaInt(meta, entities.MetadataCoins)
		if !ok || coins <= 0 {
			return purchase{}, fmt.Errorf("%w: invalid %s", ErrUnrecognizedPaymentMetadata, entities.MetadataCoins)
		}
		return purchase{kind: entities.ReceiptKindCoins, ownerID: companyID, coins: coins}, nil
	case condoID != "" && companyID == "":
		planID := metaString(meta, entities.MetadataPlanID)
		if planID == "" {
			return purchase{}, fmt.Errorf("%w: missing %s", ErrUnrecognizedPaymentMetadata, entities.MetadataPlanID)
		}
		return purchase{kind: entities.ReceiptKindPlan, ownerID: condoID, planID: planID}, nil
	}
	return purchase{}, ErrUnrecognizedPaymentMetadata
}

func metaString(meta map[string]any, key string) string {
	switch v := meta[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

func metaInt(meta map[string]any, key string) (int64, bool) {
	switch v := meta[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}
