package interfaces

import (
	"context"

	"certifica_condo/internal/domain/entities"
)

// IPaymentAuditRepository keeps the provider payload of evaluated payments
// (DynamoDB). It is an audit trail, never consulted for idempotency.
//
// Save keeps a stored applied outcome: saving over a credited or
// plan_activated record is a silent no-op.
type IPaymentAuditRepository interface {
	Save(ctx context.Context, r entities.PaymentAuditRecord) error
	GetByID(ctx context.Context, id string) (entities.PaymentAuditRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.PaymentAuditRecord, error)
}
