package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider-side status of a payment.
//
// Only approved payments mutate state; every other value is logged and skipped.
type PaymentStatus string

const (
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusInProcess  PaymentStatus = "in_process"
	PaymentStatusRejected   PaymentStatus = "rejected"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusChargeBack PaymentStatus = "charged_back"
)

// Metadata keys attached to checkouts and echoed back by the provider.
const (
	MetadataCompanyID = "empresa_id"
	MetadataCoins     = "moedas"
	MetadataCondoID   = "condominio_id"
	MetadataPlanID    = "plano_id"
)

// PaymentDetail is the authoritative view of a payment fetched from the provider.
// Webhook bodies are never trusted for any of these fields.
type PaymentDetail struct {
	ID                string          `json:"id"`
	Status            PaymentStatus   `json:"status"`
	StatusDetail      string          `json:"status_detail,omitempty"`
	Amount            float64         `json:"amount"`
	ExternalReference string          `json:"external_reference,omitempty"`
	Metadata          map[string]any  `json:"metadata,omitempty"`
	Raw               json.RawMessage `json:"-"`
}

// NotificationKind distinguishes direct payment events from order wrappers.
type NotificationKind string

const (
	NotificationKindPayment       NotificationKind = "payment"
	NotificationKindMerchantOrder NotificationKind = "merchant_order"
)

// PaymentNotification is the single internal shape every provider webhook is
// normalized into before reconciliation runs.
type PaymentNotification struct {
	Kind       NotificationKind `json:"kind"`
	ResourceID string           `json:"resource_id"`
}

// ReconciliationOutcome is what happened to one payment id.
type ReconciliationOutcome string

const (
	OutcomeCredited      ReconciliationOutcome = "credited"
	OutcomePlanActivated ReconciliationOutcome = "plan_activated"
	OutcomeDuplicate     ReconciliationOutcome = "duplicate"
	OutcomeNotApproved   ReconciliationOutcome = "not_approved"
	OutcomeUnrecognized  ReconciliationOutcome = "unrecognized"
	OutcomeNotFound      ReconciliationOutcome = "not_found"
	OutcomeLookupFailed  ReconciliationOutcome = "lookup_failed"
	OutcomeFailed        ReconciliationOutcome = "failed"
)

// PaymentOutcome reports the reconciliation of a single payment id.
type PaymentOutcome struct {
	PaymentID string                `json:"payment_id"`
	Outcome   ReconciliationOutcome `json:"outcome"`
	Detail    string                `json:"detail,omitempty"`
}

// PaymentAuditRecord keeps the provider payload of every evaluated payment for
// manual reconciliation.
//
// A record holding an applied outcome (credited, plan_activated) is never
// replaced by a later evaluation of the same payment.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (owner_id-index): owner_id (company or condo id, when known)
type PaymentAuditRecord struct {
	ID           string                `json:"id"`
	EventType    NotificationKind      `json:"event_type"`
	OwnerID      string                `json:"owner_id,omitempty"`
	Status       PaymentStatus         `json:"status"`
	Outcome      ReconciliationOutcome `json:"outcome"`
	Date         time.Time             `json:"date"`
	MPPayloadRaw json.RawMessage       `json:"mp_payload_raw,omitempty"`
}

// Applied reports outcomes that changed a ledger.
func (o ReconciliationOutcome) Applied() bool {
	return o == OutcomeCredited || o == OutcomePlanActivated
}

// CheckoutRequest is what the core asks the provider to open a checkout for.
type CheckoutRequest struct {
	Title             string
	Quantity          int
	UnitPrice         float64
	PayerEmail        string
	ExternalReference string
	Metadata          map[string]any
	SuccessURL        string
	FailureURL        string
	PendingURL        string
	NotificationURL   string
}

// CheckoutSession is the provider checkout created for a purchase.
type CheckoutSession struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}
