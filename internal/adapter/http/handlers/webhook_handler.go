package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	request "certifica_condo/internal/adapter/http/dto/request"
	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"
	"certifica_condo/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errReconciliationUnavailable = pkg.NewDomainErrorSimple("RECONCILIATION_UNAVAILABLE", "Payment could not be reconciled now, retry later", http.StatusServiceUnavailable)

// WebhookHandler receives Mercado Pago notifications. The body only says which
// payment to look up; nothing in it is trusted.
//
// Responses: 200 when the notification was handled or deliberately ignored,
// 503 when a lookup or storage fault means the provider should redeliver.
type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
	logger  *zap.Logger
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, logger: logger}
}

func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	var payload request.MercadoPagoNotification
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			h.logger.Warn("[payment][handler] malformed notification body", zap.Error(err))
			respondAppError(c, errInvalidRequest)
			return
		}
	}

	n, ok := payload.Normalize(c.Request.URL.Query())
	if !ok {
		h.logger.Info("[payment][handler] notification ignored",
			zap.String("event_type", string(n.Kind)),
			zap.String("resource_id", n.ResourceID),
			zap.String("type", payload.Type),
			zap.String("topic", payload.Topic))
		c.JSON(http.StatusOK, ignored())
		return
	}

	outcomes, err := h.usecase.HandleNotification(c.Request.Context(), n)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.NewWebhookResponse(outcomes))
	case errors.Is(err, usecase.ErrInvalidNotification):
		c.JSON(http.StatusOK, ignored())
	default:
		h.logger.Warn("[payment][handler] reconciliation deferred",
			zap.String("event_type", string(n.Kind)),
			zap.String("resource_id", n.ResourceID),
			zap.Error(err))
		_ = c.Error(err)
		respondAppError(c, errReconciliationUnavailable)
	}
}

// AuditRecord returns the stored provider payload and outcome of a payment.
func (h *WebhookHandler) AuditRecord(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rec, err := h.usecase.PaymentAudit(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AuditByOwner requires ?owner_id=.
func (h *WebhookHandler) AuditByOwner(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		respondAppError(c, errInvalidRequest)
		return
	}
	list, err := h.usecase.OwnerPaymentAudit(c.Request.Context(), actor, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []entities.PaymentAuditRecord{}
	}
	c.JSON(http.StatusOK, list)
}

func ignored() response.WebhookResponse {
	out := response.NewWebhookResponse(nil)
	out.Ignored = true
	return out
}
