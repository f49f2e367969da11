package routes

import (
	"certifica_condo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

// addPaymentRoutes mounts the provider callback. It is unauthenticated; the
// body only names a payment that is then fetched from the provider.
func addPaymentRoutes(rg *gin.RouterGroup, h Handlers, limiter *middleware.RateLimiter) {
	webhooks := rg.Group(PathWebhooks)
	if limiter != nil {
		webhooks.Use(limiter.Handler())
	}
	{
		webhooks.POST("/mercadopago", h.Webhook.MercadoPago)
	}
}
