package routes

import (
	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathAdmin    = "/admin"
	PathPayments = "/pagamentos"
)

func addAccountRoutes(rg *gin.RouterGroup, h Handlers) {
	condos := rg.Group(PathCondos)
	{
		condos.GET("/:id", h.Registration.GetCondo)
		condos.GET("/:id/licitacoes", h.Tender.ListByCondo)
		condos.GET("/:id/assinatura", h.Registration.Subscription)
	}

	companies := rg.Group(PathCompanies)
	{
		companies.GET("/:id", h.Registration.GetCompany)
		companies.GET("/:id/candidaturas", h.Candidacy.ListByCompany)
		companies.GET("/:id/saldo", h.Ledger.Balance)
		companies.GET("/:id/transacoes", h.Ledger.Transactions)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h Handlers) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/moedas", middleware.RequireRole(entities.RoleEmpresa), h.Checkout.BuyCoins)
		checkout.POST("/planos", middleware.RequireRole(entities.RoleCondominio), h.Checkout.SubscribePlan)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	admin := rg.Group(PathAdmin)
	admin.Use(middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET(PathCompanies, h.Registration.ListCompanies)
		admin.PATCH(PathCompanies+"/:id", h.Registration.ReviewCompany)
		admin.GET(PathCompanies+"/:id/auditoria-saldo", h.Ledger.Verify)
		admin.GET(PathCondos, h.Registration.ListCondos)
		admin.PATCH(PathCondos+"/:id", h.Registration.ReviewCondo)
		admin.GET(PathPayments, h.Webhook.AuditByOwner)
		admin.GET(PathPayments+"/:id", h.Webhook.AuditRecord)
	}
}
