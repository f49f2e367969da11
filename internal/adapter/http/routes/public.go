package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathTenders   = "/licitacoes"
	PathCompanies = "/empresas"
	PathCondos    = "/condominios"
	PathCatalog   = "/catalogo"

	PathCertifiedCondos  = "/condominios-certificados"
	PathPartnerCompanies = "/empresas-parceiras"
)

// addPublicRoutes mounts sign-up, the public directory and read-only
// marketplace routes.
func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathCompanies, h.Registration.RegisterCompany)
	rg.POST(PathCondos, h.Registration.RegisterCondo)
	rg.GET(PathCatalog, h.Checkout.Catalog)
	rg.GET(PathCertifiedCondos, h.Registration.CertifiedCondos)
	rg.GET(PathPartnerCompanies, h.Registration.PartnerCompanies)

	tenders := rg.Group(PathTenders)
	{
		tenders.GET("", h.Tender.ListOpen)
		tenders.GET("/:id", h.Tender.Get)
		tenders.GET("/:id/avaliacao", h.Rating.GetByTender)
	}
	rg.GET(PathCompanies+"/:id/avaliacao", h.Rating.CompanySummary)
}
