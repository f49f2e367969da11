package routes

import (
	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addTenderRoutes(rg *gin.RouterGroup, h Handlers) {
	tenders := rg.Group(PathTenders)
	{
		tenders.POST("", h.Tender.Create)
		tenders.POST("/:id/fechar", h.Tender.Close)
		tenders.POST("/:id/vencedor", h.Tender.SelectWinner)
		tenders.POST("/:id/embargo", middleware.RequireRole(entities.RoleAdmin), h.Tender.Embargo)
		tenders.POST("/:id/avaliacao", h.Rating.Rate)
		tenders.POST("/:id/candidaturas", h.Candidacy.Submit)
		tenders.GET("/:id/candidaturas", h.Candidacy.ListByTender)
	}
}
