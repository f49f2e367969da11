package handlers

import (
	"net/http"

	request "certifica_condo/internal/adapter/http/dto/request"
	"certifica_condo/internal/usecase"
	"certifica_condo/pkg"

	"github.com/gin-gonic/gin"
)

var errRatingNotFound = pkg.NewDomainErrorSimple("RATING_NOT_FOUND", "Rating not found", http.StatusNotFound)

type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

func (h *RatingHandler) Rate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RateTenderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	rating, err := h.usecase.Rate(c.Request.Context(), actor, c.Param("id"), payload.Score, payload.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) GetByTender(c *gin.Context) {
	rating, err := h.usecase.GetByTender(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rating.ID == "" {
		respondAppError(c, errRatingNotFound)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) CompanySummary(c *gin.Context) {
	summary, err := h.usecase.CompanySummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
