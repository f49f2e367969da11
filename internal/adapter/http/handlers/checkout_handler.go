package handlers

import (
	"net/http"

	request "certifica_condo/internal/adapter/http/dto/request"
	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Catalog())
}

func (h *CheckoutHandler) BuyCoins(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.BuyCoinsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	session, err := h.usecase.BuyCoins(c.Request.Context(), actor, payload.PackageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) SubscribePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.SubscribePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	session, err := h.usecase.SubscribePlan(c.Request.Context(), actor, payload.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}
