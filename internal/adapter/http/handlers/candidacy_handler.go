package handlers

import (
	"net/http"

	request "certifica_condo/internal/adapter/http/dto/request"
	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CandidacyHandler struct {
	usecase usecase.ICandidacyUseCase
}

func NewCandidacyHandler(uc usecase.ICandidacyUseCase) *CandidacyHandler {
	return &CandidacyHandler{usecase: uc}
}

// Submit debits the tender cost from the calling company. An empty body is
// accepted.
func (h *CandidacyHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.SubmitCandidacyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondAppError(c, errInvalidRequest)
			return
		}
	}
	candidacy, err := h.usecase.Submit(c.Request.Context(), actor, usecase.SubmitCandidacyInput{
		TenderID:      c.Param("id"),
		Message:       payload.Message,
		ProposedPrice: payload.ProposedPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCandidacy(candidacy))
}

func (h *CandidacyHandler) ListByTender(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListByTender(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCandidacies(list))
}

func (h *CandidacyHandler) ListByCompany(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListByCompany(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCandidacies(list))
}
