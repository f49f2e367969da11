package handlers

import (
	"net/http"

	request "certifica_condo/internal/adapter/http/dto/request"
	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TenderHandler exposes the tender (licitação) lifecycle.
type TenderHandler struct {
	usecase usecase.ITenderUseCase
}

func NewTenderHandler(uc usecase.ITenderUseCase) *TenderHandler {
	return &TenderHandler{usecase: uc}
}

func (h *TenderHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateTenderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	tender, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateTenderInput{
		Title:       payload.Title,
		Description: payload.Description,
		ServiceType: payload.ServiceType,
		Budget:      payload.Budget,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTender(tender))
}

func (h *TenderHandler) Close(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tender, err := h.usecase.Close(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTender(tender))
}

func (h *TenderHandler) SelectWinner(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.SelectWinnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	tender, err := h.usecase.SelectWinner(c.Request.Context(), actor, c.Param("id"), payload.CandidacyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTender(tender))
}

func (h *TenderHandler) Embargo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tender, err := h.usecase.Embargo(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTender(tender))
}

func (h *TenderHandler) Get(c *gin.Context) {
	tender, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTender(tender))
}

func (h *TenderHandler) ListOpen(c *gin.Context) {
	tenders, err := h.usecase.ListOpen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenders(tenders))
}

func (h *TenderHandler) ListByCondo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tenders, err := h.usecase.ListByCondo(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenders(tenders))
}
