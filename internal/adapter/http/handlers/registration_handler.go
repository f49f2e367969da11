package handlers

import (
	"net/http"
	"time"

	request "certifica_condo/internal/adapter/http/dto/request"
	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler covers sign-up of companies and condos and the admin
// review queue.
type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
	now     func() time.Time
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc, now: time.Now}
}

func (h *RegistrationHandler) RegisterCompany(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	company, err := h.usecase.RegisterCompany(c.Request.Context(), usecase.RegisterInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *RegistrationHandler) RegisterCondo(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	condo, err := h.usecase.RegisterCondo(c.Request.Context(), usecase.RegisterInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCondo(condo, h.now()))
}

func (h *RegistrationHandler) ReviewCompany(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	company, err := h.usecase.ReviewCompany(c.Request.Context(), actor, c.Param("id"), usecase.ReviewAction(payload.Action))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *RegistrationHandler) ReviewCondo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	condo, err := h.usecase.ReviewCondo(c.Request.Context(), actor, c.Param("id"), usecase.ReviewAction(payload.Action), entities.CondoRank(payload.Rank))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCondo(condo, h.now()))
}

// CertifiedCondos is the public list of approved condos, ordered by name.
func (h *RegistrationHandler) CertifiedCondos(c *gin.Context) {
	list, err := h.usecase.ListCertifiedCondos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCertifiedCondos(list))
}

// PartnerCompanies is the public list of approved companies with ratings.
func (h *RegistrationHandler) PartnerCompanies(c *gin.Context) {
	list, err := h.usecase.ListPartnerCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPartnerCompanies(list))
}

// ListCompanies accepts an optional ?status= filter.
func (h *RegistrationHandler) ListCompanies(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListCompanies(c.Request.Context(), actor, entities.ApprovalStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanies(list))
}

func (h *RegistrationHandler) ListCondos(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListCondos(c.Request.Context(), actor, entities.ApprovalStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCondos(list, h.now()))
}

func (h *RegistrationHandler) GetCompany(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	company, err := h.usecase.GetCompany(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *RegistrationHandler) GetCondo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	condo, err := h.usecase.GetCondo(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCondo(condo, h.now()))
}

func (h *RegistrationHandler) Subscription(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	status, err := h.usecase.Subscription(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
