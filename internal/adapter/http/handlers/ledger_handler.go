package handlers

import (
	"net/http"

	response "certifica_condo/internal/adapter/http/dto/response"
	"certifica_condo/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves read access to a company's coin ledger. Coins only
// move through candidacies and reconciled payments.
type LedgerHandler struct {
	usecase usecase.ICoinLedgerUseCase
}

func NewLedgerHandler(uc usecase.ICoinLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

func (h *LedgerHandler) Balance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	companyID := c.Param("id")
	balance, err := h.usecase.Balance(c.Request.Context(), actor, companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BalanceResponse{CompanyID: companyID, Balance: balance})
}

func (h *LedgerHandler) Transactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txs, err := h.usecase.ListTransactions(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoinTransactions(txs))
}

// Verify recomputes the ledger sum; admin only.
func (h *LedgerHandler) Verify(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	audit, err := h.usecase.VerifyBalance(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, audit)
}
