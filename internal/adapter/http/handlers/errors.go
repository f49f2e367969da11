package handlers

import (
	"errors"
	"net/http"

	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase"
	"certifica_condo/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// domainErrors maps use-case sentinels to stable API codes. Order matters only
// for errors that wrap more than one sentinel.
var domainErrors = []struct {
	target error
	appErr *pkg.AppError
}{
	{usecase.ErrForbidden, pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this actor", http.StatusForbidden)},
	{usecase.ErrInsufficientBalance, pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient coin balance", http.StatusPaymentRequired)},
	{usecase.ErrAlreadyApplied, pkg.NewDomainErrorSimple("ALREADY_APPLIED", "Company already applied to this tender", http.StatusConflict)},
	{usecase.ErrTenderNotOpen, pkg.NewDomainErrorSimple("TENDER_NOT_OPEN", "Tender is not open", http.StatusConflict)},
	{usecase.ErrDuplicateRating, pkg.NewDomainErrorSimple("DUPLICATE_RATING", "Tender already rated", http.StatusConflict)},
	{usecase.ErrTenderNotCompleted, pkg.NewDomainErrorSimple("TENDER_NOT_COMPLETED", "Tender is not completed", http.StatusConflict)},
	{usecase.ErrAlreadyRegistered, pkg.NewDomainErrorSimple("ALREADY_REGISTERED", "CNPJ already registered", http.StatusConflict)},
	{entities.ErrInvalidTransition, pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)},
	{usecase.ErrCompanyInactive, pkg.NewDomainErrorSimple("COMPANY_INACTIVE", "Company is not approved or is suspended", http.StatusConflict)},
	{usecase.ErrCondoInactive, pkg.NewDomainErrorSimple("CONDO_INACTIVE", "Condo is not approved or is suspended", http.StatusConflict)},
	{usecase.ErrInvalidScore, pkg.NewDomainErrorSimple("INVALID_SCORE", "Score must be between 1 and 5", http.StatusBadRequest)},
	{usecase.ErrInvalidAmount, pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)},
	{usecase.ErrInvalidTenderInput, pkg.NewDomainErrorSimple("INVALID_TENDER_INPUT", "Invalid tender payload", http.StatusBadRequest)},
	{usecase.ErrInvalidRegistration, pkg.NewDomainErrorSimple("INVALID_REGISTRATION", "Name, CNPJ and a valid email are required", http.StatusBadRequest)},
	{usecase.ErrInvalidReviewAction, pkg.NewDomainErrorSimple("INVALID_REVIEW_ACTION", "Unknown review action", http.StatusBadRequest)},
	{entities.ErrInvalidCondoRank, pkg.NewDomainErrorSimple("INVALID_RANK", "Rank must be bronze, prata or ouro and is only set on approval", http.StatusBadRequest)},
	{usecase.ErrCandidacyMismatch, pkg.NewDomainErrorSimple("CANDIDACY_MISMATCH", "Candidacy does not belong to this tender", http.StatusBadRequest)},
	{usecase.ErrTenderNotFound, pkg.NewDomainErrorSimple("TENDER_NOT_FOUND", "Tender not found", http.StatusNotFound)},
	{usecase.ErrCandidacyNotFound, pkg.NewDomainErrorSimple("CANDIDACY_NOT_FOUND", "Candidacy not found", http.StatusNotFound)},
	{usecase.ErrCompanyNotFound, pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)},
	{usecase.ErrCondoNotFound, pkg.NewDomainErrorSimple("CONDO_NOT_FOUND", "Condo not found", http.StatusNotFound)},
	{usecase.ErrPlanNotFound, pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)},
	{usecase.ErrPaymentAuditNotFound, pkg.NewDomainErrorSimple("PAYMENT_AUDIT_NOT_FOUND", "No audit record for this payment", http.StatusNotFound)},
	{usecase.ErrPaymentAuditUnavailable, pkg.NewDomainErrorSimple("PAYMENT_AUDIT_UNAVAILABLE", "Payment audit is not configured", http.StatusServiceUnavailable)},
	{usecase.ErrCoinPackageNotFound, pkg.NewDomainErrorSimple("COIN_PACKAGE_NOT_FOUND", "Coin package not found", http.StatusNotFound)},
}

func mapError(err error) *pkg.AppError {
	for _, d := range domainErrors {
		if errors.Is(err, d.target) {
			return d.appErr
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor reads the authenticated actor or writes a 401.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondAppError(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}
