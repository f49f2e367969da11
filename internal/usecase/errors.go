package usecase

import "errors"

// Business-rule errors are checked before any mutation and leave state untouched.
var (
	ErrInsufficientBalance = errors.New("insufficient coin balance")
	ErrAlreadyApplied      = errors.New("company already applied to this tender")
	ErrTenderNotOpen       = errors.New("tender is not open")
	ErrDuplicateRating     = errors.New("tender already rated")
	ErrInvalidScore        = errors.New("score must be between 1 and 5")
	ErrTenderNotCompleted  = errors.New("tender has no winner yet")
	ErrCandidacyMismatch   = errors.New("candidacy does not belong to tender")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrInvalidTenderInput  = errors.New("title, service type and description are required")
	ErrInvalidRegistration = errors.New("name, cnpj and email are required")
	ErrInvalidReviewAction = errors.New("invalid review action")
	ErrForbidden           = errors.New("actor is not allowed to perform this operation")

	ErrCompanyNotFound   = errors.New("company not found")
	ErrCondoNotFound     = errors.New("condo not found")
	ErrTenderNotFound    = errors.New("tender not found")
	ErrCandidacyNotFound = errors.New("candidacy not found")
	ErrCompanyInactive   = errors.New("company is not approved or is suspended")
	ErrCondoInactive     = errors.New("condo is not approved or is suspended")
	ErrAlreadyRegistered = errors.New("cnpj already registered")

	ErrPlanNotFound        = errors.New("plan not found")
	ErrCoinPackageNotFound = errors.New("coin package not found")
)

// Reconciliation errors.
var (
	// ErrPaymentLookupFailed is transient: the provider should redeliver.
	ErrPaymentLookupFailed = errors.New("payment lookup failed")
	// ErrUnrecognizedPaymentMetadata is terminal: logged and acknowledged.
	ErrUnrecognizedPaymentMetadata = errors.New("unrecognized payment metadata")
	// ErrInvalidNotification is terminal: the event carries no usable id.
	ErrInvalidNotification = errors.New("invalid payment notification")

	ErrPaymentAuditNotFound    = errors.New("payment audit record not found")
	ErrPaymentAuditUnavailable = errors.New("payment audit is not configured")

	// ErrPaymentRefConsumed: the payment id already paid for something else.
	ErrPaymentRefConsumed = errors.New("payment reference already consumed by another purchase")

	errPaymentAlreadyApplied = errors.New("payment already applied")
)
