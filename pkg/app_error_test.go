package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if appErr.Error() != "An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNewDomainErrorSimple_DefaultStatus(t *testing.T) {
	appErr := NewDomainErrorSimple("X", "x", 0)
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 default, got %d", appErr.HTTPStatus)
	}
	if appErr.Error() != "x" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
}
