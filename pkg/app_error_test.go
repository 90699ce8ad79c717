package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	appErr := NewDomainError("STORAGE_UNAVAILABLE", "Storage unavailable", cause, http.StatusServiceUnavailable)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	body := appErr.ToHTTPError()
	if body.Code != "STORAGE_UNAVAILABLE" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	withDetails := NewDomainErrorSimple("VALIDATION_FAILED", "Invalid", http.StatusUnprocessableEntity).
		WithDetails(ErrorDetail{Field: "customer_email", Reason: "must be a valid email"})
	if len(withDetails.ToHTTPError().Details) != 1 {
		t.Fatalf("expected one detail, got %+v", withDetails.ToHTTPError())
	}
}
