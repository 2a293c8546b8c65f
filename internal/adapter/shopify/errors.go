package shopify

import (
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
)

type respError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Cause   string `json:"cause"`
}

// classify gates a completed call. Only the first backend-reported
// error is surfaced; the backend orders errors by severity.
func classify(errs []respError, query string) error {
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]

	status := first.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	cause := first.Cause
	if cause == "" {
		cause = "unknown"
	}

	return &domain.BackendError{
		Status:  status,
		Message: first.Message,
		Cause:   cause,
		Query:   query,
	}
}
