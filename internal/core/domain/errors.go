package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of the caller-input failure branch.
// Concrete validation errors wrap it so boundaries can match the
// whole branch with errors.Is.
var ErrValidation = errors.New("invalid request")

var (
	ErrMissingCartID      = fmt.Errorf("%w: missing cart id", ErrValidation)
	ErrEmptyCartLines     = fmt.Errorf("%w: no cart lines", ErrValidation)
	ErrMissingMerchandise = fmt.Errorf("%w: missing merchandise id", ErrValidation)
)

// ErrCartUpdate is the opaque failure surfaced when a cart mutation
// fails for any backend or transport reason.
var ErrCartUpdate = errors.New("failed to update cart")

// TransportError reports that the network call itself did not complete:
// connection failure, timeout or a malformed response body.
type TransportError struct {
	Query string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError reports the first error returned by the commerce backend
// for a completed call. Status defaults to 500 when the backend
// provides none.
type BackendError struct {
	Status  int
	Message string
	Cause   string
	Query   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}
