package domain

import "errors"

// Error taxonomy. Services wrap these with context via fmt.Errorf and
// the API layer maps each class to a stable response status. A lookup
// that resolves outside the caller's organization surfaces as
// ErrNotFound so cross-tenant existence never leaks.
var (
	ErrValidation      = errors.New("invalid input")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrExpired         = errors.New("expired")
)
