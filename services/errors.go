package services

import (
	"errors"
	"fmt"
)

// Typed failures of the transition executor. Every error leaving
// ExecuteTransition or ResetToDraft is one of these, so callers can map them
// to HTTP responses without string matching.
var (
	ErrApplicationNotFound    = errors.New("application not found")
	ErrInvalidStatus          = errors.New("invalid status value")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrConcurrentModification = errors.New("application was modified concurrently")
	ErrPersistence            = errors.New("failed to persist status transition")
	ErrIntegrityViolation     = errors.New("stored application status violates the status set")
)

// IllegalTransitionError reports a requested edge that is not in the
// transition graph, carrying the legal alternatives from the current status.
type IllegalTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from '%s' to '%s'", e.From, e.To)
}

// AsIllegalTransition unwraps err into an IllegalTransitionError if it is one.
func AsIllegalTransition(err error) (*IllegalTransitionError, bool) {
	var ite *IllegalTransitionError
	if errors.As(err, &ite) {
		return ite, true
	}
	return nil, false
}
