package errs

import (
	"errors"
	"fmt"
)

// ErrStatusTransitionIsInvalid is the sentinel for lifecycle changes along an edge
// that the status machine does not define.
var ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")

// StatusTransitionIsInvalidError records the rejected edge. From and To hold the
// display names of the statuses so this package stays free of domain imports.
type StatusTransitionIsInvalidError struct {
	From string
	To   string
}

// NewStatusTransitionIsInvalidError creates an error for the edge from -> to.
func NewStatusTransitionIsInvalidError(from, to fmt.Stringer) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{
		From: from.String(),
		To:   to.String(),
	}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrStatusTransitionIsInvalid, e.From, e.To)
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}
