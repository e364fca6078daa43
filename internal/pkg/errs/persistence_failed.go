package errs

import (
	"errors"
	"fmt"
)

// ErrPersistenceFailed is the sentinel for failures of the storage collaborator.
// It is advisory: in-memory state has already been committed when it is reported.
var ErrPersistenceFailed = errors.New("persistence failed")

// PersistenceFailedError records which storage operation failed and why.
type PersistenceFailedError struct {
	Operation string
	Cause     error
}

// NewPersistenceFailedError wraps cause as a failure of the named operation ("load" or "save").
func NewPersistenceFailedError(operation string, cause error) *PersistenceFailedError {
	return &PersistenceFailedError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistenceFailed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailed, e.Operation)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is / errors.As.
func (e *PersistenceFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistenceFailed}
	}
	return []error{ErrPersistenceFailed, e.Cause}
}
