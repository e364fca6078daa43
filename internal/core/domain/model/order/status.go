package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Approved ──> Completed
//	          │
//	          └──> Rejected
//
// Rejected and Completed are terminal. There are no self-loops.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the only status an order can be created with. It is waiting for review.
	Pending

	// Approved means the reviewer accepted the request; delivery is still outstanding.
	Approved

	// Rejected means the reviewer declined the request. Final.
	Rejected

	// Completed means the approved request was delivered. Final.
	Completed
)

type statusNames struct {
	name  string
	label string
}

func getStatusNames() map[Status]statusNames {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusNames{
		Pending:   {"Pending", "Menunggu"},
		Approved:  {"Approved", "Disetujui"},
		Rejected:  {"Rejected", "Ditolak"},
		Completed: {"Completed", "Selesai"},
	}
}

// getTransitions is the transition matrix. A status absent from the map has no outgoing edges.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		Pending:  {Approved, Rejected},
		Approved: {Completed},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Approved, Rejected, Completed}
}

// ParseStatus accepts the English name or the Indonesian label, ignoring case.
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, names := range getStatusNames() {
		if strings.EqualFold(needle, names.name) || strings.EqualFold(needle, names.label) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a status", s))
}

// Validate checks if the Status value is one of Pending, Approved, Rejected, Completed.
func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the English name of the status, or "Unknown".
func (s Status) String() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.name
	}
	return "Unknown"
}

// Label returns the Indonesian label shown on the dashboard.
func (s Status) Label() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.label
	}
	return ""
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}

// IsActive reports whether s is still being worked on (Pending or Approved).
func (s Status) IsActive() bool {
	return s == Pending || s == Approved
}

// CanTransitionTo reports whether s -> target is an edge of the state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if s -> target is a legal edge, and a
// StatusTransitionIsInvalidError otherwise.
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Approved) // Approved, nil
//	_, err = order.Pending.TransitionTo(order.Completed)    // errs.ErrStatusTransitionIsInvalid
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewStatusTransitionIsInvalidError(s, target)
	}
	return target, nil
}

// Approve transitions Pending -> Approved.
func (s Status) Approve() (Status, error) {
	return s.TransitionTo(Approved)
}

// Reject transitions Pending -> Rejected.
func (s Status) Reject() (Status, error) {
	return s.TransitionTo(Rejected)
}

// Complete transitions Approved -> Completed.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
