package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order value was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one catering request. It is the aggregate root of the approval
// workflow and an immutable value: TransitionTo returns a new Order and leaves the
// receiver untouched.
//
// Order follows these invariants:
//   - Must have a non-empty identifier that never changes
//   - Must have at least one consumption line
//   - History is non-empty, starts with Pending and its last entry matches Status
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        string
	details   Details
	lines     []ConsumptionLine
	status    Status
	history   []HistoryEntry
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order whose history holds a single entry attributed
// to the requester at createdAt.
//
// Example:
//
//	line, _ := order.NewConsumptionLine("std-snack", "Snack Standar", "box", 5)
//	o, err := order.NewOrder("P-001", details, []order.ConsumptionLine{line}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, details Details, lines []ConsumptionLine, createdAt time.Time) (Order, error) {
	details = details.Normalized()

	// requester and createdAt are checked by build
	first := HistoryEntry{status: Pending, at: kernel.Instant(createdAt), actor: details.RequestedBy}

	return build(id, details, lines, Pending, []HistoryEntry{first}, createdAt)
}

// RestoreOrder rebuilds an order from persisted state. The history must describe
// a legal walk through the state machine that ends at status.
func RestoreOrder(
	id string,
	details Details,
	lines []ConsumptionLine,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
) (Order, error) {
	return build(id, details.Normalized(), lines, status, history, createdAt)
}

func build(
	id string,
	details Details,
	lines []ConsumptionLine,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
) (Order, error) {
	id = strings.TrimSpace(id)

	var problems []error
	if id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id"))
	}
	if err := details.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(lines) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("lines"))
	}
	for i, line := range lines {
		if line.quantity <= 0 || line.displayName == "" || line.unit == "" {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"lines", fmt.Errorf("line %d was not created via NewConsumptionLine", i)))
		}
	}
	if createdAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("createdAt"))
	}
	if err := status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := validateHistory(status, history); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return Order{}, err
	}

	return Order{
		id:        id,
		details:   details,
		lines:     append([]ConsumptionLine(nil), lines...),
		status:    status,
		history:   append([]HistoryEntry(nil), history...),
		createdAt: kernel.Instant(createdAt),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func validateHistory(status Status, history []HistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("history")
	}
	if history[0].status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"history", fmt.Errorf("first entry is %s, expected %s", history[0].status, Pending))
	}
	for i := 1; i < len(history); i++ {
		if !history[i-1].status.CanTransitionTo(history[i].status) {
			return errs.NewValueIsInvalidErrorWithCause("history",
				errs.NewStatusTransitionIsInvalidError(history[i-1].status, history[i].status))
		}
	}
	if last := history[len(history)-1].status; last != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"history", fmt.Errorf("last entry is %s but status is %s", last, status))
	}
	return nil
}

// Validate ensures the Order value was properly constructed.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's identifier, e.g. "P-001".
func (o Order) ID() string {
	return o.id
}

// Details returns a copy of the descriptive fields.
func (o Order) Details() Details {
	return o.details
}

// Lines returns a copy of the consumption lines.
func (o Order) Lines() []ConsumptionLine {
	return append([]ConsumptionLine(nil), o.lines...)
}

func (o Order) Status() Status {
	return o.status
}

// History returns a copy of the status history, oldest first.
func (o Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// CreatedAt is the UTC instant the order was submitted.
func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo returns a copy of the order in status target with one history entry
// appended. The receiver is not modified. Illegal edges yield
// errs.StatusTransitionIsInvalidError; a blank actor yields errs.ValueIsRequiredError.
func (o Order) TransitionTo(target Status, actor string, at time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return Order{}, err
	}

	entry, err := NewHistoryEntry(next, at, actor)
	if err != nil {
		return Order{}, err
	}

	history := make([]HistoryEntry, 0, len(o.history)+1)
	history = append(history, o.history...)
	history = append(history, entry)

	updated := o
	updated.status = next
	updated.history = history
	updated.lines = append([]ConsumptionLine(nil), o.lines...)
	return updated, nil
}
