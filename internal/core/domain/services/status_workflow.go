package services

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// StatusWorkflow moves orders along the status state machine and stamps each
// change with the time from its clock.
//
// Example usage:
//
//	workflow := services.NewStatusWorkflow(kernel.SystemClock())
//	approved, err := workflow.Transition(pending, order.Approved, "Budi")
//	if errors.Is(err, errs.ErrStatusTransitionIsInvalid) {
//	    // pending is unchanged
//	}
type StatusWorkflow struct {
	clock kernel.Clock
}

// NewStatusWorkflow creates a workflow. A nil clock falls back to the system clock.
func NewStatusWorkflow(clock kernel.Clock) StatusWorkflow {
	if clock == nil {
		clock = kernel.SystemClock()
	}
	return StatusWorkflow{clock: clock}
}

// Transition returns a new order in status target with one history entry appended.
// On failure the input order is untouched and the zero Order is returned.
func (w StatusWorkflow) Transition(o order.Order, target order.Status, actor string) (order.Order, error) {
	return o.TransitionTo(target, actor, w.clock.Now())
}
