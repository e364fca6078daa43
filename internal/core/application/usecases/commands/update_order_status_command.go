package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new status on behalf of an actor
// (the reviewer for Approved/Rejected, whoever confirms delivery for Completed).
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	target  order.Status
	actor   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand requires an order id, a valid target status and an actor.
// Whether the transition is legal is decided by the workflow, not here.
func NewUpdateOrderStatusCommand(orderID string, target order.Status, actor string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c UpdateOrderStatusCommand) Actor() string {
	return c.actor
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
