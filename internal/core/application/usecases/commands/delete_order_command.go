package commands

import (
	"errors"
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order permanently.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
