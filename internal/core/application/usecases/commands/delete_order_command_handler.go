package commands

import (
	"context"
)

type DeleteOrderCommandHandler struct {
	orders OrderWriter
}

func NewDeleteOrderCommandHandler(orders OrderWriter) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orders: orders,
	}
}

// Handle deletes the order; unknown ids yield errs.ObjectNotFoundError.
func (h *DeleteOrderCommandHandler) Handle(_ context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.Delete(cmd.OrderID())
}
