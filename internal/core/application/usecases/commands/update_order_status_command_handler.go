package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies status changes. Illegal transitions come
// back as errs.StatusTransitionIsInvalidError and unknown ids as errs.ObjectNotFoundError.
type UpdateOrderStatusCommandHandler struct {
	orders OrderWriter
}

func NewUpdateOrderStatusCommandHandler(orders OrderWriter) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orders: orders,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(_ context.Context, cmd UpdateOrderStatusCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	return h.orders.UpdateStatus(cmd.OrderID(), cmd.Target(), cmd.Actor())
}
