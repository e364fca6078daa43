package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates Pending orders.
type CreateOrderCommandHandler struct {
	orders OrderWriter
}

func NewCreateOrderCommandHandler(orders OrderWriter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and creates the order. The returned order carries
// the allocated id.
func (h *CreateOrderCommandHandler) Handle(_ context.Context, cmd CreateOrderCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	return h.orders.Create(cmd.Draft())
}
