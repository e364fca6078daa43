package queries

import (
	"context"
	"errors"
	"strings"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches a single order with its full history.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (order.Order, error) {
	if err := query.Validate(); err != nil {
		return order.Order{}, err
	}

	return h.orders.Get(query.OrderID())
}
