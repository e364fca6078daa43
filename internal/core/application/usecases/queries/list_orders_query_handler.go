package queries

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
)

// ListOrdersQueryHandler derives a filtered, sorted view of the current collection.
type ListOrdersQueryHandler struct {
	orders OrderReader
	engine services.QueryEngine
}

func NewListOrdersQueryHandler(orders OrderReader, engine services.QueryEngine) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, engine: engine}
}

func (h ListOrdersQueryHandler) Handle(_ context.Context, query ListOrdersQuery) ([]order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.engine.View(h.orders.List(), query.Criteria()), nil
}
