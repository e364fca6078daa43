package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/guard"
)

var ErrGetOrderCountsQueryIsNotConstructed = errors.New(
	"GetOrderCountsQuery must be created via NewGetOrderCountsQuery constructor",
)

// GetOrderCountsQuery counts the whole collection per status. It takes no view
// parameters: counts never depend on the dashboard filter.
type GetOrderCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderCountsQuery() GetOrderCountsQuery {
	return GetOrderCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCountsQueryIsNotConstructed)
}

// GetOrderCountsQueryResponse holds one count per status and the total.
type GetOrderCountsQueryResponse struct {
	ByStatus map[order.Status]int
	Total    int
}

type GetOrderCountsQueryHandler struct {
	orders OrderReader
	engine services.QueryEngine
}

func NewGetOrderCountsQueryHandler(orders OrderReader, engine services.QueryEngine) GetOrderCountsQueryHandler {
	return GetOrderCountsQueryHandler{orders: orders, engine: engine}
}

func (h GetOrderCountsQueryHandler) Handle(_ context.Context, query GetOrderCountsQuery) (GetOrderCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	all := h.orders.List()
	return GetOrderCountsQueryResponse{
		ByStatus: h.engine.Counts(all),
		Total:    len(all),
	}, nil
}
