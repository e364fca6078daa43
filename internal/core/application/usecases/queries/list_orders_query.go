package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects the dashboard view: status filter, optional delivery
// date and sort direction.
//
// Example:
//
//	query := NewListOrdersQuery(services.FilterActive(), kernel.Date{}, services.Newest)
//	handler := NewListOrdersQueryHandler(orderStore, services.NewQueryEngine())
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	criteria services.ViewCriteria

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. A zero deliveryDate disables the date filter.
func NewListOrdersQuery(filter services.StatusFilter, deliveryDate kernel.Date, sort services.SortOrder) ListOrdersQuery {
	return ListOrdersQuery{
		criteria: services.ViewCriteria{
			Filter:       filter,
			DeliveryDate: deliveryDate,
			Sort:         sort,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Criteria() services.ViewCriteria {
	return q.criteria
}
