package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery exports the same view ListOrdersQuery would show.
type ExportOrdersQuery struct {
	criteria services.ViewCriteria

	guard guard.ConstructorGuard
}

func NewExportOrdersQuery(filter services.StatusFilter, deliveryDate kernel.Date, sort services.SortOrder) ExportOrdersQuery {
	return ExportOrdersQuery{
		criteria: services.ViewCriteria{
			Filter:       filter,
			DeliveryDate: deliveryDate,
			Sort:         sort,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

func (q ExportOrdersQuery) Criteria() services.ViewCriteria {
	return q.criteria
}

// ExportOrdersQueryResponse is the rendered document.
type ExportOrdersQueryResponse struct {
	ContentType string
	Body        string
	Rows        int
}

type ExportOrdersQueryHandler struct {
	orders   OrderReader
	engine   services.QueryEngine
	exporter OrderExporter
}

func NewExportOrdersQueryHandler(orders OrderReader, engine services.QueryEngine, exporter OrderExporter) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{orders: orders, engine: engine, exporter: exporter}
}

// Handle filters and sorts the collection, then renders the rows in view order.
func (h ExportOrdersQueryHandler) Handle(_ context.Context, query ExportOrdersQuery) (ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	view := h.engine.View(h.orders.List(), query.Criteria())
	body, err := h.exporter.Export(view)
	if err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	return ExportOrdersQueryResponse{
		ContentType: h.exporter.ContentType(),
		Body:        body,
		Rows:        len(view),
	}, nil
}
