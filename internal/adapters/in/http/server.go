package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ExportFileName is offered to browsers downloading the CSV export.
const ExportFileName = "riwayat_pemesanan.csv"

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getOrderCountsHandler   queries.GetOrderCountsQueryHandler
	exportOrdersHandler     queries.ExportOrdersQueryHandler
	eligibleItemsHandler    queries.GetEligibleCatalogItemsQueryHandler
	checkEligibilityHandler queries.CheckCatalogEligibilityQueryHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderCountsHandler queries.GetOrderCountsQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
	eligibleItemsHandler queries.GetEligibleCatalogItemsQueryHandler,
	checkEligibilityHandler queries.CheckCatalogEligibilityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrderCountsHandler:    getOrderCountsHandler,
		exportOrdersHandler:      exportOrdersHandler,
		eligibleItemsHandler:     eligibleItemsHandler,
		checkEligibilityHandler:  checkEligibilityHandler,
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ViewParams) error {
	criteria, err := parseView(params)
	if err != nil {
		return respondError(ctx, err)
	}

	query := queries.NewListOrdersQuery(criteria.Filter, criteria.DeliveryDate, criteria.Sort)
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	draft, err := body.Draft()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(draft)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrderCounts handles GET /api/v1/orders/counts.
func (s *Server) GetOrderCounts(ctx echo.Context) error {
	counts, err := s.getOrderCountsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderCountsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderCounts(counts))
}

// ExportOrders handles GET /api/v1/orders/export.
func (s *Server) ExportOrders(ctx echo.Context, params ViewParams) error {
	criteria, err := parseView(params)
	if err != nil {
		return respondError(ctx, err)
	}

	query := queries.NewExportOrdersQuery(criteria.Filter, criteria.DeliveryDate, criteria.Sort)
	export, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFileName+`"`)
	return ctx.Blob(http.StatusOK, export.ContentType, []byte(export.Body))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID string) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// ListCatalogItems handles GET /api/v1/catalog. An unrecognised tier or slot
// yields an empty list, the same as a valid pair nothing is eligible for.
func (s *Server) ListCatalogItems(ctx echo.Context, params CatalogParams) error {
	tier, slot := parseTierAndSlot(params)

	query := queries.NewGetEligibleCatalogItemsQuery(tier, slot)
	items, err := s.eligibleItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalogItems(items))
}

// CheckCatalogEligibility handles GET /api/v1/catalog/{itemId}/eligibility.
func (s *Server) CheckCatalogEligibility(ctx echo.Context, itemID string, params CatalogParams) error {
	tier, slot := parseTierAndSlot(params)

	query, err := queries.NewCheckCatalogEligibilityQuery(itemID, tier, slot)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.checkEligibilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Eligibility{
		ItemID:   resp.ItemID,
		Known:    resp.Known,
		Eligible: resp.Eligible,
	})
}

func parseView(params ViewParams) (services.ViewCriteria, error) {
	var criteria services.ViewCriteria

	if params.Filter != nil {
		filter, err := services.ParseStatusFilter(*params.Filter)
		if err != nil {
			return criteria, err
		}
		criteria.Filter = filter
	}

	if params.Date != nil {
		criteria.DeliveryDate = kernel.DateOf(params.Date.Time)
	}

	if params.Sort != nil {
		sort, err := services.ParseSortOrder(*params.Sort)
		if err != nil {
			return criteria, err
		}
		criteria.Sort = sort
	}

	return criteria, nil
}

func parseTierAndSlot(params CatalogParams) (kernel.GuestTier, kernel.TimeSlot) {
	tier, err := kernel.ParseGuestTier(params.Tier)
	if err != nil {
		tier = kernel.UnknownTier
	}
	slot, err := kernel.ParseTimeSlot(params.Slot)
	if err != nil {
		slot = kernel.UnknownSlot
	}
	return tier, slot
}
