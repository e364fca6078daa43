package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ViewParams are the query parameters shared by the list and export endpoints.
type ViewParams struct {
	Filter *string             `form:"filter,omitempty" json:"filter,omitempty"`
	Date   *openapi_types.Date `form:"date,omitempty" json:"date,omitempty"`
	Sort   *string             `form:"sort,omitempty" json:"sort,omitempty"`
}

// CatalogParams select a guest tier and a time slot.
type CatalogParams struct {
	Tier string `form:"tier" json:"tier"`
	Slot string `form:"slot" json:"slot"`
}

// ServerInterface is the set of operations described by api/openapi/openapi.yaml.
type ServerInterface interface {
	// (GET /orders)
	ListOrders(ctx echo.Context, params ViewParams) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/counts)
	GetOrderCounts(ctx echo.Context) error
	// (GET /orders/export)
	ExportOrders(ctx echo.Context, params ViewParams) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderID string) error
	// (POST /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderID string) error
	// (GET /catalog)
	ListCatalogItems(ctx echo.Context, params CatalogParams) error
	// (GET /catalog/{itemId}/eligibility)
	CheckCatalogEligibility(ctx echo.Context, itemID string, params CatalogParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	params, err := bindViewParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderCounts(ctx echo.Context) error {
	return w.Handler.GetOrderCounts(ctx)
}

func (w *ServerInterfaceWrapper) ExportOrders(ctx echo.Context) error {
	params, err := bindViewParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ExportOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderID, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListCatalogItems(ctx echo.Context) error {
	params, err := bindCatalogParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListCatalogItems(ctx, params)
}

func (w *ServerInterfaceWrapper) CheckCatalogEligibility(ctx echo.Context) error {
	itemID, err := bindPathParameter(ctx, "itemId")
	if err != nil {
		return err
	}
	params, err := bindCatalogParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CheckCatalogEligibility(ctx, itemID, params)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

func bindViewParams(ctx echo.Context) (ViewParams, error) {
	var params ViewParams

	if err := runtime.BindQueryParameter("form", true, false, "filter", ctx.QueryParams(), &params.Filter); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter filter: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "date", ctx.QueryParams(), &params.Date); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	return params, nil
}

func bindCatalogParams(ctx echo.Context) (CatalogParams, error) {
	var params CatalogParams

	if err := runtime.BindQueryParameter("form", true, true, "tier", ctx.QueryParams(), &params.Tier); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tier: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, true, "slot", ctx.QueryParams(), &params.Slot); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter slot: %s", err))
	}

	return params, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation of si under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/counts", wrapper.GetOrderCounts)
	router.GET(baseURL+"/orders/export", wrapper.ExportOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
	router.POST(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/catalog", wrapper.ListCatalogItems)
	router.GET(baseURL+"/catalog/:itemId/eligibility", wrapper.CheckCatalogEligibility)
}
