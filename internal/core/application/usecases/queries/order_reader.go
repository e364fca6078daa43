// Package queries contains read-only operations over the order collection and the catalog.
// Queries never change state; they derive views from the current store snapshot.
package queries

import (
	"catering/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	List() []order.Order
	Get(id string) (order.Order, error)
}

// OrderExporter renders a list of orders to an interchange text format.
type OrderExporter interface {
	ContentType() string
	Export(orders []order.Order) (string, error)
}
