// Package ports defines the contracts between the order workflow core and the
// infrastructure that stores its collection.
package ports

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// OrderPersistence loads and saves the whole order collection verbatim.
// The store treats it as best effort: Save failures are logged and retried later,
// never reported to the caller of a store operation.
type OrderPersistence interface {
	// Load returns the last saved collection in saved order, or an empty slice if
	// nothing was ever saved.
	Load(ctx context.Context) ([]order.Order, error)

	// Save replaces the stored collection with orders.
	Save(ctx context.Context, orders []order.Order) error
}
