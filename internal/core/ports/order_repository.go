package ports

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// OrderRepository stores order snapshots in a relational database.
type OrderRepository interface {
	// GetAll returns every stored order ordered by its position in the last saved snapshot.
	GetAll(ctx context.Context) ([]order.Order, error)

	// ReplaceAll deletes every stored order and inserts orders with their lines and history.
	// It should run inside a transaction so readers never observe a partial snapshot.
	ReplaceAll(ctx context.Context, orders []order.Order) error
}
