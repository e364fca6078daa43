// Package commands contains business operations that modify the order collection.
// Every command is built through a constructor that validates its input, and every
// handler re-checks the command before delegating to the order store.
package commands

import (
	"catering/internal/core/domain/model/order"
)

// OrderWriter is the part of the order store the command handlers depend on.
type OrderWriter interface {
	Create(draft order.Draft) (order.Order, error)
	UpdateStatus(id string, target order.Status, actor string) (order.Order, error)
	Delete(id string) error
}
