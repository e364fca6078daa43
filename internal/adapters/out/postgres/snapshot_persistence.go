package postgres

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

// SnapshotPersistence implements ports.OrderPersistence on top of a unit of work.
type SnapshotPersistence struct {
	factory ports.UnitOfWorkFactory
}

var _ ports.OrderPersistence = (*SnapshotPersistence)(nil)

func NewSnapshotPersistence(factory ports.UnitOfWorkFactory) *SnapshotPersistence {
	return &SnapshotPersistence{factory: factory}
}

func (p *SnapshotPersistence) Load(ctx context.Context) ([]order.Order, error) {
	return p.factory.Create().OrderRepository().GetAll(ctx)
}

// Save replaces the stored snapshot in a single transaction.
func (p *SnapshotPersistence) Save(ctx context.Context, orders []order.Order) error {
	uow := p.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.OrderRepository().ReplaceAll(ctx, orders); err != nil {
		return errors.Join(err, uow.Rollback(ctx))
	}

	return uow.Commit(ctx)
}
