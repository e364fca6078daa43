// Package postgres persists the order collection in PostgreSQL through GORM.
//
// The store hands this adapter whole snapshots, never single orders. One order
// maps to a row in "orders" plus its rows in "order_lines" and "order_history";
// a snapshot is the ordered set of all of them. Saving therefore means replacing
// every row of all three tables, and that replacement is the business transaction
// a GormUnitOfWork wraps:
//   - Begin opens the transaction on the shared connection pool
//   - OrderRepository().ReplaceAll deletes the old snapshot and batch-inserts the new one
//   - Commit makes the new snapshot visible; Rollback restores the previous one
//
// A reader calling GetAll outside the transaction sees either the old or the new
// snapshot, never a mix, and a failed save leaves the last committed snapshot
// intact so the store can retry it later.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().ReplaceAll(ctx, orders); err != nil {
//	    return errors.Join(err, uow.Rollback(ctx))
//	}
//	return uow.Commit(ctx)
//
// SnapshotPersistence wraps exactly this sequence behind ports.OrderPersistence.
//
// Concurrency Considerations:
//   - Each GormUnitOfWork owns at most one transaction and is used by one goroutine
//   - Saves take a fresh unit from the factory, so overlapping saves run in separate transactions
//   - The store orders saves by snapshot version; the database only guarantees each one is atomic
package postgres

import (
	"context"

	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
// It holds no transaction state itself and is safe for concurrent use.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := Open(cfg)
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates the transaction of one snapshot save. db is the
// pool; tx is non-nil only between Begin and Commit/Rollback.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the open transaction, making the replaced snapshot visible.
// Returns gorm.ErrInvalidTransaction when no transaction is open. The unit is
// closed afterwards whether or not the commit succeeded.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction and with it any partially replaced
// snapshot. Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns a repository bound to the open transaction, or to the
// plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}
