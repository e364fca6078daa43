package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per snapshot save. A unit of work is
// single-use and not safe for concurrent use, so the persistence adapter asks for
// a fresh one every time it writes or reads the collection.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary around the order collection.
//
// The order aggregate is stored across three relations: the order row, its
// consumption lines and its status history. A snapshot save deletes every stored
// order and inserts the new collection, so all of those writes belong to one
// transaction. Readers outside the transaction keep seeing the previous snapshot
// until Commit, and a failed save is rolled back in full, leaving the last good
// snapshot in place.
//
// The caller drives the lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().ReplaceAll(ctx, orders); err != nil {
//	    return errors.Join(err, uow.Rollback(ctx))
//	}
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin opens the transaction that the next snapshot replacement runs in.
	// Calling Begin while a transaction is already open keeps the open one.
	Begin(ctx context.Context) error

	// Commit publishes the replaced snapshot to every reader.
	// It fails when no transaction is open or the database rejects the commit;
	// in both cases the previously committed snapshot stays visible.
	Commit(ctx context.Context) error

	// Rollback discards a partially written snapshot.
	// It fails when no transaction is open.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository for this unit. Between Begin
	// and Commit/Rollback it writes inside the transaction; otherwise it reads the
	// last committed snapshot through the plain connection.
	OrderRepository() OrderRepository
}
