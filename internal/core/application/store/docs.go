// Package store owns the in-memory order collection and composes the domain
// services into the create, update-status, complete and delete operations.
//
// The collection is copy-on-write: every mutation builds a new slice and publishes
// it atomically, so List never observes a half-applied change. Writers are
// serialized by a mutex, which also keeps id allocation collision free.
//
// Persistence is fire-and-forget. After each mutation the new snapshot is saved
// in the background; a failed save is logged, leaves the store dirty and is
// retried by Flush. It never undoes the mutation nor fails the caller.
package store
