// Package services provides the domain services of the catering order workflow.
// They are pure functions over domain values and never touch persistence.
//
// The package includes:
//   - StatusWorkflow: applies a status change with the current time from a Clock
//   - CatalogResolver: answers which catalog items a (guest tier, time slot) pair may order
//   - IDAllocator: derives the next human-readable order id from the existing collection
//   - QueryEngine: filters and sorts orders for display and counts them per status
//
// None of the services mutate their inputs.
package services
