// Package order provides the Order aggregate of the catering request workflow and
// the Status state machine that governs its lifecycle.
//
// The package includes:
//   - Order: an immutable aggregate value; every change returns a new Order
//   - Status: the lifecycle state machine (Pending, Approved, Rejected, Completed)
//   - HistoryEntry: one append-only audit record of a status change
//   - ConsumptionLine: one ordered consumption item with quantity and unit
//   - Details: the descriptive fields of an order (event, delivery, people)
//   - Draft: the unvalidated input from which an order is created
//
// Key business rules:
//   - Status follows Pending -> Approved -> Completed or Pending -> Rejected
//   - Rejected and Completed are terminal
//   - History is never empty, only ever appended to, and its last entry matches Status
//   - An order has at least one line and every quantity is positive
//   - The identifier and creation instant never change after creation
//
// Orders are values: TransitionTo leaves its receiver untouched and never shares
// slice backing arrays with the result, so snapshots handed to readers stay consistent.
package order
