// Package order provides domain entities and business logic for order
// management in the order processing system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package enforces the order lifecycle state machine:
//
//	Pending ──┬──> Processing ──> Shipped ──> Delivered
//	          │
//	          └──> Cancelled
//
// Prices are captured on each Line when the order is created; totals are
// always derived from the lines rather than stored. The aggregate carries
// a version counter backing optimistic concurrency in the order store.
package order
