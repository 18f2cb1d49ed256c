package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have at least one line; lines are fixed at creation
//   - Status transitions follow the state machine defined on Status
//   - UpdatedAt is never before CreatedAt
//   - The total amount is always derived from the lines, never stored
//   - Can only be created through NewOrder or RestoreOrder
//
// The version counter tracks the persisted revision of the aggregate and backs
// optimistic concurrency in the order store: a write only commits if the stored
// version still matches the version the writer read. Transitions do not change
// the version; the store increments it on every successful write.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the customer binding captured at creation (nil if unbound)
	customer *CustomerRef

	// lines are the ordered items with prices captured at creation
	lines []Line

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is set at creation and on every successful transition
	updatedAt time.Time

	// version is the persisted revision used for optimistic writes
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Together with
// RestoreOrder this is the only way to obtain a valid Order, ensuring all
// business invariants are maintained.
//
// The new order starts in Pending status with createdAt = updatedAt = now
// and version 1. The customer binding is optional; pass nil for an order
// without one. Lines must already be resolved against the catalog: NewOrder
// never performs lookups itself, so it stays free of I/O and is testable in
// isolation.
//
// Returns the created order if all validations pass, or a validation error
// if any parameter is invalid.
func NewOrder(id kernel.UUID, customer *CustomerRef, lines []Line, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLines(lines),
		o.setTimestamps(now, now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying
// creation defaults. All invariants are re-validated so corrupt rows cannot
// produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	customer *CustomerRef,
	lines []Line,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLines(lines),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer binding captured at creation.
// Returns nil for an order without a customer binding.
func (o *Order) Customer() *CustomerRef {
	return o.customer
}

// Lines returns a copy of the order's lines.
// The slice is copied so callers cannot mutate the aggregate's state.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the persisted revision the aggregate was read at.
func (o *Order) Version() int {
	return o.version
}

// Total returns the sum of unitPrice multiplied by quantity over all lines.
// The total is always derived so there is no second invariant to maintain.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// StartProcessing marks the order as accepted into fulfillment.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//
// On success the status becomes Processing and updatedAt is set to now.
// On failure the aggregate is left unmodified.
func (o *Order) StartProcessing(now time.Time) error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel cancels the order.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - Cancelling an already-cancelled order fails: the operation is
//     deliberately not idempotent, so a repeated cancel surfaces a caller
//     or race bug instead of masking a lost update
//
// On success the status becomes Cancelled and updatedAt is set to now.
// On failure the aggregate is left unmodified.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Ship marks the order as shipped.
//
// The order must be in Processing status. On success the status becomes
// Shipped and updatedAt is set to now; on failure the aggregate is left
// unmodified.
func (o *Order) Ship(now time.Time) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Deliver marks the order as delivered, the final state of a fulfilled order.
//
// The order must be in Shipped status. On success the status becomes
// Delivered and updatedAt is set to now; on failure the aggregate is left
// unmodified.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the optional customer binding.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer *CustomerRef) error {
	if customer == nil {
		return nil
	}
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setLines validates and sets the order's lines.
// An order always has at least one line; lines are copied so the caller's
// slice cannot mutate the aggregate afterwards.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setStatus validates and sets the order's status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTimestamps validates and sets createdAt/updatedAt.
// updatedAt must never precede createdAt.
// This is a private method used only during construction.
func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt is invalid",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt))
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

// setVersion validates and sets the persisted revision during restoration.
// This is a private method used only during construction.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
