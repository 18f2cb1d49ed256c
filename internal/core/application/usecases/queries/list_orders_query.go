package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves all orders, optionally filtered by status.
//
// Example:
//
//	// All orders
//	query, _ := NewListOrdersQuery(nil)
//
//	// Only pending orders
//	pending := order.Pending
//	query, _ = NewListOrdersQuery(&pending)
//
//	handler := NewListOrdersQueryHandler(orderRepo)
//	responses, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders.
// A nil status means no filtering; a non-nil status must be valid.
func NewListOrdersQuery(status *order.Status) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, nil when listing everything.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
