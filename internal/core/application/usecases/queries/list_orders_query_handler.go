package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ListOrdersQueryHandler retrieves order projections in bulk.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(orderRepo)
//	query, _ := NewListOrdersQuery(nil)
//
//	responses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(responses))
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
// Requires an order repository for aggregate loading.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query and maps every aggregate into its projection.
// With a status filter only matching orders are returned; the result is
// never nil.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregates []*order.Order
		err        error
	)

	if status := query.Status(); status != nil {
		aggregates, err = h.orderRepo.GetAllInStatus(ctx, *status)
	} else {
		aggregates, err = h.orderRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, NewOrderResponse(aggregate))
	}

	return responses, nil
}
