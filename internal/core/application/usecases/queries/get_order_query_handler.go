package queries

import (
	"context"

	"orders/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order projection.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(orderRepo)
//	query, _ := NewGetOrderQuery(orderID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires an order repository for aggregate loading.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query and maps the aggregate into its projection.
// Returns errs.ObjectNotFoundError when no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}
