// Package queries contains read operations over stored orders.
// Implements the Query side of the CQRS architecture: handlers load
// aggregates and map them into flat response projections for transport.
package queries

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CustomerResponse is the customer summary embedded in an order projection.
// Carries the contact snapshot captured when the order was created.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderLineResponse is a single line item in an order projection.
// ItemPrice is the unit price locked in at order creation, not the
// current catalog price.
type OrderLineResponse struct {
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	ItemPrice decimal.Decimal `json:"itemPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the transport projection of an order aggregate.
// All amounts are rounded to two decimal places here and only here;
// the aggregate keeps exact values.
type OrderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Customer    *CustomerResponse   `json:"customer,omitempty"`
	Items       []OrderLineResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

const amountScale = 2

// NewOrderResponse maps an order aggregate into its transport projection.
// Pure mapping: never goes back to the catalog, all names and prices come
// from the snapshot stored on the order lines.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	lines := aggregate.Lines()
	items := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderLineResponse{
			ItemID:    line.ItemID().String(),
			ItemName:  line.ItemName(),
			ItemPrice: line.UnitPrice().Round(amountScale),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal().Round(amountScale),
		})
	}

	response := OrderResponse{
		ID:          aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		Items:       items,
		TotalAmount: aggregate.Total().Round(amountScale),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	if ref := aggregate.Customer(); ref != nil {
		response.Customer = &CustomerResponse{
			ID:    ref.ID().String(),
			Name:  ref.Name(),
			Email: ref.Email(),
		}
	}

	return response
}
