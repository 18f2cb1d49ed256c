package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer record.
	Add(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every stored customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
