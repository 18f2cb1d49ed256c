package ports

import (
	"context"

	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, entity *item.Item) error

	// AddBatch persists a batch of catalog items in a single operation.
	AddBatch(ctx context.Context, entities []*item.Item) error

	// Get retrieves a catalog item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves every catalog item.
	GetAll(ctx context.Context) ([]*item.Item, error)

	// Remove deletes a catalog item by its unique identifier.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveBatch deletes a batch of catalog items by their identifiers.
	RemoveBatch(ctx context.Context, ids []kernel.UUID) error
}
