package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every catalog and customer reference before constructing the
// aggregate, so a single unknown reference aborts the whole request and
// nothing is persisted. Line items capture the catalog name and unit price
// current at creation time.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	item, _ := NewOrderItem(itemID, 2)
//	cmd, _ := NewCreateOrderCommand(orderID, nil, []OrderItem{item})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and ready for the processing sweep
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning order, catalog and customer repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Resolves the optional customer and every item reference, builds the order
// in "pending" status, and persists it. Uses a transaction so the order is
// fully persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRef, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return err
	}

	lines, err := h.resolveLines(ctx, uow, cmd)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), customerRef, lines, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveCustomer loads the bound customer and captures its contact snapshot.
// Returns nil for anonymous orders.
func (h *CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	uow UoW,
	cmd CreateOrderCommand,
) (*order.CustomerRef, error) {
	if cmd.CustomerID() == nil {
		return nil, nil //nolint:nilnil //anonymous orders have no customer binding
	}

	entity, err := uow.CustomerRepository().Get(ctx, *cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	ref, err := order.NewCustomerRef(entity.ID(), entity.Name(), entity.Email())
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// resolveLines looks up every requested item and builds the order lines,
// locking in the current catalog name and price.
func (h *CreateOrderCommandHandler) resolveLines(
	ctx context.Context,
	uow UoW,
	cmd CreateOrderCommand,
) ([]order.Line, error) {
	itemRepo := uow.ItemRepository()

	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		entity, err := itemRepo.Get(ctx, requested.ItemID())
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(entity.ID(), entity.Name(), entity.Price(), requested.Quantity())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
