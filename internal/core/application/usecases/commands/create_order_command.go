package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItem constructor",
	)
	ErrItemsAreRequired  = errors.New("at least one item is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// OrderItem is a single catalog reference inside a create order request.
// Carries the item identifier and the requested quantity; the item name
// and unit price are resolved from the catalog by the handler.
type OrderItem struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order item reference.
// Validates that the item ID is valid and quantity is positive.
func NewOrderItem(itemID kernel.UUID, quantity int) (OrderItem, error) {
	orderItem := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderItem.setItemID(itemID),
		orderItem.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return orderItem, nil
}

// Validate ensures the order item was created through the constructor.
// Returns ErrOrderItemIsNotConstructed if validation fails.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ItemID returns the referenced catalog item identifier.
func (i OrderItem) ItemID() kernel.UUID {
	return i.itemID
}

// Quantity returns the requested quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	i.itemID = itemID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	i.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the requested items and an optional customer binding.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := NewOrderItem(itemID, 2)
//	cmd, err := NewCreateOrderCommand(orderID, nil, []OrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting processing", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID *kernel.UUID
	items      []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, every item reference is constructed,
// and at least one item is requested. The customer binding is optional.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	items []OrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the optional customer binding, nil for anonymous orders.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Items returns the requested item references.
func (c CreateOrderCommand) Items() []OrderItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
