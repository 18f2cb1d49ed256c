package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, price string) *item.Item {
	t.Helper()
	entity, err := item.RestoreItem(
		kernel.NewUUID(), name, decimal.RequireFromString(price), "",
	)
	require.NoError(t, err)
	return entity
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	catalogItem := mustItem(t, "Widget", "10.50")
	orderItem, err := commands.NewOrderItem(catalogItem.ID(), 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, []commands.OrderItem{orderItem})
	require.NoError(t, err)

	var added *order.Order
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, catalogItem.ID()).Return(catalogItem, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, cmd.OrderID(), added.ID())
	assert.Equal(t, order.Pending, added.Status())
	assert.Nil(t, added.Customer())
	require.Len(t, added.Lines(), 1)
	assert.Equal(t, "Widget", added.Lines()[0].ItemName())
	assert.True(t, added.Total().Equal(decimal.RequireFromString("21.00")),
		"total should lock in the catalog price at creation")
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BoundCustomer(t *testing.T) {
	ctx := t.Context()
	buyer, err := customer.RestoreCustomer(
		kernel.NewUUID(), "Alice", "alice@example.com", "", true,
	)
	require.NoError(t, err)
	buyerID := buyer.ID()

	catalogItem := mustItem(t, "Widget", "5.00")
	orderItem, err := commands.NewOrderItem(catalogItem.ID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), &buyerID, []commands.OrderItem{orderItem})
	require.NoError(t, err)

	var added *order.Order
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, buyerID).Return(buyer, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, catalogItem.ID()).Return(catalogItem, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	require.NotNil(t, added.Customer())
	assert.Equal(t, "Alice", added.Customer().Name())
	assert.Equal(t, "alice@example.com", added.Customer().Email())
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	orderItem, err := commands.NewOrderItem(itemID, 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, []commands.OrderItem{orderItem})
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, itemID).
			Return(nil, errs.NewObjectNotFoundError("item", itemID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderItem, err := commands.NewOrderItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), &customerID, []commands.OrderItem{orderItem},
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ItemRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	catalogItem := mustItem(t, "Widget", "1.00")
	orderItem, err := commands.NewOrderItem(catalogItem.ID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, []commands.OrderItem{orderItem})
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, catalogItem.ID()).Return(catalogItem, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
