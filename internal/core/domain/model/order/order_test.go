package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, name string, price float64, qty int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), name, decimal.NewFromFloat(price), qty)
	require.NoError(t, err)
	return line
}

func mustCustomerRef(t *testing.T) *order.CustomerRef {
	t.Helper()
	ref, err := order.NewCustomerRef(kernel.NewUUID(), "Jane Roe", "jane@example.com")
	require.NoError(t, err)
	return &ref
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}
		customer := mustCustomerRef(t)

		o, err := order.NewOrder(validID, customer, lines, now)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Equal(t, 1, o.Version())
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, customer.ID(), o.Customer().ID())
	})

	t.Run("should create order without customer binding", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.NewOrder(validID, nil, lines, now)

		require.NoError(t, err)
		assert.Nil(t, o.Customer())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.NewOrder(invalidID, nil, lines, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with no lines", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order lines")
	})

	t.Run("should fail with a zero value line", func(t *testing.T) {
		lines := []order.Line{{}}

		o, err := order.NewOrder(validID, nil, lines, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, order.ErrLineIsNotConstructed, err)
	})

	t.Run("should fail with zero value customer binding", func(t *testing.T) {
		var customer order.CustomerRef
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.NewOrder(validID, &customer, lines, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, order.ErrCustomerRefIsNotConstructed, err)
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.NewOrder(validID, nil, lines, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should copy lines so caller mutation does not leak in", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.NewOrder(validID, nil, lines, now)
		require.NoError(t, err)

		lines[0] = order.Line{}

		require.NoError(t, o.Lines()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	t.Run("should restore order in any valid status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.RestoreOrder(id, nil, lines, order.Shipped, createdAt, updatedAt, 4)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.RestoreOrder(id, nil, lines, order.Unknown, createdAt, updatedAt, 1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should fail when updatedAt precedes createdAt", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.RestoreOrder(id, nil, lines, order.Pending, updatedAt, createdAt, 1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "updatedAt is invalid")
	})

	t.Run("should fail with non-positive version", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Keyboard", 49.90, 1)}

		o, err := order.RestoreOrder(id, nil, lines, order.Pending, createdAt, updatedAt, 0)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Total(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()

	t.Run("should sum subtotals over all lines", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, "itemA", 10.0, 2),
			mustLine(t, "itemB", 5.0, 1),
		}

		o, err := order.NewOrder(id, nil, lines, now)

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(decimal.NewFromFloat(25.0)), "got %s", o.Total())
		assert.True(t, o.Lines()[0].Subtotal().Equal(decimal.NewFromFloat(20.0)))
		assert.True(t, o.Lines()[1].Subtotal().Equal(decimal.NewFromFloat(5.0)))
	})

	t.Run("should keep total locked to prices captured at creation", func(t *testing.T) {
		// The line carries the captured price; no catalog re-read can change it.
		lines := []order.Line{mustLine(t, "itemA", 10.0, 2)}

		o, err := order.NewOrder(id, nil, lines, now)

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(decimal.NewFromFloat(20.0)))
	})
}

func TestOrder_Transitions(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Now()
	later := created.Add(time.Minute)

	newPending := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(id, nil, []order.Line{mustLine(t, "Keyboard", 49.90, 1)}, created)
		require.NoError(t, err)
		return o
	}

	t.Run("should advance pending order to processing", func(t *testing.T) {
		o := newPending(t)

		err := o.StartProcessing(later)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
		assert.Equal(t, created, o.CreatedAt())
	})

	t.Run("should cancel pending order", func(t *testing.T) {
		o := newPending(t)

		err := o.Cancel(later)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should fail to cancel processing order and leave it unmodified", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.StartProcessing(later))

		err := o.Cancel(later.Add(time.Minute))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Processing is not a valid status to cancel")
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should fail to cancel already cancelled order", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Cancel(later))

		err := o.Cancel(later.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should fail to advance cancelled order", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Cancel(later))

		err := o.StartProcessing(later.Add(time.Minute))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cancelled is not a valid status to start processing")
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should walk the full fulfillment workflow", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.StartProcessing(later))
		require.NoError(t, o.Ship(later.Add(time.Minute)))
		require.NoError(t, o.Deliver(later.Add(2*time.Minute)))

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should fail to ship pending order", func(t *testing.T) {
		o := newPending(t)

		err := o.Ship(later)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail to deliver processing order", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.StartProcessing(later))

		err := o.Deliver(later.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should never decrease updatedAt below createdAt on restore", func(t *testing.T) {
		o := newPending(t)

		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()
	now := time.Now()

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, nil, []order.Line{mustLine(t, "a", 1.0, 1)}, now)
		o2, _ := order.NewOrder(id1, nil, []order.Line{mustLine(t, "b", 2.0, 2)}, now)

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, nil, []order.Line{mustLine(t, "a", 1.0, 1)}, now)
		o2, _ := order.NewOrder(id2, nil, []order.Line{mustLine(t, "a", 1.0, 1)}, now)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, nil, []order.Line{mustLine(t, "a", 1.0, 1)}, now)

		assert.False(t, o1.IsEqual(nil))
	})
}
