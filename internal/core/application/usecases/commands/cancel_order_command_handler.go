package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// The write is guarded by the aggregate version, so a cancellation racing the
// processing sweep loses cleanly instead of silently overwriting its result.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("cancellation failed: %w", err)
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Loads the order, applies the cancel transition and persists the change
// conditionally on the version the order was loaded at. When the write loses
// a race, the order is re-read and the transition error against the true
// current status is surfaced instead of the raw conflict.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return h.resolveConflict(ctx, uow, cmd)
		}

		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveConflict re-reads the order after a lost write and reports the
// cancel transition error against the status the winner left behind.
// Falls back to the conflict itself if the order somehow remains cancellable.
func (h *CancelOrderCommandHandler) resolveConflict(
	ctx context.Context,
	uow OrderUoW,
	cmd CancelOrderCommand,
) error {
	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = current.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	return errs.NewConcurrencyConflictError("order", cmd.OrderID().String())
}
