package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// AdvancePendingOrdersResult summarizes one sweep run.
type AdvancePendingOrdersResult struct {
	// Advanced counts orders moved from pending to processing.
	Advanced int
	// Skipped counts orders that were no longer pending, or whose write
	// lost a concurrent race (typically a cancellation).
	Skipped int
	// Failed counts orders whose update failed for any other reason.
	Failed int
}

// AdvancePendingOrdersCommandHandler orchestrates the processing sweep.
// Each order is updated outside any cross-order transaction, so one bad
// order never blocks the rest of the batch and already-advanced orders
// stay advanced. Writes are version-guarded: an order cancelled between
// the snapshot and the update is skipped, never overwritten.
//
// Example:
//
//	handler := NewAdvancePendingOrdersCommandHandler(uowFactory, logger)
//	cmd := NewAdvancePendingOrdersCommand()
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("processing sweep failed: %w", err)
//	}
//	// result.Advanced orders are now in "processing"
type AdvancePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAdvancePendingOrdersCommandHandler creates a handler for the processing sweep.
// Requires an OrderUoWFactory for persistence and a logger for per-order failures.
func NewAdvancePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) AdvancePendingOrdersCommandHandler {
	return AdvancePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_pending_orders"),
	}
}

// Handle processes the sweep command.
// Takes a snapshot of pending orders, then advances each one with an
// independent version-guarded write. The unit of work is used without an
// explicit transaction, so every update commits on its own. Per-order
// failures are logged and counted but never abort the batch; the returned
// result reports how many orders were advanced, skipped and failed.
func (h *AdvancePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvancePendingOrdersCommand,
) (AdvancePendingOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvancePendingOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()

	pending, err := orderRepo.GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return AdvancePendingOrdersResult{}, err
	}

	var result AdvancePendingOrdersResult
	for _, aggregate := range pending {
		if err := aggregate.StartProcessing(time.Now().UTC()); err != nil {
			result.Skipped++
			continue
		}

		switch err := orderRepo.Update(ctx, aggregate); {
		case err == nil:
			result.Advanced++
		case errors.Is(err, errs.ErrConcurrencyConflict):
			result.Skipped++
		default:
			result.Failed++
			h.logger.ErrorContext(ctx, "failed to advance order",
				"order_id", aggregate.ID().String(),
				"error", err,
			)
		}
	}

	return result, nil
}
