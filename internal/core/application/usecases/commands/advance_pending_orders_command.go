package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrAdvancePendingOrdersCommandIsNotConstructed = errors.New(
		"AdvancePendingOrdersCommand must be created via NewAdvancePendingOrdersCommand constructor",
	)
)

// AdvancePendingOrdersCommand triggers the processing sweep over pending orders.
// This batch operation moves every order still in "pending" status to
// "processing", skipping orders that changed underneath the sweep.
//
// Example:
//
//	cmd := NewAdvancePendingOrdersCommand()
//	handler := NewAdvancePendingOrdersCommandHandler(uowFactory, logger)
//
//	// Run periodically from a scheduler
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Sweep failed: %v", err)
//	}
//	log.Printf("Advanced %d orders", result.Advanced)
type AdvancePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvancePendingOrdersCommand creates a command to trigger the processing sweep.
// This is a parameterless command that processes all pending orders.
func NewAdvancePendingOrdersCommand() AdvancePendingOrdersCommand {
	command := AdvancePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvancePendingOrdersCommandIsNotConstructed if validation fails.
func (c *AdvancePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePendingOrdersCommandIsNotConstructed)
}
