package commands

import (
	"context"
	"log/slog"
)

// RestockInventoryCommandHandler adds delivered stock to an existing record.
// The increment races with concurrent reservations, so it reuses the same
// atomic counter update the release path uses.
type RestockInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
	logger     *slog.Logger
}

// NewRestockInventoryCommandHandler creates a handler for restock operations.
func NewRestockInventoryCommandHandler(
	uowFactory InventoryUoWFactory,
	logger *slog.Logger,
) RestockInventoryCommandHandler {
	return RestockInventoryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "restock_inventory_command_handler"),
	}
}

// Handle processes the restock command.
//
// Errors:
//   - errs.ObjectNotFoundError: the (source, product, zone) record does not
//     exist; records are provisioned through catalog onboarding, not restocks
func (h RestockInventoryCommandHandler) Handle(
	ctx context.Context,
	cmd RestockInventoryCommand,
) error {
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

	err := uow.InventoryRepository().Release(
		ctx, cmd.SourceID(), cmd.ProductID(), cmd.ZoneID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Inventory restocked",
		"source_id", cmd.SourceID(),
		"product_id", cmd.ProductID(),
		"zone_id", cmd.ZoneID(),
		"quantity", cmd.Quantity())
	return nil
}
