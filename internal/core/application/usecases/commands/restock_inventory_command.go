package commands

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrRestockInventoryCommandIsNotConstructed = errors.New(
	"RestockInventoryCommand must be created via NewRestockInventoryCommand constructor",
)

// RestockInventoryCommand represents a stock delivery to a source: the
// quantity is added to the (source, product, zone) record's on-hand stock.
type RestockInventoryCommand struct { //nolint:recvcheck //using for validation
	sourceID  kernel.UUID
	productID kernel.UUID
	zoneID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockInventoryCommand creates a command to add stock to a record.
// The quantity must be positive.
func NewRestockInventoryCommand(
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
) (RestockInventoryCommand, error) {
	restockCommand := RestockInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setSourceID(sourceID),
		restockCommand.setProductID(productID),
		restockCommand.setZoneID(zoneID),
		restockCommand.setQuantity(quantity),
	); err != nil {
		return RestockInventoryCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockInventoryCommand) Validate() error {
	return c.guard.Validate(ErrRestockInventoryCommandIsNotConstructed)
}

// SourceID returns the source receiving the stock.
func (c RestockInventoryCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// ProductID returns the product being restocked.
func (c RestockInventoryCommand) ProductID() kernel.UUID {
	return c.productID
}

// ZoneID returns the zone whose record is incremented.
func (c RestockInventoryCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Quantity returns the number of units added.
func (c RestockInventoryCommand) Quantity() int {
	return c.quantity
}

func (c *RestockInventoryCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}
	c.sourceID = sourceID
	return nil
}

func (c *RestockInventoryCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *RestockInventoryCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}

func (c *RestockInventoryCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not positive", quantity))
	}
	c.quantity = quantity
	return nil
}
