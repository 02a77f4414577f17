package commands

import (
	"errors"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrUpsertAllocationRuleCommandIsNotConstructed = errors.New(
	"UpsertAllocationRuleCommand must be created via NewUpsertAllocationRuleCommand constructor",
)

// UpsertAllocationRuleCommand represents a request to configure the inventory
// source selection for a (zone, subcategory) pair: which source is checked
// first and whether the other source serves as fallback. Writing a rule for a
// pair that already has one replaces it.
type UpsertAllocationRuleCommand struct { //nolint:recvcheck //using for validation
	zoneID        kernel.UUID
	subcategoryID kernel.UUID
	strategy      assignment.Strategy
	fallback      bool

	guard guard.ConstructorGuard
}

// NewUpsertAllocationRuleCommand creates a command to configure source
// selection for a (zone, subcategory) pair.
func NewUpsertAllocationRuleCommand(
	zoneID kernel.UUID,
	subcategoryID kernel.UUID,
	strategy assignment.Strategy,
	fallback bool,
) (UpsertAllocationRuleCommand, error) {
	upsertCommand := UpsertAllocationRuleCommand{
		fallback: fallback,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		upsertCommand.setZoneID(zoneID),
		upsertCommand.setSubcategoryID(subcategoryID),
		upsertCommand.setStrategy(strategy),
	); err != nil {
		return UpsertAllocationRuleCommand{}, err
	}

	return upsertCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertAllocationRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpsertAllocationRuleCommandIsNotConstructed)
}

// ZoneID returns the zone scope of the rule.
func (c UpsertAllocationRuleCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// SubcategoryID returns the subcategory the rule governs.
func (c UpsertAllocationRuleCommand) SubcategoryID() kernel.UUID {
	return c.subcategoryID
}

// Strategy returns which source is checked first.
func (c UpsertAllocationRuleCommand) Strategy() assignment.Strategy {
	return c.strategy
}

// Fallback reports whether the secondary source is tried when the primary
// cannot supply the full quantity.
func (c UpsertAllocationRuleCommand) Fallback() bool {
	return c.fallback
}

func (c *UpsertAllocationRuleCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}

func (c *UpsertAllocationRuleCommand) setSubcategoryID(subcategoryID kernel.UUID) error {
	if err := subcategoryID.Validate(); err != nil {
		return err
	}
	c.subcategoryID = subcategoryID
	return nil
}

func (c *UpsertAllocationRuleCommand) setStrategy(strategy assignment.Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}
	c.strategy = strategy
	return nil
}
