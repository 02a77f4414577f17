package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAssignVendorCategoryCommandIsNotConstructed = errors.New(
	"AssignVendorCategoryCommand must be created via NewAssignVendorCategoryCommand constructor",
)

// AssignVendorCategoryCommand represents a request to give a vendor exclusive
// ownership of a category within a zone. When the pair is already owned by a
// different vendor the command fails with ErrAssignmentConflict unless
// replace is set, in which case the old assignment is deactivated and the new
// one activated in a single transaction.
type AssignVendorCategoryCommand struct { //nolint:recvcheck //using for validation
	zoneID     kernel.UUID
	categoryID kernel.UUID
	vendorID   kernel.UUID
	replace    bool

	guard guard.ConstructorGuard
}

// NewAssignVendorCategoryCommand creates a command to assign a vendor to a
// (zone, category) pair.
func NewAssignVendorCategoryCommand(
	zoneID kernel.UUID,
	categoryID kernel.UUID,
	vendorID kernel.UUID,
	replace bool,
) (AssignVendorCategoryCommand, error) {
	assignCommand := AssignVendorCategoryCommand{
		replace: replace,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setZoneID(zoneID),
		assignCommand.setCategoryID(categoryID),
		assignCommand.setVendorID(vendorID),
	); err != nil {
		return AssignVendorCategoryCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVendorCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAssignVendorCategoryCommandIsNotConstructed)
}

// ZoneID returns the zone scope of the assignment.
func (c AssignVendorCategoryCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// CategoryID returns the category being assigned.
func (c AssignVendorCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// VendorID returns the vendor taking ownership.
func (c AssignVendorCategoryCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Replace reports whether an existing assignment by another vendor should be
// swapped out rather than conflicting.
func (c AssignVendorCategoryCommand) Replace() bool {
	return c.replace
}

func (c *AssignVendorCategoryCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *AssignVendorCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AssignVendorCategoryCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
