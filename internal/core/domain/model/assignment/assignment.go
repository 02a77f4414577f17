package assignment

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment constructor")

// ErrDuplicateActivePrimary is returned by storage when persisting an active
// primary assignment for a (zone, category) pair that already has one. The
// database enforces the uniqueness, so concurrent assigns cannot both win.
var ErrDuplicateActivePrimary = errors.New(
	"active primary assignment already exists for this pair")

// Assignment binds a (zone, category) pair to the vendor that exclusively owns
// it. Only one active primary assignment may exist per pair; replacing a
// vendor deactivates the old assignment and activates the new one in a single
// transaction, so readers observe either the fully-old or fully-new state.
type Assignment struct {
	id         kernel.UUID
	zoneID     kernel.UUID
	categoryID kernel.UUID
	vendorID   kernel.UUID
	primary    bool
	active     bool
	assignedAt time.Time

	isConstructed bool
}

// NewAssignment creates a new active assignment of a vendor to a
// (zone, category) pair. New assignments are active; deactivation happens
// only through Deactivate during replacement or offboarding.
func NewAssignment(
	id kernel.UUID,
	zoneID kernel.UUID,
	categoryID kernel.UUID,
	vendorID kernel.UUID,
	primary bool,
	assignedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		zoneID.Validate(),
		categoryID.Validate(),
		vendorID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		zoneID:        zoneID,
		categoryID:    categoryID,
		vendorID:      vendorID,
		primary:       primary,
		active:        true,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistent storage,
// including its active flag.
func RestoreAssignment(
	id kernel.UUID,
	zoneID kernel.UUID,
	categoryID kernel.UUID,
	vendorID kernel.UUID,
	primary bool,
	active bool,
	assignedAt time.Time,
) (*Assignment, error) {
	assignment, err := NewAssignment(id, zoneID, categoryID, vendorID, primary, assignedAt)
	if err != nil {
		return nil, err
	}
	assignment.active = active
	return assignment, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ZoneID returns the zone the assignment applies in.
func (a *Assignment) ZoneID() kernel.UUID {
	return a.zoneID
}

// CategoryID returns the owned category.
func (a *Assignment) CategoryID() kernel.UUID {
	return a.categoryID
}

// VendorID returns the owning vendor.
func (a *Assignment) VendorID() kernel.UUID {
	return a.vendorID
}

// IsPrimary reports whether this is the primary assignment for the pair.
func (a *Assignment) IsPrimary() bool {
	return a.primary
}

// IsActive reports whether the assignment is currently in force.
func (a *Assignment) IsActive() bool {
	return a.active
}

// AssignedAt returns when the assignment was created.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// Deactivate takes the assignment out of force. Used during replacement
// (atomic swap with the successor) and vendor offboarding. Deactivation is
// idempotent.
func (a *Assignment) Deactivate() {
	a.active = false
}
