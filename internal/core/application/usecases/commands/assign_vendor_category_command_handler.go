package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

var (
	// ErrAssignmentConflict is returned when the (zone, category) pair is
	// already owned by a different vendor and replacement was not requested.
	ErrAssignmentConflict = errors.New("category is already assigned to another vendor in this zone")

	// ErrVendorIsNotAssignable is returned when the target vendor is unknown
	// or inactive in the current catalog.
	ErrVendorIsNotAssignable = errors.New("vendor is unknown or inactive")

	// ErrCategoryIsUnknown is returned when the category does not exist in
	// the current catalog.
	ErrCategoryIsUnknown = errors.New("category is unknown")
)

// AssignVendorCategoryCommandHandler handles vendor-category assignment,
// enforcing the exclusivity invariant: at most one active primary assignment
// per (zone, category) pair. Replacement deactivates the predecessor and adds
// the successor inside one transaction, so lookups never observe a pair with
// zero or two owners.
type AssignVendorCategoryCommandHandler struct {
	uowFactory   AssignmentUoWFactory
	catalogStore ports.CatalogDirectoryStore
}

// NewAssignVendorCategoryCommandHandler creates a handler for assignment operations.
func NewAssignVendorCategoryCommandHandler(
	uowFactory AssignmentUoWFactory,
	catalogStore ports.CatalogDirectoryStore,
) AssignVendorCategoryCommandHandler {
	return AssignVendorCategoryCommandHandler{
		uowFactory:   uowFactory,
		catalogStore: catalogStore,
	}
}

// Handle processes the assignment command.
//
// Errors:
//   - ErrVendorIsNotAssignable: the vendor is unknown or inactive
//   - ErrCategoryIsUnknown: the category does not exist
//   - ErrAssignmentConflict: the pair is owned by another vendor and replace
//     was not requested
func (h *AssignVendorCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd AssignVendorCategoryCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	directory := h.catalogStore.Current()
	vendor, ok := directory.Vendor(cmd.VendorID())
	if !ok || !vendor.IsActive() {
		return fmt.Errorf("%w: %s", ErrVendorIsNotAssignable, cmd.VendorID())
	}
	if _, ok := directory.Tree().Category(cmd.CategoryID()); !ok {
		return fmt.Errorf("%w: %s", ErrCategoryIsUnknown, cmd.CategoryID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()

	current, err := repo.GetActivePrimary(ctx, cmd.ZoneID(), cmd.CategoryID())
	switch {
	case err == nil:
		if current.VendorID().IsEqual(cmd.VendorID()) {
			// Re-assigning the same vendor is a no-op.
			return nil
		}
		if !cmd.Replace() {
			return fmt.Errorf("%w: zone %s, category %s",
				ErrAssignmentConflict, cmd.ZoneID(), cmd.CategoryID())
		}
		current.Deactivate()
		if err = repo.Update(ctx, current); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// The pair is free.
	default:
		return err
	}

	next, err := assignment.NewAssignment(
		kernel.NewUUID(), cmd.ZoneID(), cmd.CategoryID(), cmd.VendorID(), true, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, next); err != nil {
		// A concurrent assign won the race after our not-found read; the
		// database's uniqueness guarantee turns the second insert into the
		// same conflict a sequential caller would have seen.
		if errors.Is(err, assignment.ErrDuplicateActivePrimary) {
			return fmt.Errorf("%w: zone %s, category %s",
				ErrAssignmentConflict, cmd.ZoneID(), cmd.CategoryID())
		}
		return err
	}

	return uow.Commit(ctx)
}
