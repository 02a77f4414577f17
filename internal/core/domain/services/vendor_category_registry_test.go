package services_test

import (
	"testing"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorCategoryRegistry_Lookup(t *testing.T) {
	registry := services.NewVendorCategoryRegistry()

	t.Run("finds the vendor for an exact pair", func(t *testing.T) {
		f := newRoutingFixture(t)
		snapshot := f.assignments(t)

		vendorID, err := registry.Lookup(snapshot, f.directory.Tree(), f.zoneID, f.dairyID)

		require.NoError(t, err)
		assert.True(t, vendorID.IsEqual(f.vendorID))
	})

	t.Run("falls back to the nearest assigned ancestor", func(t *testing.T) {
		f := newRoutingFixture(t)

		// Assignment sits at the Groceries root; Bakery inherits it.
		rootAssignment, err := assignment.NewAssignment(
			kernel.NewUUID(), f.zoneID, f.groceriesID, f.vendorID, true, testAssignedAt)
		require.NoError(t, err)
		snapshot := assignment.NewSnapshot(1, []*assignment.Assignment{rootAssignment}, nil)

		vendorID, err := registry.Lookup(snapshot, f.directory.Tree(), f.zoneID, f.bakeryID)

		require.NoError(t, err)
		assert.True(t, vendorID.IsEqual(f.vendorID))
	})

	t.Run("more specific assignment wins over the ancestor", func(t *testing.T) {
		f := newRoutingFixture(t)
		otherVendorID := kernel.NewUUID()

		rootAssignment, err := assignment.NewAssignment(
			kernel.NewUUID(), f.zoneID, f.groceriesID, otherVendorID, true, testAssignedAt)
		require.NoError(t, err)
		dairyAssignment, err := assignment.NewAssignment(
			kernel.NewUUID(), f.zoneID, f.dairyID, f.vendorID, true, testAssignedAt)
		require.NoError(t, err)
		snapshot := assignment.NewSnapshot(1,
			[]*assignment.Assignment{rootAssignment, dairyAssignment}, nil)

		vendorID, err := registry.Lookup(snapshot, f.directory.Tree(), f.zoneID, f.dairyID)

		require.NoError(t, err)
		assert.True(t, vendorID.IsEqual(f.vendorID))
	})

	t.Run("unassigned chain returns ErrCategoryUnassigned", func(t *testing.T) {
		f := newRoutingFixture(t)
		snapshot := f.assignments(t)

		_, err := registry.Lookup(snapshot, f.directory.Tree(), f.zoneID, f.bakeryID)

		assert.ErrorIs(t, err, services.ErrCategoryUnassigned)
	})

	t.Run("assignments in another zone do not apply", func(t *testing.T) {
		f := newRoutingFixture(t)
		snapshot := f.assignments(t)

		_, err := registry.Lookup(snapshot, f.directory.Tree(), kernel.NewUUID(), f.dairyID)

		assert.ErrorIs(t, err, services.ErrCategoryUnassigned)
	})
}
