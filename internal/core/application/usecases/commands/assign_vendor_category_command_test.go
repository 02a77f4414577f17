package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignVendorCategoryCommand(t *testing.T) {
	zoneID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewAssignVendorCategoryCommand(zoneID, categoryID, vendorID, false)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.ZoneID().IsEqual(zoneID))
		assert.True(t, cmd.CategoryID().IsEqual(categoryID))
		assert.True(t, cmd.VendorID().IsEqual(vendorID))
		assert.False(t, cmd.Replace())
	})

	t.Run("carries replace flag", func(t *testing.T) {
		cmd, err := commands.NewAssignVendorCategoryCommand(zoneID, categoryID, vendorID, true)

		require.NoError(t, err)
		assert.True(t, cmd.Replace())
	})

	t.Run("rejects empty identifiers", func(t *testing.T) {
		_, err := commands.NewAssignVendorCategoryCommand(kernel.UUID{}, categoryID, vendorID, false)
		require.Error(t, err)

		_, err = commands.NewAssignVendorCategoryCommand(zoneID, kernel.UUID{}, vendorID, false)
		require.Error(t, err)

		_, err = commands.NewAssignVendorCategoryCommand(zoneID, categoryID, kernel.UUID{}, false)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignVendorCategoryCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrAssignVendorCategoryCommandIsNotConstructed)
	})
}
