package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderItem(t *testing.T, productID kernel.UUID, quantity int) quote.Item {
	t.Helper()
	item, err := quote.NewItem(productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewRouteOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	point, err := kernel.NewGeoPoint(25.5138, 90.2065)
	require.NoError(t, err)
	items := []quote.Item{orderItem(t, kernel.NewUUID(), 2)}

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewRouteOrderCommand(orderID, point, items)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := commands.NewRouteOrderCommand(orderID, point, nil)

		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := commands.NewRouteOrderCommand(kernel.UUID{}, point, items)

		require.Error(t, err)
	})

	t.Run("copies items defensively", func(t *testing.T) {
		source := []quote.Item{orderItem(t, kernel.NewUUID(), 2)}
		cmd, err := commands.NewRouteOrderCommand(orderID, point, source)
		require.NoError(t, err)

		source[0] = orderItem(t, kernel.NewUUID(), 9)

		assert.Equal(t, 2, cmd.Items()[0].Quantity())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RouteOrderCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrRouteOrderCommandIsNotConstructed)
	})
}
