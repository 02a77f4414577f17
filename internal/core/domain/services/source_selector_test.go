package services_test

import (
	"context"
	"errors"
	"testing"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T, stock services.StockReserver) *services.SourceSelector {
	t.Helper()
	selector, err := services.NewSourceSelector(stock, testLogger())
	require.NoError(t, err)
	return selector
}

func darkStoreFirstRule(t *testing.T, f *routingFixture, fallback bool) *assignment.AllocationRule {
	t.Helper()
	rule, err := assignment.NewAllocationRule(
		f.zoneID, f.dairyID, assignment.StrategyDarkStoreFirst, fallback)
	require.NoError(t, err)
	return rule
}

func TestSourceSelector_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("default rule tries the vendor first", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 2).
			Return(stockRecord(t, f.vendorID, f.milkID, f.zoneID, 8, 60.0), nil)

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.dairyID)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		require.NoError(t, err)
		assert.Equal(t, inventory.SourceKindVendor, choice.Kind())
		assert.True(t, choice.SourceID().IsEqual(f.vendorID))
		assert.InDelta(t, 60.0, choice.UnitPrice(), 0.0001)
		assert.Equal(t, 25, choice.PrepMinutes())
		stock.AssertExpectations(t)
	})

	t.Run("dark store first reserves at the dark store", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 2).
			Return(stockRecord(t, f.darkStoreID, f.milkID, f.zoneID, 5, 55.0), nil)

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := darkStoreFirstRule(t, f, true)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		require.NoError(t, err)
		assert.True(t, choice.IsDarkStore())
		assert.Equal(t, inventory.DarkStorePrepMinutes, choice.PrepMinutes())
		stock.AssertExpectations(t)
	})

	t.Run("falls back to the vendor when the dark store is short", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 5).
			Return(nil, inventory.ErrInsufficientStock)
		stock.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 5).
			Return(stockRecord(t, f.vendorID, f.milkID, f.zoneID, 10, 60.0), nil)

		item, err := quote.NewItem(f.milkID, 5)
		require.NoError(t, err)

		rule := darkStoreFirstRule(t, f, true)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		require.NoError(t, err)
		assert.Equal(t, inventory.SourceKindVendor, choice.Kind())
		stock.AssertExpectations(t)
	})

	t.Run("without fallback a short first source fails the line", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 5).
			Return(nil, inventory.ErrInsufficientStock)

		item, err := quote.NewItem(f.milkID, 5)
		require.NoError(t, err)

		rule := darkStoreFirstRule(t, f, false)
		_, err = newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		stock.AssertNumberOfCalls(t, "Reserve", 1)
	})

	t.Run("no vendor assigned and no stock means out of stock", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.darkStoreID, f.breadID, f.zoneID, 1).
			Return(nil, inventory.ErrInsufficientStock)

		item, err := quote.NewItem(f.breadID, 1)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.bakeryID)
		_, err = newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, nil, item)

		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
	})

	t.Run("unavailable source is retried once and may recover", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 2).
			Return(nil, inventory.ErrSourceUnavailable).Once()
		stock.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 2).
			Return(stockRecord(t, f.vendorID, f.milkID, f.zoneID, 8, 60.0), nil).Once()

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.dairyID)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		require.NoError(t, err)
		assert.Equal(t, inventory.SourceKindVendor, choice.Kind())
		stock.AssertNumberOfCalls(t, "Reserve", 2)
	})

	t.Run("source still unavailable after retry falls back", func(t *testing.T) {
		f := newRoutingFixture(t)
		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 2).
			Return(nil, inventory.ErrSourceUnavailable).Twice()
		stock.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 2).
			Return(stockRecord(t, f.darkStoreID, f.milkID, f.zoneID, 5, 55.0), nil).Once()

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.dairyID)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		require.NoError(t, err)
		assert.True(t, choice.IsDarkStore())
		stock.AssertExpectations(t)
	})

	t.Run("unknown assigned vendor is skipped", func(t *testing.T) {
		f := newRoutingFixture(t)
		unknownVendorID := f.groceriesID // not registered as a vendor

		stock := &MockStockReserver{}
		stock.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 2).
			Return(stockRecord(t, f.darkStoreID, f.milkID, f.zoneID, 5, 55.0), nil)

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.dairyID)
		choice, err := newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &unknownVendorID, item)

		require.NoError(t, err)
		assert.True(t, choice.IsDarkStore())
	})

	t.Run("storage failures other than stock-outs propagate", func(t *testing.T) {
		f := newRoutingFixture(t)
		boom := errors.New("connection reset")
		stock := &MockStockReserver{}
		stock.On("Reserve", mock.Anything, f.vendorID, f.milkID, f.zoneID, 2).
			Return(nil, boom)

		item, err := quote.NewItem(f.milkID, 2)
		require.NoError(t, err)

		rule := assignment.DefaultAllocationRule(f.zoneID, f.dairyID)
		_, err = newSelector(t, stock).Select(ctx, f.zone, f.directory, rule, &f.vendorID, item)

		assert.ErrorIs(t, err, boom)
	})
}
