package commands_test

import (
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableStock(
	t *testing.T,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
	unitPrice float64,
) *inventory.Record {
	t.Helper()
	record, err := inventory.NewRecord(
		sourceID, productID, zoneID, quantity, unitPrice*0.8, unitPrice, true)
	require.NoError(t, err)
	return record
}

func servicePoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(25.5138, 90.2065)
	require.NoError(t, err)
	return point
}

func TestRouteOrderCommandHandler_Handle_QuotesAndPersists(t *testing.T) {
	ctx := t.Context()
	f := newPlatformFixture(t)

	cmd, err := commands.NewRouteOrderCommand(
		kernel.NewUUID(), servicePoint(t), []quote.Item{orderItem(t, f.milkID, 2)})
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	weatherRepo := new(MockWeatherRuleRepository)
	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("WeatherRuleRepository").Return(weatherRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()

	weatherRepo.On("GetLatest", ctx, f.zoneID).
		Return(nil, errs.NewObjectNotFoundError("weather rule", f.zoneID)).Once()

	// Default allocation: the assigned dairy vendor is tried first.
	inventoryRepo.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 2).
		Return(availableStock(t, f.vendorID, f.milkID, f.zoneID, 8, 60.0), nil).Once()

	var persisted *quote.OrderQuote
	quoteRepo.On("Add", ctx, mock.AnythingOfType("*quote.OrderQuote")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*quote.OrderQuote)
		}).Return(nil).Once()

	factory := new(MockRoutingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRouteOrderCommandHandler(
		factory, f.geoStore, f.catalogStore, f.assignmentStore, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Same(t, persisted, result)

	assert.True(t, result.ZoneID().IsEqual(f.zoneID))
	assert.False(t, result.IsPartial())
	assert.Equal(t, quote.StatusPending, result.Status())

	require.Len(t, result.SubOrders(), 1)
	subOrder := result.SubOrders()[0]
	assert.True(t, subOrder.SourceID().IsEqual(f.vendorID))
	assert.InDelta(t, 120.0, subOrder.Subtotal(), 0.001)
	assert.InDelta(t, 20.0, subOrder.DeliveryFee(), 0.001)
	assert.Equal(t, 25, subOrder.ETAMinutes())
	assert.InDelta(t, 140.0, result.GrandTotal(), 0.001)

	inventoryRepo.AssertExpectations(t)
	quoteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRouteOrderCommandHandler_Handle_NotServiceable(t *testing.T) {
	ctx := t.Context()
	f := newPlatformFixture(t)

	outside, err := kernel.NewGeoPoint(26.9, 91.1)
	require.NoError(t, err)

	cmd, err := commands.NewRouteOrderCommand(
		kernel.NewUUID(), outside, []quote.Item{orderItem(t, f.milkID, 1)})
	require.NoError(t, err)

	factory := new(MockRoutingUoWFactory)

	handler := commands.NewRouteOrderCommandHandler(
		factory, f.geoStore, f.catalogStore, f.assignmentStore, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNotServiceable)
	assert.Nil(t, result)
	factory.AssertNotCalled(t, "Create")
}

func TestRouteOrderCommandHandler_Handle_SuspendedZone(t *testing.T) {
	ctx := t.Context()
	f := newPlatformFixture(t)

	resume := time.Now().UTC().Add(4 * time.Hour)
	suspension, err := weather.NewRule(
		kernel.NewUUID(), f.zoneID, weather.ConditionExtreme,
		nil, 1.0, true, &resume, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewRouteOrderCommand(
		kernel.NewUUID(), servicePoint(t), []quote.Item{orderItem(t, f.milkID, 1)})
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	weatherRepo := new(MockWeatherRuleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("WeatherRuleRepository").Return(weatherRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()

	weatherRepo.On("GetLatest", ctx, f.zoneID).Return(suspension, nil).Once()

	factory := new(MockRoutingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRouteOrderCommandHandler(
		factory, f.geoStore, f.catalogStore, f.assignmentStore, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrServiceSuspended)
	assert.Nil(t, result)

	var suspended *services.ServiceSuspendedError
	require.ErrorAs(t, err, &suspended)
	require.NotNil(t, suspended.ResumeEstimate)
	assert.True(t, suspended.ResumeEstimate.Equal(resume))

	inventoryRepo.AssertNotCalled(t, "Reserve",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRouteOrderCommandHandler_Handle_PartialQuoteOnShortStock(t *testing.T) {
	ctx := t.Context()
	f := newPlatformFixture(t)

	cmd, err := commands.NewRouteOrderCommand(
		kernel.NewUUID(), servicePoint(t), []quote.Item{orderItem(t, f.milkID, 5)})
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	weatherRepo := new(MockWeatherRuleRepository)
	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("WeatherRuleRepository").Return(weatherRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()

	weatherRepo.On("GetLatest", ctx, f.zoneID).
		Return(nil, errs.NewObjectNotFoundError("weather rule", f.zoneID)).Once()

	// Both the vendor and the fallback dark store are short.
	inventoryRepo.On("Reserve", ctx, f.vendorID, f.milkID, f.zoneID, 5).
		Return(nil, inventory.ErrInsufficientStock).Once()
	inventoryRepo.On("Reserve", ctx, f.darkStoreID, f.milkID, f.zoneID, 5).
		Return(nil, inventory.ErrInsufficientStock).Once()

	quoteRepo.On("Add", ctx, mock.MatchedBy(func(q *quote.OrderQuote) bool {
		return q.IsPartial() && len(q.SubOrders()) == 0
	})).Return(nil).Once()

	factory := new(MockRoutingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRouteOrderCommandHandler(
		factory, f.geoStore, f.catalogStore, f.assignmentStore, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsPartial())
	assert.True(t, result.RequiresConfirmation())
	require.Len(t, result.UnresolvedProductIDs(), 1)
	assert.True(t, result.UnresolvedProductIDs()[0].IsEqual(f.milkID))

	inventoryRepo.AssertExpectations(t)
	quoteRepo.AssertExpectations(t)
}
