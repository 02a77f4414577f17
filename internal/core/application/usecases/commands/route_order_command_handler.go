package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// RouteOrderCommandHandler handles the full quoting workflow: resolve the
// coordinate against the geographic snapshot, reserve stock for every item,
// and persist the resulting quote.
//
// Every reservation and the quote itself share one transaction. When routing
// fails after some items were already reserved, rolling the transaction back
// is the compensating action: no stock stays locked to a quote that was
// never produced.
type RouteOrderCommandHandler struct {
	uowFactory      RoutingUoWFactory
	geoStore        ports.GeoSnapshotStore
	catalogStore    ports.CatalogDirectoryStore
	assignmentStore ports.AssignmentSnapshotStore
	resolver        services.GeofenceResolver
	registry        services.VendorCategoryRegistry
	engine          services.WeatherRuleEngine
	logger          *slog.Logger
}

// NewRouteOrderCommandHandler creates a handler for order quoting operations.
func NewRouteOrderCommandHandler(
	uowFactory RoutingUoWFactory,
	geoStore ports.GeoSnapshotStore,
	catalogStore ports.CatalogDirectoryStore,
	assignmentStore ports.AssignmentSnapshotStore,
	logger *slog.Logger,
) RouteOrderCommandHandler {
	return RouteOrderCommandHandler{
		uowFactory:      uowFactory,
		geoStore:        geoStore,
		catalogStore:    catalogStore,
		assignmentStore: assignmentStore,
		resolver:        services.NewGeofenceResolver(logger),
		registry:        services.NewVendorCategoryRegistry(),
		engine:          services.NewWeatherRuleEngine(),
		logger:          logger,
	}
}

// Handle processes the order routing command and returns the persisted quote.
//
// Errors:
//   - services.ErrNotServiceable: the coordinate is outside every service area
//   - services.ErrServiceSuspended: an active weather rule suspends the zone
//   - services.ErrZoneIsClosed: the zone is outside its service hours
func (h *RouteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RouteOrderCommand,
) (*quote.OrderQuote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	geoSnapshot := h.geoStore.Current()
	zoneContext, err := h.resolver.Resolve(geoSnapshot, cmd.Point())
	if err != nil {
		return nil, err
	}

	zone, ok := geoSnapshot.Zone(zoneContext.ZoneID())
	if !ok {
		return nil, services.ErrNotServiceable
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	weatherRule, err := h.latestWeatherRule(ctx, uow, zone.ID())
	if err != nil {
		return nil, err
	}

	selector, err := services.NewSourceSelector(uow.InventoryRepository(), h.logger)
	if err != nil {
		return nil, err
	}
	router, err := services.NewOrderRouter(h.registry, selector, h.logger)
	if err != nil {
		return nil, err
	}

	orderQuote, err := router.Route(
		ctx,
		kernel.NewUUID(),
		cmd.OrderID(),
		zone,
		h.catalogStore.Current(),
		h.assignmentStore.Current(),
		h.engine.Effective(zone.ID(), weatherRule),
		cmd.Items(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.QuoteRepository().Add(ctx, orderQuote); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderQuote, nil
}

// latestWeatherRule reads the zone's newest rule; a zone with no recorded
// weather is normal conditions, not an error.
func (h *RouteOrderCommandHandler) latestWeatherRule(
	ctx context.Context,
	uow RoutingUoW,
	zoneID kernel.UUID,
) (*weather.Rule, error) {
	rule, err := uow.WeatherRuleRepository().GetLatest(ctx, zoneID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rule, nil
}
