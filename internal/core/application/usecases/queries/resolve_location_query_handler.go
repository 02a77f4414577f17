package queries

import (
	"context"

	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
)

// ResolveLocationQueryHandler resolves coordinates against the published
// geographic snapshot. The handler never touches the database: every request
// runs against the in-memory view, so resolution stays fast and lock-free.
type ResolveLocationQueryHandler struct {
	geoStore ports.GeoSnapshotStore
	resolver services.GeofenceResolver
}

// NewResolveLocationQueryHandler creates a handler for location resolution queries.
func NewResolveLocationQueryHandler(
	geoStore ports.GeoSnapshotStore,
	resolver services.GeofenceResolver,
) ResolveLocationQueryHandler {
	return ResolveLocationQueryHandler{
		geoStore: geoStore,
		resolver: resolver,
	}
}

// Handle resolves the coordinate to its region, zone, and area.
// Returns services.ErrNotServiceable when no configured area contains the point.
func (h ResolveLocationQueryHandler) Handle(
	_ context.Context,
	query ResolveLocationQuery,
) (ResolveLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveLocationQueryResponse{}, err
	}

	snapshot := h.geoStore.Current()

	zoneContext, err := h.resolver.Resolve(snapshot, query.Point())
	if err != nil {
		return ResolveLocationQueryResponse{}, err
	}

	response := ResolveLocationQueryResponse{
		RegionID:        zoneContext.RegionID(),
		ZoneID:          zoneContext.ZoneID(),
		AreaID:          zoneContext.AreaID(),
		SnapshotVersion: snapshot.Version(),
	}

	if region, ok := snapshot.Region(zoneContext.RegionID()); ok {
		response.RegionName = region.Name()
	}
	if zone, ok := snapshot.Zone(zoneContext.ZoneID()); ok {
		response.ZoneName = zone.Name()
		response.BaseDeliveryFee = zone.BaseDeliveryFee()
		response.HasDarkStore = zone.DarkStoreID() != nil
	}
	if area := findArea(snapshot, zoneContext); area != nil {
		response.AreaName = area.Name()
	}

	return response, nil
}

func findArea(snapshot *geo.Snapshot, zoneContext geo.ZoneContext) *geo.Area {
	for _, area := range snapshot.Areas() {
		if area.ID().IsEqual(zoneContext.AreaID()) {
			return area
		}
	}
	return nil
}
