package services

import (
	"errors"
	"log/slog"

	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"
)

// ErrNotServiceable is returned when a coordinate falls inside no configured
// service area. This is the expected answer for most of the map and is not an
// infrastructure failure.
var ErrNotServiceable = errors.New("location is not serviceable")

// GeofenceResolver is a domain service that resolves a coordinate to the
// service area containing it and returns the full geographic chain
// (region, zone, area) downstream collaborators scope their decisions by.
//
// Resolution runs entirely against an immutable snapshot: candidate areas are
// prefiltered by bounding box, then tested with the full point-in-polygon
// check. Misconfigured areas never reach the snapshot, so resolution cannot
// fail on bad configuration - the worst answer is "not serviceable".
//
// Overlapping areas are a data problem, not a request problem: the resolver
// picks deterministically (smallest area ID wins) so the same coordinate
// always resolves to the same area, and reports the overlap in the log.
type GeofenceResolver struct {
	logger *slog.Logger
}

// NewGeofenceResolver creates a new GeofenceResolver.
func NewGeofenceResolver(logger *slog.Logger) GeofenceResolver {
	return GeofenceResolver{
		logger: logger.With("component", "geofence_resolver"),
	}
}

// Resolve finds the area containing the point and returns its geographic chain.
//
// Parameters:
//   - snapshot: The hierarchy snapshot to resolve against
//   - point: The delivery coordinate (must be a constructed GeoPoint)
//
// Returns:
//   - geo.ZoneContext: The region, zone, and area the point resolved to
//   - error: ErrNotServiceable when no area contains the point, or a
//     validation error for an improperly constructed point
func (r GeofenceResolver) Resolve(snapshot *geo.Snapshot, point kernel.GeoPoint) (geo.ZoneContext, error) {
	if err := point.Validate(); err != nil {
		return geo.ZoneContext{}, err
	}

	var matches []*geo.Area
	for _, area := range snapshot.Areas() {
		if !area.Boundary().InBoundingBox(point) {
			continue
		}
		if area.Contains(point) {
			matches = append(matches, area)
		}
	}

	if len(matches) == 0 {
		return geo.ZoneContext{}, ErrNotServiceable
	}

	winner := matches[0]
	for _, area := range matches[1:] {
		if area.ID().String() < winner.ID().String() {
			winner = area
		}
	}

	if len(matches) > 1 {
		r.logger.Warn("overlapping service areas for point",
			"point", point.String(),
			"areas", len(matches),
			"resolved_area_id", winner.ID().String())
	}

	zone, ok := snapshot.Zone(winner.ZoneID())
	if !ok {
		// Snapshot construction guarantees the parent chain; reaching this
		// means the snapshot itself is corrupt.
		return geo.ZoneContext{}, ErrNotServiceable
	}

	return geo.NewZoneContext(zone.RegionID(), zone.ID(), winner.ID())
}
