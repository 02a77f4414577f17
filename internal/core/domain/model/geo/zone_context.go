package geo

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

// ErrZoneContextIsNotConstructed is returned when using an improperly initialized ZoneContext.
var ErrZoneContextIsNotConstructed = errors.New(
	"ZoneContext must be created via NewZoneContext constructor")

// ZoneContext is the result of a successful geofence resolution: the chain of
// geographic identifiers a coordinate resolved to. It is what downstream
// collaborators (checkout, weather, routing) use to scope their decisions.
type ZoneContext struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID
	zoneID   kernel.UUID
	areaID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewZoneContext creates a resolution result from the identifiers of the
// containing region, zone, and area. All three must be valid.
func NewZoneContext(regionID kernel.UUID, zoneID kernel.UUID, areaID kernel.UUID) (ZoneContext, error) {
	if err := errors.Join(regionID.Validate(), zoneID.Validate(), areaID.Validate()); err != nil {
		return ZoneContext{}, err
	}

	return ZoneContext{
		regionID: regionID,
		zoneID:   zoneID,
		areaID:   areaID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the ZoneContext was properly constructed using the constructor.
func (c ZoneContext) Validate() error {
	return c.guard.Validate(ErrZoneContextIsNotConstructed)
}

// RegionID returns the identifier of the containing region.
func (c ZoneContext) RegionID() kernel.UUID {
	return c.regionID
}

// ZoneID returns the identifier of the containing zone.
func (c ZoneContext) ZoneID() kernel.UUID {
	return c.zoneID
}

// AreaID returns the identifier of the containing area.
func (c ZoneContext) AreaID() kernel.UUID {
	return c.areaID
}

// String returns a human-readable representation for logging.
func (c ZoneContext) String() string {
	return fmt.Sprintf("ZoneContext(region=%s,zone=%s,area=%s)", c.regionID, c.zoneID, c.areaID)
}
