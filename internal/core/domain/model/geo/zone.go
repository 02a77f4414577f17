package geo

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrZoneNameIsRequired is returned when attempting to create a zone without a name.
	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Zone is the mid tier of the geographic hierarchy and the unit of business
// policy: vendor-category exclusivity, allocation rules, and weather rules all
// operate at zone granularity. A zone belongs to exactly one region, owns its
// areas, and carries the zone-wide delivery defaults the order router falls
// back to when no weather override is active.
//
// Zones are configuration data. They are created administratively, consumed
// through immutable snapshots, and never mutated in place.
type Zone struct {
	id       kernel.UUID
	regionID kernel.UUID
	name     string
	boundary Polygon
	status   Status
	hours    ServiceHours

	// baseDeliveryFee is the zone default used for vendor sub-orders
	// when no weather override is active.
	baseDeliveryFee float64

	// darkStoreID identifies the company-owned dark store serving this zone.
	// Nil when the zone has no dark store; allocation then always falls
	// through to vendors.
	darkStoreID *kernel.UUID

	isConstructed bool
}

// NewZone creates a new Zone.
//
// Parameters:
//   - id: Unique identifier for the zone
//   - regionID: Identifier of the owning region
//   - name: Human-readable zone name (must be non-empty)
//   - boundary: Closed polygon geofence for the zone
//   - status: Administrative status
//   - hours: Daily service window (AlwaysOpen() when unrestricted)
//   - baseDeliveryFee: Zone-default delivery fee for vendor sub-orders (must not be negative)
//   - darkStoreID: Dark store serving the zone, or nil when none
//
// Returns a validation error aggregating every invalid parameter.
func NewZone(
	id kernel.UUID,
	regionID kernel.UUID,
	name string,
	boundary Polygon,
	status Status,
	hours ServiceHours,
	baseDeliveryFee float64,
	darkStoreID *kernel.UUID,
) (*Zone, error) {
	zone := &Zone{
		hours:         hours,
		isConstructed: true,
	}

	if err := errors.Join(
		zone.setID(id),
		zone.setRegionID(regionID),
		zone.setName(name),
		zone.setBoundary(boundary),
		zone.setStatus(status),
		zone.setBaseDeliveryFee(baseDeliveryFee),
		zone.setDarkStoreID(darkStoreID),
	); err != nil {
		return nil, err
	}

	return zone, nil
}

// Validate ensures the Zone instance was properly constructed through NewZone.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// RegionID returns the identifier of the owning region.
func (z *Zone) RegionID() kernel.UUID {
	return z.regionID
}

// Name returns the zone's display name.
func (z *Zone) Name() string {
	return z.name
}

// Boundary returns the zone's geofence polygon.
func (z *Zone) Boundary() Polygon {
	return z.boundary
}

// Status returns the zone's administrative status.
func (z *Zone) Status() Status {
	return z.status
}

// ServiceHours returns the zone's daily service window.
func (z *Zone) ServiceHours() ServiceHours {
	return z.hours
}

// BaseDeliveryFee returns the zone-default delivery fee for vendor sub-orders.
func (z *Zone) BaseDeliveryFee() float64 {
	return z.baseDeliveryFee
}

// DarkStoreID returns the dark store serving this zone, or nil when the zone
// has none.
func (z *Zone) DarkStoreID() *kernel.UUID {
	return z.darkStoreID
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}
	z.regionID = regionID
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setBoundary(boundary Polygon) error {
	if err := boundary.Validate(); err != nil {
		return err
	}
	z.boundary = boundary
	return nil
}

func (z *Zone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	z.status = status
	return nil
}

func (z *Zone) setBaseDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"baseDeliveryFee", fmt.Errorf("%f is negative", fee))
	}
	z.baseDeliveryFee = fee
	return nil
}

func (z *Zone) setDarkStoreID(darkStoreID *kernel.UUID) error {
	if darkStoreID == nil {
		return nil
	}
	if err := darkStoreID.Validate(); err != nil {
		return err
	}
	id := *darkStoreID
	z.darkStoreID = &id
	return nil
}
