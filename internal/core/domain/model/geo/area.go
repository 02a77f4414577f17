package geo

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrAreaIsNotConstructed is returned when using an improperly initialized Area.
	ErrAreaIsNotConstructed = errors.New("Area must be created via NewArea constructor")
	// ErrAreaNameIsRequired is returned when attempting to create an area without a name.
	ErrAreaNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Area is the leaf of the geographic hierarchy: the polygon actually tested
// during geofence resolution. An area belongs to exactly one zone and carries
// the postal codes it covers. Areas are never referenced by vendor assignment;
// assignment operates at zone granularity.
type Area struct {
	id          kernel.UUID
	zoneID      kernel.UUID
	name        string
	boundary    Polygon
	postalCodes []string

	isConstructed bool
}

// NewArea creates a new Area.
// The boundary must be a valid non-degenerate polygon; postal codes are
// optional and copied defensively. Returns a validation error aggregating
// every invalid parameter.
func NewArea(
	id kernel.UUID,
	zoneID kernel.UUID,
	name string,
	boundary Polygon,
	postalCodes []string,
) (*Area, error) {
	area := &Area{
		isConstructed: true,
	}

	if err := errors.Join(
		area.setID(id),
		area.setZoneID(zoneID),
		area.setName(name),
		area.setBoundary(boundary),
	); err != nil {
		return nil, err
	}

	area.postalCodes = make([]string, len(postalCodes))
	copy(area.postalCodes, postalCodes)

	return area, nil
}

// Validate ensures the Area instance was properly constructed through NewArea.
func (a *Area) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAreaIsNotConstructed
	}
	return nil
}

// ID returns the area's unique identifier.
func (a *Area) ID() kernel.UUID {
	return a.id
}

// ZoneID returns the identifier of the owning zone.
func (a *Area) ZoneID() kernel.UUID {
	return a.zoneID
}

// Name returns the area's display name.
func (a *Area) Name() string {
	return a.name
}

// Boundary returns the area's geofence polygon.
func (a *Area) Boundary() Polygon {
	return a.boundary
}

// PostalCodes returns a copy of the postal codes the area covers.
func (a *Area) PostalCodes() []string {
	codes := make([]string, len(a.postalCodes))
	copy(codes, a.postalCodes)
	return codes
}

// Contains reports whether the point lies inside the area's geofence.
func (a *Area) Contains(point kernel.GeoPoint) bool {
	return a.boundary.Contains(point)
}

func (a *Area) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Area) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	a.zoneID = zoneID
	return nil
}

func (a *Area) setName(name string) error {
	if name == "" {
		return ErrAreaNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Area) setBoundary(boundary Polygon) error {
	if err := boundary.Validate(); err != nil {
		return err
	}
	a.boundary = boundary
	return nil
}
