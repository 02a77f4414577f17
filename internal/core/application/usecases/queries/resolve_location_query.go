package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
)

var (
	ErrResolveLocationQueryIsNotConstructed = errors.New(
		"ResolveLocationQuery must be created via NewResolveLocationQuery constructor",
	)
)

// ResolveLocationQuery resolves a delivery coordinate to the service area
// containing it. This is the serviceability check every order starts with.
//
// Example:
//
//	query, err := NewResolveLocationQuery(25.5138, 90.2065)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNotServiceable) {
//	    // outside every configured service area
//	}
type ResolveLocationQuery struct {
	point kernel.GeoPoint

	isConstructed bool
}

// NewResolveLocationQuery creates a resolution query for the given WGS84
// coordinate. Returns a validation error for out-of-range latitude or
// longitude.
func NewResolveLocationQuery(latitude float64, longitude float64) (ResolveLocationQuery, error) {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ResolveLocationQuery{}, err
	}

	return ResolveLocationQuery{
		point:         point,
		isConstructed: true,
	}, nil
}

// Point returns the coordinate to resolve.
func (q ResolveLocationQuery) Point() kernel.GeoPoint {
	return q.point
}

// Validate ensures the query was created through the constructor.
func (q ResolveLocationQuery) Validate() error {
	if !q.isConstructed {
		return ErrResolveLocationQueryIsNotConstructed
	}
	return nil
}

// ResolveLocationQueryResponse carries the resolved geographic chain along
// with the zone-level delivery defaults the caller needs to present.
type ResolveLocationQueryResponse struct {
	RegionID   kernel.UUID
	RegionName string

	ZoneID          kernel.UUID
	ZoneName        string
	BaseDeliveryFee float64
	HasDarkStore    bool

	AreaID   kernel.UUID
	AreaName string

	SnapshotVersion uint64
}
