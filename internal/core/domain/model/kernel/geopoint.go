package kernel

import (
	"errors"
	"fmt"
	"math"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in WGS84 decimal degrees.
	GeoPointMinLatitude = -90.0
	// GeoPointMaxLatitude is the maximum valid latitude in WGS84 decimal degrees.
	GeoPointMaxLatitude = 90.0
	// GeoPointMinLongitude is the minimum valid longitude in WGS84 decimal degrees.
	GeoPointMinLongitude = -180.0
	// GeoPointMaxLongitude is the maximum valid longitude in WGS84 decimal degrees.
	GeoPointMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate in WGS84 decimal degrees.
// GeoPoint is an immutable value object that ensures latitude and longitude
// are always within valid bounds. It is the input every geofence resolution
// starts from: customer devices send a GeoPoint and the resolver maps it to
// the Region/Zone/Area hierarchy.
//
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(25.5138, 90.2065)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(25.513800,90.206500)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [GeoPointMinLatitude..GeoPointMaxLatitude] and
// longitude within [GeoPointMinLongitude..GeoPointMaxLongitude]. NaN and
// infinite values are rejected.
//
// Parameters:
//   - latitude: WGS84 latitude in decimal degrees
//   - longitude: WGS84 longitude in decimal degrees
//
// Returns:
//   - GeoPoint: A valid geographic point
//   - error: Validation error if either coordinate is out of bounds
//
// Example:
//
//	point, err := NewGeoPoint(25.5138, 90.2065)
//	if err != nil {
//	    log.Fatal("Invalid coordinates:", err)
//	}
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
//
// Returns:
//   - error: ErrGeoPointIsNotConstructed if the point was not properly initialized, nil otherwise
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in WGS84 decimal degrees.
// The returned value is guaranteed to be within valid bounds for properly
// constructed GeoPoint instances.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in WGS84 decimal degrees.
// The returned value is guaranteed to be within valid bounds for properly
// constructed GeoPoint instances.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable string representation of the GeoPoint.
// The format is "GeoPoint(lat,lng)" which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geographic points for equality.
// Two points are considered equal if both coordinates match exactly.
// Both points must be properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The GeoPoint to compare with
//
// Returns:
//   - bool: true if points are equal, false otherwise
//   - error: Validation error if either point is improperly constructed
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// of business requirements during object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < GeoPointMinLatitude || latitude > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// of business requirements during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < GeoPointMinLongitude || longitude > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.longitude = longitude
	return nil
}
