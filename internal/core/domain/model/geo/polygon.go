package geo

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// polygonMinVertices is the minimum number of vertices a geofence ring must have.
// Anything smaller cannot enclose an area and is rejected as a configuration error.
const polygonMinVertices = 3

var (
	// ErrPolygonIsNotConstructed is returned when attempting to use an improperly initialized Polygon.
	ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
		"polygon must be created via NewPolygon constructor")

	// ErrPolygonIsDegenerate is returned when a geofence ring has fewer than three vertices.
	// Degenerate polygons are configuration errors: the area they belong to is excluded
	// from resolution and the problem is surfaced to the caller for logging.
	ErrPolygonIsDegenerate = errors.New("polygon is degenerate: a geofence ring requires at least 3 vertices")
)

// Polygon is a closed geofence ring described by an ordered list of WGS84 vertices.
// The ring is implicitly closed: the last vertex connects back to the first.
// Polygon is an immutable value object; its bounding box is precomputed at
// construction so candidate filtering during resolution is a cheap comparison.
//
// Example:
//
//	ring, err := geo.NewPolygon([]kernel.GeoPoint{v1, v2, v3, v4})
//	if err != nil {
//	    // fewer than 3 vertices, or an invalid vertex
//	}
//	inside := ring.Contains(point)
type Polygon struct { //nolint:recvcheck //using for validation
	vertices []kernel.GeoPoint

	// Bounding box, precomputed at construction.
	minLat, maxLat float64
	minLng, maxLng float64

	guard guard.ConstructorGuard
}

// NewPolygon creates a closed geofence ring from the given ordered vertices.
// All vertices must be properly constructed GeoPoints and at least three are
// required. The vertex slice is copied, so later mutation of the input does
// not affect the polygon.
//
// Returns:
//   - Polygon: A valid geofence ring with a precomputed bounding box
//   - error: ErrPolygonIsDegenerate for rings with fewer than 3 vertices,
//     or a validation error for improperly constructed vertices
func NewPolygon(vertices []kernel.GeoPoint) (Polygon, error) {
	if len(vertices) < polygonMinVertices {
		return Polygon{}, ErrPolygonIsDegenerate
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(
				"vertices", fmt.Errorf("vertex %d: %w", i, err))
		}
	}

	polygon := Polygon{
		vertices: make([]kernel.GeoPoint, len(vertices)),
		minLat:   vertices[0].Latitude(),
		maxLat:   vertices[0].Latitude(),
		minLng:   vertices[0].Longitude(),
		maxLng:   vertices[0].Longitude(),
		guard:    guard.NewConstructorGuard(),
	}
	copy(polygon.vertices, vertices)

	for _, v := range vertices {
		polygon.minLat = min(polygon.minLat, v.Latitude())
		polygon.maxLat = max(polygon.maxLat, v.Latitude())
		polygon.minLng = min(polygon.minLng, v.Longitude())
		polygon.maxLng = max(polygon.maxLng, v.Longitude())
	}

	return polygon, nil
}

// Validate checks if the Polygon was properly constructed using the constructor.
// The zero value of Polygon is invalid and will fail this validation.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the ordered vertex ring.
func (p Polygon) Vertices() []kernel.GeoPoint {
	vertices := make([]kernel.GeoPoint, len(p.vertices))
	copy(vertices, p.vertices)
	return vertices
}

// InBoundingBox reports whether the point lies within the polygon's bounding box.
// This is the cheap prefilter used to skip the full ray-casting test for
// candidate areas that cannot possibly contain the point.
func (p Polygon) InBoundingBox(point kernel.GeoPoint) bool {
	lat, lng := point.Latitude(), point.Longitude()
	return lat >= p.minLat && lat <= p.maxLat && lng >= p.minLng && lng <= p.maxLng
}

// Contains reports whether the point lies inside the closed ring.
// Implemented with the ray-casting (even-odd) rule: a ray cast eastward from
// the point crosses the ring's edges an odd number of times exactly when the
// point is inside. Points exactly on an edge count as inside, so adjacent
// areas sharing a border both claim boundary points and the resolver's
// deterministic tie-break decides.
func (p Polygon) Contains(point kernel.GeoPoint) bool {
	if !p.InBoundingBox(point) {
		return false
	}

	lat, lng := point.Latitude(), point.Longitude()
	inside := false

	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		latI, lngI := p.vertices[i].Latitude(), p.vertices[i].Longitude()
		latJ, lngJ := p.vertices[j].Latitude(), p.vertices[j].Longitude()

		if (latI > lat) != (latJ > lat) {
			crossing := (lngJ-lngI)*(lat-latI)/(latJ-latI) + lngI
			if lng < crossing {
				inside = !inside
			} else if lng == crossing {
				return true
			}
		}
	}

	return inside
}
