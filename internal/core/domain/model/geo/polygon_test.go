package geo_test

import (
	"testing"

	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func mustPolygon(t *testing.T, coords [][2]float64) geo.Polygon {
	t.Helper()
	vertices := make([]kernel.GeoPoint, 0, len(coords))
	for _, c := range coords {
		vertices = append(vertices, mustPoint(t, c[0], c[1]))
	}
	polygon, err := geo.NewPolygon(vertices)
	require.NoError(t, err)
	return polygon
}

func TestNewPolygon(t *testing.T) {
	t.Run("creates polygon from three or more vertices", func(t *testing.T) {
		polygon, err := geo.NewPolygon([]kernel.GeoPoint{
			mustPoint(t, 25.0, 90.0),
			mustPoint(t, 26.0, 90.0),
			mustPoint(t, 26.0, 91.0),
		})

		require.NoError(t, err)
		assert.NoError(t, polygon.Validate())
		assert.Len(t, polygon.Vertices(), 3)
	})

	t.Run("rejects degenerate rings", func(t *testing.T) {
		tests := []struct {
			name     string
			vertices []kernel.GeoPoint
		}{
			{"no vertices", nil},
			{"single vertex", []kernel.GeoPoint{mustPoint(t, 25.0, 90.0)}},
			{"two vertices", []kernel.GeoPoint{
				mustPoint(t, 25.0, 90.0),
				mustPoint(t, 26.0, 90.0),
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := geo.NewPolygon(tt.vertices)
				assert.ErrorIs(t, err, geo.ErrPolygonIsDegenerate)
			})
		}
	})

	t.Run("rejects zero-value vertices", func(t *testing.T) {
		_, err := geo.NewPolygon([]kernel.GeoPoint{
			mustPoint(t, 25.0, 90.0),
			{},
			mustPoint(t, 26.0, 91.0),
		})

		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var polygon geo.Polygon
		assert.ErrorIs(t, polygon.Validate(), geo.ErrPolygonIsNotConstructed)
	})

	t.Run("copies the vertex slice", func(t *testing.T) {
		vertices := []kernel.GeoPoint{
			mustPoint(t, 25.0, 90.0),
			mustPoint(t, 26.0, 90.0),
			mustPoint(t, 26.0, 91.0),
		}
		polygon, err := geo.NewPolygon(vertices)
		require.NoError(t, err)

		vertices[0] = mustPoint(t, -50.0, -120.0)

		equal, err := polygon.Vertices()[0].IsEqual(mustPoint(t, 25.0, 90.0))
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestPolygonContains(t *testing.T) {
	// Square roughly around Tura town in Meghalaya.
	square := mustPolygon(t, [][2]float64{
		{25.50, 90.19},
		{25.53, 90.19},
		{25.53, 90.22},
		{25.50, 90.22},
	})

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"point inside", 25.5138, 90.2065, true},
		{"point outside bounding box", 26.0, 91.0, false},
		{"corner vertex counts as inside", 25.50, 90.19, true},
		{"point west of ring", 25.515, 90.10, false},
		{"point north of ring", 25.60, 90.20, false},
		{"vertex counts as inside", 25.53, 90.22, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, square.Contains(mustPoint(t, tt.lat, tt.lng)))
		})
	}

	t.Run("concave ring", func(t *testing.T) {
		// L-shaped ring: the notch at the top right is outside.
		concave := mustPolygon(t, [][2]float64{
			{0.0, 0.0},
			{4.0, 0.0},
			{4.0, 2.0},
			{2.0, 2.0},
			{2.0, 4.0},
			{0.0, 4.0},
		})

		assert.True(t, concave.Contains(mustPoint(t, 1.0, 1.0)))
		assert.True(t, concave.Contains(mustPoint(t, 1.0, 3.0)))
		assert.False(t, concave.Contains(mustPoint(t, 3.0, 3.0)))
	})
}

func TestPolygonInBoundingBox(t *testing.T) {
	polygon := mustPolygon(t, [][2]float64{
		{25.50, 90.19},
		{25.53, 90.19},
		{25.53, 90.22},
		{25.50, 90.22},
	})

	assert.True(t, polygon.InBoundingBox(mustPoint(t, 25.51, 90.20)))
	assert.False(t, polygon.InBoundingBox(mustPoint(t, 25.49, 90.20)))
	assert.False(t, polygon.InBoundingBox(mustPoint(t, 25.51, 90.23)))
}
