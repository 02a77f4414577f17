package queries_test

import (
	"io"
	"log/slog"
	"testing"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolveHandlerFixture(t *testing.T) (queries.ResolveLocationQueryHandler, kernel.UUID) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	regionID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	areaID := kernel.NewUUID()
	darkStoreID := kernel.NewUUID()

	boundary := squareBoundary(t, 25.50, 25.53, 90.19, 90.22)

	region, err := geo.NewRegion(regionID, "Meghalaya", geo.StatusActive)
	require.NoError(t, err)
	zone, err := geo.NewZone(
		zoneID, regionID, "Tura Zone 1", boundary, geo.StatusActive,
		geo.AlwaysOpen(), 20.0, &darkStoreID)
	require.NoError(t, err)
	area, err := geo.NewArea(areaID, zoneID, "Tura Bazaar", boundary, []string{"794001"})
	require.NoError(t, err)

	snapshot, warnings := geo.NewSnapshot(1,
		[]*geo.Region{region}, []*geo.Zone{zone}, []*geo.Area{area})
	require.Empty(t, warnings)

	store := memory.NewGeoSnapshotStore()
	store.Publish(snapshot)

	handler := queries.NewResolveLocationQueryHandler(store, services.NewGeofenceResolver(logger))
	return handler, zoneID
}

func squareBoundary(t *testing.T, minLat, maxLat, minLng, maxLng float64) geo.Polygon {
	t.Helper()

	corners := [][2]float64{
		{minLat, minLng}, {minLat, maxLng}, {maxLat, maxLng}, {maxLat, minLng},
	}
	vertices := make([]kernel.GeoPoint, 0, len(corners))
	for _, c := range corners {
		point, err := kernel.NewGeoPoint(c[0], c[1])
		require.NoError(t, err)
		vertices = append(vertices, point)
	}

	boundary, err := geo.NewPolygon(vertices)
	require.NoError(t, err)
	return boundary
}

func TestResolveLocationQueryHandler_ResolvesServiceablePoint(t *testing.T) {
	handler, zoneID := newResolveHandlerFixture(t)

	query, err := queries.NewResolveLocationQuery(25.5138, 90.2065)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, zoneID, result.ZoneID)
	assert.Equal(t, "Meghalaya", result.RegionName)
	assert.Equal(t, "Tura Zone 1", result.ZoneName)
	assert.Equal(t, "Tura Bazaar", result.AreaName)
	assert.InDelta(t, 20.0, result.BaseDeliveryFee, 0.001)
	assert.True(t, result.HasDarkStore)
	assert.Equal(t, uint64(1), result.SnapshotVersion)
}

func TestResolveLocationQueryHandler_OutsideEveryArea(t *testing.T) {
	handler, _ := newResolveHandlerFixture(t)

	query, err := queries.NewResolveLocationQuery(26.9, 91.1)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotServiceable)
}

func TestResolveLocationQueryHandler_RejectsUnconstructedQuery(t *testing.T) {
	handler, _ := newResolveHandlerFixture(t)

	_, err := handler.Handle(t.Context(), queries.ResolveLocationQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrResolveLocationQueryIsNotConstructed)
}
