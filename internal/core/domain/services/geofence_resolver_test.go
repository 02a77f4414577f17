package services_test

import (
	"testing"

	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHierarchy(t *testing.T) (*geo.Region, *geo.Zone, *geo.Area) {
	t.Helper()

	region, err := geo.NewRegion(kernel.NewUUID(), "Meghalaya", geo.StatusActive)
	require.NoError(t, err)

	zone, err := geo.NewZone(
		kernel.NewUUID(), region.ID(), "Tura Zone 1", turaPolygon(t),
		geo.StatusActive, geo.AlwaysOpen(), 20.0, nil)
	require.NoError(t, err)

	area, err := geo.NewArea(
		kernel.NewUUID(), zone.ID(), "Tura Bazaar", turaPolygon(t), []string{"794001"})
	require.NoError(t, err)

	return region, zone, area
}

func TestGeofenceResolver_Resolve(t *testing.T) {
	resolver := services.NewGeofenceResolver(testLogger())

	t.Run("resolves a point to its region, zone, and area", func(t *testing.T) {
		region, zone, area := buildHierarchy(t)
		snapshot, warnings := geo.NewSnapshot(1,
			[]*geo.Region{region}, []*geo.Zone{zone}, []*geo.Area{area})
		require.Empty(t, warnings)

		point, err := kernel.NewGeoPoint(25.5138, 90.2065)
		require.NoError(t, err)

		context, err := resolver.Resolve(snapshot, point)

		require.NoError(t, err)
		assert.True(t, context.RegionID().IsEqual(region.ID()))
		assert.True(t, context.ZoneID().IsEqual(zone.ID()))
		assert.True(t, context.AreaID().IsEqual(area.ID()))
	})

	t.Run("returns not serviceable outside every area", func(t *testing.T) {
		region, zone, area := buildHierarchy(t)
		snapshot, _ := geo.NewSnapshot(1,
			[]*geo.Region{region}, []*geo.Zone{zone}, []*geo.Area{area})

		point, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)

		_, err = resolver.Resolve(snapshot, point)

		assert.ErrorIs(t, err, services.ErrNotServiceable)
	})

	t.Run("returns not serviceable at the origin", func(t *testing.T) {
		region, zone, area := buildHierarchy(t)
		snapshot, _ := geo.NewSnapshot(1,
			[]*geo.Region{region}, []*geo.Zone{zone}, []*geo.Area{area})

		point, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)

		_, err = resolver.Resolve(snapshot, point)

		assert.ErrorIs(t, err, services.ErrNotServiceable)
	})

	t.Run("returns not serviceable on an empty snapshot", func(t *testing.T) {
		snapshot, _ := geo.NewSnapshot(1, nil, nil, nil)

		point, err := kernel.NewGeoPoint(25.5138, 90.2065)
		require.NoError(t, err)

		_, err = resolver.Resolve(snapshot, point)

		assert.ErrorIs(t, err, services.ErrNotServiceable)
	})

	t.Run("rejects an improperly constructed point", func(t *testing.T) {
		snapshot, _ := geo.NewSnapshot(1, nil, nil, nil)

		_, err := resolver.Resolve(snapshot, kernel.GeoPoint{})

		assert.Error(t, err)
	})

	t.Run("overlapping areas resolve deterministically", func(t *testing.T) {
		region, zone, _ := buildHierarchy(t)

		idLow, err := kernel.UUIDFromString("11111111-1111-1111-1111-111111111111")
		require.NoError(t, err)
		idHigh, err := kernel.UUIDFromString("99999999-9999-9999-9999-999999999999")
		require.NoError(t, err)

		areaLow, err := geo.NewArea(idLow, zone.ID(), "Overlap A", turaPolygon(t), nil)
		require.NoError(t, err)
		areaHigh, err := geo.NewArea(idHigh, zone.ID(), "Overlap B", turaPolygon(t), nil)
		require.NoError(t, err)

		point, err := kernel.NewGeoPoint(25.5138, 90.2065)
		require.NoError(t, err)

		// Same winner regardless of the order areas entered the snapshot.
		for _, areas := range [][]*geo.Area{
			{areaLow, areaHigh},
			{areaHigh, areaLow},
		} {
			snapshot, _ := geo.NewSnapshot(1, []*geo.Region{region}, []*geo.Zone{zone}, areas)

			context, err := resolver.Resolve(snapshot, point)

			require.NoError(t, err)
			assert.True(t, context.AreaID().IsEqual(idLow))
		}
	})
}
