package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var testOccurredAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// platformFixture publishes one serviceable zone and a minimal catalog to
// in-memory snapshot stores, the way the composition root does at startup.
// The zone covers the point (25.5138, 90.2065); milk belongs to the
// vendor-owned Dairy category.
type platformFixture struct {
	regionID    kernel.UUID
	zoneID      kernel.UUID
	areaID      kernel.UUID
	darkStoreID kernel.UUID
	vendorID    kernel.UUID

	groceriesID kernel.UUID
	dairyID     kernel.UUID
	milkID      kernel.UUID

	geoStore        *memory.GeoSnapshotStore
	catalogStore    *memory.CatalogDirectoryStore
	assignmentStore *memory.AssignmentSnapshotStore
}

func newPlatformFixture(t *testing.T) *platformFixture {
	t.Helper()

	f := &platformFixture{
		regionID:        kernel.NewUUID(),
		zoneID:          kernel.NewUUID(),
		areaID:          kernel.NewUUID(),
		darkStoreID:     kernel.NewUUID(),
		vendorID:        kernel.NewUUID(),
		groceriesID:     kernel.NewUUID(),
		dairyID:         kernel.NewUUID(),
		milkID:          kernel.NewUUID(),
		geoStore:        memory.NewGeoSnapshotStore(),
		catalogStore:    memory.NewCatalogDirectoryStore(),
		assignmentStore: memory.NewAssignmentSnapshotStore(),
	}

	boundary := serviceBoundary(t)

	region, err := geo.NewRegion(f.regionID, "Meghalaya", geo.StatusActive)
	require.NoError(t, err)
	zone, err := geo.NewZone(
		f.zoneID, f.regionID, "Tura Zone 1", boundary,
		geo.StatusActive, geo.AlwaysOpen(), 20.0, &f.darkStoreID)
	require.NoError(t, err)
	area, err := geo.NewArea(f.areaID, f.zoneID, "Tura Bazaar", boundary, nil)
	require.NoError(t, err)

	snapshot, warnings := geo.NewSnapshot(1,
		[]*geo.Region{region}, []*geo.Zone{zone}, []*geo.Area{area})
	require.Empty(t, warnings)
	f.geoStore.Publish(snapshot)

	groceries, err := catalog.NewCategory(f.groceriesID, "Groceries", nil)
	require.NoError(t, err)
	dairy, err := catalog.NewCategory(f.dairyID, "Dairy", &f.groceriesID)
	require.NoError(t, err)

	darkStore, err := catalog.NewVendor(
		f.darkStoreID, "Tura Dark Store", catalog.VendorTypeDarkStore, true, 15)
	require.NoError(t, err)
	vendor, err := catalog.NewVendor(
		f.vendorID, "Tura Fresh Dairy", catalog.VendorTypeSpecialized, true, 25)
	require.NoError(t, err)

	milk, err := catalog.NewProduct(f.milkID, "Milk 1L", f.dairyID)
	require.NoError(t, err)

	directory, err := catalog.NewDirectory(
		[]*catalog.Category{groceries, dairy},
		[]*catalog.Vendor{darkStore, vendor},
		[]*catalog.Product{milk})
	require.NoError(t, err)
	f.catalogStore.Publish(directory)

	dairyAssignment, err := assignment.NewAssignment(
		kernel.NewUUID(), f.zoneID, f.dairyID, f.vendorID, true, testOccurredAt)
	require.NoError(t, err)
	f.assignmentStore.Publish(assignment.NewSnapshot(1,
		[]*assignment.Assignment{dairyAssignment}, nil))

	return f
}

func serviceBoundary(t *testing.T) geo.Polygon {
	t.Helper()
	coords := [][2]float64{{25.50, 90.19}, {25.53, 90.19}, {25.53, 90.22}, {25.50, 90.22}}
	vertices := make([]kernel.GeoPoint, 0, len(coords))
	for _, c := range coords {
		point, err := kernel.NewGeoPoint(c[0], c[1])
		require.NoError(t, err)
		vertices = append(vertices, point)
	}
	polygon, err := geo.NewPolygon(vertices)
	require.NoError(t, err)
	return polygon
}
