package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAssignedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockStockReserver struct{ mock.Mock }

func (m *MockStockReserver) Reserve(
	ctx context.Context,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
) (*inventory.Record, error) {
	args := m.Called(ctx, sourceID, productID, zoneID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func stockRecord(
	t *testing.T,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
	unitPrice float64,
) *inventory.Record {
	t.Helper()
	record, err := inventory.NewRecord(sourceID, productID, zoneID, quantity, unitPrice*0.8, unitPrice, true)
	require.NoError(t, err)
	return record
}

func turaPolygon(t *testing.T) geo.Polygon {
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

// routingFixture wires one zone with a dark store, one assigned dairy vendor,
// and a small catalog: milk belongs to Dairy (vendor-owned), bread to Bakery
// (no vendor, dark store territory).
type routingFixture struct {
	regionID    kernel.UUID
	zoneID      kernel.UUID
	darkStoreID kernel.UUID
	vendorID    kernel.UUID

	groceriesID kernel.UUID
	dairyID     kernel.UUID
	bakeryID    kernel.UUID
	milkID      kernel.UUID
	breadID     kernel.UUID

	zone      *geo.Zone
	directory *catalog.Directory
}

func newRoutingFixture(t *testing.T) *routingFixture {
	t.Helper()

	f := &routingFixture{
		regionID:    kernel.NewUUID(),
		zoneID:      kernel.NewUUID(),
		darkStoreID: kernel.NewUUID(),
		vendorID:    kernel.NewUUID(),
		groceriesID: kernel.NewUUID(),
		dairyID:     kernel.NewUUID(),
		bakeryID:    kernel.NewUUID(),
		milkID:      kernel.NewUUID(),
		breadID:     kernel.NewUUID(),
	}

	zone, err := geo.NewZone(
		f.zoneID, f.regionID, "Tura Zone 1", turaPolygon(t),
		geo.StatusActive, geo.AlwaysOpen(), 20.0, &f.darkStoreID)
	require.NoError(t, err)
	f.zone = zone

	groceries, err := catalog.NewCategory(f.groceriesID, "Groceries", nil)
	require.NoError(t, err)
	dairy, err := catalog.NewCategory(f.dairyID, "Dairy", &f.groceriesID)
	require.NoError(t, err)
	bakery, err := catalog.NewCategory(f.bakeryID, "Bakery", &f.groceriesID)
	require.NoError(t, err)

	darkStore, err := catalog.NewVendor(
		f.darkStoreID, "Tura Dark Store", catalog.VendorTypeDarkStore, true, 15)
	require.NoError(t, err)
	vendor, err := catalog.NewVendor(
		f.vendorID, "Tura Fresh Dairy", catalog.VendorTypeSpecialized, true, 25)
	require.NoError(t, err)

	milk, err := catalog.NewProduct(f.milkID, "Milk 1L", f.dairyID)
	require.NoError(t, err)
	bread, err := catalog.NewProduct(f.breadID, "Bread Loaf", f.bakeryID)
	require.NoError(t, err)

	directory, err := catalog.NewDirectory(
		[]*catalog.Category{groceries, dairy, bakery},
		[]*catalog.Vendor{darkStore, vendor},
		[]*catalog.Product{milk, bread})
	require.NoError(t, err)
	f.directory = directory

	return f
}

// assignments builds an assignment snapshot with the dairy vendor owning the
// Dairy category, plus any extra allocation rules a test needs.
func (f *routingFixture) assignments(t *testing.T, rules ...*assignment.AllocationRule) *assignment.Snapshot {
	t.Helper()

	dairyAssignment, err := assignment.NewAssignment(
		kernel.NewUUID(), f.zoneID, f.dairyID, f.vendorID, true, testAssignedAt)
	require.NoError(t, err)

	return assignment.NewSnapshot(1, []*assignment.Assignment{dairyAssignment}, rules)
}
