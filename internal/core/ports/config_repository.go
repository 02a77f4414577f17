package ports

import (
	"context"

	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
)

// GeoRepository reads the configured geographic hierarchy. It feeds snapshot
// rebuilds only; the hot resolution path never touches it.
type GeoRepository interface {
	// GetAllRegions retrieves every configured region.
	GetAllRegions(ctx context.Context) ([]*geo.Region, error)

	// GetAllZones retrieves every configured zone.
	GetAllZones(ctx context.Context) ([]*geo.Zone, error)

	// GetAllAreas retrieves every configured area.
	GetAllAreas(ctx context.Context) ([]*geo.Area, error)
}

// CatalogRepository reads the configured catalog: categories, vendors, and
// products. Like GeoRepository it only feeds snapshot rebuilds.
type CatalogRepository interface {
	// GetAllCategories retrieves every category.
	GetAllCategories(ctx context.Context) ([]*catalog.Category, error)

	// GetAllVendors retrieves every vendor, active or not.
	GetAllVendors(ctx context.Context) ([]*catalog.Vendor, error)

	// GetAllProducts retrieves every product.
	GetAllProducts(ctx context.Context) ([]*catalog.Product, error)
}
