package configrepo

import (
	"context"
	"fmt"

	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.GeoRepository     = (*GormGeoRepository)(nil)
	_ ports.CatalogRepository = (*GormCatalogRepository)(nil)
)

// GormGeoRepository implements ports.GeoRepository using GORM.
type GormGeoRepository struct {
	db *gorm.DB
}

// NewGormGeoRepository creates a new GORM-based geography repository.
func NewGormGeoRepository(db *gorm.DB) *GormGeoRepository {
	return &GormGeoRepository{db: db}
}

// GetAllRegions retrieves every configured region.
func (r *GormGeoRepository) GetAllRegions(ctx context.Context) ([]*geo.Region, error) {
	var dtos []RegionDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get regions: %w", err)
	}

	regions := make([]*geo.Region, 0, len(dtos))
	for _, dto := range dtos {
		region, err := regionToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", dto.ID, err)
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// GetAllZones retrieves every configured zone.
func (r *GormGeoRepository) GetAllZones(ctx context.Context) ([]*geo.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	zones := make([]*geo.Zone, 0, len(dtos))
	for _, dto := range dtos {
		zone, err := zoneToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", dto.ID, err)
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

// GetAllAreas retrieves every configured area.
func (r *GormGeoRepository) GetAllAreas(ctx context.Context) ([]*geo.Area, error) {
	var dtos []AreaDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get areas: %w", err)
	}

	areas := make([]*geo.Area, 0, len(dtos))
	for _, dto := range dtos {
		area, err := areaToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("area %s: %w", dto.ID, err)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM-based catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetAllCategories retrieves every category.
func (r *GormCatalogRepository) GetAllCategories(ctx context.Context) ([]*catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		category, err := categoryToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", dto.ID, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// GetAllVendors retrieves every vendor, active or not.
func (r *GormCatalogRepository) GetAllVendors(ctx context.Context) ([]*catalog.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", err)
	}

	vendors := make([]*catalog.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		vendor, err := vendorToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("vendor %s: %w", dto.ID, err)
		}
		vendors = append(vendors, vendor)
	}
	return vendors, nil
}

// GetAllProducts retrieves every product.
func (r *GormCatalogRepository) GetAllProducts(ctx context.Context) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, err := productToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", dto.ID, err)
		}
		products = append(products, product)
	}
	return products, nil
}
