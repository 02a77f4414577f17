// Package configrepo reads the administratively maintained platform
// configuration: the geographic hierarchy and the catalog. Both feed
// snapshot rebuilds only, so the package exposes read-all methods and
// nothing else.
package configrepo

import (
	"encoding/json"
	"fmt"

	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RegionDTO represents the region database entity.
type RegionDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Status int
}

// TableName specifies the database table name for regions.
func (RegionDTO) TableName() string {
	return "regions"
}

// ZoneDTO represents the zone database entity. The boundary ring is stored
// as a JSON array of [lat, lng] vertex objects.
type ZoneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegionID        uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Boundary        string `gorm:"type:jsonb"`
	Status          int
	OpenTime        string
	CloseTime       string
	BaseDeliveryFee float64
	DarkStoreID     *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for zones.
func (ZoneDTO) TableName() string {
	return "zones"
}

// AreaDTO represents the area database entity.
type AreaDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Boundary    string `gorm:"type:jsonb"`
	PostalCodes string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for areas.
func (AreaDTO) TableName() string {
	return "areas"
}

// CategoryDTO represents the category database entity.
type CategoryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// VendorDTO represents the vendor database entity.
type VendorDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Type           int
	Active         bool
	AvgPrepMinutes int
}

// TableName specifies the database table name for vendors.
func (VendorDTO) TableName() string {
	return "vendors"
}

// ProductDTO represents the product database entity.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// vertexJSON is the stored form of one boundary vertex.
type vertexJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func encodeBoundary(boundary geo.Polygon) (string, error) {
	vertices := boundary.Vertices()
	encoded := make([]vertexJSON, 0, len(vertices))
	for _, v := range vertices {
		encoded = append(encoded, vertexJSON{Lat: v.Latitude(), Lng: v.Longitude()})
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to encode boundary: %w", err)
	}
	return string(raw), nil
}

func decodeBoundary(raw string) (geo.Polygon, error) {
	var encoded []vertexJSON
	if err := json.Unmarshal([]byte(raw), &encoded); err != nil {
		return geo.Polygon{}, fmt.Errorf("failed to decode boundary: %w", err)
	}

	vertices := make([]kernel.GeoPoint, 0, len(encoded))
	for i, v := range encoded {
		point, err := kernel.NewGeoPoint(v.Lat, v.Lng)
		if err != nil {
			return geo.Polygon{}, fmt.Errorf("boundary vertex %d: %w", i, err)
		}
		vertices = append(vertices, point)
	}
	return geo.NewPolygon(vertices)
}

func encodePostalCodes(codes []string) (string, error) {
	raw, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("failed to encode postal codes: %w", err)
	}
	return string(raw), nil
}

func decodePostalCodes(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil, fmt.Errorf("failed to decode postal codes: %w", err)
	}
	return codes, nil
}

func regionToDomain(dto RegionDTO) (*geo.Region, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return geo.NewRegion(id, dto.Name, geo.Status(dto.Status))
}

func zoneToDomain(dto ZoneDTO) (*geo.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	regionID, err := kernel.UUIDFromBytes(dto.RegionID[:])
	if err != nil {
		return nil, err
	}

	boundary, err := decodeBoundary(dto.Boundary)
	if err != nil {
		return nil, err
	}

	hours := geo.AlwaysOpen()
	if dto.OpenTime != "" || dto.CloseTime != "" {
		hours, err = geo.NewServiceHours(dto.OpenTime, dto.CloseTime)
		if err != nil {
			return nil, err
		}
	}

	var darkStoreID *kernel.UUID
	if dto.DarkStoreID != nil {
		parsed, idErr := kernel.UUIDFromBytes(dto.DarkStoreID[:])
		if idErr != nil {
			return nil, idErr
		}
		darkStoreID = &parsed
	}

	return geo.NewZone(
		id, regionID, dto.Name, boundary, geo.Status(dto.Status),
		hours, dto.BaseDeliveryFee, darkStoreID)
}

func areaToDomain(dto AreaDTO) (*geo.Area, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	boundary, err := decodeBoundary(dto.Boundary)
	if err != nil {
		return nil, err
	}
	postalCodes, err := decodePostalCodes(dto.PostalCodes)
	if err != nil {
		return nil, err
	}

	return geo.NewArea(id, zoneID, dto.Name, boundary, postalCodes)
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		parsed, idErr := kernel.UUIDFromBytes(dto.ParentID[:])
		if idErr != nil {
			return nil, idErr
		}
		parentID = &parsed
	}

	return catalog.NewCategory(id, dto.Name, parentID)
}

func vendorToDomain(dto VendorDTO) (*catalog.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewVendor(
		id, dto.Name, catalog.VendorType(dto.Type), dto.Active, dto.AvgPrepMinutes)
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, dto.Name, categoryID)
}
