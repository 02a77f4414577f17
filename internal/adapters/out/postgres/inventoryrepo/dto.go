// Package inventoryrepo persists stock records and implements the atomic
// reserve/release counter updates the routing hot path depends on.
package inventoryrepo

import (
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for stock records. The
// (source, product, zone) triple is the natural key; stock_quantity is only
// ever changed through conditional in-place updates, never read-modify-write.
type RecordDTO struct {
	SourceID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockQuantity int
	UnitCost      float64
	UnitPrice     float64
	Available     bool
}

// TableName specifies the database table name for stock records.
func (RecordDTO) TableName() string {
	return "inventory_records"
}

func fromDomain(record *inventory.Record) RecordDTO {
	return RecordDTO{
		SourceID:      record.SourceID().Bytes(),
		ProductID:     record.ProductID().Bytes(),
		ZoneID:        record.ZoneID().Bytes(),
		StockQuantity: record.StockQuantity(),
		UnitCost:      record.UnitCost(),
		UnitPrice:     record.UnitPrice(),
		Available:     record.IsAvailable(),
	}
}

func toDomain(dto RecordDTO) (*inventory.Record, error) {
	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	return inventory.NewRecord(
		sourceID, productID, zoneID,
		dto.StockQuantity, dto.UnitCost, dto.UnitPrice, dto.Available)
}
