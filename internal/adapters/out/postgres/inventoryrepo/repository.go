package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
//
// Reserve and Release never read the counter into memory: both are single
// conditional UPDATE statements, so concurrent reservations against the same
// record serialize at the row level and stock cannot go negative.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add saves a new stock record to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves the record for the (source, product, zone) key.
func (r *GormInventoryRepository) Get(
	ctx context.Context,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
) (*inventory.Record, error) {
	var dto RecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "source_id = ? AND product_id = ? AND zone_id = ?",
			sourceID.Bytes(), productID.Bytes(), zoneID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory record", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically decrements stock by quantity when the full quantity is
// on hand and the record is available.
//
// The guard lives in the WHERE clause: a concurrent reservation that drains
// the stock first makes this statement match zero rows, which is reported as
// insufficient stock rather than ever writing a negative quantity. Storage
// failures are wrapped as inventory.ErrSourceUnavailable so the selector can
// retry the source.
func (r *GormInventoryRepository) Reserve(
	ctx context.Context,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
) (*inventory.Record, error) {
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("source_id = ? AND product_id = ? AND zone_id = ? AND available AND stock_quantity >= ?",
			sourceID.Bytes(), productID.Bytes(), zoneID.Bytes(), quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %w", inventory.ErrSourceUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: product %s at source %s",
			inventory.ErrInsufficientStock, productID, sourceID)
	}

	return r.Get(ctx, sourceID, productID, zoneID)
}

// Release atomically increments stock by quantity. Used for restocks and for
// returning reservations held by abandoned quotes.
func (r *GormInventoryRepository) Release(
	ctx context.Context,
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	quantity int,
) error {
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("source_id = ? AND product_id = ? AND zone_id = ?",
			sourceID.Bytes(), productID.Bytes(), zoneID.Bytes()).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory record", productID.String())
	}

	return nil
}
