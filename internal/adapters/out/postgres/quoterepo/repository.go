package quoterepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.QuoteRepository = (*GormQuoteRepository)(nil)

// GormQuoteRepository implements ports.QuoteRepository using GORM.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GORM-based quote repository.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Add persists a new quote aggregate across its header, sub-order, line
// and unresolved-item tables.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.OrderQuote) error {
	rows := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&rows.header).Error; err != nil {
		return fmt.Errorf("failed to add quote: %w", err)
	}
	if len(rows.subOrders) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows.subOrders).Error; err != nil {
			return fmt.Errorf("failed to add quote sub-orders: %w", err)
		}
	}
	if len(rows.lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows.lines).Error; err != nil {
			return fmt.Errorf("failed to add quote lines: %w", err)
		}
	}
	if len(rows.unresolved) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows.unresolved).Error; err != nil {
			return fmt.Errorf("failed to add quote unresolved items: %w", err)
		}
	}
	return nil
}

// Update persists the quote header. Sub-orders, lines and unresolved items
// are immutable after Add; only the status ever changes.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.OrderQuote) error {
	result := r.db.WithContext(ctx).
		Model(&QuoteDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		UpdateColumn("status", int(aggregate.Status()))
	if result.Error != nil {
		return fmt.Errorf("failed to update quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("quote", aggregate.ID())
	}
	return nil
}

// Get retrieves a quote aggregate by its identifier.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.OrderQuote, error) {
	var header QuoteDTO
	err := r.db.WithContext(ctx).First(&header, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id)
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	rows, err := r.loadChildren(ctx, header)
	if err != nil {
		return nil, err
	}
	return toDomain(rows)
}

// GetPendingOlderThan retrieves pending quotes created before the cutoff.
func (r *GormQuoteRepository) GetPendingOlderThan(
	ctx context.Context, cutoff time.Time,
) ([]*quote.OrderQuote, error) {
	var headers []QuoteDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", int(quote.StatusPending), cutoff).
		Order("created_at ASC").
		Find(&headers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending quotes: %w", err)
	}

	aggregates := make([]*quote.OrderQuote, 0, len(headers))
	for _, header := range headers {
		rows, loadErr := r.loadChildren(ctx, header)
		if loadErr != nil {
			return nil, loadErr
		}
		aggregate, domainErr := toDomain(rows)
		if domainErr != nil {
			return nil, domainErr
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}

func (r *GormQuoteRepository) loadChildren(ctx context.Context, header QuoteDTO) (quoteRows, error) {
	rows := quoteRows{header: header}

	// Restore in the canonical sub-order order: dark store first, then
	// vendors ascending by source id.
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", header.ID).
		Order(fmt.Sprintf("source_kind = %d DESC, source_id ASC", int(inventory.SourceKindDarkStore))).
		Find(&rows.subOrders).Error
	if err != nil {
		return quoteRows{}, fmt.Errorf("failed to get quote sub-orders: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("quote_id = ?", header.ID).
		Find(&rows.lines).Error
	if err != nil {
		return quoteRows{}, fmt.Errorf("failed to get quote lines: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("quote_id = ?", header.ID).
		Find(&rows.unresolved).Error
	if err != nil {
		return quoteRows{}, fmt.Errorf("failed to get quote unresolved items: %w", err)
	}

	return rows, nil
}
