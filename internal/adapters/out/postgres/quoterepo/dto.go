// Package quoterepo persists order quote aggregates across three tables:
// the quote header, its per-source sub-orders, and their priced lines.
// Unresolved items live in a fourth table keyed by quote.
package quoterepo

import (
	"time"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the quote header row. Derived values (grand total,
// overall ETA) are stored as computed so reads never reprice.
type QuoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ZoneID     uuid.UUID `gorm:"type:uuid"`
	GrandTotal float64
	ETAMinutes int
	Status     int       `gorm:"index:idx_quote_status_created"`
	CreatedAt  time.Time `gorm:"index:idx_quote_status_created"`
}

// TableName specifies the database table name for quote headers.
func (QuoteDTO) TableName() string {
	return "order_quotes"
}

// SubOrderDTO represents one per-source sub-order of a quote.
type SubOrderDTO struct {
	QuoteID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceKind  int
	Subtotal    float64
	DeliveryFee float64
	ETAMinutes  int
}

// TableName specifies the database table name for sub-orders.
func (SubOrderDTO) TableName() string {
	return "quote_suborders"
}

// LineDTO represents one priced line within a sub-order.
type LineDTO struct {
	QuoteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for sub-order lines.
func (LineDTO) TableName() string {
	return "quote_lines"
}

// UnresolvedItemDTO represents a requested product no source could supply.
type UnresolvedItemDTO struct {
	QuoteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for unresolved items.
func (UnresolvedItemDTO) TableName() string {
	return "quote_unresolved_items"
}

// quoteRows is the fully exploded database representation of one aggregate.
type quoteRows struct {
	header     QuoteDTO
	subOrders  []SubOrderDTO
	lines      []LineDTO
	unresolved []UnresolvedItemDTO
}

func fromDomain(aggregate *quote.OrderQuote) quoteRows {
	rows := quoteRows{
		header: QuoteDTO{
			ID:         aggregate.ID().Bytes(),
			OrderID:    aggregate.OrderID().Bytes(),
			ZoneID:     aggregate.ZoneID().Bytes(),
			GrandTotal: aggregate.GrandTotal(),
			ETAMinutes: aggregate.ETAMinutes(),
			Status:     int(aggregate.Status()),
			CreatedAt:  aggregate.CreatedAt(),
		},
	}

	for _, subOrder := range aggregate.SubOrders() {
		rows.subOrders = append(rows.subOrders, SubOrderDTO{
			QuoteID:     aggregate.ID().Bytes(),
			SourceID:    subOrder.SourceID().Bytes(),
			SourceKind:  int(subOrder.SourceKind()),
			Subtotal:    subOrder.Subtotal(),
			DeliveryFee: subOrder.DeliveryFee(),
			ETAMinutes:  subOrder.ETAMinutes(),
		})
		for _, line := range subOrder.Lines() {
			rows.lines = append(rows.lines, LineDTO{
				QuoteID:   aggregate.ID().Bytes(),
				SourceID:  subOrder.SourceID().Bytes(),
				ProductID: line.ProductID.Bytes(),
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
	}

	for _, productID := range aggregate.UnresolvedProductIDs() {
		rows.unresolved = append(rows.unresolved, UnresolvedItemDTO{
			QuoteID:   aggregate.ID().Bytes(),
			ProductID: productID.Bytes(),
		})
	}

	return rows
}

func toDomain(rows quoteRows) (*quote.OrderQuote, error) {
	id, err := kernel.UUIDFromBytes(rows.header.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(rows.header.OrderID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(rows.header.ZoneID[:])
	if err != nil {
		return nil, err
	}

	linesBySource := make(map[uuid.UUID][]quote.Line)
	for _, lineDTO := range rows.lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		linesBySource[lineDTO.SourceID] = append(linesBySource[lineDTO.SourceID], quote.Line{
			ProductID: productID,
			Quantity:  lineDTO.Quantity,
			UnitPrice: lineDTO.UnitPrice,
		})
	}

	subOrders := make([]*quote.SubOrder, 0, len(rows.subOrders))
	for _, subDTO := range rows.subOrders {
		sourceID, subErr := kernel.UUIDFromBytes(subDTO.SourceID[:])
		if subErr != nil {
			return nil, subErr
		}
		subOrder, subErr := quote.NewSubOrder(
			sourceID, inventory.SourceKind(subDTO.SourceKind),
			linesBySource[subDTO.SourceID], subDTO.DeliveryFee, subDTO.ETAMinutes)
		if subErr != nil {
			return nil, subErr
		}
		subOrders = append(subOrders, subOrder)
	}

	unresolved := make([]kernel.UUID, 0, len(rows.unresolved))
	for _, itemDTO := range rows.unresolved {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unresolved = append(unresolved, productID)
	}

	return quote.RestoreOrderQuote(
		id, orderID, zoneID, subOrders, unresolved,
		rows.header.GrandTotal, rows.header.ETAMinutes,
		quote.Status(rows.header.Status), rows.header.CreatedAt)
}
