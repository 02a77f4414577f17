package queries

import (
	"context"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuoteQueryHandler reads quote documents straight from the database,
// bypassing the aggregate. The read model mirrors what the storefront shows:
// header, sub-orders in presentation order, lines, unresolved items.
type GetQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetQuoteQueryHandler creates a handler for quote document queries.
func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db}
}

// Handle retrieves the quote document for the query's identifier.
// Returns an errs.ObjectNotFoundError when no such quote exists.
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.QuoteID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	response.SubOrders, err = h.readSubOrders(ctx, query.QuoteID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	response.UnresolvedProductIDs, err = h.readUnresolved(ctx, query.QuoteID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return response, nil
}

func (h GetQuoteQueryHandler) readHeader(ctx context.Context, quoteID kernel.UUID) (GetQuoteQueryResponse, error) {
	var response GetQuoteQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			zone_id,
			status,
			grand_total,
			eta_minutes,
			created_at
		FROM order_quotes
		WHERE id = ?
	`, quoteID.Bytes()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return response, err
		}
		return response, errs.NewObjectNotFoundError("quote", quoteID)
	}

	var id, orderID, zoneID uuid.UUID
	var status int
	err = rows.Scan(&id, &orderID, &zoneID, &status, &response.GrandTotal,
		&response.ETAMinutes, &response.CreatedAt)
	if err != nil {
		return response, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return response, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return response, err
	}
	if response.ZoneID, err = kernel.UUIDFromBytes(zoneID[:]); err != nil {
		return response, err
	}
	response.Status = quote.Status(status).String()

	return response, rows.Err()
}

func (h GetQuoteQueryHandler) readSubOrders(ctx context.Context, quoteID kernel.UUID) ([]QuoteSubOrderResponse, error) {
	// Dark-store sub-orders lead, vendors follow ascending by source,
	// matching the aggregate's canonical presentation order.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			source_id,
			source_kind,
			subtotal,
			delivery_fee,
			eta_minutes
		FROM quote_suborders
		WHERE quote_id = ?
		ORDER BY source_kind = ? DESC, source_id
	`, quoteID.Bytes(), int(inventory.SourceKindDarkStore)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subOrders := make([]QuoteSubOrderResponse, 0)
	for rows.Next() {
		var subOrder QuoteSubOrderResponse
		var sourceID uuid.UUID
		var sourceKind int

		err = rows.Scan(&sourceID, &sourceKind, &subOrder.Subtotal,
			&subOrder.DeliveryFee, &subOrder.ETAMinutes)
		if err != nil {
			return nil, err
		}

		if subOrder.SourceID, err = kernel.UUIDFromBytes(sourceID[:]); err != nil {
			return nil, err
		}
		subOrder.SourceKind = inventory.SourceKind(sourceKind).String()

		subOrder.Lines, err = h.readLines(ctx, quoteID, subOrder.SourceID)
		if err != nil {
			return nil, err
		}

		subOrders = append(subOrders, subOrder)
	}

	return subOrders, rows.Err()
}

func (h GetQuoteQueryHandler) readLines(
	ctx context.Context, quoteID kernel.UUID, sourceID kernel.UUID,
) ([]QuoteLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM quote_lines
		WHERE quote_id = ? AND source_id = ?
		ORDER BY product_id
	`, quoteID.Bytes(), sourceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]QuoteLineResponse, 0)
	for rows.Next() {
		var line QuoteLineResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetQuoteQueryHandler) readUnresolved(ctx context.Context, quoteID kernel.UUID) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id
		FROM quote_unresolved_items
		WHERE quote_id = ?
		ORDER BY product_id
	`, quoteID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unresolved := make([]kernel.UUID, 0)
	for rows.Next() {
		var productID uuid.UUID
		if err = rows.Scan(&productID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		unresolved = append(unresolved, id)
	}

	return unresolved, rows.Err()
}
