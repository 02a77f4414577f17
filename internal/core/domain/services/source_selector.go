package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/pkg/errs"
)

// sourceRetryBackoff is how long the selector waits before the single retry
// of a reservation against an unavailable source.
const sourceRetryBackoff = 100 * time.Millisecond

// StockReserver is the selector's view of inventory storage: an atomic
// conditional decrement keyed by (source, product, zone). The decrement either
// reserves the full quantity and returns the record, or fails with
// inventory.ErrInsufficientStock leaving the stock untouched. Implementations
// signal an unreachable source with inventory.ErrSourceUnavailable.
type StockReserver interface {
	Reserve(
		ctx context.Context,
		sourceID kernel.UUID,
		productID kernel.UUID,
		zoneID kernel.UUID,
		quantity int,
	) (*inventory.Record, error)
}

// SourceSelector is a domain service deciding which inventory source fulfils
// one order line, honoring the zone's allocation rule.
//
// Selection and reservation are one unit: a source is only "chosen" if its
// stock was successfully decremented for the full quantity, so two concurrent
// orders can never both be promised the last unit. When the preferred source
// cannot supply and the rule allows fallback, the other source is tried; when
// a source is unreachable the reservation is retried once with backoff and
// the source is then treated as out of stock.
type SourceSelector struct {
	stock   StockReserver
	logger  *slog.Logger
	backoff time.Duration
}

// NewSourceSelector creates a new SourceSelector.
func NewSourceSelector(stock StockReserver, logger *slog.Logger) (*SourceSelector, error) {
	if stock == nil {
		return nil, errs.NewValueIsRequiredError("stock")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SourceSelector{
		stock:   stock,
		logger:  logger.With("component", "source_selector"),
		backoff: sourceRetryBackoff,
	}, nil
}

// sourceCandidate is one entry of the ordered attempt list built from the
// allocation rule.
type sourceCandidate struct {
	kind     inventory.SourceKind
	sourceID kernel.UUID
}

// Select reserves stock for the item at the first source able to supply the
// full quantity and returns the resulting fulfilment decision.
//
// Parameters:
//   - ctx: Context for the storage round trips
//   - zone: The zone being ordered in (supplies the dark store, if any)
//   - directory: Catalog snapshot used to resolve vendor prep times
//   - rule: The allocation rule for the item's subcategory
//   - vendorID: The assigned vendor for the item's category, or nil when unassigned
//   - item: The requested product and full quantity
//
// Returns:
//   - inventory.SourceChoice: The chosen source with price and prep estimate
//   - error: inventory.ErrInsufficientStock when no candidate can supply the
//     full quantity, or a validation/storage error
func (s *SourceSelector) Select(
	ctx context.Context,
	zone *geo.Zone,
	directory *catalog.Directory,
	rule *assignment.AllocationRule,
	vendorID *kernel.UUID,
	item quote.Item,
) (inventory.SourceChoice, error) {
	if err := errors.Join(zone.Validate(), rule.Validate(), item.Validate()); err != nil {
		return inventory.SourceChoice{}, err
	}

	candidates, err := s.candidates(zone, rule, vendorID)
	if err != nil {
		return inventory.SourceChoice{}, err
	}

	for _, candidate := range candidates {
		choice, err := s.try(ctx, candidate, directory, zone.ID(), item)
		if err == nil {
			return choice, nil
		}
		if errors.Is(err, inventory.ErrInsufficientStock) {
			continue
		}
		return inventory.SourceChoice{}, err
	}

	return inventory.SourceChoice{}, fmt.Errorf(
		"%w: product %s in zone %s", inventory.ErrInsufficientStock, item.ProductID(), zone.ID())
}

// candidates builds the ordered attempt list from the allocation rule.
// Sources the zone simply does not have (no dark store, no assigned vendor)
// are left out rather than failed on.
func (s *SourceSelector) candidates(
	zone *geo.Zone,
	rule *assignment.AllocationRule,
	vendorID *kernel.UUID,
) ([]sourceCandidate, error) {
	var darkStore, vendor []sourceCandidate
	if zone.DarkStoreID() != nil {
		darkStore = []sourceCandidate{{kind: inventory.SourceKindDarkStore, sourceID: *zone.DarkStoreID()}}
	}
	if vendorID != nil {
		vendor = []sourceCandidate{{kind: inventory.SourceKindVendor, sourceID: *vendorID}}
	}

	switch rule.Strategy() {
	case assignment.StrategyDarkStoreFirst:
		if !rule.HasFallback() {
			return darkStore, nil
		}
		return append(darkStore, vendor...), nil
	case assignment.StrategyVendorFirst:
		if !rule.HasFallback() {
			return vendor, nil
		}
		return append(vendor, darkStore...), nil
	default:
		return nil, rule.Strategy().Validate()
	}
}

// try reserves the item's quantity at the candidate and builds the choice.
func (s *SourceSelector) try(
	ctx context.Context,
	candidate sourceCandidate,
	directory *catalog.Directory,
	zoneID kernel.UUID,
	item quote.Item,
) (inventory.SourceChoice, error) {
	var prepMinutes int
	if candidate.kind == inventory.SourceKindVendor {
		vendor, ok := directory.Vendor(candidate.sourceID)
		if !ok || !vendor.IsActive() {
			s.logger.Warn("assigned vendor is unknown or inactive, skipping",
				"vendor_id", candidate.sourceID.String(),
				"zone_id", zoneID.String())
			return inventory.SourceChoice{}, inventory.ErrInsufficientStock
		}
		prepMinutes = vendor.AvgPrepMinutes()
	}

	record, err := s.reserveWithRetry(ctx, candidate, zoneID, item)
	if err != nil {
		return inventory.SourceChoice{}, err
	}

	if candidate.kind == inventory.SourceKindDarkStore {
		return inventory.NewDarkStoreChoice(candidate.sourceID, record.UnitPrice())
	}
	return inventory.NewVendorChoice(candidate.sourceID, record.UnitPrice(), prepMinutes)
}

// reserveWithRetry performs the conditional decrement, retrying exactly once
// when the source is unreachable. A source still unreachable after the retry
// is treated as out of stock so the fallback chain can proceed; the condition
// is logged at error level to stay distinguishable from genuine stock-outs.
func (s *SourceSelector) reserveWithRetry(
	ctx context.Context,
	candidate sourceCandidate,
	zoneID kernel.UUID,
	item quote.Item,
) (*inventory.Record, error) {
	record, err := s.stock.Reserve(ctx, candidate.sourceID, item.ProductID(), zoneID, item.Quantity())
	if !errors.Is(err, inventory.ErrSourceUnavailable) {
		return record, err
	}

	s.logger.Warn("inventory source unavailable, retrying",
		"source_id", candidate.sourceID.String(),
		"source_kind", candidate.kind.String(),
		"product_id", item.ProductID().String())

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.backoff):
	}

	record, err = s.stock.Reserve(ctx, candidate.sourceID, item.ProductID(), zoneID, item.Quantity())
	if errors.Is(err, inventory.ErrSourceUnavailable) {
		s.logger.Error("inventory source unavailable after retry, treating as out of stock",
			"source_id", candidate.sourceID.String(),
			"source_kind", candidate.kind.String(),
			"product_id", item.ProductID().String())
		return nil, fmt.Errorf("%w: source %s unavailable",
			inventory.ErrInsufficientStock, candidate.sourceID)
	}
	return record, err
}
