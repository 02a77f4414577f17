package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/pkg/errs"
)

// darkStoreDeliveryFee is the flat fee charged for dark-store sub-orders when
// no weather override is active. Dark stores run on company logistics, so the
// fee is an operating constant rather than zone configuration.
const darkStoreDeliveryFee = 10.0

var (
	// ErrServiceSuspended is the sentinel wrapped by ServiceSuspendedError.
	ErrServiceSuspended = errors.New("service is suspended")

	// ErrZoneIsClosed is returned when an order arrives outside the zone's
	// service hours.
	ErrZoneIsClosed = errors.New("zone is outside service hours")
)

// ServiceSuspendedError reports that ordering in a zone is suspended by an
// active weather rule, carrying the resumption estimate when one is known.
type ServiceSuspendedError struct {
	ZoneID         kernel.UUID
	ResumeEstimate *time.Time
}

// NewServiceSuspendedError creates a new ServiceSuspendedError.
func NewServiceSuspendedError(zoneID kernel.UUID, resumeEstimate *time.Time) *ServiceSuspendedError {
	return &ServiceSuspendedError{ZoneID: zoneID, ResumeEstimate: resumeEstimate}
}

// Error implements the error interface.
func (e *ServiceSuspendedError) Error() string {
	if e.ResumeEstimate == nil {
		return fmt.Sprintf("%v: zone %s", ErrServiceSuspended, e.ZoneID)
	}
	return fmt.Sprintf("%v: zone %s, estimated resumption %s",
		ErrServiceSuspended, e.ZoneID, e.ResumeEstimate.Format(time.RFC3339))
}

// Unwrap returns the sentinel so callers can match with errors.Is.
func (e *ServiceSuspendedError) Unwrap() error {
	return ErrServiceSuspended
}

// OrderRouter is the domain service turning a customer order request into an
// OrderQuote: one sub-order per fulfilling source, each with its own delivery
// fee and preparation ETA.
//
// Routing rules:
//   - An active weather suspension rejects the whole order before any
//     reservation is made
//   - Each item is reserved at the source the zone's allocation rule selects
//   - Items no source can supply do not fail the order; they are reported as
//     unresolved and the quote is marked partial
//   - A weather delivery fee override replaces every per-source fee; otherwise
//     dark-store sub-orders pay the flat operating fee and vendor sub-orders
//     pay the zone's base fee
//   - Every ETA is scaled by the weather multiplier and rounded up
type OrderRouter struct {
	registry VendorCategoryRegistry
	selector *SourceSelector
	logger   *slog.Logger
}

// NewOrderRouter creates a new OrderRouter.
func NewOrderRouter(
	registry VendorCategoryRegistry,
	selector *SourceSelector,
	logger *slog.Logger,
) (*OrderRouter, error) {
	if selector == nil {
		return nil, errs.NewValueIsRequiredError("selector")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &OrderRouter{
		registry: registry,
		selector: selector,
		logger:   logger.With("component", "order_router"),
	}, nil
}

// routedSource accumulates the lines landing on one source during routing.
type routedSource struct {
	kind        inventory.SourceKind
	lines       []quote.Line
	prepMinutes int
}

// Route reserves stock for every item and assembles the quote.
//
// Parameters:
//   - ctx: Context for the reservation round trips
//   - quoteID: Identity for the new quote
//   - orderID: The order request being quoted
//   - zone: The resolved delivery zone
//   - directory: Catalog snapshot (categories, vendors, products)
//   - assignments: Assignment snapshot (vendor ownership, allocation rules)
//   - weatherRule: The zone's active weather rule, or nil for normal conditions
//   - items: The requested items (at least one)
//   - now: The quoting instant, used for service hours and the quote timestamp
//
// Returns:
//   - *quote.OrderQuote: The assembled quote, possibly partial
//   - error: ServiceSuspendedError under an active suspension, ErrZoneIsClosed
//     outside service hours, or a reservation/storage error. On error the
//     caller must roll back any reservations already made.
func (r *OrderRouter) Route(
	ctx context.Context,
	quoteID kernel.UUID,
	orderID kernel.UUID,
	zone *geo.Zone,
	directory *catalog.Directory,
	assignments *assignment.Snapshot,
	weatherRule *weather.Rule,
	items []quote.Item,
	now time.Time,
) (*quote.OrderQuote, error) {
	if err := zone.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	if weatherRule == nil {
		weatherRule = weather.DefaultRule(zone.ID())
	}
	if weatherRule.IsServiceSuspended() {
		return nil, NewServiceSuspendedError(zone.ID(), weatherRule.ResumeEstimate())
	}
	if !zone.ServiceHours().IsOpenAt(now) {
		return nil, fmt.Errorf("%w: zone %s, hours %s", ErrZoneIsClosed, zone.ID(), zone.ServiceHours())
	}

	sources := make(map[kernel.UUID]*routedSource)
	var unresolved []kernel.UUID

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		choice, err := r.routeItem(ctx, zone, directory, assignments, item)
		if err != nil {
			if errors.Is(err, inventory.ErrInsufficientStock) {
				r.logger.Info("item unresolved, quoting partially",
					"product_id", item.ProductID().String(),
					"zone_id", zone.ID().String())
				unresolved = append(unresolved, item.ProductID())
				continue
			}
			return nil, err
		}

		source, ok := sources[choice.SourceID()]
		if !ok {
			source = &routedSource{kind: choice.Kind(), prepMinutes: choice.PrepMinutes()}
			sources[choice.SourceID()] = source
		}
		source.lines = append(source.lines, quote.Line{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: choice.UnitPrice(),
		})
	}

	subOrders := make([]*quote.SubOrder, 0, len(sources))
	for sourceID, source := range sources {
		subOrder, err := quote.NewSubOrder(
			sourceID,
			source.kind,
			source.lines,
			r.deliveryFee(zone, source.kind, weatherRule),
			scaleETA(source.prepMinutes, weatherRule.ETAMultiplier()),
		)
		if err != nil {
			return nil, err
		}
		subOrders = append(subOrders, subOrder)
	}

	return quote.NewOrderQuote(quoteID, orderID, zone.ID(), subOrders, unresolved, now)
}

// routeItem resolves the assigned vendor (falling back through category
// ancestors) and reserves stock per the allocation rule. Unknown products are
// unresolvable and reported as such, not failed on.
func (r *OrderRouter) routeItem(
	ctx context.Context,
	zone *geo.Zone,
	directory *catalog.Directory,
	assignments *assignment.Snapshot,
	item quote.Item,
) (inventory.SourceChoice, error) {
	product, ok := directory.Product(item.ProductID())
	if !ok {
		r.logger.Warn("unknown product in order",
			"product_id", item.ProductID().String(),
			"zone_id", zone.ID().String())
		return inventory.SourceChoice{}, fmt.Errorf(
			"%w: unknown product %s", inventory.ErrInsufficientStock, item.ProductID())
	}

	var vendorID *kernel.UUID
	owner, err := r.registry.Lookup(assignments, directory.Tree(), zone.ID(), product.CategoryID())
	switch {
	case err == nil:
		vendorID = &owner
	case errors.Is(err, ErrCategoryUnassigned):
		// The dark store may still serve the item; the selector decides.
	default:
		return inventory.SourceChoice{}, err
	}

	rule := assignments.Rule(zone.ID(), product.CategoryID())

	return r.selector.Select(ctx, zone, directory, rule, vendorID, item)
}

// deliveryFee applies the fee policy for one sub-order. A weather override
// takes precedence over everything else.
func (r *OrderRouter) deliveryFee(
	zone *geo.Zone,
	kind inventory.SourceKind,
	weatherRule *weather.Rule,
) float64 {
	if override := weatherRule.DeliveryFeeOverride(); override != nil {
		return *override
	}
	if kind == inventory.SourceKindDarkStore {
		return darkStoreDeliveryFee
	}
	return zone.BaseDeliveryFee()
}

// scaleETA applies the weather multiplier to a preparation estimate,
// rounding up to whole minutes.
func scaleETA(prepMinutes int, multiplier float64) int {
	return int(math.Ceil(float64(prepMinutes) * multiplier))
}
