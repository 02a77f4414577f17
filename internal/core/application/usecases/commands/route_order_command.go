package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/pkg/guard"
)

var (
	ErrRouteOrderCommandIsNotConstructed = errors.New(
		"RouteOrderCommand must be created via NewRouteOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// RouteOrderCommand represents a customer order request to be quoted: the
// delivery coordinate and the requested items. Routing resolves the
// coordinate, reserves stock per item, and persists the resulting quote.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(25.5138, 90.2065)
//	item, _ := quote.NewItem(productID, 2)
//	cmd, err := NewRouteOrderCommand(orderID, point, []quote.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type RouteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	point   kernel.GeoPoint
	items   []quote.Item

	guard guard.ConstructorGuard
}

// NewRouteOrderCommand creates a command to quote a customer order.
// The order ID identifies the request for later retrieval of the quote;
// the point is the delivery coordinate; at least one item is required.
func NewRouteOrderCommand(
	orderID kernel.UUID,
	point kernel.GeoPoint,
	items []quote.Item,
) (RouteOrderCommand, error) {
	routeCommand := RouteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setOrderID(orderID),
		routeCommand.setPoint(point),
		routeCommand.setItems(items),
	); err != nil {
		return RouteOrderCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RouteOrderCommand) Validate() error {
	return c.guard.Validate(ErrRouteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order request.
func (c RouteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Point returns the delivery coordinate.
func (c RouteOrderCommand) Point() kernel.GeoPoint {
	return c.point
}

// Items returns the requested items.
func (c RouteOrderCommand) Items() []quote.Item {
	return c.items
}

func (c *RouteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RouteOrderCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *RouteOrderCommand) setItems(items []quote.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]quote.Item, len(items))
	copy(c.items, items)
	return nil
}
