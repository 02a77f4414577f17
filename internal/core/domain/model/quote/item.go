package quote

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is one requested line of a customer order as received from the cart
// collaborator: a product and the full quantity wanted. Quantity is all or
// nothing; a source is only chosen if it can supply the whole amount.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order item. Quantity must be positive.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setProductID(productID), item.setQuantity(quantity)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed using the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the requested product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the full requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
