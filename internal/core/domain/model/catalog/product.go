package catalog

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrProductNameIsRequired is returned when attempting to create a product without a name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product binds a sellable item to its subcategory. The subcategory drives
// both vendor lookup (through the category tree) and allocation strategy
// selection. Prices live on inventory records, not here: the same product can
// cost differently per source and zone.
type Product struct {
	id         kernel.UUID
	name       string
	categoryID kernel.UUID

	isConstructed bool
}

// NewProduct creates a new Product in the given subcategory.
func NewProduct(id kernel.UUID, name string, categoryID kernel.UUID) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// CategoryID returns the product's subcategory.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}
