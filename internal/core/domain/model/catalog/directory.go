package catalog

import (
	"grocery/internal/core/domain/model/kernel"
)

// Directory is an immutable catalog snapshot: the validated category tree plus
// vendor and product indexes. Like geo.Snapshot it is rebuilt from storage and
// swapped atomically, never mutated in place.
type Directory struct {
	tree         *Tree
	vendorsByID  map[kernel.UUID]*Vendor
	productsByID map[kernel.UUID]*Product
}

// NewDirectory builds a catalog snapshot. The category graph is validated
// acyclic here, at build time, so every later lookup can walk it blindly.
func NewDirectory(categories []*Category, vendors []*Vendor, products []*Product) (*Directory, error) {
	tree, err := NewTree(categories)
	if err != nil {
		return nil, err
	}

	directory := &Directory{
		tree:         tree,
		vendorsByID:  make(map[kernel.UUID]*Vendor, len(vendors)),
		productsByID: make(map[kernel.UUID]*Product, len(products)),
	}

	for _, vendor := range vendors {
		if err := vendor.Validate(); err != nil {
			return nil, err
		}
		directory.vendorsByID[vendor.ID()] = vendor
	}

	for _, product := range products {
		if err := product.Validate(); err != nil {
			return nil, err
		}
		directory.productsByID[product.ID()] = product
	}

	return directory, nil
}

// Tree returns the validated category tree.
func (d *Directory) Tree() *Tree {
	return d.tree
}

// Vendor returns the vendor with the given ID, if present.
func (d *Directory) Vendor(id kernel.UUID) (*Vendor, bool) {
	vendor, ok := d.vendorsByID[id]
	return vendor, ok
}

// Product returns the product with the given ID, if present.
func (d *Directory) Product(id kernel.UUID) (*Product, bool) {
	product, ok := d.productsByID[id]
	return product, ok
}
