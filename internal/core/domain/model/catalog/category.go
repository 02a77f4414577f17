package catalog

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
	// ErrCategoryNameIsRequired is returned when attempting to create a category without a name.
	ErrCategoryNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsOwnParent is returned when a category references itself as parent.
	ErrCategoryIsOwnParent = errors.New("category cannot be its own parent")
)

// Category is a node in the product category tree. Depth is unconstrained but
// the graph must stay acyclic; cycle detection happens when the tree is built
// (write time), never during lookup. Vendor assignment may attach at any level
// of the tree, and lookups fall back from leaf categories to their ancestors.
type Category struct {
	id       kernel.UUID
	name     string
	parentID *kernel.UUID

	isConstructed bool
}

// NewCategory creates a new Category. The parent is optional: root categories
// pass nil. A category referencing itself as parent is rejected immediately;
// longer cycles are caught by NewTree.
func NewCategory(id kernel.UUID, name string, parentID *kernel.UUID) (*Category, error) {
	category := &Category{
		isConstructed: true,
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
		category.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate ensures the Category instance was properly constructed through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category's display name.
func (c *Category) Name() string {
	return c.name
}

// ParentID returns the parent category's identifier, or nil for root categories.
func (c *Category) ParentID() *kernel.UUID {
	return c.parentID
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.parentID == nil
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return ErrCategoryNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Category) setParentID(parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(c.id) {
		return ErrCategoryIsOwnParent
	}
	id := *parentID
	c.parentID = &id
	return nil
}
