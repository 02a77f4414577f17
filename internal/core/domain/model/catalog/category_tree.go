package catalog

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
)

// MaxCategoryDepth bounds ancestor walks through the category tree. The tree
// is validated acyclic at build time, but the walk is still bounded so a
// corrupted store can never send a lookup into an unbounded loop.
const MaxCategoryDepth = 32

// ErrCategoryCycleDetected is returned when the category graph contains a cycle.
// Cyclic category data is a configuration error rejected at write time; it is
// never committed and never reaches lookups.
var ErrCategoryCycleDetected = errors.New("category graph contains a cycle")

// Tree is an immutable index over the category graph with parent pointers.
// It is built once per configuration snapshot and validated acyclic at that
// point, so read paths (ancestor walks during vendor lookup fallback) can
// traverse iteratively without re-checking for cycles.
type Tree struct {
	categoriesByID map[kernel.UUID]*Category
}

// NewTree builds a validated category tree from the given categories.
// Returns ErrCategoryCycleDetected (wrapped with the offending category ID)
// if any chain of parent pointers loops back on itself. A parent reference to
// an unknown category is tolerated: the walk simply stops there, matching how
// lookups treat the top of the tree.
func NewTree(categories []*Category) (*Tree, error) {
	tree := &Tree{
		categoriesByID: make(map[kernel.UUID]*Category, len(categories)),
	}

	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return nil, err
		}
		tree.categoriesByID[category.ID()] = category
	}

	// Iterative cycle check per node, bounded by the number of categories.
	for id := range tree.categoriesByID {
		seen := map[kernel.UUID]bool{id: true}
		current := tree.categoriesByID[id]
		for current.ParentID() != nil {
			parentID := *current.ParentID()
			if seen[parentID] {
				return nil, fmt.Errorf("%w: category %s", ErrCategoryCycleDetected, id)
			}
			parent, ok := tree.categoriesByID[parentID]
			if !ok {
				break
			}
			seen[parentID] = true
			current = parent
		}
	}

	return tree, nil
}

// Category returns the category with the given ID, if present.
func (t *Tree) Category(id kernel.UUID) (*Category, bool) {
	category, ok := t.categoriesByID[id]
	return category, ok
}

// Ancestry returns the category ID followed by its ancestors, leaf first.
// The walk is iterative and bounded by MaxCategoryDepth; unknown IDs yield a
// single-element chain so callers can treat them uniformly.
func (t *Tree) Ancestry(id kernel.UUID) []kernel.UUID {
	chain := []kernel.UUID{id}

	current, ok := t.categoriesByID[id]
	if !ok {
		return chain
	}

	for range MaxCategoryDepth {
		if current.ParentID() == nil {
			break
		}
		parentID := *current.ParentID()
		parent, ok := t.categoriesByID[parentID]
		if !ok {
			break
		}
		chain = append(chain, parentID)
		current = parent
	}

	return chain
}

// Len returns the number of categories in the tree.
func (t *Tree) Len() int {
	return len(t.categoriesByID)
}
