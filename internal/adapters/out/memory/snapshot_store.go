package memory

import (
	"sync/atomic"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
)

// GeoSnapshotStore serves the geographic hierarchy snapshot from process
// memory. Publish swaps an atomic pointer, so readers in any goroutine see
// either the previous generation whole or the new one whole, without locks.
type GeoSnapshotStore struct {
	current atomic.Pointer[geo.Snapshot]
}

// NewGeoSnapshotStore creates an empty store. The composition root publishes
// the first snapshot before the server starts accepting requests.
func NewGeoSnapshotStore() *GeoSnapshotStore {
	store := &GeoSnapshotStore{}
	empty, _ := geo.NewSnapshot(0, nil, nil, nil)
	store.current.Store(empty)
	return store
}

// Current returns the latest published snapshot.
func (s *GeoSnapshotStore) Current() *geo.Snapshot {
	return s.current.Load()
}

// Publish atomically replaces the snapshot.
func (s *GeoSnapshotStore) Publish(snapshot *geo.Snapshot) {
	if snapshot == nil {
		return
	}
	s.current.Store(snapshot)
}

// CatalogDirectoryStore serves the catalog directory from process memory.
type CatalogDirectoryStore struct {
	current atomic.Pointer[catalog.Directory]
}

// NewCatalogDirectoryStore creates an empty store.
func NewCatalogDirectoryStore() *CatalogDirectoryStore {
	store := &CatalogDirectoryStore{}
	empty, _ := catalog.NewDirectory(nil, nil, nil)
	store.current.Store(empty)
	return store
}

// Current returns the latest published directory.
func (s *CatalogDirectoryStore) Current() *catalog.Directory {
	return s.current.Load()
}

// Publish atomically replaces the directory.
func (s *CatalogDirectoryStore) Publish(directory *catalog.Directory) {
	if directory == nil {
		return
	}
	s.current.Store(directory)
}

// AssignmentSnapshotStore serves the assignment snapshot from process memory.
type AssignmentSnapshotStore struct {
	current atomic.Pointer[assignment.Snapshot]
}

// NewAssignmentSnapshotStore creates an empty store.
func NewAssignmentSnapshotStore() *AssignmentSnapshotStore {
	store := &AssignmentSnapshotStore{}
	store.current.Store(assignment.NewSnapshot(0, nil, nil))
	return store
}

// Current returns the latest published snapshot.
func (s *AssignmentSnapshotStore) Current() *assignment.Snapshot {
	return s.current.Load()
}

// Publish atomically replaces the snapshot.
func (s *AssignmentSnapshotStore) Publish(snapshot *assignment.Snapshot) {
	if snapshot == nil {
		return
	}
	s.current.Store(snapshot)
}
