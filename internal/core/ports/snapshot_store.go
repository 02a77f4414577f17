package ports

import (
	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
)

// Snapshot stores hold the immutable configuration views the read paths run
// against. Publish atomically swaps the whole view; Current never blocks and
// always observes one consistent generation. A refresh job rebuilds the views
// from storage and publishes them.

// GeoSnapshotStore publishes and serves the geographic hierarchy snapshot.
type GeoSnapshotStore interface {
	// Current returns the latest published snapshot. Never nil after the
	// initial publish at startup.
	Current() *geo.Snapshot

	// Publish atomically replaces the snapshot.
	Publish(snapshot *geo.Snapshot)
}

// CatalogDirectoryStore publishes and serves the catalog directory.
type CatalogDirectoryStore interface {
	// Current returns the latest published directory.
	Current() *catalog.Directory

	// Publish atomically replaces the directory.
	Publish(directory *catalog.Directory)
}

// AssignmentSnapshotStore publishes and serves the assignment snapshot.
type AssignmentSnapshotStore interface {
	// Current returns the latest published snapshot.
	Current() *assignment.Snapshot

	// Publish atomically replaces the snapshot.
	Publish(snapshot *assignment.Snapshot)
}
