package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/geo"
	"grocery/internal/core/ports"
)

// RefreshSnapshotsCommandHandler rebuilds the configuration views from
// storage and publishes them. Each rebuild reads the full configuration,
// constructs fresh immutable snapshots, and swaps them in; a failing rebuild
// leaves the previous generation serving.
//
// Invalid configuration rows (a zone pointing at a missing region, an area
// with a degenerate boundary) are excluded from the snapshot and surfaced as
// warnings rather than failing the whole rebuild.
type RefreshSnapshotsCommandHandler struct {
	geoRepo         ports.GeoRepository
	catalogRepo     ports.CatalogRepository
	assignmentRepo  ports.AssignmentRepository
	ruleRepo        ports.AllocationRuleRepository
	geoStore        ports.GeoSnapshotStore
	catalogStore    ports.CatalogDirectoryStore
	assignmentStore ports.AssignmentSnapshotStore
	version         *atomic.Uint64
	logger          *slog.Logger
}

// NewRefreshSnapshotsCommandHandler creates a handler for snapshot rebuilds.
func NewRefreshSnapshotsCommandHandler(
	geoRepo ports.GeoRepository,
	catalogRepo ports.CatalogRepository,
	assignmentRepo ports.AssignmentRepository,
	ruleRepo ports.AllocationRuleRepository,
	geoStore ports.GeoSnapshotStore,
	catalogStore ports.CatalogDirectoryStore,
	assignmentStore ports.AssignmentSnapshotStore,
	logger *slog.Logger,
) RefreshSnapshotsCommandHandler {
	return RefreshSnapshotsCommandHandler{
		geoRepo:         geoRepo,
		catalogRepo:     catalogRepo,
		assignmentRepo:  assignmentRepo,
		ruleRepo:        ruleRepo,
		geoStore:        geoStore,
		catalogStore:    catalogStore,
		assignmentStore: assignmentStore,
		version:         &atomic.Uint64{},
		logger:          logger.With("component", "refresh_snapshots_command_handler"),
	}
}

// Handle processes the snapshot refresh command. The three views are rebuilt
// and published independently; a failure in one leaves the others refreshed.
func (h RefreshSnapshotsCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshSnapshotsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	version := h.version.Add(1)

	if err := h.refreshGeo(ctx, version); err != nil {
		return err
	}
	if err := h.refreshCatalog(ctx); err != nil {
		return err
	}
	if err := h.refreshAssignments(ctx, version); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Configuration snapshots published", "version", version)
	return nil
}

func (h RefreshSnapshotsCommandHandler) refreshGeo(ctx context.Context, version uint64) error {
	regions, err := h.geoRepo.GetAllRegions(ctx)
	if err != nil {
		return err
	}
	zones, err := h.geoRepo.GetAllZones(ctx)
	if err != nil {
		return err
	}
	areas, err := h.geoRepo.GetAllAreas(ctx)
	if err != nil {
		return err
	}

	snapshot, warnings := geo.NewSnapshot(version, regions, zones, areas)
	for _, warning := range warnings {
		h.logger.WarnContext(ctx, "Geo configuration excluded from snapshot", "reason", warning)
	}

	h.geoStore.Publish(snapshot)
	return nil
}

func (h RefreshSnapshotsCommandHandler) refreshCatalog(ctx context.Context) error {
	categories, err := h.catalogRepo.GetAllCategories(ctx)
	if err != nil {
		return err
	}
	vendors, err := h.catalogRepo.GetAllVendors(ctx)
	if err != nil {
		return err
	}
	products, err := h.catalogRepo.GetAllProducts(ctx)
	if err != nil {
		return err
	}

	directory, err := catalog.NewDirectory(categories, vendors, products)
	if err != nil {
		return err
	}

	h.catalogStore.Publish(directory)
	return nil
}

func (h RefreshSnapshotsCommandHandler) refreshAssignments(ctx context.Context, version uint64) error {
	assignments, err := h.assignmentRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}
	rules, err := h.ruleRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	h.assignmentStore.Publish(assignment.NewSnapshot(version, assignments, rules))
	return nil
}
