package cmd

import (
	"log/slog"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/assignmentrepo"
	"grocery/internal/adapters/out/postgres/configrepo"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/services"
	"grocery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. The snapshot stores and the
// refresh handler are created once and shared: the refresh handler owns the
// monotonic snapshot version counter, so every caller must go through the
// same instance.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	geoStore        *memory.GeoSnapshotStore
	catalogStore    *memory.CatalogDirectoryStore
	assignmentStore *memory.AssignmentSnapshotStore

	refreshSnapshotsHandler commands.RefreshSnapshotsCommandHandler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	geoStore := memory.NewGeoSnapshotStore()
	catalogStore := memory.NewCatalogDirectoryStore()
	assignmentStore := memory.NewAssignmentSnapshotStore()

	refreshHandler := commands.NewRefreshSnapshotsCommandHandler(
		configrepo.NewGormGeoRepository(gormDB),
		configrepo.NewGormCatalogRepository(gormDB),
		assignmentrepo.NewGormAssignmentRepository(gormDB),
		assignmentrepo.NewGormAllocationRuleRepository(gormDB),
		geoStore,
		catalogStore,
		assignmentStore,
		logger,
	)

	return CompositionRoot{
		gormDB:                  gormDB,
		uowFactory:              *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:                  logger,
		geoStore:                geoStore,
		catalogStore:            catalogStore,
		assignmentStore:         assignmentStore,
		refreshSnapshotsHandler: refreshHandler,
	}
}

func (c *CompositionRoot) CreateRefreshSnapshotsCommandHandler() commands.RefreshSnapshotsCommandHandler {
	return c.refreshSnapshotsHandler
}

func (c *CompositionRoot) CreateRouteOrderCommandHandler() commands.RouteOrderCommandHandler {
	var f commands.RoutingUoWFactory = FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRouteOrderCommandHandler(f, c.geoStore, c.catalogStore, c.assignmentStore, c.logger)
}

func (c *CompositionRoot) CreateConfirmQuoteCommandHandler() commands.ConfirmQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmQuoteCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReleaseQuoteCommandHandler() commands.ReleaseQuoteCommandHandler {
	var f commands.QuoteReleaseUoWFactory = FuncQuoteReleaseUoWFactory(func() commands.QuoteReleaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseQuoteCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReleaseStaleQuotesCommandHandler() commands.ReleaseStaleQuotesCommandHandler {
	var f commands.QuoteReleaseUoWFactory = FuncQuoteReleaseUoWFactory(func() commands.QuoteReleaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStaleQuotesCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignVendorCategoryCommandHandler() commands.AssignVendorCategoryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVendorCategoryCommandHandler(f, c.catalogStore)
}

func (c *CompositionRoot) CreateUpsertAllocationRuleCommandHandler() commands.UpsertAllocationRuleCommandHandler {
	var f commands.AllocationRuleUoWFactory = FuncAllocationRuleUoWFactory(func() commands.AllocationRuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertAllocationRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyWeatherEventCommandHandler() commands.ApplyWeatherEventCommandHandler {
	var f commands.WeatherUoWFactory = FuncWeatherUoWFactory(func() commands.WeatherUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyWeatherEventCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRestockInventoryCommandHandler() commands.RestockInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockInventoryCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateResolveLocationQueryHandler() queries.ResolveLocationQueryHandler {
	return queries.NewResolveLocationQueryHandler(c.geoStore, services.NewGeofenceResolver(c.logger))
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZoneWeatherQueryHandler() queries.GetZoneWeatherQueryHandler {
	return queries.NewGetZoneWeatherQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshSnapshotsCommandHandler(),
		c.CreateReleaseStaleQuotesCommandHandler(),
		config.QuoteMaxAge,
		c.logger,
	)
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncQuoteReleaseUoWFactory func() commands.QuoteReleaseUoW

func (f FuncQuoteReleaseUoWFactory) Create() commands.QuoteReleaseUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncAllocationRuleUoWFactory func() commands.AllocationRuleUoW

func (f FuncAllocationRuleUoWFactory) Create() commands.AllocationRuleUoW {
	return f()
}

type FuncWeatherUoWFactory func() commands.WeatherUoW

func (f FuncWeatherUoWFactory) Create() commands.WeatherUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
