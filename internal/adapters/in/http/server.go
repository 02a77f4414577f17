// Package http is the inbound HTTP adapter. It translates the REST surface
// into commands and queries and maps domain errors onto status codes; no
// business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultWeatherHistoryLimit = 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	routeOrderHandler           commands.RouteOrderCommandHandler
	confirmQuoteHandler         commands.ConfirmQuoteCommandHandler
	releaseQuoteHandler         commands.ReleaseQuoteCommandHandler
	assignVendorCategoryHandler commands.AssignVendorCategoryCommandHandler
	upsertAllocationRuleHandler commands.UpsertAllocationRuleCommandHandler
	applyWeatherEventHandler    commands.ApplyWeatherEventCommandHandler
	restockInventoryHandler     commands.RestockInventoryCommandHandler

	// Query handlers
	resolveLocationHandler queries.ResolveLocationQueryHandler
	getQuoteHandler        queries.GetQuoteQueryHandler
	getZoneWeatherHandler  queries.GetZoneWeatherQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	routeOrderHandler commands.RouteOrderCommandHandler,
	confirmQuoteHandler commands.ConfirmQuoteCommandHandler,
	releaseQuoteHandler commands.ReleaseQuoteCommandHandler,
	assignVendorCategoryHandler commands.AssignVendorCategoryCommandHandler,
	upsertAllocationRuleHandler commands.UpsertAllocationRuleCommandHandler,
	applyWeatherEventHandler commands.ApplyWeatherEventCommandHandler,
	restockInventoryHandler commands.RestockInventoryCommandHandler,
	resolveLocationHandler queries.ResolveLocationQueryHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	getZoneWeatherHandler queries.GetZoneWeatherQueryHandler,
) *Server {
	return &Server{
		routeOrderHandler:           routeOrderHandler,
		confirmQuoteHandler:         confirmQuoteHandler,
		releaseQuoteHandler:         releaseQuoteHandler,
		assignVendorCategoryHandler: assignVendorCategoryHandler,
		upsertAllocationRuleHandler: upsertAllocationRuleHandler,
		applyWeatherEventHandler:    applyWeatherEventHandler,
		restockInventoryHandler:     restockInventoryHandler,
		resolveLocationHandler:      resolveLocationHandler,
		getQuoteHandler:             getQuoteHandler,
		getZoneWeatherHandler:       getZoneWeatherHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/locations/resolve", s.ResolveLocation)

	api.POST("/quotes", s.RouteOrder)
	api.GET("/quotes/:id", s.GetQuote)
	api.POST("/quotes/:id/confirm", s.ConfirmQuote)
	api.POST("/quotes/:id/release", s.ReleaseQuote)

	api.POST("/assignments", s.AssignVendorCategory)
	api.PUT("/allocation-rules", s.UpsertAllocationRule)
	api.POST("/weather-events", s.ApplyWeatherEvent)
	api.POST("/inventory/restock", s.RestockInventory)

	api.GET("/zones/:id/weather", s.GetZoneWeather)
}

// ResolveLocation handles GET /api/v1/locations/resolve - maps a coordinate
// to its serving region, zone, and area.
func (s *Server) ResolveLocation(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lng parameter")
	}

	query, err := queries.NewResolveLocationQuery(lat, lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resolved, err := s.resolveLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ResolvedLocationResponse{
		RegionID:        resolved.RegionID.String(),
		RegionName:      resolved.RegionName,
		ZoneID:          resolved.ZoneID.String(),
		ZoneName:        resolved.ZoneName,
		BaseDeliveryFee: resolved.BaseDeliveryFee,
		HasDarkStore:    resolved.HasDarkStore,
		AreaID:          resolved.AreaID.String(),
		AreaName:        resolved.AreaName,
		SnapshotVersion: resolved.SnapshotVersion,
	})
}

// RouteOrder handles POST /api/v1/quotes - routes an order across inventory
// sources and returns the resulting quote.
func (s *Server) RouteOrder(ctx echo.Context) error {
	var request RouteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id: "+err.Error())
	}

	point, err := kernel.NewGeoPoint(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]quote.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, parseErr := kernel.UUIDFromString(itemRequest.ProductID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid product_id: "+parseErr.Error())
		}
		item, itemErr := quote.NewItem(productID, itemRequest.Quantity)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewRouteOrderCommand(orderID, point, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderQuote, err := s.routeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderQuoteAggregate(orderQuote))
}

// GetQuote handles GET /api/v1/quotes/:id - returns the full quote document.
func (s *Server) GetQuote(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid quote ID")
	}

	query, err := queries.NewGetQuoteQuery(quoteID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	document, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderQuoteDocument(document))
}

// ConfirmQuote handles POST /api/v1/quotes/:id/confirm - finalizes a pending
// quote, making its reservations permanent.
func (s *Server) ConfirmQuote(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid quote ID")
	}

	cmd, err := commands.NewConfirmQuoteCommand(quoteID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseQuote handles POST /api/v1/quotes/:id/release - abandons a pending
// quote and returns its reserved stock.
func (s *Server) ReleaseQuote(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid quote ID")
	}

	cmd, err := commands.NewReleaseQuoteCommand(quoteID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.releaseQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignVendorCategory handles POST /api/v1/assignments - assigns a vendor
// as the primary supplier for a category within a zone.
func (s *Server) AssignVendorCategory(ctx echo.Context) error {
	var request AssignVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(request.ZoneID)
	if err != nil {
		return badRequest(ctx, "Invalid zone_id: "+err.Error())
	}
	categoryID, err := kernel.UUIDFromString(request.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category_id: "+err.Error())
	}
	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor_id: "+err.Error())
	}

	cmd, err := commands.NewAssignVendorCategoryCommand(zoneID, categoryID, vendorID, request.Replace)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignVendorCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpsertAllocationRule handles PUT /api/v1/allocation-rules - creates or
// replaces the source selection rule for a (zone, subcategory) pair.
func (s *Server) UpsertAllocationRule(ctx echo.Context) error {
	var request UpsertAllocationRuleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(request.ZoneID)
	if err != nil {
		return badRequest(ctx, "Invalid zone_id: "+err.Error())
	}
	subcategoryID, err := kernel.UUIDFromString(request.SubcategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid subcategory_id: "+err.Error())
	}
	strategy, err := assignment.StrategyFromString(request.Strategy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpsertAllocationRuleCommand(zoneID, subcategoryID, strategy, request.Fallback)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.upsertAllocationRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyWeatherEvent handles POST /api/v1/weather-events - records a weather
// condition change for a zone. Re-posting the current condition is a no-op.
func (s *Server) ApplyWeatherEvent(ctx echo.Context) error {
	var request WeatherEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(request.ZoneID)
	if err != nil {
		return badRequest(ctx, "Invalid zone_id: "+err.Error())
	}
	condition, err := weather.ConditionFromString(request.Condition)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApplyWeatherEventCommand(
		zoneID,
		condition,
		request.DeliveryFeeOverride,
		request.ETAMultiplier,
		request.ServiceSuspended,
		request.ResumeEstimate,
		request.OccurredAt,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.applyWeatherEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RestockInventory handles POST /api/v1/inventory/restock - adds stock to an
// inventory record, creating it when the source has not carried the product.
func (s *Server) RestockInventory(ctx echo.Context) error {
	var request RestockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sourceID, err := kernel.UUIDFromString(request.SourceID)
	if err != nil {
		return badRequest(ctx, "Invalid source_id: "+err.Error())
	}
	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id: "+err.Error())
	}
	zoneID, err := kernel.UUIDFromString(request.ZoneID)
	if err != nil {
		return badRequest(ctx, "Invalid zone_id: "+err.Error())
	}

	cmd, err := commands.NewRestockInventoryCommand(sourceID, productID, zoneID, request.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.restockInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetZoneWeather handles GET /api/v1/zones/:id/weather - returns the zone's
// weather rule history, newest first.
func (s *Server) GetZoneWeather(ctx echo.Context) error {
	zoneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid zone ID")
	}

	limit := defaultWeatherHistoryLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit parameter")
		}
	}

	query, err := queries.NewGetZoneWeatherQuery(zoneID, limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.getZoneWeatherHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]WeatherRuleResponse, 0, len(history))
	for _, rule := range history {
		response = append(response, WeatherRuleResponse{
			Condition:           rule.Condition,
			DeliveryFeeOverride: rule.DeliveryFeeOverride,
			ETAMultiplier:       rule.ETAMultiplier,
			ServiceSuspended:    rule.ServiceSuspended,
			ResumeEstimate:      rule.ResumeEstimate,
			AppliedAt:           rule.AppliedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondError maps domain and application errors onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var suspended *services.ServiceSuspendedError
	if errors.As(err, &suspended) {
		return ctx.JSON(http.StatusServiceUnavailable, ServiceSuspendedResponse{
			Code:           http.StatusServiceUnavailable,
			Message:        "Service in this zone is temporarily suspended",
			ResumeEstimate: suspended.ResumeEstimate,
		})
	}

	switch {
	case errors.Is(err, services.ErrNotServiceable):
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Location is outside every service area")
	case errors.Is(err, services.ErrZoneIsClosed):
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Zone is outside its service hours")
	case errors.Is(err, services.ErrServiceSuspended):
		return errorJSON(ctx, http.StatusServiceUnavailable, "Service in this zone is temporarily suspended")
	case errors.Is(err, commands.ErrAssignmentConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
