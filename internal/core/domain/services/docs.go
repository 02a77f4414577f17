// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the grocery delivery platform. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - GeofenceResolver: Resolves delivery coordinates to the region/zone/area chain
//   - VendorCategoryRegistry: Finds the vendor owning a category in a zone,
//     with ancestor fallback through the category tree
//   - SourceSelector: Chooses and atomically reserves the inventory source for
//     one order line per the zone's allocation rule
//   - OrderRouter: Splits an order into per-source sub-orders and assembles the quote
//   - WeatherRuleEngine: Decides supersession and idempotence of weather rules
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
