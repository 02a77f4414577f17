// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AllocationRuleRepoFactory provides access to the allocation rule repository within a transaction.
	AllocationRuleRepoFactory interface {
		AllocationRuleRepository() ports.AllocationRuleRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// WeatherRuleRepoFactory provides access to the weather rule repository within a transaction.
	WeatherRuleRepoFactory interface {
		WeatherRuleRepository() ports.WeatherRuleRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// AssignmentUoW manages transactions for assignment operations.
	// Replacement writes two rows (deactivate old, add new) in one transaction.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// AllocationRuleUoW manages transactions for allocation rule upserts.
	AllocationRuleUoW interface {
		TxManager
		AllocationRuleRepoFactory
	}

	// AllocationRuleUoWFactory creates new allocation rule unit of work instances.
	AllocationRuleUoWFactory interface {
		Create() AllocationRuleUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// WeatherUoW manages transactions for weather rule ingestion.
	WeatherUoW interface {
		TxManager
		WeatherRuleRepoFactory
	}

	// WeatherUoWFactory creates new weather unit of work instances.
	WeatherUoWFactory interface {
		Create() WeatherUoW
	}

	// RoutingUoW manages transactions spanning routing: reservations, the
	// persisted quote, and the weather read all share one transaction, so a
	// failed quote rolls its reservations back with it.
	RoutingUoW interface {
		TxManager
		InventoryRepoFactory
		QuoteRepoFactory
		WeatherRuleRepoFactory
	}

	// RoutingUoWFactory creates new routing unit of work instances.
	RoutingUoWFactory interface {
		Create() RoutingUoW
	}

	// QuoteUoW manages transactions for quote status changes that touch no
	// other aggregate, such as confirmation.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// QuoteReleaseUoW manages transactions for quote release: the status
	// change and the compensating stock increments commit together.
	QuoteReleaseUoW interface {
		TxManager
		QuoteRepoFactory
		InventoryRepoFactory
	}

	// QuoteReleaseUoWFactory creates new quote release unit of work instances.
	QuoteReleaseUoWFactory interface {
		Create() QuoteReleaseUoW
	}
)
