package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The assignment swap and the reserve-then-quote flow both depend on this
// boundary: every repository obtained from one UnitOfWork shares one database
// transaction, so replacing a vendor or reserving stock for a multi-source
// quote commits atomically or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// AllocationRuleRepository returns an AllocationRuleRepository bound to the current transaction.
	AllocationRuleRepository() AllocationRuleRepository

	// InventoryRepository returns an InventoryRepository bound to the current transaction.
	InventoryRepository() InventoryRepository

	// WeatherRuleRepository returns a WeatherRuleRepository bound to the current transaction.
	WeatherRuleRepository() WeatherRuleRepository

	// QuoteRepository returns a QuoteRepository bound to the current transaction.
	QuoteRepository() QuoteRepository
}
